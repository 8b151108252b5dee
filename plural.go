package numwords

import (
	_ "embed"
	"fmt"
	"math/big"
	"sync"
)

// PluralClassifier maps an integer count to the plural category its noun takes.
type PluralClassifier interface {
	Category(n *big.Int) PluralCategory
}

// PluralFunc adapts a function to PluralClassifier.
type PluralFunc func(n *big.Int) PluralCategory

func (f PluralFunc) Category(n *big.Int) PluralCategory {
	return f(n)
}

// NoPlural never inflects: every count is "other".
var NoPlural PluralClassifier = PluralFunc(func(*big.Int) PluralCategory {
	return PluralOther
})

// OneOther selects "one" for exactly one and "other" for everything else.
var OneOther PluralClassifier = PluralFunc(func(n *big.Int) PluralCategory {
	if n.IsInt64() && n.Int64() == 1 {
		return PluralOne
	}
	return PluralOther
})

// PluralForms holds the word variants of a noun by plural category.
type PluralForms map[PluralCategory]string

// Forms builds forms for a noun that only distinguishes one from many.
func Forms(one, other string) PluralForms {
	return PluralForms{PluralOne: one, PluralOther: other}
}

// Invariant builds forms for a noun that never inflects.
func Invariant(word string) PluralForms {
	return PluralForms{PluralOther: word}
}

// Select returns the form for category, falling back to "other".
func (f PluralForms) Select(category PluralCategory) string {
	if word, ok := f[category]; ok {
		return word
	}
	return f[PluralOther]
}

func (f PluralForms) clone() PluralForms {
	if f == nil {
		return nil
	}
	out := make(PluralForms, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

type PluralConditionOperator string

const (
	OperatorEquals    PluralConditionOperator = "eq"
	OperatorNotEquals PluralConditionOperator = "ne"
	OperatorIn        PluralConditionOperator = "in"
	OperatorNotIn     PluralConditionOperator = "not_in"
	OperatorWithin    PluralConditionOperator = "within"
	OperatorNotWithin PluralConditionOperator = "not_within"
)

type PluralRange struct {
	Start int64
	End   int64
}

// PluralCondition tests the operand, optionally reduced modulo Mod, against
// a list of values and ranges.
type PluralCondition struct {
	Operand  string
	Mod      int
	Operator PluralConditionOperator
	Values   []int64
	Ranges   []PluralRange
}

type PluralRule struct {
	Category PluralCategory
	// Groups are alternatives; conditions inside a group must all hold.
	Groups [][]PluralCondition
}

// PluralRuleSet is a CLDR style cardinal rule list. Rules are ordered and
// the first match wins; "other" needs no groups.
type PluralRuleSet struct {
	Locale      string
	DisplayName string
	Rules       []PluralRule
}

func (set *PluralRuleSet) Categories() []PluralCategory {
	if set == nil || len(set.Rules) == 0 {
		return nil
	}

	categories := make([]PluralCategory, 0, len(set.Rules))
	seen := make(map[PluralCategory]struct{}, len(set.Rules))
	for _, rule := range set.Rules {
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		categories = append(categories, rule.Category)
	}
	return categories
}

// Category implements PluralClassifier. Counts are integers, so the i and n
// operands coincide and the fraction operands (v, w, f, t) are zero.
func (set *PluralRuleSet) Category(n *big.Int) PluralCategory {
	if set == nil {
		return PluralOther
	}
	abs := new(big.Int).Abs(n)
	for _, rule := range set.Rules {
		if len(rule.Groups) == 0 {
			if rule.Category == PluralOther {
				return rule.Category
			}
			continue
		}
		for _, group := range rule.Groups {
			if groupMatches(group, abs) {
				return rule.Category
			}
		}
	}
	return PluralOther
}

func groupMatches(group []PluralCondition, n *big.Int) bool {
	for _, cond := range group {
		if !cond.matches(n) {
			return false
		}
	}
	return true
}

func (c PluralCondition) matches(n *big.Int) bool {
	operand := n
	switch c.Operand {
	case "n", "i", "":
	case "v", "w", "f", "t", "e", "c":
		operand = new(big.Int)
	default:
		return false
	}
	if c.Mod > 0 {
		operand = new(big.Int).Mod(operand, big.NewInt(int64(c.Mod)))
	}

	hit := false
	for _, v := range c.Values {
		if operand.Cmp(big.NewInt(v)) == 0 {
			hit = true
			break
		}
	}
	if !hit {
		for _, r := range c.Ranges {
			if operand.Cmp(big.NewInt(r.Start)) >= 0 && operand.Cmp(big.NewInt(r.End)) <= 0 {
				hit = true
				break
			}
		}
	}

	switch c.Operator {
	case OperatorEquals, OperatorIn, OperatorWithin:
		return hit
	case OperatorNotEquals, OperatorNotIn, OperatorNotWithin:
		return !hit
	default:
		return false
	}
}

//go:embed data/plural_rules.json
var pluralRulesData []byte

var builtinPluralRules = sync.OnceValues(func() (map[string]*PluralRuleSet, error) {
	return decodePluralRules("data/plural_rules.json", pluralRulesData)
})

// PluralRules returns the bundled cardinal rules for locale.
func PluralRules(locale string) (*PluralRuleSet, error) {
	sets, err := builtinPluralRules()
	if err != nil {
		return nil, err
	}
	for _, candidate := range candidateLocales(locale) {
		if set, ok := sets[candidate]; ok {
			return set, nil
		}
	}
	return nil, fmt.Errorf("%w: no plural rules for %q", ErrUnknownLocale, locale)
}

func mustPluralRules(locale string) *PluralRuleSet {
	set, err := PluralRules(locale)
	if err != nil {
		panic(err)
	}
	return set
}

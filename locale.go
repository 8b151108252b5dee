package numwords

import (
	"errors"
	"fmt"
	"maps"
	"math/big"
)

// Seam identifies where two words meet.
type Seam int

const (
	SeamTens     Seam = iota // tens word and unit
	SeamHundreds             // hundreds or thousands position and the rest of the chunk
	SeamScale                // multiplier and scale word
	SeamChunk                // one chunk and the next lower chunk
)

// ElisionRule fuses two words that are joined without a separator.
type ElisionRule interface {
	Elide(left, right string, seam Seam) string
}

// LinkerSelector joins a multiplier to the noun it counts when the choice
// of linker depends on the multiplier's sound.
type LinkerSelector interface {
	Link(multiplier, noun string) string
}

// YearStyle decides whether a year is read as two halves, as in
// "nineteen eighty-four".
type YearStyle interface {
	Split(year *big.Int) (high, low int, ok bool)
}

type DecimalStyle int

const (
	DecimalDefault DecimalStyle = iota
	DecimalPoint
	DecimalComma
)

// Words is the lexicon used to render a single chunk.
type Words struct {
	// Units holds the digit words 0..9.
	Units [10]string
	// Digits overrides Units when fraction digits are read one by one.
	Digits [10]string
	// Atoms holds irregular words for values 10..99, typically the teens.
	Atoms map[int]string
	// Gendered replaces unit or atom words under agreement with a gender.
	Gendered map[Gender]map[int]string
	// Construct replaces unit or atom words bound to a following noun.
	Construct map[int]string

	Tens      [10]string
	TensJoin  string
	AfterTens map[int]string

	Hundred        string
	Hundreds       map[int]string
	HundredJoin    string
	OmitOneHundred bool

	Thousand        string
	ThousandJoin    string
	OmitOneThousand bool

	// Join separates positions inside a chunk.
	Join string
	// Bridge replaces Join before a lone unit when the tens digit is zero.
	Bridge string
}

// ScaleTier names one tier above the units.
type ScaleTier struct {
	Forms  PluralForms
	Gender Gender
	// Overrides replace the whole multiplier and scale phrase for exact multipliers.
	Overrides map[int]string
	// Join separates the multiplier from the scale word.
	Join string
	// Next separates this tier's phrase from the next lower chunk.
	Next string
	// NounLink precedes a counted noun when the amount ends on this tier
	// (un milione di euro).
	NounLink string
}

// Scale is a ScaleTier with space separators and no inflection.
func Scale(word string) ScaleTier {
	return ScaleTier{Forms: Invariant(word), Join: " ", Next: " "}
}

// ChunkBridge prefixes Phrase to non-leading chunks below Below, voicing
// their missing hundreds.
type ChunkBridge struct {
	Phrase string
	Below  int
}

// Conjunction replaces the separator before the final chunk when that
// chunk is below Below.
type Conjunction struct {
	Word  string
	Below int
}

type CurrencyUnit struct {
	Forms  PluralForms
	Gender Gender
}

// Currency names the main and sub units of an ISO 4217 currency. Digits
// overrides the minor unit digits reported by golang.org/x/text/currency.
type Currency struct {
	Main   CurrencyUnit
	Sub    *CurrencyUnit
	Digits int
}

// YearRules controls calendar year reading. Patterns substitute {year}.
type YearRules struct {
	Style   YearStyle
	Hundred string
	Oh      string
	Zero    string
	Plain   string
	Before  string
	After   string
	Linker  string
}

// RuleSet is the immutable description of one locale.
type RuleSet struct {
	Code string
	Name string

	Grouping GroupingScheme
	Plural   PluralClassifier

	Words       Words
	Scales      []ScaleTier
	Bridge      *ChunkBridge
	Conjunction *Conjunction
	Elision     ElisionRule
	Linker      LinkerSelector

	Zero      string
	Negative  string
	NaN       string
	Infinity  string
	PointWord string
	CommaWord string
	Decimal   DecimalStyle
	Space     string
	DigitJoin string

	Currencies        map[string]Currency
	DefaultCurrency   string
	CurrencySeparator string

	Year YearRules
}

func (rs *RuleSet) plural() PluralClassifier {
	if rs.Plural == nil {
		return NoPlural
	}
	return rs.Plural
}

// Validate checks that every tier and position the grouping can produce has words.
func (rs *RuleSet) Validate() error {
	if rs == nil {
		return fmt.Errorf("%w: nil rule set", ErrInvalidRuleSet)
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if rs.Code == "" {
		fail("missing code")
	}
	if rs.Zero == "" {
		fail("missing zero word")
	}
	for d, w := range rs.Words.Units {
		if w == "" {
			fail("missing unit word %d", d)
		}
	}
	for t := 2; t < 10; t++ {
		if rs.Words.Tens[t] == "" {
			fail("missing tens word %d", t)
		}
	}
	for v := 10; v < 20; v++ {
		if rs.Words.Tens[1] == "" && rs.Words.Atoms[v] == "" {
			fail("missing word for %d", v)
		}
	}

	if rs.Grouping == nil {
		fail("missing grouping")
	} else {
		tiers := rs.Grouping.Tiers()
		if tiers < 1 {
			fail("grouping needs at least one tier")
		}
		if rs.Grouping.Open() && tiers < 2 {
			fail("open grouping needs at least two tiers")
		}
		if len(rs.Scales) < tiers {
			fail("%d tiers but %d scales", tiers, len(rs.Scales))
		}
		for tier := 0; tier < tiers; tier++ {
			size := rs.Grouping.GroupSize(tier)
			if size < 1 || size > 4 {
				fail("tier %d: group size %d out of range", tier, size)
			}
			if size >= 3 && rs.Words.Hundred == "" && len(rs.Words.Hundreds) < 9 {
				fail("tier %d: missing hundred word", tier)
			}
			if size == 4 && rs.Words.Thousand == "" {
				fail("tier %d: missing thousand word", tier)
			}
			if tier > 0 && tier < len(rs.Scales) && rs.Scales[tier].Forms.Select(PluralOther) == "" {
				fail("tier %d: missing scale word", tier)
			}
		}
	}
	if rs.Year.Before == "" {
		fail("missing before-era pattern")
	}
	if rs.DefaultCurrency != "" {
		if _, ok := rs.Currencies[rs.DefaultCurrency]; !ok {
			fail("default currency %s has no unit names", rs.DefaultCurrency)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRuleSet, rs.Code, errors.Join(errs...))
	}
	return nil
}

// Clone returns a copy that shares no maps or slices with rs.
func (rs *RuleSet) Clone() *RuleSet {
	if rs == nil {
		return nil
	}
	out := *rs
	out.Words = rs.Words.clone()
	if rs.Scales != nil {
		out.Scales = make([]ScaleTier, len(rs.Scales))
		for i, tier := range rs.Scales {
			tier.Forms = tier.Forms.clone()
			tier.Overrides = maps.Clone(tier.Overrides)
			out.Scales[i] = tier
		}
	}
	if rs.Bridge != nil {
		bridge := *rs.Bridge
		out.Bridge = &bridge
	}
	if rs.Conjunction != nil {
		conj := *rs.Conjunction
		out.Conjunction = &conj
	}
	if rs.Currencies != nil {
		out.Currencies = make(map[string]Currency, len(rs.Currencies))
		for code, cur := range rs.Currencies {
			out.Currencies[code] = cur.clone()
		}
	}
	return &out
}

func (w Words) clone() Words {
	out := w
	out.Atoms = maps.Clone(w.Atoms)
	out.Construct = maps.Clone(w.Construct)
	out.AfterTens = maps.Clone(w.AfterTens)
	out.Hundreds = maps.Clone(w.Hundreds)
	if w.Gendered != nil {
		out.Gendered = make(map[Gender]map[int]string, len(w.Gendered))
		for g, words := range w.Gendered {
			out.Gendered[g] = maps.Clone(words)
		}
	}
	return out
}

func (c Currency) clone() Currency {
	out := c
	out.Main.Forms = c.Main.Forms.clone()
	if c.Sub != nil {
		sub := *c.Sub
		sub.Forms = c.Sub.Forms.clone()
		out.Sub = &sub
	}
	return out
}

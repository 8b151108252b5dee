package numwords

import "fmt"

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// Gender is the grammatical gender a multiplier agrees with.
type Gender int

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
)

func (g Gender) String() string {
	switch g {
	case GenderNone:
		return "none"
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// State distinguishes a free-standing numeral from one bound to a following noun.
type State int

const (
	Standalone State = iota
	Construct
)

func (s State) String() string {
	switch s {
	case Standalone:
		return "standalone"
	case Construct:
		return "construct"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// NounClass names what the rendered numeral counts.
type NounClass int

const (
	NounNone NounClass = iota
	NounCurrencyMain
	NounCurrencySub
	NounScale
)

func (n NounClass) String() string {
	switch n {
	case NounNone:
		return "none"
	case NounCurrencyMain:
		return "currency_main"
	case NounCurrencySub:
		return "currency_sub"
	case NounScale:
		return "scale"
	default:
		return fmt.Sprintf("NounClass(%d)", int(n))
	}
}

// GrammaticalContext selects word variants while a chunk is rendered.
type GrammaticalContext struct {
	Gender Gender
	State  State
	Noun   NounClass
}

// NounContext builds the context a numeral takes when it counts noun of the given gender.
func NounContext(noun NounClass, gender Gender) GrammaticalContext {
	switch noun {
	case NounNone, NounScale:
		return GrammaticalContext{Gender: gender, State: Standalone, Noun: noun}
	case NounCurrencyMain, NounCurrencySub:
		return GrammaticalContext{Gender: gender, State: Construct, Noun: noun}
	default:
		panic(fmt.Sprintf("numwords: unknown noun class %d", int(noun)))
	}
}

// RenderedChunk is the word form of one group. Text is empty only for a zero group.
type RenderedChunk struct {
	Text         string
	Tier         int
	Value        int
	ExplicitZero bool
}

// Empty reports whether the chunk contributes no words.
func (c RenderedChunk) Empty() bool {
	return c.Text == ""
}

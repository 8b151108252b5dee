package numwords

import (
	"fmt"
	"math/big"
)

// GroupingScheme describes how a magnitude is cut into chunks, least
// significant tier first.
type GroupingScheme interface {
	// GroupSize is the number of digits in tier.
	GroupSize(tier int) int
	// Tiers is the number of named tiers, units included.
	Tiers() int
	// Open reports whether the top tier takes an unbounded multiplier that
	// is spelled recursively.
	Open() bool
}

// Grouping is a GroupingScheme with one size for the first tier and
// another for the rest.
type Grouping struct {
	First         int
	Rest          int
	Count         int
	Compositional bool
}

func (g Grouping) GroupSize(tier int) int {
	if tier == 0 && g.First > 0 {
		return g.First
	}
	return g.Rest
}

func (g Grouping) Tiers() int { return g.Count }
func (g Grouping) Open() bool { return g.Compositional }

// ShortScale groups by thousands.
func ShortScale(tiers int) Grouping {
	return Grouping{First: 3, Rest: 3, Count: tiers}
}

// Myriad groups by ten thousands.
func Myriad(tiers int) Grouping {
	return Grouping{First: 4, Rest: 4, Count: tiers}
}

// Indian groups the units by three and everything above by two, with the
// top tier open.
func Indian(tiers int) Grouping {
	return Grouping{First: 3, Rest: 2, Count: tiers, Compositional: true}
}

// Groups is the decomposition of a magnitude.
type Groups struct {
	// Chunks are tier values, least significant first. High zero tiers are omitted.
	Chunks []int
	// Carry is the multiplier of the open top tier, nil when unused.
	Carry *big.Int
	// CarryTier is the tier Carry multiplies.
	CarryTier int
}

// Decompose splits n into chunk values per scheme. A bounded scheme that
// cannot hold n returns ErrMagnitudeTooLarge.
func Decompose(n *big.Int, scheme GroupingScheme) (Groups, error) {
	if n.Sign() < 0 {
		panic("numwords: decompose negative magnitude")
	}
	tiers := scheme.Tiers()
	bounded := tiers
	if scheme.Open() {
		bounded = tiers - 1
	}

	var groups Groups
	rem := new(big.Int).Set(n)
	mod := new(big.Int)
	for tier := 0; tier < bounded && rem.Sign() > 0; tier++ {
		rem.QuoRem(rem, pow10(scheme.GroupSize(tier)), mod)
		groups.Chunks = append(groups.Chunks, int(mod.Int64()))
	}
	if rem.Sign() == 0 {
		return groups, nil
	}
	if !scheme.Open() {
		return Groups{}, fmt.Errorf("%w: %d digits exceed %d tiers", ErrMagnitudeTooLarge, digitCount(n), tiers)
	}
	groups.Carry = rem
	groups.CarryTier = bounded
	return groups, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func digitCount(n *big.Int) int {
	return len(n.String())
}

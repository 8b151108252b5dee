package numwords

import (
	"fmt"
	"math/big"
)

type segment struct {
	text  string
	tier  int
	value *big.Int
}

// integer spells n. ctx applies to the units chunk; higher chunks agree
// with their scale word.
func (s speller) integer(n *big.Int, ctx GrammaticalContext) (string, error) {
	if n.Sign() == 0 {
		return s.rs.Zero, nil
	}
	groups, err := Decompose(n, s.rs.Grouping)
	if err != nil {
		return "", err
	}

	segs := make([]segment, 0, len(groups.Chunks)+1)
	if groups.Carry != nil {
		multiplier, err := s.integer(groups.Carry, s.scaleContext(groups.CarryTier))
		if err != nil {
			return "", err
		}
		text, err := s.composeScale(multiplier, groups.Carry, groups.CarryTier)
		if err != nil {
			return "", err
		}
		segs = append(segs, segment{text: text, tier: groups.CarryTier, value: groups.Carry})
	}

	for tier := len(groups.Chunks) - 1; tier >= 0; tier-- {
		v := groups.Chunks[tier]
		if v == 0 {
			continue
		}
		chunkCtx := ctx
		if tier > 0 {
			chunkCtx = s.scaleContext(tier)
		}
		chunk := s.renderChunk(v, tier, chunkCtx, len(segs) > 0)
		value := big.NewInt(int64(v))
		text := chunk.Text
		if tier > 0 {
			if text, err = s.composeScale(text, value, tier); err != nil {
				return "", err
			}
		}
		segs = append(segs, segment{text: text, tier: tier, value: value})
	}
	return s.joinSegments(segs), nil
}

func (s speller) scaleContext(tier int) GrammaticalContext {
	var gender Gender
	if tier < len(s.rs.Scales) {
		gender = s.rs.Scales[tier].Gender
	}
	return NounContext(NounScale, gender)
}

// composeScale attaches the scale word of tier to a rendered multiplier n.
func (s speller) composeScale(multiplier string, n *big.Int, tier int) (string, error) {
	if tier <= 0 || tier >= len(s.rs.Scales) {
		return "", fmt.Errorf("%w: no scale word for tier %d", ErrMagnitudeTooLarge, tier)
	}
	st := s.rs.Scales[tier]
	if n.IsInt64() {
		if phrase, ok := st.Overrides[int(n.Int64())]; ok {
			return phrase, nil
		}
	}
	word := st.Forms.Select(s.rs.plural().Category(n))
	return s.attach(multiplier, word, st.Join, SeamScale), nil
}

func (s speller) joinSegments(segs []segment) string {
	if len(segs) == 0 {
		return ""
	}
	out := segs[0].text
	for i := 1; i < len(segs); i++ {
		sep := s.rs.Scales[segs[i-1].tier].Next
		if c := s.rs.Conjunction; c != nil && i == len(segs)-1 && segs[i].tier == 0 &&
			segs[i].value.Cmp(big.NewInt(int64(c.Below))) < 0 {
			sep = c.Word
		}
		out = s.join(out, sep, segs[i].text, SeamChunk)
	}
	return out
}

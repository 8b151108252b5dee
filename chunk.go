package numwords

import "fmt"

// speller renders numbers under one rule set.
type speller struct {
	rs *RuleSet
}

var chunkLimits = [...]int{1, 10, 100, 1000, 10000}

// atom returns the single word for n (0..99) when the locale has one.
func (s speller) atom(n int, ctx GrammaticalContext) (string, bool) {
	w := &s.rs.Words
	switch ctx.State {
	case Construct:
		if word, ok := w.Construct[n]; ok {
			return word, true
		}
	case Standalone:
	default:
		panic(fmt.Sprintf("numwords: unknown state %d", int(ctx.State)))
	}
	switch ctx.Gender {
	case Masculine, Feminine, Neuter:
		if word, ok := w.Gendered[ctx.Gender][n]; ok {
			return word, true
		}
	case GenderNone:
	default:
		panic(fmt.Sprintf("numwords: unknown gender %d", int(ctx.Gender)))
	}
	if n < 10 {
		return w.Units[n], true
	}
	word, ok := w.Atoms[n]
	return word, ok
}

// join concatenates two words, letting the elision rule fuse them when
// there is no separator.
func (s speller) join(left, sep, right string, seam Seam) string {
	switch {
	case left == "":
		return right
	case right == "":
		return left
	case sep == "" && s.rs.Elision != nil:
		return s.rs.Elision.Elide(left, right, seam)
	}
	return left + sep + right
}

// attach binds a multiplier to the noun it counts.
func (s speller) attach(multiplier, noun, sep string, seam Seam) string {
	if s.rs.Linker != nil && multiplier != "" && noun != "" {
		return s.rs.Linker.Link(multiplier, noun)
	}
	return s.join(multiplier, sep, noun, seam)
}

func (s speller) belowHundred(r int, ctx GrammaticalContext) string {
	if r == 0 {
		return ""
	}
	if word, ok := s.atom(r, ctx); ok {
		return word
	}
	w := &s.rs.Words
	tens, unit := w.Tens[r/10], r%10
	if unit == 0 {
		return tens
	}
	unitWord, ok := w.AfterTens[unit]
	if !ok {
		unitWord, _ = s.atom(unit, ctx)
	}
	return s.join(tens, w.TensJoin, unitWord, SeamTens)
}

func (s speller) hundreds(h int) string {
	w := &s.rs.Words
	if word, ok := w.Hundreds[h]; ok {
		return word
	}
	if h == 1 && w.OmitOneHundred {
		return w.Hundred
	}
	unit, _ := s.atom(h, GrammaticalContext{})
	return s.attach(unit, w.Hundred, w.HundredJoin, SeamScale)
}

func (s speller) thousands(th int) string {
	w := &s.rs.Words
	if th == 1 && w.OmitOneThousand {
		return w.Thousand
	}
	unit, _ := s.atom(th, GrammaticalContext{})
	return s.attach(unit, w.Thousand, w.ThousandJoin, SeamScale)
}

// renderChunk spells one group value. Zero renders as an empty chunk.
// bridged marks a chunk that follows a higher, non-empty one.
func (s speller) renderChunk(v, tier int, ctx GrammaticalContext, bridged bool) RenderedChunk {
	size := s.rs.Grouping.GroupSize(tier)
	if size < 1 || size >= len(chunkLimits) || v < 0 || v >= chunkLimits[size] {
		panic(fmt.Sprintf("numwords: chunk %d out of range for tier %d", v, tier))
	}
	if v == 0 {
		return RenderedChunk{Tier: tier}
	}

	w := &s.rs.Words
	th, h, r := v/1000, v/100%10, v%100

	var text string
	if th > 0 {
		text = s.thousands(th)
	}
	switch {
	case h > 0:
		text = s.join(text, w.Join, s.hundreds(h), SeamHundreds)
	case bridged && th == 0 && s.rs.Bridge != nil && v < s.rs.Bridge.Below:
		text = s.rs.Bridge.Phrase
	}
	if r > 0 {
		sep := w.Join
		if text != "" && r < 10 && w.Bridge != "" {
			sep = w.Bridge
		}
		text = s.join(text, sep, s.belowHundred(r, ctx), SeamHundreds)
	}
	return RenderedChunk{Text: text, Tier: tier, Value: v}
}

// digit spells a single fraction digit.
func (s speller) digit(d int) RenderedChunk {
	word := s.rs.Words.Digits[d]
	if word == "" {
		word = s.rs.Words.Units[d]
	}
	return RenderedChunk{Text: word, Value: d, ExplicitZero: d == 0}
}

package numwords

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// ElisionFunc adapts a function to ElisionRule.
type ElisionFunc func(left, right string, seam Seam) string

func (f ElisionFunc) Elide(left, right string, seam Seam) string {
	return f(left, right, seam)
}

// LinkerFunc adapts a function to LinkerSelector.
type LinkerFunc func(multiplier, noun string) string

func (f LinkerFunc) Link(multiplier, noun string) string {
	return f(multiplier, noun)
}

// YearStyleFunc adapts a function to YearStyle.
type YearStyleFunc func(year *big.Int) (high, low int, ok bool)

func (f YearStyleFunc) Split(year *big.Int) (int, int, bool) {
	return f(year)
}

// ItalianElision drops the final vowel of a tens or hundreds word before a
// vowel (ventuno, centottanta), keeps "o" before "u" (centouno) and accents
// a closing "tre" (ventitré, milletré) except before a scale word.
var ItalianElision ElisionRule = ElisionFunc(func(left, right string, seam Seam) string {
	switch seam {
	case SeamScale:
		if strings.HasSuffix(left, "tré") {
			left = strings.TrimSuffix(left, "tré") + "tre"
		}
		return left + right
	case SeamTens, SeamHundreds, SeamChunk:
	default:
		panic(fmt.Sprintf("numwords: unknown seam %d", int(seam)))
	}

	if right == "tre" {
		right = "tré"
	}
	if seam == SeamChunk {
		return left + right
	}
	last, size := utf8.DecodeLastRuneInString(left)
	first, _ := utf8.DecodeRuneInString(right)
	if isVowel(last) && isVowel(first) && !(last == 'o' && first == 'u') {
		left = left[:len(left)-size]
	}
	return left + right
})

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouàèéìòù", r)
}

// TagalogLinker ties a multiplier to its noun with -ng after a vowel, -g
// after n and "na" otherwise, where "daan" softens to "raan".
var TagalogLinker LinkerSelector = LinkerFunc(func(multiplier, noun string) string {
	last, _ := utf8.DecodeLastRuneInString(multiplier)
	switch {
	case isVowel(last):
		return multiplier + "ng " + noun
	case last == 'n':
		return multiplier + "g " + noun
	}
	if noun == "daan" {
		noun = "raan"
	}
	return multiplier + " na " + noun
})

// EnglishYears reads years 1000..9999 as two halves, except where the
// hundreds half ends in zero and the low half is below ten (2005, 1000).
var EnglishYears YearStyle = YearStyleFunc(func(year *big.Int) (int, int, bool) {
	if !year.IsInt64() {
		return 0, 0, false
	}
	v := year.Int64()
	high, low := int(v/100), int(v%100)
	if v < 1000 || v > 9999 || (high%10 == 0 && low < 10) {
		return 0, 0, false
	}
	return high, low, true
})

var elisionRules = map[string]ElisionRule{
	"italian": ItalianElision,
}

var linkers = map[string]LinkerSelector{
	"tagalog": TagalogLinker,
}

var yearStyles = map[string]YearStyle{
	"english": EnglishYears,
}

var pluralClassifiers = map[string]PluralClassifier{
	"none":      NoPlural,
	"one_other": OneOther,
}

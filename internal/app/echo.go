package app

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// floatDigits is the number of significant digits a float64 carries exactly.
const floatDigits = 15

// maxEchoExponent bounds the digits written for exponent input.
const maxEchoExponent = 4096

// Digits renders input with the digit grouping and separators of locale,
// for display next to the spelled form. Unparseable input is returned as is.
func Digits(locale, input string) string {
	trimmed := strings.TrimSpace(input)
	if strings.Count(trimmed, ",") == 1 && !strings.Contains(trimmed, ".") {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return input
	}
	if exp := d.Exponent(); exp > maxEchoExponent || exp < -maxEchoExponent {
		return input
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	if d.IsInteger() && d.BigInt().IsInt64() {
		return p.Sprintf("%v", number.Decimal(d.IntPart()))
	}
	scale := 0
	if exp := d.Exponent(); exp < 0 {
		scale = int(-exp)
	}
	if d.IsInteger() || len(new(big.Int).Abs(d.Coefficient()).String()) > floatDigits {
		return groupExact(p, d, scale)
	}
	return p.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MinFractionDigits(scale), number.MaxFractionDigits(scale)))
}

// groupExact writes d in threes with the printer's separators, without
// passing through a float.
func groupExact(p *message.Printer, d decimal.Decimal, scale int) string {
	group, point := separators(p)
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(int32(scale)), ".")

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteByte(whole[i])
	}
	if frac != "" {
		b.WriteString(point)
		b.WriteString(frac)
	}
	return b.String()
}

// separators reads the group and decimal separators from a sample rendering.
func separators(p *message.Printer) (group, point string) {
	sample := p.Sprintf("%v", number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var runs []string
	var cur strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return ",", "."
	case 1:
		return "", runs[0]
	}
	return runs[0], runs[len(runs)-1]
}

package numwords

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/currency"
)

// minorDigits is the number of fraction digits the sub unit absorbs.
// Currencies without a sub unit name have none.
func minorDigits(code string, cur Currency) (int, error) {
	if cur.Sub == nil {
		return 0, nil
	}
	if cur.Digits > 0 {
		return cur.Digits, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUnknownCurrency, code, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, nil
}

// splitSubunit reads the first digits of fraction as the sub unit amount.
// Rounding half up may overflow the sub base, reported as carry.
func splitSubunit(fraction string, digits int, round bool) (sub *big.Int, carry bool) {
	padded := fraction
	if len(padded) < digits {
		padded += strings.Repeat("0", digits-len(padded))
	}
	sub = new(big.Int)
	if digits > 0 {
		sub.SetString(padded[:digits], 10)
	}
	if round && len(padded) > digits && padded[digits] >= '5' {
		sub.Add(sub, big.NewInt(1))
		if sub.Cmp(pow10(digits)) == 0 {
			return new(big.Int), true
		}
	}
	return sub, false
}

func (s speller) currency(v Value, o Options) (string, error) {
	code := o.Currency
	if code == "" {
		code = s.rs.DefaultCurrency
	}
	cur, ok := s.rs.Currencies[code]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrUnknownCurrency, code, s.rs.Code)
	}
	digits, err := minorDigits(code, cur)
	if err != nil {
		return "", err
	}

	main := v.Magnitude()
	sub, carry := splitSubunit(v.Fraction(), digits, o.RoundSubunit)
	if carry {
		main.Add(main, big.NewInt(1))
	}

	if main.Sign() == 0 && sub.Sign() == 0 {
		name := cur.Main.Forms.Select(s.rs.plural().Category(main))
		return s.rs.Zero + s.rs.Space + name, nil
	}

	var parts []string
	if main.Sign() > 0 {
		text, err := s.unitPhrase(main, cur.Main, NounCurrencyMain)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	if sub.Sign() > 0 {
		text, err := s.unitPhrase(sub, *cur.Sub, NounCurrencySub)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}

	sep := o.CurrencySeparator
	if sep == "" {
		sep = s.rs.CurrencySeparator
	}
	if sep == "" {
		sep = s.rs.Space
	}
	return s.signed(v, strings.Join(parts, sep), o), nil
}

func (s speller) unitPhrase(n *big.Int, unit CurrencyUnit, noun NounClass) (string, error) {
	words, err := s.integer(n, NounContext(noun, unit.Gender))
	if err != nil {
		return "", err
	}
	name := unit.Forms.Select(s.rs.plural().Category(n))
	if tier := s.endingTier(n); tier > 0 && tier < len(s.rs.Scales) && s.rs.Scales[tier].NounLink != "" {
		name = s.rs.Scales[tier].NounLink + s.rs.Space + name
	}
	return s.attach(words, name, s.rs.Space, SeamScale), nil
}

// endingTier is the tier of the least significant non-zero group of n.
func (s speller) endingTier(n *big.Int) int {
	groups, err := Decompose(n, s.rs.Grouping)
	if err != nil {
		return 0
	}
	for tier, v := range groups.Chunks {
		if v != 0 {
			return tier
		}
	}
	if groups.Carry != nil {
		return groups.CarryTier
	}
	return 0
}

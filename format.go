package numwords

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Mode int

const (
	ModeStandard Mode = iota
	ModeCurrency
	ModeYear
)

// Options are the per-call settings of a conversion.
type Options struct {
	Mode              Mode
	Currency          string
	Decimal           DecimalStyle
	Era               bool
	RoundSubunit      bool
	NegativePrefix    string
	Fallback          string
	CurrencySeparator string
}

type FormatOption func(*Options)

// AsCurrency spells the value as an amount of code. An empty code selects
// the locale's default currency.
func AsCurrency(code string) FormatOption {
	return func(o *Options) {
		o.Mode = ModeCurrency
		o.Currency = strings.ToUpper(strings.TrimSpace(code))
	}
}

// AsYear reads the value as a calendar year.
func AsYear() FormatOption {
	return func(o *Options) { o.Mode = ModeYear }
}

func WithDecimalStyle(style DecimalStyle) FormatOption {
	return func(o *Options) { o.Decimal = style }
}

// WithEra adds the after-era marker to positive years.
func WithEra() FormatOption {
	return func(o *Options) { o.Era = true }
}

// WithRoundedSubunit rounds the sub unit half up instead of truncating.
func WithRoundedSubunit() FormatOption {
	return func(o *Options) { o.RoundSubunit = true }
}

func WithNegativePrefix(token string) FormatOption {
	return func(o *Options) { o.NegativePrefix = token }
}

// FallbackOnError sets the string returned alongside an error.
func FallbackOnError(text string) FormatOption {
	return func(o *Options) { o.Fallback = text }
}

func WithCurrencySeparator(sep string) FormatOption {
	return func(o *Options) { o.CurrencySeparator = sep }
}

func buildOptions(opts []FormatOption) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Spell converts v to words under rs. On error it returns the fallback
// text and never a partial result.
func Spell(rs *RuleSet, v Value, opts ...FormatOption) (string, error) {
	o := buildOptions(opts)
	if rs == nil {
		return o.Fallback, fmt.Errorf("%w: nil rule set", ErrUnknownLocale)
	}
	text, err := speller{rs: rs}.spell(v, o)
	if err != nil {
		return o.Fallback, err
	}
	return norm.NFC.String(text), nil
}

func (s speller) spell(v Value, o Options) (string, error) {
	switch v.Kind() {
	case NotANumber:
		if s.rs.NaN == "" {
			return "", fmt.Errorf("%w: NaN", ErrInvalidInput)
		}
		return s.rs.NaN, nil
	case Infinite:
		if s.rs.Infinity == "" {
			return "", fmt.Errorf("%w: infinity", ErrInvalidInput)
		}
		return s.signed(v, s.rs.Infinity, o), nil
	case Finite:
	default:
		return "", fmt.Errorf("%w: unknown kind %d", ErrInvalidInput, int(v.Kind()))
	}

	switch o.Mode {
	case ModeYear:
		return s.year(v, o)
	case ModeCurrency:
		return s.currency(v, o)
	case ModeStandard:
		return s.standard(v, o)
	default:
		return "", fmt.Errorf("%w: unknown mode %d", ErrInvalidInput, int(o.Mode))
	}
}

func (s speller) standard(v Value, o Options) (string, error) {
	fraction := strings.TrimRight(v.Fraction(), "0")
	if v.mag().Sign() == 0 && fraction == "" {
		return s.rs.Zero, nil
	}

	text, err := s.integer(v.mag(), GrammaticalContext{})
	if err != nil {
		return "", err
	}
	if fraction != "" {
		digits := make([]string, 0, len(fraction))
		for _, r := range fraction {
			digits = append(digits, s.digit(int(r-'0')).Text)
		}
		text = strings.Join([]string{text, s.decimalWord(o), strings.Join(digits, s.rs.DigitJoin)}, s.rs.Space)
	}
	return s.signed(v, text, o), nil
}

func (s speller) decimalWord(o Options) string {
	style := o.Decimal
	if style == DecimalDefault {
		style = s.rs.Decimal
	}
	switch style {
	case DecimalComma:
		if s.rs.CommaWord != "" {
			return s.rs.CommaWord
		}
	case DecimalPoint, DecimalDefault:
	}
	return s.rs.PointWord
}

func (s speller) signed(v Value, text string, o Options) string {
	if v.Sign() != Negative {
		return text
	}
	prefix := o.NegativePrefix
	if prefix == "" {
		prefix = s.rs.Negative
	}
	if prefix == "" {
		return text
	}
	return prefix + s.rs.Space + text
}

func (s speller) year(v Value, o Options) (string, error) {
	y := &s.rs.Year
	n := v.mag()
	if n.Sign() == 0 {
		if y.Zero != "" {
			return y.Zero, nil
		}
		return s.rs.Zero, nil
	}

	text, err := s.yearWords(n)
	if err != nil {
		return "", err
	}

	pattern, era := y.Plain, false
	switch {
	case v.Sign() == Negative:
		pattern, era = y.Before, true
	case o.Era && y.After != "":
		pattern, era = y.After, true
	}
	if era {
		text += y.Linker
	}
	if pattern == "" {
		return text, nil
	}
	return strings.ReplaceAll(pattern, "{year}", text), nil
}

func (s speller) yearWords(n *big.Int) (string, error) {
	y := &s.rs.Year
	if y.Style == nil {
		return s.integer(n, GrammaticalContext{})
	}
	high, low, ok := y.Style.Split(n)
	if !ok {
		return s.integer(n, GrammaticalContext{})
	}
	highText, err := s.integer(big.NewInt(int64(high)), GrammaticalContext{})
	if err != nil {
		return "", err
	}
	var lowText string
	switch {
	case low == 0:
		lowText = y.Hundred
	case low < 10:
		unit, _ := s.atom(low, GrammaticalContext{})
		lowText = y.Oh + unit
	default:
		lowText = s.belowHundred(low, GrammaticalContext{})
	}
	if lowText == "" {
		return highText, nil
	}
	return highText + s.rs.Space + lowText, nil
}

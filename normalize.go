package numwords

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

type Sign int

const (
	Positive Sign = iota
	Negative
)

// Kind separates finite values from the NaN and infinity markers.
type Kind int

const (
	Finite Kind = iota
	NotANumber
	Infinite
)

// Value is a normalized number: a sign, an unsigned integer magnitude and
// the fractional digits exactly as written. It is immutable.
type Value struct {
	sign      Sign
	kind      Kind
	magnitude *big.Int
	fraction  string
}

var (
	NaN         = Value{kind: NotANumber}
	PosInfinity = Value{kind: Infinite}
	NegInfinity = Value{kind: Infinite, sign: Negative}
)

func (v Value) Sign() Sign { return v.sign }
func (v Value) Kind() Kind { return v.kind }

// Magnitude returns a copy of the integer part without sign.
func (v Value) Magnitude() *big.Int {
	return new(big.Int).Set(v.mag())
}

var bigZero = new(big.Int)

func (v Value) mag() *big.Int {
	if v.magnitude == nil {
		return bigZero
	}
	return v.magnitude
}

// Fraction returns the fractional digits, trailing zeros included.
func (v Value) Fraction() string { return v.fraction }

// Scale is the number of fractional digits.
func (v Value) Scale() int { return len(v.fraction) }

// IsZero reports a finite value whose integer part and fraction digits are all zero.
func (v Value) IsZero() bool {
	return v.kind == Finite && v.mag().Sign() == 0 && strings.Trim(v.fraction, "0") == ""
}

func (v Value) String() string {
	switch v.kind {
	case NotANumber:
		return "NaN"
	case Infinite:
		if v.sign == Negative {
			return "-Inf"
		}
		return "+Inf"
	}
	var b strings.Builder
	if v.sign == Negative {
		b.WriteByte('-')
	}
	b.WriteString(v.mag().String())
	if v.fraction != "" {
		b.WriteByte('.')
		b.WriteString(v.fraction)
	}
	return b.String()
}

func newValue(negative bool, magnitude *big.Int, fraction string) Value {
	v := Value{magnitude: magnitude, fraction: fraction}
	if negative && (magnitude.Sign() != 0 || strings.Trim(fraction, "0") != "") {
		v.sign = Negative
	}
	return v
}

func FromInt64(n int64) Value {
	m := big.NewInt(n)
	return newValue(n < 0, m.Abs(m), "")
}

func FromUint64(n uint64) Value {
	return newValue(false, new(big.Int).SetUint64(n), "")
}

// FromBigInt copies n.
func FromBigInt(n *big.Int) Value {
	if n == nil {
		return FromInt64(0)
	}
	return newValue(n.Sign() < 0, new(big.Int).Abs(n), "")
}

// FromFloat64 uses the shortest decimal representation that round-trips f.
func FromFloat64(f float64) Value {
	switch {
	case math.IsNaN(f):
		return NaN
	case math.IsInf(f, 1):
		return PosInfinity
	case math.IsInf(f, -1):
		return NegInfinity
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

// FromDecimal keeps the exponent of d, so "1.50" retains its trailing zero.
func FromDecimal(d decimal.Decimal) Value {
	coef := new(big.Int).Abs(d.Coefficient())
	exp := int(d.Exponent())
	if exp >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		return newValue(d.Sign() < 0, coef.Mul(coef, scale), "")
	}

	digits := coef.String()
	scale := -exp
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	intPart, fraction := digits[:len(digits)-scale], digits[len(digits)-scale:]
	magnitude, _ := new(big.Int).SetString(intPart, 10)
	return newValue(d.Sign() < 0, magnitude, fraction)
}

// Parse reads a decimal string. A single comma is accepted as the decimal
// separator; NaN and Inf markers are recognised case-insensitively.
func Parse(s string) (Value, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "nan":
		return NaN, nil
	case "inf", "+inf", "infinity", "+infinity":
		return PosInfinity, nil
	case "-inf", "-infinity":
		return NegInfinity, nil
	}
	if strings.Count(trimmed, ",") == 1 && !strings.Contains(trimmed, ".") {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}
	if trimmed == "" {
		return Value{}, fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrInvalidInput, s, err)
	}
	if err := checkExponent(d); err != nil {
		return Value{}, err
	}
	return FromDecimal(d), nil
}

// maxExponent bounds the digits an exponent may expand to.
const maxExponent = 4096

func checkExponent(d decimal.Decimal) error {
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidInput, exp)
	}
	return nil
}

// Normalize converts the supported Go numeric types, decimal.Decimal,
// *big.Int and strings into a Value.
func Normalize(input any) (Value, error) {
	switch v := input.(type) {
	case Value:
		if v.kind == Finite && v.magnitude == nil {
			return FromInt64(0), nil
		}
		return v, nil
	case int:
		return FromInt64(int64(v)), nil
	case int8:
		return FromInt64(int64(v)), nil
	case int16:
		return FromInt64(int64(v)), nil
	case int32:
		return FromInt64(int64(v)), nil
	case int64:
		return FromInt64(v), nil
	case uint:
		return FromUint64(uint64(v)), nil
	case uint8:
		return FromUint64(uint64(v)), nil
	case uint16:
		return FromUint64(uint64(v)), nil
	case uint32:
		return FromUint64(uint64(v)), nil
	case uint64:
		return FromUint64(v), nil
	case float32:
		return FromFloat64(float64(v)), nil
	case float64:
		return FromFloat64(v), nil
	case *big.Int:
		if v == nil {
			return Value{}, fmt.Errorf("%w: nil *big.Int", ErrInvalidInput)
		}
		return FromBigInt(v), nil
	case decimal.Decimal:
		if err := checkExponent(v); err != nil {
			return Value{}, err
		}
		return FromDecimal(v), nil
	case string:
		return Parse(v)
	case fmt.Stringer:
		return Parse(v.String())
	case nil:
		return Value{}, fmt.Errorf("%w: nil", ErrInvalidInput)
	default:
		return Value{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, input)
	}
}

package numwords

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		sign     Sign
		kind     Kind
		integer  string
		fraction string
	}{
		{input: "0", integer: "0"},
		{input: "42", integer: "42"},
		{input: " -17 ", sign: Negative, integer: "17"},
		{input: "+3", integer: "3"},
		{input: "1.50", integer: "1", fraction: "50"},
		{input: "0.007", integer: "0", fraction: "007"},
		{input: "-0.5", sign: Negative, integer: "0", fraction: "5"},
		{input: "3,25", integer: "3", fraction: "25"},
		{input: "1e3", integer: "1000"},
		{input: "123456789012345678901234567890", integer: "123456789012345678901234567890"},
		{input: "-0", integer: "0"},
		{input: "-0.000", integer: "0", fraction: "000"},
		{input: "NaN", kind: NotANumber},
		{input: "inf", kind: Infinite},
		{input: "-Infinity", sign: Negative, kind: Infinite},
	}

	for _, tt := range tests {
		v, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if v.Sign() != tt.sign || v.Kind() != tt.kind {
			t.Errorf("Parse(%q) sign/kind = %v/%v", tt.input, v.Sign(), v.Kind())
		}
		if tt.kind != Finite {
			continue
		}
		if v.Magnitude().String() != tt.integer || v.Fraction() != tt.fraction {
			t.Errorf("Parse(%q) = %s . %q", tt.input, v.Magnitude(), v.Fraction())
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "abc", "1.2.3", "1,2,3", "12a", "--1"} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestNormalizeTypes(t *testing.T) {
	huge, _ := new(big.Int).SetString("-98765432109876543210", 10)
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "int", input: int(-12), want: "-12"},
		{name: "int8", input: int8(-128), want: "-128"},
		{name: "int16", input: int16(300), want: "300"},
		{name: "int32", input: int32(70000), want: "70000"},
		{name: "int64 min", input: int64(math.MinInt64), want: "-9223372036854775808"},
		{name: "uint", input: uint(7), want: "7"},
		{name: "uint8", input: uint8(255), want: "255"},
		{name: "uint16", input: uint16(65535), want: "65535"},
		{name: "uint32", input: uint32(1), want: "1"},
		{name: "uint64 max", input: uint64(math.MaxUint64), want: "18446744073709551615"},
		{name: "float32", input: float32(0.5), want: "0.5"},
		{name: "float64", input: 2.75, want: "2.75"},
		{name: "float64 negative zero", input: math.Copysign(0, -1), want: "0"},
		{name: "big", input: huge, want: "-98765432109876543210"},
		{name: "decimal", input: decimal.RequireFromString("-12.340"), want: "-12.340"},
		{name: "string", input: "8.08", want: "8.08"},
		{name: "value", input: FromInt64(5), want: "5"},
		{name: "zero value", input: Value{}, want: "0"},
		{name: "stringer", input: decimal.NewFromInt(9), want: "9"},
		{name: "nan float", input: math.NaN(), want: "NaN"},
		{name: "inf float", input: math.Inf(-1), want: "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if got := v.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	var nilBig *big.Int
	for _, input := range []any{nil, nilBig, struct{}{}, []int{1}, true} {
		if _, err := Normalize(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Normalize(%T) error = %v", input, err)
		}
	}
}

func TestValueIsImmutable(t *testing.T) {
	n := big.NewInt(10)
	v := FromBigInt(n)
	n.SetInt64(99)
	m := v.Magnitude()
	m.SetInt64(7)
	if v.String() != "10" {
		t.Fatalf("value changed to %s", v)
	}
}

func TestValueIsZero(t *testing.T) {
	for input, want := range map[string]bool{"0": true, "0.00": true, "-0": true, "0.01": false, "1": false} {
		v, _ := Parse(input)
		if v.IsZero() != want {
			t.Errorf("IsZero(%s) = %v", input, !want)
		}
	}
	if NaN.IsZero() {
		t.Error("NaN reported as zero")
	}
	if (Value{}).Sign() != Positive || (Value{}).Scale() != 0 {
		t.Error("zero Value is not positive zero")
	}
}

package numwords

import (
	"errors"
	"math/big"
	"testing"
)

func TestComposeScaleForms(t *testing.T) {
	tests := []struct {
		locale     string
		multiplier string
		n          int64
		tier       int
		want       string
	}{
		{locale: "en", multiplier: "one", n: 1, tier: 1, want: "one thousand"},
		{locale: "en", multiplier: "two", n: 2, tier: 2, want: "two million"},
		{locale: "ru", multiplier: "одна", n: 1, tier: 1, want: "одна тысяча"},
		{locale: "ru", multiplier: "две", n: 2, tier: 1, want: "две тысячи"},
		{locale: "ru", multiplier: "пять", n: 5, tier: 1, want: "пять тысяч"},
		{locale: "ru", multiplier: "одиннадцать", n: 11, tier: 2, want: "одиннадцать миллионов"},
		{locale: "ru", multiplier: "двадцать один", n: 21, tier: 2, want: "двадцать один миллион"},
		{locale: "it", multiplier: "uno", n: 1, tier: 1, want: "mille"},
		{locale: "it", multiplier: "uno", n: 1, tier: 2, want: "un milione"},
		{locale: "it", multiplier: "due", n: 2, tier: 2, want: "due milioni"},
		{locale: "it", multiplier: "ventitré", n: 23, tier: 1, want: "ventitremila"},
		{locale: "az", multiplier: "bir", n: 1, tier: 1, want: "min"},
		{locale: "az", multiplier: "iki", n: 2, tier: 1, want: "iki min"},
		{locale: "tl", multiplier: "isa", n: 1, tier: 1, want: "isang libo"},
		{locale: "tl", multiplier: "apat", n: 4, tier: 1, want: "apat na libo"},
		{locale: "tl", multiplier: "siyam", n: 9, tier: 2, want: "siyam na milyon"},
		{locale: "ja", multiplier: "一", n: 1, tier: 1, want: "一万"},
	}

	for _, tt := range tests {
		rs, _ := Builtin(tt.locale)
		got, err := speller{rs: rs}.composeScale(tt.multiplier, big.NewInt(tt.n), tt.tier)
		if err != nil {
			t.Fatalf("%s composeScale: %v", tt.locale, err)
		}
		if got != tt.want {
			t.Errorf("%s %d×tier %d = %q, want %q", tt.locale, tt.n, tt.tier, got, tt.want)
		}
	}
}

func TestComposeScaleUndefinedTier(t *testing.T) {
	rs, _ := Builtin("en")
	_, err := speller{rs: rs}.composeScale("one", big.NewInt(1), len(rs.Scales))
	if !errors.Is(err, ErrMagnitudeTooLarge) {
		t.Fatalf("expected ErrMagnitudeTooLarge, got %v", err)
	}
}

func TestIntegerScales(t *testing.T) {
	tests := []struct {
		locale string
		n      string
		want   string
	}{
		{locale: "en", n: "1001", want: "one thousand one"},
		{locale: "en", n: "1000000", want: "one million"},
		{locale: "en", n: "2000300", want: "two million three hundred"},
		{locale: "en-GB", n: "1001", want: "one thousand and one"},
		{locale: "en-GB", n: "1100", want: "one thousand one hundred"},
		{locale: "en-GB", n: "2000042", want: "two million and forty-two"},
		{locale: "en-IN", n: "100000", want: "one lakh"},
		{locale: "en-IN", n: "12345678", want: "one crore twenty-three lakh forty-five thousand six hundred seventy-eight"},
		{locale: "en-IN", n: "1000000000000", want: "one lakh crore"},
		{locale: "ru", n: "1000", want: "одна тысяча"},
		{locale: "ru", n: "22000", want: "двадцать две тысячи"},
		{locale: "ru", n: "5000000", want: "пять миллионов"},
		{locale: "ru", n: "1001", want: "одна тысяча один"},
		{locale: "vi", n: "1001", want: "một nghìn không trăm linh một"},
		{locale: "vi", n: "1000000000", want: "một tỷ"},
		{locale: "vi", n: "1000000000000", want: "một nghìn tỷ"},
		{locale: "vi", n: "2000000000005", want: "hai nghìn tỷ không trăm linh năm"},
		{locale: "ja", n: "100000", want: "十万"},
		{locale: "ja", n: "123456789", want: "一億二千三百四十五万六千七百八十九"},
		{locale: "it", n: "1001", want: "milleuno"},
		{locale: "it", n: "2023", want: "duemilaventitré"},
		{locale: "it", n: "1000000", want: "un milione"},
		{locale: "az", n: "1000", want: "min"},
		{locale: "az", n: "2500", want: "iki min beş yüz"},
		{locale: "tl", n: "2000", want: "dalawang libo"},
	}

	for _, tt := range tests {
		rs, _ := Builtin(tt.locale)
		n, _ := new(big.Int).SetString(tt.n, 10)
		got, err := speller{rs: rs}.integer(n, GrammaticalContext{})
		if err != nil {
			t.Fatalf("%s %s: %v", tt.locale, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.locale, tt.n, got, tt.want)
		}
	}
}

func TestIntegerTooLarge(t *testing.T) {
	rs, _ := Builtin("en")
	_, err := speller{rs: rs}.integer(pow10(36), GrammaticalContext{})
	if !errors.Is(err, ErrMagnitudeTooLarge) {
		t.Fatalf("expected ErrMagnitudeTooLarge, got %v", err)
	}
}

package numwords

import (
	"errors"
	"math/big"
	"testing"
)

func TestPluralRulesRussian(t *testing.T) {
	set, err := PluralRules("ru")
	if err != nil {
		t.Fatalf("PluralRules: %v", err)
	}

	tests := map[int64]PluralCategory{
		0:   PluralMany,
		1:   PluralOne,
		2:   PluralFew,
		4:   PluralFew,
		5:   PluralMany,
		11:  PluralMany,
		12:  PluralMany,
		21:  PluralOne,
		22:  PluralFew,
		111: PluralMany,
		101: PluralOne,
		-3:  PluralFew,
	}
	for n, want := range tests {
		if got := set.Category(big.NewInt(n)); got != want {
			t.Errorf("Category(%d) = %s, want %s", n, got, want)
		}
	}

	huge, _ := new(big.Int).SetString("100000000000000000000001", 10)
	if got := set.Category(huge); got != PluralOne {
		t.Errorf("Category(huge) = %s", got)
	}

	want := []PluralCategory{PluralOne, PluralFew, PluralMany, PluralOther}
	got := set.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories = %v, want %v", got, want)
		}
	}
}

func TestPluralRulesParentFallback(t *testing.T) {
	set, err := PluralRules("en-AU")
	if err != nil {
		t.Fatalf("PluralRules(en-AU): %v", err)
	}
	if set.Locale != "en" {
		t.Fatalf("locale = %s", set.Locale)
	}
	if _, err := PluralRules("zz"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestFilipinoRules(t *testing.T) {
	set, err := PluralRules("fil")
	if err != nil {
		t.Fatalf("PluralRules: %v", err)
	}
	for n, want := range map[int64]PluralCategory{1: PluralOne, 3: PluralOne, 4: PluralOther, 5: PluralOne, 6: PluralOther, 9: PluralOther, 10: PluralOne} {
		if got := set.Category(big.NewInt(n)); got != want {
			t.Errorf("Category(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestPluralConditionOperators(t *testing.T) {
	n := big.NewInt(17)
	tests := []struct {
		cond PluralCondition
		want bool
	}{
		{cond: PluralCondition{Operand: "n", Operator: OperatorEquals, Values: []int64{17}}, want: true},
		{cond: PluralCondition{Operand: "n", Operator: OperatorNotEquals, Values: []int64{17}}, want: false},
		{cond: PluralCondition{Operand: "i", Mod: 10, Operator: OperatorIn, Ranges: []PluralRange{{Start: 5, End: 9}}}, want: true},
		{cond: PluralCondition{Operand: "i", Mod: 10, Operator: OperatorNotIn, Ranges: []PluralRange{{Start: 5, End: 9}}}, want: false},
		{cond: PluralCondition{Operand: "i", Operator: OperatorWithin, Ranges: []PluralRange{{Start: 10, End: 20}}}, want: true},
		{cond: PluralCondition{Operand: "i", Operator: OperatorNotWithin, Ranges: []PluralRange{{Start: 10, End: 20}}}, want: false},
		{cond: PluralCondition{Operand: "v", Operator: OperatorEquals, Values: []int64{0}}, want: true},
		{cond: PluralCondition{Operand: "q", Operator: OperatorEquals, Values: []int64{17}}, want: false},
		{cond: PluralCondition{Operand: "n", Operator: "bogus", Values: []int64{17}}, want: false},
	}
	for _, tt := range tests {
		if got := tt.cond.matches(n); got != tt.want {
			t.Errorf("%+v matches 17 = %v", tt.cond, got)
		}
	}
}

func TestPluralRuleWithoutGroupsOnlyMatchesOther(t *testing.T) {
	set := &PluralRuleSet{Rules: []PluralRule{
		{Category: PluralOne},
		{Category: PluralTwo, Groups: [][]PluralCondition{{{Operand: "n", Operator: OperatorEquals, Values: []int64{2}}}}},
		{Category: PluralOther},
	}}
	if got := set.Category(big.NewInt(1)); got != PluralOther {
		t.Fatalf("Category(1) = %s", got)
	}
	if got := set.Category(big.NewInt(2)); got != PluralTwo {
		t.Fatalf("Category(2) = %s", got)
	}
	var empty *PluralRuleSet
	if got := empty.Category(big.NewInt(1)); got != PluralOther {
		t.Fatalf("nil set Category = %s", got)
	}
}

func TestPluralFormsSelect(t *testing.T) {
	forms := Forms("dollar", "dollars")
	if forms.Select(PluralOne) != "dollar" || forms.Select(PluralFew) != "dollars" {
		t.Fatalf("Select = %q/%q", forms.Select(PluralOne), forms.Select(PluralFew))
	}
	if Invariant("yen").Select(PluralOne) != "yen" {
		t.Fatal("invariant form changed")
	}
	if OneOther.Category(big.NewInt(1)) != PluralOne || OneOther.Category(big.NewInt(0)) != PluralOther {
		t.Fatal("OneOther misclassified")
	}
	if NoPlural.Category(big.NewInt(1)) != PluralOther {
		t.Fatal("NoPlural inflected")
	}
}

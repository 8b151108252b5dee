package numwords

import (
	"errors"
	"path/filepath"
	"testing"
)

func builtinBase(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func loadOne(t *testing.T, code string, loader *FileLoader) *RuleSet {
	t.Helper()
	sets, err := loader.Load(builtinBase(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, rs := range sets {
		if rs.Code == code {
			return rs
		}
	}
	t.Fatalf("locale %s not loaded", code)
	return nil
}

func TestFileLoaderYAMLMyriad(t *testing.T) {
	rs := loadOne(t, "en-x-myriad", NewFileLoader(filepath.Join("testdata", "locales", "myriad.yaml")))

	if rs.Name != "English (myriad grouping)" {
		t.Fatalf("name = %q", rs.Name)
	}
	if rs.Grouping.GroupSize(0) != 4 || rs.Grouping.GroupSize(2) != 4 || rs.Grouping.Tiers() != 3 {
		t.Fatalf("grouping = %+v", rs.Grouping)
	}

	tests := []struct {
		input any
		opts  []FormatOption
		want  string
	}{
		{input: 100000, want: "ten myriad"},
		{input: 20000, want: "a pair of myriads"},
		{input: 12345, want: "one myriad two thousand three hundred forty-five"},
		{input: 100000000, want: "one myriad myriad"},
		{input: 300000000, want: "three myriad myriads"},
		{input: -44, opts: []FormatOption{AsYear()}, want: "forty-four year BC"},
		{input: 44, opts: []FormatOption{AsYear()}, want: "forty-four"},
		{input: 1984, opts: []FormatOption{AsYear()}, want: "one thousand nine hundred eighty-four"},
	}
	for _, tt := range tests {
		v, _ := Normalize(tt.input)
		got, err := Spell(rs, v, tt.opts...)
		if err != nil {
			t.Fatalf("Spell(%v): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Spell(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := Spell(rs, FromBigInt(pow10(12))); !errors.Is(err, ErrMagnitudeTooLarge) {
		t.Fatalf("expected ErrMagnitudeTooLarge, got %v", err)
	}
}

func TestFileLoaderJSONDual(t *testing.T) {
	rs := loadOne(t, "en-x-dual", NewFileLoader(filepath.Join("testdata", "locales", "dual.json")))

	tests := []struct {
		input any
		opts  []FormatOption
		want  string
	}{
		{input: 1000, want: "one thousand"},
		{input: 2000, want: "two thousand-pair"},
		{input: 5000, want: "five thousands"},
		{input: 2000005, want: "two millions, five"},
		{input: -3, want: "negative three"},
		{input: "1.5", opts: []FormatOption{AsCurrency("")}, want: "one token plus five hundred chips"},
		{input: "2", opts: []FormatOption{AsCurrency("xts")}, want: "two tokens"},
	}
	for _, tt := range tests {
		v, _ := Normalize(tt.input)
		got, err := Spell(rs, v, tt.opts...)
		if err != nil {
			t.Fatalf("Spell(%v): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Spell(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFileLoaderExtendsAndPluralFiles(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "locales", "chain.yaml")).
		WithPluralRuleFiles(filepath.Join("testdata", "plural", "dual.json"))
	rs := loadOne(t, "en-x-child", loader)

	if rs.Zero != "nought" {
		t.Fatalf("zero = %q, want inherited nought", rs.Zero)
	}
	if rs.Negative != "less" {
		t.Fatalf("negative = %q", rs.Negative)
	}
	set, ok := rs.Plural.(*PluralRuleSet)
	if !ok || set.Locale != "dual" {
		t.Fatalf("plural = %#v", rs.Plural)
	}
	base, _ := Builtin("en")
	if base.Zero != "zero" {
		t.Fatal("loading modified the builtin rule set")
	}
}

func TestFileLoaderErrors(t *testing.T) {
	dir := filepath.Join("testdata", "locales")
	tests := []struct {
		name   string
		loader *FileLoader
		target error
	}{
		{name: "cycle", loader: NewFileLoader(filepath.Join(dir, "cycle.yaml")), target: ErrInvalidRuleSet},
		{name: "unknown strategy", loader: NewFileLoader(filepath.Join(dir, "bad_strategy.yaml")), target: ErrInvalidRuleSet},
		{name: "incomplete", loader: NewFileLoader(filepath.Join(dir, "incomplete.yaml")), target: ErrInvalidRuleSet},
		{name: "plural without rule file", loader: NewFileLoader(filepath.Join(dir, "chain.yaml")), target: ErrUnknownLocale},
		{name: "unsupported extension", loader: NewFileLoader(filepath.Join(dir, "notes.txt"))},
		{name: "missing file", loader: NewFileLoader(filepath.Join(dir, "absent.yaml"))},
		{name: "no paths", loader: NewFileLoader()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.loader.Load(builtinBase(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Fatalf("error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestFileLoaderWithoutBase(t *testing.T) {
	_, err := NewFileLoader(filepath.Join("testdata", "locales", "myriad.yaml")).Load(nil)
	if !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestDecodePluralRulesDirectForm(t *testing.T) {
	data := []byte(`{"xx": {"name": "Test", "cardinal": {"one": [[{"operand": "n", "operator": "=", "values": [1]}]]}}}`)
	sets, err := decodePluralRules("inline.json", data)
	if err != nil {
		t.Fatalf("decodePluralRules: %v", err)
	}
	set := sets["xx"]
	if set == nil || len(set.Rules) != 2 || set.Rules[1].Category != PluralOther {
		t.Fatalf("rules = %+v", set)
	}

	bad := []byte(`{"locales": {"xx": {"cardinal": {"few": []}}}}`)
	if _, err := decodePluralRules("bad.json", bad); err == nil {
		t.Fatal("expected error for category without conditions")
	}
}

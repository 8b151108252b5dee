package numwords

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name     string `json:"name"`
	Locale   string `json:"locale"`
	Input    string `json:"input"`
	Mode     string `json:"mode,omitempty"`
	Currency string `json:"currency,omitempty"`
	Want     string `json:"want"`
}

const goldenPath = "testdata/golden/numwords.json"

func (tc goldenCase) options() []FormatOption {
	switch tc.Mode {
	case "currency":
		return []FormatOption{AsCurrency(tc.Currency)}
	case "year":
		return []FormatOption{AsYear()}
	case "era":
		return []FormatOption{AsYear(), WithEra()}
	default:
		return nil
	}
}

func (tc goldenCase) spell() (string, error) {
	rs, ok := Builtin(tc.Locale)
	if !ok {
		return "", ErrUnknownLocale
	}
	v, err := Parse(tc.Input)
	if err != nil {
		return "", err
	}
	return Spell(rs, v, tc.options()...)
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.spell()
			if err != nil {
				t.Fatalf("spell %s %q: %v", tc.Locale, tc.Input, err)
			}
			if got != tc.Want {
				t.Errorf("%s %q = %q, want %q", tc.Locale, tc.Input, got, tc.Want)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		got, err := cases[i].spell()
		if err != nil {
			t.Fatalf("spell %s: %v", cases[i].Name, err)
		}
		cases[i].Want = got
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff testdata/golden/numwords.json")
}

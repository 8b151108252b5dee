package numwords

import (
	"sort"
	"sync"
)

var builtinRuleSets = sync.OnceValue(func() map[string]*RuleSet {
	sets := make(map[string]*RuleSet)
	for _, build := range []func() *RuleSet{
		english,
		britishEnglish,
		indianEnglish,
		russian,
		vietnamese,
		japanese,
		italian,
		tagalog,
		azerbaijani,
	} {
		rs := build()
		if err := rs.Validate(); err != nil {
			panic(err)
		}
		sets[rs.Code] = rs
	}
	return sets
})

// Builtin returns the bundled rule set for an exact locale code.
func Builtin(code string) (*RuleSet, bool) {
	rs, ok := builtinRuleSets()[normalizeLocale(code)]
	return rs, ok
}

// BuiltinLocales lists the codes of the bundled rule sets.
func BuiltinLocales() []string {
	sets := builtinRuleSets()
	codes := make([]string, 0, len(sets))
	for code := range sets {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

package numwords

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// BaseLookup resolves the rule set a loaded locale extends.
type BaseLookup interface {
	Lookup(locale string) (*RuleSet, error)
}

// FileLoader reads rule set documents from YAML or JSON files.
type FileLoader struct {
	paths     []string
	rulePaths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// WithPluralRuleFiles adds CLDR style cardinal rule files that locale
// documents can reference by code.
func (l *FileLoader) WithPluralRuleFiles(paths ...string) *FileLoader {
	if l == nil {
		return l
	}
	if len(paths) == 0 {
		return l
	}
	l.rulePaths = append(l.rulePaths, paths...)
	return l
}

// Load decodes every file and builds validated rule sets. Documents may
// extend each other or a rule set known to base.
func (l *FileLoader) Load(base BaseLookup) ([]*RuleSet, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("numwords: no loader paths configured")
	}

	docs := make(map[string]rawLocale)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numwords: read %s: %w", path, err)
		}
		src, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("numwords: decode %s: %w", path, err)
		}
		for code, doc := range src {
			docs[normalizeLocale(code)] = doc
		}
	}

	rules, err := l.loadPluralRules()
	if err != nil {
		return nil, err
	}

	b := &ruleSetBuilder{docs: docs, base: base, rules: rules, built: make(map[string]*RuleSet)}
	codes := make([]string, 0, len(docs))
	for code := range docs {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	sets := make([]*RuleSet, 0, len(codes))
	for _, code := range codes {
		rs, err := b.build(code, nil)
		if err != nil {
			return nil, err
		}
		if err := rs.Validate(); err != nil {
			return nil, err
		}
		sets = append(sets, rs)
	}
	return sets, nil
}

func (l *FileLoader) loadPluralRules() (map[string]*PluralRuleSet, error) {
	if len(l.rulePaths) == 0 {
		return nil, nil
	}

	rules := make(map[string]*PluralRuleSet)
	for _, path := range l.rulePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numwords: read plural rules %s: %w", path, err)
		}
		parsed, err := decodePluralRules(path, data)
		if err != nil {
			return nil, fmt.Errorf("numwords: decode plural rules %s: %w", path, err)
		}
		for locale, set := range parsed {
			rules[locale] = set
		}
	}

	return rules, nil
}

type rawLocaleFile struct {
	Locales map[string]rawLocale `json:"locales" yaml:"locales"`
}

type rawLocale struct {
	Name        string                         `json:"name" yaml:"name"`
	Extends     string                         `json:"extends" yaml:"extends"`
	Grouping    *rawGrouping                   `json:"grouping" yaml:"grouping"`
	Plural      string                         `json:"plural" yaml:"plural"`
	PluralRules map[string][]rawConditionGroup `json:"plural_rules" yaml:"plural_rules"`

	Zero      *string `json:"zero" yaml:"zero"`
	Negative  *string `json:"negative" yaml:"negative"`
	NaN       *string `json:"nan" yaml:"nan"`
	Infinity  *string `json:"infinity" yaml:"infinity"`
	PointWord *string `json:"point_word" yaml:"point_word"`
	CommaWord *string `json:"comma_word" yaml:"comma_word"`
	Decimal   string  `json:"decimal" yaml:"decimal"`
	Space     *string `json:"space" yaml:"space"`
	DigitJoin *string `json:"digit_join" yaml:"digit_join"`

	Words       *rawWords    `json:"words" yaml:"words"`
	Scales      []rawScale   `json:"scales" yaml:"scales"`
	Bridge      *ChunkBridge `json:"bridge" yaml:"bridge"`
	Conjunction *Conjunction `json:"conjunction" yaml:"conjunction"`
	Elision     string       `json:"elision" yaml:"elision"`
	Linker      string       `json:"linker" yaml:"linker"`

	Currencies        map[string]rawCurrency `json:"currencies" yaml:"currencies"`
	DefaultCurrency   string                 `json:"default_currency" yaml:"default_currency"`
	CurrencySeparator *string                `json:"currency_separator" yaml:"currency_separator"`

	Year *rawYear `json:"year" yaml:"year"`
}

type rawGrouping struct {
	First int  `json:"first" yaml:"first"`
	Rest  int  `json:"rest" yaml:"rest"`
	Tiers int  `json:"tiers" yaml:"tiers"`
	Open  bool `json:"open" yaml:"open"`
}

type rawWords struct {
	Units     []string                  `json:"units" yaml:"units"`
	Digits    []string                  `json:"digits" yaml:"digits"`
	Atoms     map[int]string            `json:"atoms" yaml:"atoms"`
	Gendered  map[string]map[int]string `json:"gendered" yaml:"gendered"`
	Construct map[int]string            `json:"construct" yaml:"construct"`

	Tens      []string       `json:"tens" yaml:"tens"`
	TensJoin  *string        `json:"tens_join" yaml:"tens_join"`
	AfterTens map[int]string `json:"after_tens" yaml:"after_tens"`

	Hundred        *string        `json:"hundred" yaml:"hundred"`
	Hundreds       map[int]string `json:"hundreds" yaml:"hundreds"`
	HundredJoin    *string        `json:"hundred_join" yaml:"hundred_join"`
	OmitOneHundred *bool          `json:"omit_one_hundred" yaml:"omit_one_hundred"`

	Thousand        *string `json:"thousand" yaml:"thousand"`
	ThousandJoin    *string `json:"thousand_join" yaml:"thousand_join"`
	OmitOneThousand *bool   `json:"omit_one_thousand" yaml:"omit_one_thousand"`

	Join   *string `json:"join" yaml:"join"`
	Bridge *string `json:"bridge" yaml:"bridge"`
}

type rawScale struct {
	Forms     map[string]string `json:"forms" yaml:"forms"`
	Gender    string            `json:"gender" yaml:"gender"`
	Overrides map[int]string    `json:"overrides" yaml:"overrides"`
	Join      *string           `json:"join" yaml:"join"`
	Next      *string           `json:"next" yaml:"next"`
	NounLink  string            `json:"noun_link" yaml:"noun_link"`
}

type rawUnit struct {
	Forms  map[string]string `json:"forms" yaml:"forms"`
	Gender string            `json:"gender" yaml:"gender"`
}

type rawCurrency struct {
	Main   rawUnit  `json:"main" yaml:"main"`
	Sub    *rawUnit `json:"sub" yaml:"sub"`
	Digits int      `json:"digits" yaml:"digits"`
}

type rawYear struct {
	Style   *string `json:"style" yaml:"style"`
	Hundred *string `json:"hundred" yaml:"hundred"`
	Oh      *string `json:"oh" yaml:"oh"`
	Zero    *string `json:"zero" yaml:"zero"`
	Plain   *string `json:"plain" yaml:"plain"`
	Before  *string `json:"before" yaml:"before"`
	After   *string `json:"after" yaml:"after"`
	Linker  *string `json:"linker" yaml:"linker"`
}

func decodeLocaleFile(path string, data []byte) (map[string]rawLocale, error) {
	var file rawLocaleFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported locale file extension %q", filepath.Ext(path))
	}

	if len(file.Locales) == 0 {
		return nil, fmt.Errorf("no locales defined")
	}
	return file.Locales, nil
}

type ruleSetBuilder struct {
	docs  map[string]rawLocale
	base  BaseLookup
	rules map[string]*PluralRuleSet
	built map[string]*RuleSet
}

func (b *ruleSetBuilder) build(code string, visiting []string) (*RuleSet, error) {
	if rs, ok := b.built[code]; ok {
		return rs, nil
	}
	if containsLocale(visiting, code) {
		return nil, fmt.Errorf("%w: %s: extends cycle %s", ErrInvalidRuleSet, code, strings.Join(append(visiting, code), " -> "))
	}
	doc := b.docs[code]

	rs := &RuleSet{Space: " ", DigitJoin: " "}
	if doc.Extends != "" {
		parent, err := b.parent(normalizeLocale(doc.Extends), append(visiting, code))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", code, err)
		}
		rs = parent.Clone()
	}
	rs.Code = code
	if doc.Name != "" {
		rs.Name = doc.Name
	}

	if err := b.apply(rs, doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRuleSet, code, err)
	}
	b.built[code] = rs
	return rs, nil
}

func (b *ruleSetBuilder) parent(code string, visiting []string) (*RuleSet, error) {
	if _, ok := b.docs[code]; ok {
		return b.build(code, visiting)
	}
	if b.base == nil {
		return nil, fmt.Errorf("%w: extends %q", ErrUnknownLocale, code)
	}
	return b.base.Lookup(code)
}

func (b *ruleSetBuilder) apply(rs *RuleSet, doc rawLocale) error {
	setString(&rs.Zero, doc.Zero)
	setString(&rs.Negative, doc.Negative)
	setString(&rs.NaN, doc.NaN)
	setString(&rs.Infinity, doc.Infinity)
	setString(&rs.PointWord, doc.PointWord)
	setString(&rs.CommaWord, doc.CommaWord)
	setString(&rs.Space, doc.Space)
	setString(&rs.DigitJoin, doc.DigitJoin)
	setString(&rs.CurrencySeparator, doc.CurrencySeparator)

	switch strings.ToLower(doc.Decimal) {
	case "":
	case "point":
		rs.Decimal = DecimalPoint
	case "comma":
		rs.Decimal = DecimalComma
	default:
		return fmt.Errorf("unknown decimal style %q", doc.Decimal)
	}

	if err := b.applyPlural(rs, doc); err != nil {
		return err
	}
	if doc.Words != nil {
		if err := applyWords(&rs.Words, doc.Words); err != nil {
			return err
		}
	}
	if len(doc.Scales) > 0 {
		scales, err := buildScales(doc.Scales)
		if err != nil {
			return err
		}
		rs.Scales = scales
		if g, ok := rs.Grouping.(Grouping); ok && doc.Grouping == nil {
			g.Count = len(scales)
			rs.Grouping = g
		}
	}
	if doc.Grouping != nil {
		g := Grouping{
			First:         doc.Grouping.First,
			Rest:          doc.Grouping.Rest,
			Count:         doc.Grouping.Tiers,
			Compositional: doc.Grouping.Open,
		}
		if g.Rest == 0 {
			g.Rest = g.First
		}
		if g.Count == 0 {
			g.Count = len(rs.Scales)
		}
		rs.Grouping = g
	}
	if doc.Bridge != nil {
		bridge := ChunkBridge{Phrase: nfc(doc.Bridge.Phrase), Below: doc.Bridge.Below}
		rs.Bridge = &bridge
	}
	if doc.Conjunction != nil {
		conj := Conjunction{Word: nfc(doc.Conjunction.Word), Below: doc.Conjunction.Below}
		rs.Conjunction = &conj
	}
	if doc.Elision != "" {
		rule, ok := elisionRules[strings.ToLower(doc.Elision)]
		if !ok {
			return fmt.Errorf("unknown elision rule %q", doc.Elision)
		}
		rs.Elision = rule
	}
	if doc.Linker != "" {
		linker, ok := linkers[strings.ToLower(doc.Linker)]
		if !ok {
			return fmt.Errorf("unknown linker %q", doc.Linker)
		}
		rs.Linker = linker
	}
	if len(doc.Currencies) > 0 {
		if rs.Currencies == nil {
			rs.Currencies = make(map[string]Currency, len(doc.Currencies))
		}
		for code, raw := range doc.Currencies {
			cur, err := buildCurrency(raw)
			if err != nil {
				return fmt.Errorf("currency %s: %w", code, err)
			}
			rs.Currencies[strings.ToUpper(code)] = cur
		}
	}
	if doc.DefaultCurrency != "" {
		rs.DefaultCurrency = strings.ToUpper(doc.DefaultCurrency)
	}
	if doc.Year != nil {
		if err := applyYear(&rs.Year, doc.Year); err != nil {
			return err
		}
	}
	return nil
}

func (b *ruleSetBuilder) applyPlural(rs *RuleSet, doc rawLocale) error {
	if len(doc.PluralRules) > 0 {
		set, err := buildRuleSet(rs.Code, rawLocaleRules{Name: rs.Name, Cardinal: doc.PluralRules})
		if err != nil {
			return err
		}
		rs.Plural = set
		return nil
	}
	if doc.Plural == "" {
		return nil
	}
	name := strings.ToLower(doc.Plural)
	if classifier, ok := pluralClassifiers[name]; ok {
		rs.Plural = classifier
		return nil
	}
	if set, ok := b.rules[normalizeLocale(doc.Plural)]; ok {
		rs.Plural = set
		return nil
	}
	set, err := PluralRules(doc.Plural)
	if err != nil {
		return err
	}
	rs.Plural = set
	return nil
}

func applyWords(w *Words, raw *rawWords) error {
	if err := setDigitWords(&w.Units, raw.Units, "units"); err != nil {
		return err
	}
	if err := setDigitWords(&w.Digits, raw.Digits, "digits"); err != nil {
		return err
	}
	if err := setDigitWords(&w.Tens, raw.Tens, "tens"); err != nil {
		return err
	}
	w.Atoms = mergeWords(w.Atoms, raw.Atoms)
	w.Construct = mergeWords(w.Construct, raw.Construct)
	w.AfterTens = mergeWords(w.AfterTens, raw.AfterTens)
	w.Hundreds = mergeWords(w.Hundreds, raw.Hundreds)
	for name, words := range raw.Gendered {
		gender, err := parseGender(name)
		if err != nil {
			return err
		}
		if w.Gendered == nil {
			w.Gendered = make(map[Gender]map[int]string)
		}
		w.Gendered[gender] = mergeWords(w.Gendered[gender], words)
	}

	setString(&w.TensJoin, raw.TensJoin)
	setString(&w.Hundred, raw.Hundred)
	setString(&w.HundredJoin, raw.HundredJoin)
	setString(&w.Thousand, raw.Thousand)
	setString(&w.ThousandJoin, raw.ThousandJoin)
	setString(&w.Join, raw.Join)
	setString(&w.Bridge, raw.Bridge)
	if raw.OmitOneHundred != nil {
		w.OmitOneHundred = *raw.OmitOneHundred
	}
	if raw.OmitOneThousand != nil {
		w.OmitOneThousand = *raw.OmitOneThousand
	}
	return nil
}

func buildScales(raw []rawScale) ([]ScaleTier, error) {
	scales := make([]ScaleTier, len(raw))
	for i, r := range raw {
		if i == 0 {
			continue
		}
		forms, err := buildForms(r.Forms)
		if err != nil {
			return nil, fmt.Errorf("scale %d: %w", i, err)
		}
		gender, err := parseGender(r.Gender)
		if err != nil {
			return nil, fmt.Errorf("scale %d: %w", i, err)
		}
		tier := ScaleTier{
			Forms:     forms,
			Gender:    gender,
			Overrides: mergeWords(nil, r.Overrides),
			Join:      " ",
			Next:      " ",
			NounLink:  r.NounLink,
		}
		setString(&tier.Join, r.Join)
		setString(&tier.Next, r.Next)
		scales[i] = tier
	}
	return scales, nil
}

func buildCurrency(raw rawCurrency) (Currency, error) {
	main, err := buildUnit(raw.Main)
	if err != nil {
		return Currency{}, err
	}
	cur := Currency{Main: main, Digits: raw.Digits}
	if raw.Sub != nil {
		sub, err := buildUnit(*raw.Sub)
		if err != nil {
			return Currency{}, err
		}
		cur.Sub = &sub
	}
	return cur, nil
}

func buildUnit(raw rawUnit) (CurrencyUnit, error) {
	forms, err := buildForms(raw.Forms)
	if err != nil {
		return CurrencyUnit{}, err
	}
	gender, err := parseGender(raw.Gender)
	if err != nil {
		return CurrencyUnit{}, err
	}
	return CurrencyUnit{Forms: forms, Gender: gender}, nil
}

func buildForms(raw map[string]string) (PluralForms, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing forms")
	}
	forms := make(PluralForms, len(raw))
	for name, word := range raw {
		category, err := parsePluralCategory(name)
		if err != nil {
			return nil, err
		}
		forms[category] = nfc(word)
	}
	if _, ok := forms[PluralOther]; !ok {
		if len(forms) != 1 {
			return nil, fmt.Errorf("missing 'other' form")
		}
		for _, word := range forms {
			forms[PluralOther] = word
		}
	}
	return forms, nil
}

func applyYear(y *YearRules, raw *rawYear) error {
	if raw.Style != nil {
		switch name := strings.ToLower(*raw.Style); name {
		case "", "cardinal":
			y.Style = nil
		default:
			style, ok := yearStyles[name]
			if !ok {
				return fmt.Errorf("unknown year style %q", *raw.Style)
			}
			y.Style = style
		}
	}
	setString(&y.Hundred, raw.Hundred)
	setString(&y.Oh, raw.Oh)
	setString(&y.Zero, raw.Zero)
	setString(&y.Plain, raw.Plain)
	setString(&y.Before, raw.Before)
	setString(&y.After, raw.After)
	setString(&y.Linker, raw.Linker)
	return nil
}

func parseGender(raw string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return GenderNone, nil
	case "masculine", "m":
		return Masculine, nil
	case "feminine", "f":
		return Feminine, nil
	case "neuter", "n":
		return Neuter, nil
	default:
		return GenderNone, fmt.Errorf("unknown gender %q", raw)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = nfc(*src)
	}
}

func setDigitWords(dst *[10]string, src []string, field string) error {
	if len(src) == 0 {
		return nil
	}
	if len(src) != len(dst) {
		return fmt.Errorf("%s: want %d words, got %d", field, len(dst), len(src))
	}
	for i, word := range src {
		dst[i] = nfc(word)
	}
	return nil
}

// mergeWords returns a new map holding base overlaid with over.
func mergeWords(base, over map[int]string) map[int]string {
	if len(over) == 0 {
		return base
	}
	out := make(map[int]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = nfc(v)
	}
	return out
}

// nfc keeps composed and decomposed spellings of the same word equal.
func nfc(s string) string {
	return norm.NFC.String(s)
}

type rawPluralRulesFile struct {
	Locales map[string]rawLocaleRules `json:"locales"`
}

type rawLocaleRules struct {
	Name     string                         `json:"name"`
	Cardinal map[string][]rawConditionGroup `json:"cardinal"`
}

type rawConditionGroup []rawCondition

type rawCondition struct {
	Operand  string     `json:"operand" yaml:"operand"`
	Mod      *int       `json:"mod,omitempty" yaml:"mod"`
	Operator string     `json:"operator" yaml:"operator"`
	Values   []int64    `json:"values,omitempty" yaml:"values"`
	Ranges   []rawRange `json:"ranges,omitempty" yaml:"ranges"`
}

type rawRange struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

func decodePluralRules(path string, data []byte) (map[string]*PluralRuleSet, error) {
	wrapper := rawPluralRulesFile{}
	if err := json.Unmarshal(data, &wrapper); err != nil || len(wrapper.Locales) == 0 {
		var direct map[string]rawLocaleRules
		if errDirect := json.Unmarshal(data, &direct); errDirect != nil {
			if err == nil {
				err = errDirect
			}
			return nil, err
		}
		delete(direct, "locales")
		wrapper.Locales = direct
	}

	if len(wrapper.Locales) == 0 {
		return nil, fmt.Errorf("numwords: plural rule file %s has no locales", path)
	}

	result := make(map[string]*PluralRuleSet, len(wrapper.Locales))
	for locale, rawRules := range wrapper.Locales {
		ruleSet, err := buildRuleSet(locale, rawRules)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		result[normalizeLocale(locale)] = ruleSet
	}

	return result, nil
}

func buildRuleSet(locale string, raw rawLocaleRules) (*PluralRuleSet, error) {
	if len(raw.Cardinal) == 0 {
		return nil, fmt.Errorf("missing cardinal rules")
	}

	entries := make([]PluralRule, 0, len(raw.Cardinal))
	categories := make([]string, 0, len(raw.Cardinal))
	for category := range raw.Cardinal {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		cat, err := parsePluralCategory(category)
		if err != nil {
			return nil, err
		}

		rawGroups := raw.Cardinal[category]
		groups := make([][]PluralCondition, 0, len(rawGroups))
		for _, rawGroup := range rawGroups {
			if len(rawGroup) == 0 {
				continue
			}
			conditions := make([]PluralCondition, 0, len(rawGroup))
			for _, rawCondition := range rawGroup {
				operator, err := parseConditionOperator(rawCondition.Operator)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", category, err)
				}
				cond := PluralCondition{
					Operand:  strings.ToLower(rawCondition.Operand),
					Operator: operator,
				}
				if rawCondition.Mod != nil {
					cond.Mod = *rawCondition.Mod
				}
				if len(rawCondition.Values) > 0 {
					cond.Values = append([]int64(nil), rawCondition.Values...)
				}
				if len(rawCondition.Ranges) > 0 {
					cond.Ranges = make([]PluralRange, 0, len(rawCondition.Ranges))
					for _, r := range rawCondition.Ranges {
						cond.Ranges = append(cond.Ranges, PluralRange{Start: r.Start, End: r.End})
					}
				}
				conditions = append(conditions, cond)
			}
			groups = append(groups, conditions)
		}

		if len(groups) == 0 && cat != PluralOther {
			return nil, fmt.Errorf("%s: no conditions", category)
		}
		entries = append(entries, PluralRule{Category: cat, Groups: groups})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return pluralCategoryOrder(entries[i].Category) < pluralCategoryOrder(entries[j].Category)
	})

	hasOther := false
	for _, entry := range entries {
		if entry.Category == PluralOther {
			hasOther = true
			break
		}
	}
	if !hasOther {
		entries = append(entries, PluralRule{Category: PluralOther})
	}

	return &PluralRuleSet{
		Locale:      locale,
		DisplayName: raw.Name,
		Rules:       entries,
	}, nil
}

func parsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

func parseConditionOperator(raw string) (PluralConditionOperator, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(OperatorEquals), "=":
		return OperatorEquals, nil
	case string(OperatorNotEquals), "!=":
		return OperatorNotEquals, nil
	case string(OperatorIn):
		return OperatorIn, nil
	case string(OperatorNotIn):
		return OperatorNotIn, nil
	case string(OperatorWithin):
		return OperatorWithin, nil
	case string(OperatorNotWithin):
		return OperatorNotWithin, nil
	default:
		return "", fmt.Errorf("unknown condition operator %q", raw)
	}
}

func pluralCategoryOrder(category PluralCategory) int {
	switch category {
	case PluralZero:
		return 0
	case PluralOne:
		return 1
	case PluralTwo:
		return 2
	case PluralFew:
		return 3
	case PluralMany:
		return 4
	case PluralOther:
		return 5
	default:
		return 99
	}
}

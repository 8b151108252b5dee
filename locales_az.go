package numwords

func azerbaijani() *RuleSet {
	thousand := Scale("min")
	thousand.Overrides = map[int]string{1: "min"}
	scales := []ScaleTier{
		{},
		thousand,
		Scale("milyon"),
		Scale("milyard"),
		Scale("trilyon"),
		Scale("kvadrilyon"),
		Scale("kvintilyon"),
	}

	return &RuleSet{
		Code:     "az",
		Name:     "Azərbaycan dili",
		Grouping: ShortScale(len(scales)),
		Plural:   NoPlural,
		Words: Words{
			Units:          [10]string{"sıfır", "bir", "iki", "üç", "dörd", "beş", "altı", "yeddi", "səkkiz", "doqquz"},
			Tens:           [10]string{"", "on", "iyirmi", "otuz", "qırx", "əlli", "altmış", "yetmiş", "səksən", "doxsan"},
			TensJoin:       " ",
			Hundred:        "yüz",
			HundredJoin:    " ",
			OmitOneHundred: true,
			Join:           " ",
		},
		Scales:    scales,
		Zero:      "sıfır",
		Negative:  "mənfi",
		NaN:       "ədəd deyil",
		Infinity:  "sonsuzluq",
		PointWord: "nöqtə",
		CommaWord: "vergül",
		Decimal:   DecimalComma,
		Space:     " ",
		DigitJoin: " ",
		Currencies: map[string]Currency{
			"AZN": {Main: CurrencyUnit{Forms: Invariant("manat")}, Sub: &CurrencyUnit{Forms: Invariant("qəpik")}},
			"USD": {Main: CurrencyUnit{Forms: Invariant("dollar")}, Sub: &CurrencyUnit{Forms: Invariant("sent")}},
		},
		DefaultCurrency:   "AZN",
		CurrencySeparator: " ",
		Year: YearRules{
			Zero:   "sıfır",
			Before: "eramızdan əvvəl {year}",
			After:  "eramızın {year}",
		},
	}
}

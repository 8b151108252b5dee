package numwords

var englishWords = Words{
	Units: [10]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	Atoms: map[int]string{
		10: "ten", 11: "eleven", 12: "twelve", 13: "thirteen", 14: "fourteen",
		15: "fifteen", 16: "sixteen", 17: "seventeen", 18: "eighteen", 19: "nineteen",
	},
	Tens:        [10]string{"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},
	TensJoin:    "-",
	Hundred:     "hundred",
	HundredJoin: " ",
	Join:        " ",
}

var englishScales = []ScaleTier{
	{},
	Scale("thousand"),
	Scale("million"),
	Scale("billion"),
	Scale("trillion"),
	Scale("quadrillion"),
	Scale("quintillion"),
	Scale("sextillion"),
	Scale("septillion"),
	Scale("octillion"),
	Scale("nonillion"),
	Scale("decillion"),
}

func english() *RuleSet {
	return &RuleSet{
		Code:      "en",
		Name:      "English",
		Grouping:  ShortScale(len(englishScales)),
		Plural:    mustPluralRules("en"),
		Words:     englishWords,
		Scales:    englishScales,
		Zero:      "zero",
		Negative:  "minus",
		NaN:       "not a number",
		Infinity:  "infinity",
		PointWord: "point",
		CommaWord: "comma",
		Decimal:   DecimalPoint,
		Space:     " ",
		DigitJoin: " ",
		Currencies: map[string]Currency{
			"USD": {Main: CurrencyUnit{Forms: Forms("dollar", "dollars")}, Sub: &CurrencyUnit{Forms: Forms("cent", "cents")}},
			"EUR": {Main: CurrencyUnit{Forms: Forms("euro", "euros")}, Sub: &CurrencyUnit{Forms: Forms("cent", "cents")}},
			"GBP": {Main: CurrencyUnit{Forms: Forms("pound", "pounds")}, Sub: &CurrencyUnit{Forms: Forms("penny", "pence")}},
			"JPY": {Main: CurrencyUnit{Forms: Invariant("yen")}},
			"INR": {Main: CurrencyUnit{Forms: Forms("rupee", "rupees")}, Sub: &CurrencyUnit{Forms: Forms("paisa", "paise")}},
		},
		DefaultCurrency:   "USD",
		CurrencySeparator: " and ",
		Year: YearRules{
			Style:   EnglishYears,
			Hundred: "hundred",
			Oh:      "oh-",
			Zero:    "zero",
			Before:  "{year} BC",
			After:   "{year} AD",
		},
	}
}

// britishEnglish joins a final small chunk and the rest of a hundred with "and".
func britishEnglish() *RuleSet {
	rs := english().Clone()
	rs.Code = "en-GB"
	rs.Name = "English (United Kingdom)"
	rs.Words.Join = " and "
	rs.Conjunction = &Conjunction{Word: " and ", Below: 100}
	rs.DefaultCurrency = "GBP"
	return rs
}

// indianEnglish counts in lakh and crore above the thousands.
func indianEnglish() *RuleSet {
	rs := english().Clone()
	rs.Code = "en-IN"
	rs.Name = "English (India)"
	rs.Scales = []ScaleTier{{}, Scale("thousand"), Scale("lakh"), Scale("crore")}
	rs.Grouping = Indian(len(rs.Scales))
	rs.DefaultCurrency = "INR"
	return rs
}

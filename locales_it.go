package numwords

func italianScale(one, other string) ScaleTier {
	return ScaleTier{
		Forms:     Forms(one, other),
		Overrides: map[int]string{1: "un " + one},
		Join:      " ",
		Next:      " ",
		NounLink:  "di",
	}
}

func italian() *RuleSet {
	scales := []ScaleTier{
		{},
		{Forms: Invariant("mila"), Overrides: map[int]string{1: "mille"}},
		italianScale("milione", "milioni"),
		italianScale("miliardo", "miliardi"),
		italianScale("bilione", "bilioni"),
		italianScale("biliardo", "biliardi"),
		italianScale("trilione", "trilioni"),
		italianScale("triliardo", "triliardi"),
	}

	return &RuleSet{
		Code:     "it",
		Name:     "Italiano",
		Grouping: ShortScale(len(scales)),
		Plural:   mustPluralRules("it"),
		Words: Words{
			Units:     [10]string{"zero", "uno", "due", "tre", "quattro", "cinque", "sei", "sette", "otto", "nove"},
			Construct: map[int]string{1: "un"},
			Atoms: map[int]string{
				10: "dieci", 11: "undici", 12: "dodici", 13: "tredici", 14: "quattordici",
				15: "quindici", 16: "sedici", 17: "diciassette", 18: "diciotto", 19: "diciannove",
			},
			Tens:           [10]string{"", "dieci", "venti", "trenta", "quaranta", "cinquanta", "sessanta", "settanta", "ottanta", "novanta"},
			Hundred:        "cento",
			OmitOneHundred: true,
		},
		Scales:    scales,
		Elision:   ItalianElision,
		Zero:      "zero",
		Negative:  "meno",
		NaN:       "non è un numero",
		Infinity:  "infinito",
		PointWord: "punto",
		CommaWord: "virgola",
		Decimal:   DecimalComma,
		Space:     " ",
		DigitJoin: " ",
		Currencies: map[string]Currency{
			"EUR": {
				Main: CurrencyUnit{Forms: Invariant("euro"), Gender: Masculine},
				Sub:  &CurrencyUnit{Forms: Forms("centesimo", "centesimi"), Gender: Masculine},
			},
			"USD": {
				Main: CurrencyUnit{Forms: Forms("dollaro", "dollari"), Gender: Masculine},
				Sub:  &CurrencyUnit{Forms: Forms("centesimo", "centesimi"), Gender: Masculine},
			},
		},
		DefaultCurrency:   "EUR",
		CurrencySeparator: " e ",
		Year: YearRules{
			Zero:   "zero",
			Before: "{year} a.C.",
			After:  "{year} d.C.",
		},
	}
}

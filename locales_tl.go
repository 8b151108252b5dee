package numwords

func tagalog() *RuleSet {
	scales := []ScaleTier{{}, Scale("libo"), Scale("milyon"), Scale("bilyon"), Scale("trilyon")}
	return &RuleSet{
		Code:     "tl",
		Name:     "Tagalog",
		Grouping: ShortScale(len(scales)),
		Plural:   mustPluralRules("fil"),
		Words: Words{
			Units: [10]string{"sero", "isa", "dalawa", "tatlo", "apat", "lima", "anim", "pito", "walo", "siyam"},
			Atoms: map[int]string{
				10: "sampu", 11: "labing-isa", 12: "labindalawa", 13: "labintatlo", 14: "labing-apat",
				15: "labinlima", 16: "labing-anim", 17: "labimpito", 18: "labingwalo", 19: "labinsiyam",
			},
			Tens:     [10]string{"", "sampu", "dalawampu", "tatlumpu", "apatnapu", "limampu", "animnapu", "pitumpu", "walumpu", "siyamnapu"},
			TensJoin: "'t ",
			Hundred:  "daan",
			Join:     " at ",
		},
		Scales:    scales,
		Linker:    TagalogLinker,
		Zero:      "sero",
		Negative:  "negatibo",
		NaN:       "hindi numero",
		Infinity:  "walang hanggan",
		PointWord: "punto",
		CommaWord: "kuwit",
		Decimal:   DecimalPoint,
		Space:     " ",
		DigitJoin: " ",
		Currencies: map[string]Currency{
			"PHP": {Main: CurrencyUnit{Forms: Invariant("piso")}, Sub: &CurrencyUnit{Forms: Invariant("sentimo")}},
			"USD": {Main: CurrencyUnit{Forms: Invariant("dolyar")}, Sub: &CurrencyUnit{Forms: Invariant("sentimo")}},
		},
		DefaultCurrency:   "PHP",
		CurrencySeparator: " at ",
		Year: YearRules{
			Zero:   "sero",
			Before: "{year} BK",
			After:  "{year} AD",
		},
	}
}

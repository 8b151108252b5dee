package numwords

// vietnamese voices empty hundreds inside a number ("một nghìn không trăm
// linh một") and counts past a billion by repeating tỷ.
func vietnamese() *RuleSet {
	scales := []ScaleTier{{}, Scale("nghìn"), Scale("triệu"), Scale("tỷ")}
	return &RuleSet{
		Code: "vi",
		Name: "Tiếng Việt",
		Grouping: Grouping{
			First:         3,
			Rest:          3,
			Count:         len(scales),
			Compositional: true,
		},
		Plural: NoPlural,
		Words: Words{
			Units: [10]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"},
			Atoms: map[int]string{
				10: "mười", 11: "mười một", 12: "mười hai", 13: "mười ba", 14: "mười bốn",
				15: "mười lăm", 16: "mười sáu", 17: "mười bảy", 18: "mười tám", 19: "mười chín",
			},
			Tens:        [10]string{"", "mười", "hai mươi", "ba mươi", "bốn mươi", "năm mươi", "sáu mươi", "bảy mươi", "tám mươi", "chín mươi"},
			TensJoin:    " ",
			AfterTens:   map[int]string{1: "mốt", 4: "tư", 5: "lăm"},
			Hundred:     "trăm",
			HundredJoin: " ",
			Join:        " ",
			Bridge:      " linh ",
		},
		Scales:    scales,
		Bridge:    &ChunkBridge{Phrase: "không trăm", Below: 100},
		Zero:      "không",
		Negative:  "âm",
		NaN:       "không phải là số",
		Infinity:  "vô cực",
		PointWord: "chấm",
		CommaWord: "phẩy",
		Decimal:   DecimalComma,
		Space:     " ",
		DigitJoin: " ",
		Currencies: map[string]Currency{
			"VND": {Main: CurrencyUnit{Forms: Invariant("đồng")}},
			"USD": {Main: CurrencyUnit{Forms: Invariant("đô la")}, Sub: &CurrencyUnit{Forms: Invariant("xu")}},
		},
		DefaultCurrency:   "VND",
		CurrencySeparator: " ",
		Year: YearRules{
			Zero:   "năm không",
			Plain:  "năm {year}",
			Before: "năm {year} trước Công nguyên",
			After:  "năm {year} sau Công nguyên",
		},
	}
}

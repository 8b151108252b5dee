package numwords

func japanese() *RuleSet {
	names := []string{"万", "億", "兆", "京", "垓", "秭", "穣", "溝", "澗", "正", "載", "極"}
	scales := make([]ScaleTier, 0, len(names)+1)
	scales = append(scales, ScaleTier{})
	for _, name := range names {
		scales = append(scales, ScaleTier{Forms: Invariant(name)})
	}

	return &RuleSet{
		Code:     "ja",
		Name:     "日本語",
		Grouping: Myriad(len(scales)),
		Plural:   NoPlural,
		Words: Words{
			Units:           [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
			Digits:          [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
			Tens:            [10]string{"", "十", "二十", "三十", "四十", "五十", "六十", "七十", "八十", "九十"},
			Hundred:         "百",
			OmitOneHundred:  true,
			Thousand:        "千",
			OmitOneThousand: true,
		},
		Scales:    scales,
		Zero:      "零",
		Negative:  "マイナス",
		NaN:       "非数",
		Infinity:  "無限大",
		PointWord: "点",
		CommaWord: "点",
		Decimal:   DecimalPoint,
		Currencies: map[string]Currency{
			"JPY": {Main: CurrencyUnit{Forms: Invariant("円")}},
			"USD": {Main: CurrencyUnit{Forms: Invariant("ドル")}, Sub: &CurrencyUnit{Forms: Invariant("セント")}},
		},
		DefaultCurrency: "JPY",
		Year: YearRules{
			Zero:   "零年",
			Plain:  "{year}年",
			Before: "紀元前{year}年",
			After:  "西暦{year}年",
		},
	}
}

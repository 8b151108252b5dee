package numwords

func russianScale(one, few, many string) ScaleTier {
	return ScaleTier{
		Forms:  PluralForms{PluralOne: one, PluralFew: few, PluralMany: many, PluralOther: few},
		Gender: Masculine,
		Join:   " ",
		Next:   " ",
	}
}

func russianUnit(one, few, many string, gender Gender) CurrencyUnit {
	return CurrencyUnit{
		Forms:  PluralForms{PluralOne: one, PluralFew: few, PluralMany: many, PluralOther: few},
		Gender: gender,
	}
}

func russian() *RuleSet {
	thousand := russianScale("тысяча", "тысячи", "тысяч")
	thousand.Gender = Feminine

	scales := []ScaleTier{
		{},
		thousand,
		russianScale("миллион", "миллиона", "миллионов"),
		russianScale("миллиард", "миллиарда", "миллиардов"),
		russianScale("триллион", "триллиона", "триллионов"),
		russianScale("квадриллион", "квадриллиона", "квадриллионов"),
		russianScale("квинтиллион", "квинтиллиона", "квинтиллионов"),
		russianScale("секстиллион", "секстиллиона", "секстиллионов"),
		russianScale("септиллион", "септиллиона", "септиллионов"),
		russianScale("октиллион", "октиллиона", "октиллионов"),
		russianScale("нониллион", "нониллиона", "нониллионов"),
		russianScale("дециллион", "дециллиона", "дециллионов"),
	}

	euro := CurrencyUnit{Forms: Invariant("евро"), Gender: Masculine}
	return &RuleSet{
		Code:     "ru",
		Name:     "Русский",
		Grouping: ShortScale(len(scales)),
		Plural:   mustPluralRules("ru"),
		Words: Words{
			Units: [10]string{"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
			Gendered: map[Gender]map[int]string{
				Feminine: {1: "одна", 2: "две"},
				Neuter:   {1: "одно"},
			},
			Atoms: map[int]string{
				10: "десять", 11: "одиннадцать", 12: "двенадцать", 13: "тринадцать", 14: "четырнадцать",
				15: "пятнадцать", 16: "шестнадцать", 17: "семнадцать", 18: "восемнадцать", 19: "девятнадцать",
			},
			Tens:     [10]string{"", "десять", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"},
			TensJoin: " ",
			Hundreds: map[int]string{
				1: "сто", 2: "двести", 3: "триста", 4: "четыреста", 5: "пятьсот",
				6: "шестьсот", 7: "семьсот", 8: "восемьсот", 9: "девятьсот",
			},
			Join: " ",
		},
		Scales:    scales,
		Zero:      "ноль",
		Negative:  "минус",
		NaN:       "не число",
		Infinity:  "бесконечность",
		PointWord: "точка",
		CommaWord: "запятая",
		Decimal:   DecimalComma,
		Space:     " ",
		DigitJoin: " ",
		Currencies: map[string]Currency{
			"RUB": {
				Main: russianUnit("рубль", "рубля", "рублей", Masculine),
				Sub:  ptr(russianUnit("копейка", "копейки", "копеек", Feminine)),
			},
			"USD": {
				Main: russianUnit("доллар", "доллара", "долларов", Masculine),
				Sub:  ptr(russianUnit("цент", "цента", "центов", Masculine)),
			},
			"EUR": {
				Main: euro,
				Sub:  ptr(russianUnit("цент", "цента", "центов", Masculine)),
			},
		},
		DefaultCurrency:   "RUB",
		CurrencySeparator: " ",
		Year: YearRules{
			Zero:   "ноль",
			Before: "{year} до н. э.",
			After:  "{year} н. э.",
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

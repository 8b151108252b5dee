package numwords

import "errors"

// ErrMagnitudeTooLarge indicates the integer part exceeds every scale tier the locale can name.
var ErrMagnitudeTooLarge = errors.New("numwords: magnitude too large")

// ErrInvalidInput marks values that could not be normalized into a number.
var ErrInvalidInput = errors.New("numwords: invalid input")

// ErrUnknownLocale indicates that no rule set is registered for a locale or its fallbacks.
var ErrUnknownLocale = errors.New("numwords: unknown locale")

// ErrUnknownCurrency indicates the rule set has no unit names for a currency code.
var ErrUnknownCurrency = errors.New("numwords: unknown currency")

// ErrInvalidRuleSet is returned when a rule set fails validation
var ErrInvalidRuleSet = errors.New("numwords: invalid rule set")

package kernel

import (
	"strings"
	"unicode"

	"shipping/internal/pkg/errs"
)

// ErrCurrencyIsInvalid is returned for anything but a three-letter
// ISO 4217 currency code.
var ErrCurrencyIsInvalid = errs.NewValueIsInvalidError("currency")

// Currency is an ISO 4217 currency code ("USD", "EUR", ...). Prices are
// always quoted in the owning company package's currency; no conversion
// happens anywhere in this service.
type Currency string

// NewCurrency validates and normalizes a currency code.
func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrCurrencyIsInvalid
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", ErrCurrencyIsInvalid
		}
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

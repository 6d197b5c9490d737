package kernel

import (
	"strings"
	"unicode"

	"shipping/internal/pkg/errs"
)

// Domain errors for country code value objects.
var (
	// ErrAlpha2IsInvalid is returned for anything but two ASCII letters.
	ErrAlpha2IsInvalid = errs.NewValueIsInvalidError("alpha2")
	// ErrAlpha3IsInvalid is returned for anything but three ASCII letters.
	ErrAlpha3IsInvalid = errs.NewValueIsInvalidError("alpha3")
)

// Alpha2 is an ISO 3166-1 two-letter country code. Codes are normalized to
// upper case at construction so lookups are case-insensitive.
type Alpha2 string

// NewAlpha2 validates and normalizes a two-letter country code.
func NewAlpha2(code string) (Alpha2, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !isAlphaCode(code, 2) {
		return "", ErrAlpha2IsInvalid
	}
	return Alpha2(code), nil
}

func (a Alpha2) String() string {
	return string(a)
}

// Alpha3 is an ISO 3166-1 three-letter country code (plus the synthetic
// region codes the country tree uses, e.g. "XEU" for Europe). Normalized to
// upper case at construction.
type Alpha3 string

// NewAlpha3 validates and normalizes a three-letter country code.
func NewAlpha3(code string) (Alpha3, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !isAlphaCode(code, 3) {
		return "", ErrAlpha3IsInvalid
	}
	return Alpha3(code), nil
}

func (a Alpha3) String() string {
	return string(a)
}

// ContainsAlpha3 reports whether the code list contains the given code.
func ContainsAlpha3(codes []Alpha3, code Alpha3) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

func isAlphaCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

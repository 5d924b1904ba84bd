package vat

import (
	"fmt"
	"regexp"
	"strings"
)

// idRegex is the structural pattern every VAT identifier must match:
// a two-letter country code followed by 2-13 uppercase alphanumerics.
var idRegex = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{2,13}$`)

// countryCodes is the fixed set of jurisdictions the VIES registry serves.
// These are VIES codes, not ISO 3166: Greece is EL, Northern Ireland is XI.
var countryCodes = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "CY": {}, "CZ": {},
	"DE": {}, "DK": {}, "EE": {}, "EL": {}, "ES": {},
	"FI": {}, "FR": {}, "GB": {}, "HR": {}, "HU": {},
	"IE": {}, "IT": {}, "LT": {}, "LU": {}, "LV": {},
	"MT": {}, "NL": {}, "PL": {}, "PT": {}, "RO": {},
	"SE": {}, "SI": {}, "SK": {}, "XI": {},
}

// ID is a structurally validated VAT identifier. It is a value type and
// immutable once produced by ParseID.
type ID struct {
	CountryCode string
	Number      string
}

// String returns the identifier as it appears on invoices, e.g. "IE6388047V".
func (id ID) String() string {
	return id.CountryCode + id.Number
}

// ParseID validates the structure of a raw VAT identifier and splits it into
// country code and number. The country-code membership check runs before the
// full-pattern check, so the two failure modes stay distinguishable:
// ErrInvalidCountry for an unsupported prefix, ErrInvalidNumber for a string
// that has a supported prefix but breaks the pattern.
//
// ParseID performs structural checks only. It does not verify the
// country-specific checksum and it never touches the network.
func ParseID(raw string) (ID, error) {
	prefix := raw
	if len(raw) >= 2 {
		prefix = raw[:2]
	}
	if _, ok := countryCodes[prefix]; !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidCountry, prefix)
	}
	if !idRegex.MatchString(raw) {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return ID{CountryCode: prefix, Number: raw[2:]}, nil
}

// IsSupportedCountry reports whether code is one of the VIES country codes.
func IsSupportedCountry(code string) bool {
	_, ok := countryCodes[code]
	return ok
}

// Normalize strips the separator characters commonly found in printed VAT
// numbers (spaces, dots, hyphens) and upper-cases the remainder, so input
// like "de 123.456.789" becomes "DE123456789". It does not validate; pass
// the result to ParseID.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		switch r {
		case ' ', '\t', '.', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

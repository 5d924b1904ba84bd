package vat

import "errors"

var (
	// ErrInvalidCountry is returned when the two-letter prefix is not a
	// supported VIES country code.
	ErrInvalidCountry = errors.New("unsupported or invalid country code")

	// ErrInvalidNumber is returned when the identifier does not match the
	// structural VAT number pattern.
	ErrInvalidNumber = errors.New("invalid VAT number format")
)

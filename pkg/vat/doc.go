// Package vat provides structural validation of European VAT identification
// numbers as accepted by the VIES registry.
//
// Validation is purely structural: a supported two-letter country code
// followed by 2-13 uppercase alphanumeric characters. Country-specific
// checksum algorithms are deliberately out of scope; whether a structurally
// valid number actually exists is answered by the registry (see pkg/vies).
//
// # Usage
//
//	id, err := vat.ParseID(vat.Normalize(" de 123.456.789 "))
//	if err != nil {
//	    // errors.Is(err, vat.ErrInvalidCountry) or vat.ErrInvalidNumber
//	}
//	fmt.Println(id.CountryCode, id.Number) // DE 123456789
package vat

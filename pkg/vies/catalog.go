package vies

import (
	"strings"

	"github.com/vatkit/vatkit/pkg/soap"
)

// Fault keys the registry returns in faultstring.
const (
	FaultInvalidInputCountry = "INVALID_INPUT_COUNTRY"
	FaultInvalidInputNumber  = "INVALID_INPUT_NUMBER"
	FaultServiceUnavailable  = "SERVICE_UNAVAILABLE"
	FaultMSUnavailable       = "MS_UNAVAILABLE"
	FaultMSMaxConcurrentReq  = "MS_MAX_CONCURRENT_REQ"
	FaultTimeout             = "TIMEOUT"
	FaultServerBusy          = "SERVER_BUSY"
	FaultUnknown             = "UNKNOWN"
)

// errorCatalog maps known fault keys to user-facing messages. Initialized
// once, read-only afterwards; safe for concurrent use.
var errorCatalog = map[string]string{
	FaultInvalidInputCountry: "The country code is invalid",
	FaultInvalidInputNumber:  "The VAT number format is invalid",
	FaultServiceUnavailable:  "The VIES service is unavailable, please try again later",
	FaultMSUnavailable:       "The VAT database of the requested member state is unavailable, please try again later",
	FaultMSMaxConcurrentReq:  "The VAT database of the requested member state is overloaded, please try again later",
	FaultTimeout:             "The request to the member state VAT database timed out, please try again later",
	FaultServerBusy:          "The VIES service is busy, please try again later",
	FaultUnknown:             "An unknown error occurred while checking the VAT number",
}

// Translate maps a registry fault to a human-readable message. For VIES the
// faultstring is itself the semantic key. An empty key translates to the
// UNKNOWN message; an unrecognized non-empty key surfaces verbatim so newly
// introduced upstream codes are not swallowed.
func Translate(f *soap.Fault) string {
	key := strings.TrimSpace(f.String)
	if key == "" {
		return errorCatalog[FaultUnknown]
	}
	if msg, ok := errorCatalog[key]; ok {
		return msg
	}
	return key
}

// Package vies validates European VAT identification numbers against the
// EU VIES registry over its SOAP interface, returning a normalized,
// strongly-typed result even when the registry is degraded.
//
// # Basic Usage
//
//	client := vies.New()
//	res, err := client.Check(ctx, "IE6388047V")
//	if err != nil {
//	    // local validation, transport, or malformed-response failure
//	}
//	if res.Valid && !res.ServerValidated {
//	    // registry was down; result is a presumed-valid fallback
//	}
//
// # Degradation policy
//
// VIES availability faults (member-state database down, service busy) are by
// default absorbed into a successful-but-unconfirmed result rather than
// blocking the caller: Valid=true, ServerValidated=false. The degraded fault
// set can be made explicit:
//
//	client := vies.New(vies.WithDegradedFaults(
//	    vies.FaultMSUnavailable,
//	    vies.FaultServerBusy,
//	    vies.FaultTimeout,
//	))
//
// Faults outside the set then surface as ErrRegistryFault. Transport-level
// failures and malformed responses are never degraded.
//
// # What belongs to the caller
//
// The client performs exactly one request per call. Retry and backoff policy
// is deliberately left to callers, as is any checksum-level validation of
// country-specific VAT formats.
package vies

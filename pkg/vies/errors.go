package vies

import "errors"

// Error classification:
// - local validation errors come from pkg/vat and pass through unchanged
// - transport errors (ErrRequestFailed, ErrTimeout) are never degraded
// - ErrRegistryFault only surfaces when the fault is outside the configured
//   degraded set; by default every fault degrades to an unconfirmed result
var (
	ErrRequestFailed = errors.New("vies request failed")
	ErrTimeout       = errors.New("vies request timed out")
	ErrRegistryFault = errors.New("vies registry fault")
)

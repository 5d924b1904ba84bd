package soap

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates the registry answered with a body that is
// neither a recognizable checkVat response nor a SOAP fault. This signals a
// schema or contract break upstream, never a problem with the VAT number.
var ErrMalformedResponse = errors.New("malformed registry response")

// MalformedResponseError carries the raw response body so operators can
// diagnose what the registry actually sent. It unwraps to
// ErrMalformedResponse.
type MalformedResponseError struct {
	Missing string // the tag that could not be located
	Body    string // raw response body
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%v: missing <%s> element in %q", ErrMalformedResponse, e.Missing, e.Body)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

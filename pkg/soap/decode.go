package soap

import (
	"fmt"
	"regexp"
	"strings"
)

// unknownPlaceholder is the registry's convention for "not provided".
const unknownPlaceholder = "---"

// Pre-compiled extraction patterns, one per tag the fixed response schema can
// carry. Patterns tolerate any namespace prefix (member states answer with
// varying prefixes) and span line boundaries non-greedily, so multi-line
// field bodies such as postal addresses are matched whole.
var fieldRegex = func() map[string]*regexp.Regexp {
	tags := []string{
		"countryCode", "vatNumber", "valid", "name", "address",
		"faultcode", "faultstring",
	}
	m := make(map[string]*regexp.Regexp, len(tags))
	for _, tag := range tags {
		m[tag] = regexp.MustCompile(
			`(?s)<(?:[A-Za-z0-9]+:)?` + tag + `\s*>(.*?)</(?:[A-Za-z0-9]+:)?` + tag + `\s*>`,
		)
	}
	return m
}()

// faultElemRegex detects the namespaced SOAP <Fault> element.
var faultElemRegex = regexp.MustCompile(`<(?:[A-Za-z0-9]+:)?Fault[\s>]`)

// CheckVatResponse is a decoded checkVatResponse body.
type CheckVatResponse struct {
	CountryCode string
	VATNumber   string
	Valid       bool
	Name        string
	Address     string

	// ServerValidated is always true out of the decoder: a successful decode
	// means the registry was reached and answered. It only ever becomes
	// false through the caller's degradation policy.
	ServerValidated bool
}

// Fault is a SOAP protocol-level fault raised by the registry. For VIES the
// faultstring is itself the semantic error key (e.g. MS_UNAVAILABLE).
type Fault struct {
	Code   string
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault: %s: %s", f.Code, f.String)
}

// DecodeCheckVat decodes a registry response body into either a successful
// response or a protocol fault; exactly one of the two is non-nil unless an
// error is returned. The only error class is *MalformedResponseError,
// raised when a required tag cannot be located at all.
func DecodeCheckVat(body []byte) (*CheckVatResponse, *Fault, error) {
	s := string(body)

	if isFault(s) {
		code, _ := tagValue(s, "faultcode")
		msg, ok := tagValue(s, "faultstring")
		if !ok {
			return nil, nil, &MalformedResponseError{Missing: "faultstring", Body: s}
		}
		return nil, &Fault{Code: code, String: msg}, nil
	}

	resp := &CheckVatResponse{ServerValidated: true}
	for _, field := range []struct {
		tag string
		dst *string
	}{
		{"countryCode", &resp.CountryCode},
		{"vatNumber", &resp.VATNumber},
		{"name", &resp.Name},
		{"address", &resp.Address},
	} {
		v, ok := tagValue(s, field.tag)
		if !ok {
			return nil, nil, &MalformedResponseError{Missing: field.tag, Body: s}
		}
		*field.dst = v
	}

	valid, ok := tagValue(s, "valid")
	if !ok {
		return nil, nil, &MalformedResponseError{Missing: "valid", Body: s}
	}
	resp.Valid = valid == "true"

	// Addresses arrive multi-line; fold them for single-line display.
	resp.Address = strings.ReplaceAll(resp.Address, "\r\n", "\n")
	resp.Address = strings.ReplaceAll(resp.Address, "\n", ", ")

	return resp, nil, nil
}

// isFault reports whether the body is a SOAP fault envelope: a namespaced
// <Fault> element together with a <faultstring> element.
func isFault(body string) bool {
	return faultElemRegex.MatchString(body) && fieldRegex["faultstring"].MatchString(body)
}

// tagValue extracts the trimmed inner text of the first exact open/close
// pair for tag. The literal placeholder "---" normalizes to an empty string.
func tagValue(body, tag string) (string, bool) {
	m := fieldRegex[tag].FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if v == unknownPlaceholder {
		v = ""
	}
	return v, true
}

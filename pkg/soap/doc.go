// Package soap encodes and decodes the VIES checkVat wire format.
//
// The request side renders a fixed SOAP 1.1 envelope; the response side
// extracts the handful of fields the schema defines via exact tag-pair
// matching that tolerates arbitrary namespace prefixes. A full XML stack is
// intentionally avoided: the schema is tiny and fixed, member states vary
// their prefixes, and the registry's quirks (the "---" placeholder for
// unknown values, multi-line address bodies) are easier to preserve this way.
//
// DecodeCheckVat returns a tagged result: a successful response, a protocol
// Fault, or a MalformedResponseError when the body matches neither shape.
package soap

package soap

import (
	"fmt"
	"strings"
)

// checkVatTemplate is the fixed SOAP 1.1 request for the VIES checkVat
// operation. Values are substituted into a fresh copy on every call and are
// pre-validated upstream to be uppercase alphanumerics, so no XML escaping
// layer is needed; never route unvalidated input into this template.
const checkVatTemplate = `
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:urn="urn:ec.europa.eu:taxud:vies:services:checkVat:types">
  <soapenv:Header/>
  <soapenv:Body>
    <urn:checkVat>
      <urn:countryCode>%s</urn:countryCode>
      <urn:vatNumber>%s</urn:vatNumber>
    </urn:checkVat>
  </soapenv:Body>
</soapenv:Envelope>
`

// EncodeCheckVat renders the checkVat request envelope for the given country
// code and VAT number. The returned payload is trimmed of surrounding
// whitespace; its Content-Length is len() of the result. Deterministic, no
// side effects.
func EncodeCheckVat(countryCode, vatNumber string) []byte {
	return []byte(strings.TrimSpace(fmt.Sprintf(checkVatTemplate, countryCode, vatNumber)))
}

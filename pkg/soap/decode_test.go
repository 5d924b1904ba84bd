package soap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vatkit/vatkit/pkg/soap"
)

func successEnvelope(country, number, valid, name, address string) []byte {
	return fmt.Appendf(nil, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ns2:checkVatResponse xmlns:ns2="urn:ec.europa.eu:taxud:vies:services:checkVat:types">
      <ns2:countryCode>%s</ns2:countryCode>
      <ns2:vatNumber>%s</ns2:vatNumber>
      <ns2:requestDate>2024-05-02+02:00</ns2:requestDate>
      <ns2:valid>%s</ns2:valid>
      <ns2:name>%s</ns2:name>
      <ns2:address>%s</ns2:address>
    </ns2:checkVatResponse>
  </soap:Body>
</soap:Envelope>`, country, number, valid, name, address)
}

func faultEnvelope(faultstring string) []byte {
	return fmt.Appendf(nil, `<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>%s</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`, faultstring)
}

func TestDecodeCheckVat_Success(t *testing.T) {
	t.Parallel()

	resp, fault, err := soap.DecodeCheckVat(successEnvelope("DE", "123456789", "true", "ACME GmbH", "Musterstrasse 1, Berlin"))
	require.NoError(t, err)
	require.Nil(t, fault)
	require.NotNil(t, resp)

	assert.Equal(t, "DE", resp.CountryCode)
	assert.Equal(t, "123456789", resp.VATNumber)
	assert.True(t, resp.Valid)
	assert.True(t, resp.ServerValidated)
	assert.Equal(t, "ACME GmbH", resp.Name)
	assert.Equal(t, "Musterstrasse 1, Berlin", resp.Address)
}

func TestDecodeCheckVat_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	// The values that went into the request envelope come back unchanged
	// from a synthetic response carrying them.
	payload := string(soap.EncodeCheckVat("DE", "123456789"))
	require.Contains(t, payload, "DE")
	require.Contains(t, payload, "123456789")

	resp, fault, err := soap.DecodeCheckVat(successEnvelope("DE", "123456789", "true", "ACME", "Berlin"))
	require.NoError(t, err)
	require.Nil(t, fault)
	assert.Equal(t, "DE", resp.CountryCode)
	assert.Equal(t, "123456789", resp.VATNumber)
	assert.True(t, resp.ServerValidated)
}

func TestDecodeCheckVat_InvalidNumber(t *testing.T) {
	t.Parallel()

	resp, fault, err := soap.DecodeCheckVat(successEnvelope("DE", "000000000", "false", "---", "---"))
	require.NoError(t, err)
	require.Nil(t, fault)

	assert.False(t, resp.Valid)
	assert.True(t, resp.ServerValidated)
}

func TestDecodeCheckVat_PlaceholderNormalizesToEmpty(t *testing.T) {
	t.Parallel()

	resp, _, err := soap.DecodeCheckVat(successEnvelope("DE", "123456789", "true", "---", "---"))
	require.NoError(t, err)

	assert.Empty(t, resp.Name)
	assert.Empty(t, resp.Address)
}

func TestDecodeCheckVat_MultilineAddressFolded(t *testing.T) {
	t.Parallel()

	resp, _, err := soap.DecodeCheckVat(successEnvelope("IE", "6388047V", "true", "ACME", "1 Main St\nDublin"))
	require.NoError(t, err)

	assert.Equal(t, "1 Main St, Dublin", resp.Address)
}

func TestDecodeCheckVat_CRLFAddressFolded(t *testing.T) {
	t.Parallel()

	resp, _, err := soap.DecodeCheckVat(successEnvelope("IE", "6388047V", "true", "ACME", "1 Main St\r\nDublin"))
	require.NoError(t, err)

	assert.Equal(t, "1 Main St, Dublin", resp.Address)
}

func TestDecodeCheckVat_ValidFieldIsStrict(t *testing.T) {
	t.Parallel()

	// Anything other than the literal "true" is false.
	resp, _, err := soap.DecodeCheckVat(successEnvelope("DE", "123456789", "TRUE", "ACME", "Berlin"))
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestDecodeCheckVat_Fault(t *testing.T) {
	t.Parallel()

	resp, fault, err := soap.DecodeCheckVat(faultEnvelope("MS_UNAVAILABLE"))
	require.NoError(t, err)
	require.Nil(t, resp)
	require.NotNil(t, fault)

	assert.Equal(t, "soap:Server", fault.Code)
	assert.Equal(t, "MS_UNAVAILABLE", fault.String)
	assert.Contains(t, fault.Error(), "MS_UNAVAILABLE")
}

func TestDecodeCheckVat_MissingValidField(t *testing.T) {
	t.Parallel()

	body := []byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ns2:checkVatResponse xmlns:ns2="urn:ec.europa.eu:taxud:vies:services:checkVat:types">
      <ns2:countryCode>DE</ns2:countryCode>
      <ns2:vatNumber>123456789</ns2:vatNumber>
      <ns2:name>ACME</ns2:name>
      <ns2:address>Berlin</ns2:address>
    </ns2:checkVatResponse>
  </soap:Body>
</soap:Envelope>`)

	resp, fault, err := soap.DecodeCheckVat(body)
	require.Nil(t, resp)
	require.Nil(t, fault)
	require.Error(t, err)

	assert.ErrorIs(t, err, soap.ErrMalformedResponse)

	// The raw body travels with the error for diagnostics.
	var malformed *soap.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "valid", malformed.Missing)
	assert.Equal(t, string(body), malformed.Body)
}

func TestDecodeCheckVat_GarbageBody(t *testing.T) {
	t.Parallel()

	_, _, err := soap.DecodeCheckVat([]byte("<html>502 Bad Gateway</html>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, soap.ErrMalformedResponse)
}

func TestDecodeCheckVat_FaultWithoutFaultstringIsMalformed(t *testing.T) {
	t.Parallel()

	// A <Fault> element alone does not count as a fault envelope; with no
	// success fields either, the body is malformed.
	body := []byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body><soap:Fault><faultcode>soap:Server</faultcode></soap:Fault></soap:Body>
</soap:Envelope>`)

	_, _, err := soap.DecodeCheckVat(body)
	require.Error(t, err)
	assert.ErrorIs(t, err, soap.ErrMalformedResponse)
}

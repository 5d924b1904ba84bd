package vat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vatkit/vatkit/pkg/vat"
)

func TestParseID_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		country string
		number  string
	}{
		{"IE6388047V", "IE", "6388047V"},
		{"DE123456789", "DE", "123456789"},
		{"EL123456789", "EL", "123456789"},
		{"XI123456789", "XI", "123456789"},
		{"NL123456789B01", "NL", "123456789B01"},
		{"DE12", "DE", "12"}, // minimum number length
		{"FR1234567890123", "FR", "1234567890123"}, // maximum number length
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			id, err := vat.ParseID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.country, id.CountryCode)
			assert.Equal(t, tt.number, id.Number)
			assert.Equal(t, tt.raw, id.String())
		})
	}
}

func TestParseID_InvalidCountry(t *testing.T) {
	t.Parallel()

	tests := []string{
		"XX1234567", // well-formed remainder, unsupported country
		"GR123456789", // Greece must use EL in VIES
		"ZZ12",
		"D",  // too short to even carry a country code
		"",
		"de123456789", // lowercase prefix is not a member of the set
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			_, err := vat.ParseID(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, vat.ErrInvalidCountry)
			assert.NotErrorIs(t, err, vat.ErrInvalidNumber)
		})
	}
}

func TestParseID_InvalidNumber(t *testing.T) {
	t.Parallel()

	tests := []string{
		"DE1",             // number segment too short
		"DE12345678901234", // number segment too long
		"DE12345678a",     // lowercase in number segment
		"DE 123456789",    // embedded whitespace
		"IE63-88047",      // punctuation
		"DE",              // no number segment at all
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			_, err := vat.ParseID(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, vat.ErrInvalidNumber)
			assert.NotErrorIs(t, err, vat.ErrInvalidCountry)
		})
	}
}

func TestIsSupportedCountry(t *testing.T) {
	t.Parallel()

	assert.True(t, vat.IsSupportedCountry("DE"))
	assert.True(t, vat.IsSupportedCountry("EL"))
	assert.True(t, vat.IsSupportedCountry("XI"))
	assert.False(t, vat.IsSupportedCountry("XX"))
	assert.False(t, vat.IsSupportedCountry("GR"))
	assert.False(t, vat.IsSupportedCountry("de"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"de 123.456.789", "DE123456789"},
		{" IE6388047V ", "IE6388047V"},
		{"NL-123456789-B01", "NL123456789B01"},
		{"DE\t123 456 789", "DE123456789"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, vat.Normalize(tt.in))
		})
	}
}

func TestNormalizeThenParse(t *testing.T) {
	t.Parallel()

	id, err := vat.ParseID(vat.Normalize(" de 123.456.789 "))
	require.NoError(t, err)
	assert.Equal(t, "DE", id.CountryCode)
	assert.Equal(t, "123456789", id.Number)
}

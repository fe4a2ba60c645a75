// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_USNationalNumber(t *testing.T) {
	n, err := Parse("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, "6502530000", n.NationalNumber)
	assert.Equal(t, "", n.RawInput, "Parse must not retain raw input")
}

func TestParseAndKeepRawInput_RetainsSource(t *testing.T) {
	n, err := ParseAndKeepRawInput("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, CountryCodeSourceFromDefaultCountry, n.CountryCodeSource)
	assert.Equal(t, "650-253-0000", n.RawInput)
}

func TestParse_PlusSignInternational(t *testing.T) {
	n, err := Parse("+41 79 123 45 67", "")
	require.NoError(t, err)
	assert.Equal(t, 41, n.CountryCode)
	assert.Equal(t, "791234567", n.NationalNumber)
}

func TestParse_IDDPrefix(t *testing.T) {
	// This port only recognizes the universal "00" IDD exit code, not
	// NANP's "011".
	n, err := Parse("00 44 20 71234567", "US")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
}

func TestParse_TooShortNSN(t *testing.T) {
	_, err := Parse("+1 2", "")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrTooShortNSN, pe.Type)
}

func TestParse_UnknownCountryCode(t *testing.T) {
	_, err := Parse("+9999123456", "")
	require.Error(t, err)
}

func TestParse_Extension(t *testing.T) {
	n, err := Parse("650-253-0000 ext 123", "US")
	require.NoError(t, err)
	assert.Equal(t, "123", n.Extension)
	assert.Equal(t, "6502530000", n.NationalNumber)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("   ", "US")
	require.Error(t, err)
}

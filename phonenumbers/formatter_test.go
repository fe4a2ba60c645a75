// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_E164(t *testing.T) {
	n, err := Parse("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", Format(n, E164))
}

func TestFormat_National(t *testing.T) {
	n, err := Parse("6502530000", "US")
	require.NoError(t, err)
	assert.Equal(t, "650-253-0000", Format(n, National))
}

func TestFormat_International(t *testing.T) {
	n, err := Parse("6502530000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+1 650-253-0000", Format(n, International))
}

func TestFormat_RFC3966_HyphenJoinsGroupsRegardlessOfTemplate(t *testing.T) {
	// GB's mobile format template uses a space ("$1 $2"); RFC3966 must
	// still join with "-".
	n, err := Parse("07911123456", "GB")
	require.NoError(t, err)
	assert.Equal(t, "tel:+44-7911-123456", Format(n, RFC3966))
}

func TestFormat_RFC3966_WithExtension(t *testing.T) {
	n, err := Parse("650-253-0000 ext 77", "US")
	require.NoError(t, err)
	assert.Equal(t, "tel:+1-650-253-0000;ext=77", Format(n, RFC3966))
}

func TestFormat_NationalPrefixFormattingRule(t *testing.T) {
	n, err := Parse("0791234567", "CH")
	require.NoError(t, err)
	assert.Equal(t, "791234567", n.NationalNumber)
	assert.Equal(t, "079 123 45 67", Format(n, National))
}

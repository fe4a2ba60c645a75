// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumberMatch_ExactMatch(t *testing.T) {
	n, err := Parse("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, ExactMatch, IsNumberMatch(n, "+1 650-253-0000"))
}

func TestIsNumberMatch_NSNMatch(t *testing.T) {
	n, err := Parse("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, NSNMatch, IsNumberMatch(n, "6502530000"))
}

func TestIsNumberMatch_NoMatch(t *testing.T) {
	n, err := Parse("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, NoMatch, IsNumberMatch(n, "5551234567"))
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeniency_String(t *testing.T) {
	assert.Equal(t, "POSSIBLE", Possible.String())
	assert.Equal(t, "VALID", Valid.String())
	assert.Equal(t, "STRICT_GROUPING", StrictGrouping.String())
	assert.Equal(t, "EXACT_GROUPING", ExactGrouping.String())
	assert.Equal(t, "UNKNOWN", Leniency(99).String())
}

func TestLeniency_AtLeast(t *testing.T) {
	assert.True(t, ExactGrouping.AtLeast(Possible))
	assert.True(t, Valid.AtLeast(Valid))
	assert.False(t, Possible.AtLeast(Valid))
}

func TestParseLeniency(t *testing.T) {
	cases := map[string]Leniency{
		"possible":        Possible,
		"VALID":           Valid,
		"Strict_Grouping": StrictGrouping,
		"EXACT_GROUPING":  ExactGrouping,
	}
	for input, want := range cases {
		got, err := ParseLeniency(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseLeniency_Unknown(t *testing.T) {
	_, err := ParseLeniency("LOOSE")
	require.Error(t, err)
}

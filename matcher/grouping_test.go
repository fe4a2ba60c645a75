// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrouping_ContinuousNumberAcceptedAtStrict is the regression case for
// allGroupsRemainGrouped's NDC-continuation check: a number written with no
// intervening formatting at all must still pass STRICT_GROUPING, whether the
// leading group is attached to a "+"-prefixed country code or a national
// prefix digit.
func TestGrouping_ContinuousNumberAcceptedAtStrict(t *testing.T) {
	cases := []struct {
		name string
		text string
		raw  string
	}{
		{"plus prefixed", "Contact +41791234567 today.", "+41791234567"},
		{"national prefixed", "Call 0791234567 please.", "0791234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matches := allMatches(t, tc.text, "CH", StrictGrouping, 1000)
			require.Len(t, matches, 1)
			assert.Equal(t, tc.raw, matches[0].Raw)
		})
	}
}

// TestGrouping_CanonicalNationalFormAcceptedAtExact checks the plain
// canonical-grouping case at both STRICT_GROUPING and EXACT_GROUPING.
func TestGrouping_CanonicalNationalFormAcceptedAtExact(t *testing.T) {
	text := "Ring 079 123 45 67 anytime."

	strict := allMatches(t, text, "CH", StrictGrouping, 1000)
	require.Len(t, strict, 1)
	assert.Equal(t, "079 123 45 67", strict[0].Raw)

	exact := allMatches(t, text, "CH", ExactGrouping, 1000)
	require.Len(t, exact, 1)
	assert.Equal(t, "079 123 45 67", exact[0].Raw)
}

// TestGrouping_USCanonicalAcceptedAtBothLevels covers a second region so the
// grouping predicates aren't only exercised against CH's single format rule.
func TestGrouping_USCanonicalAcceptedAtBothLevels(t *testing.T) {
	text := "Reach 650-253-0000 for details."
	for _, lvl := range []Leniency{StrictGrouping, ExactGrouping} {
		matches := allMatches(t, text, "US", lvl, 1000)
		require.Len(t, matches, 1)
		assert.Equal(t, "650-253-0000", matches[0].Raw)
	}
}

// TestGrouping_StrictAcceptsMergedGroupsExactDoesNot exercises the §8
// property-5 subset relationship (STRICT_GROUPING is a superset of
// EXACT_GROUPING) with a concrete witness: merging the last two canonical
// groups together still leaves every group's digits findable in order, so
// STRICT_GROUPING accepts it, but EXACT_GROUPING requires each group to
// appear on its own and rejects it.
func TestGrouping_StrictAcceptsMergedGroupsExactDoesNot(t *testing.T) {
	text := "See +41-79-123-4567 now."

	strict := allMatches(t, text, "CH", StrictGrouping, 1000)
	require.Len(t, strict, 1)

	exact := allMatches(t, text, "CH", ExactGrouping, 1000)
	assert.Empty(t, exact)

	assert.GreaterOrEqual(t, len(strict), len(exact))
}

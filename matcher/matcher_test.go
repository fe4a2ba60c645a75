// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allMatches(t *testing.T, text, region string, leniency Leniency, maxTries int) []Match {
	t.Helper()
	it, err := New(text, region, leniency, maxTries)
	require.NoError(t, err)
	var out []Match
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}

func TestScenario1_USBasicNumber(t *testing.T) {
	matches := allMatches(t, "Call me at 650-253-0000.", "US", Valid, 1000)
	require.Len(t, matches, 1)
	assert.Equal(t, 11, matches[0].Start)
	assert.Equal(t, "650-253-0000", matches[0].Raw)
	assert.Equal(t, "6502530000", matches[0].Number.NationalNumber)
}

func TestScenario2_PublicationPageRejected(t *testing.T) {
	matches := allMatches(t, "VLDB J. 12(3): 211-227 (2003).", "US", Valid, 1000)
	assert.Empty(t, matches)
}

func TestScenario3_SlashDateRejected(t *testing.T) {
	matches := allMatches(t, "on 08/31/95 at noon", "US", Valid, 1000)
	assert.Empty(t, matches)
}

func TestScenario4_TimestampRejected(t *testing.T) {
	matches := allMatches(t, "2012-01-02 08:00 log entry", "US", Valid, 1000)
	assert.Empty(t, matches)
}

func TestScenario5_SwissSplitNumberRecovery(t *testing.T) {
	matches := allMatches(t, "Contact: +41 79 123 45 67 / 68, ext 9", "CH", Valid, 1000)
	require.Len(t, matches, 1)
	assert.True(t, len(matches[0].Raw) >= 2 && matches[0].Raw[len(matches[0].Raw)-2:] == "67")
}

func TestScenario6_LatinLetterBoundary(t *testing.T) {
	valid := allMatches(t, "abc8005001234def", "US", Valid, 1000)
	assert.Empty(t, valid)

	possible := allMatches(t, "abc8005001234def", "US", Possible, 1000)
	require.Len(t, possible, 1)
	assert.Equal(t, "8005001234", possible[0].Raw)
}

func TestEmptyText(t *testing.T) {
	assert.Empty(t, allMatches(t, "", "US", Valid, 1000))
}

func TestZeroTryBudget(t *testing.T) {
	assert.Empty(t, allMatches(t, "Call 650-253-0000 now", "US", Valid, 0))
}

func TestNegativeMaxTriesRejected(t *testing.T) {
	_, err := New("650-253-0000", "US", Valid, -1)
	require.Error(t, err)
}

func TestNonOverlappingMonotonicOffsets(t *testing.T) {
	text := "Reach 650-253-0000 or 212-555-0100 for details."
	matches := allMatches(t, text, "US", Valid, 1000)
	require.Len(t, matches, 2)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i].Start, matches[i-1].Start+len(matches[i-1].Raw))
	}
}

func TestRawSpanFidelity(t *testing.T) {
	text := "Reach 650-253-0000 for details."
	matches := allMatches(t, text, "US", Valid, 1000)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, m.Raw, text[m.Start:m.Start+len(m.Raw)])
}

func TestLeniencyMonotonicity(t *testing.T) {
	text := "abc8005001234def and 650-253-0000"
	possible := allMatches(t, text, "US", Possible, 1000)
	valid := allMatches(t, text, "US", Valid, 1000)
	assert.GreaterOrEqual(t, len(possible), len(valid))
}

func TestIteratorResetPanics(t *testing.T) {
	it, err := New("650-253-0000", "US", Valid, 1000)
	require.NoError(t, err)
	assert.Panics(t, func() { it.Reset() })
}

func TestIteratorCurrentBeforeNext(t *testing.T) {
	it, err := New("650-253-0000", "US", Valid, 1000)
	require.NoError(t, err)
	_, ok := it.Current()
	assert.False(t, ok)
}

func TestTrimAfterSecondNumberStart(t *testing.T) {
	assert.Equal(t, "+41 79 123 45 67", TrimAfterSecondNumberStart("+41 79 123 45 67/x68"))
	assert.Equal(t, "650-253-0000", TrimAfterSecondNumberStart("650-253-0000"))
}

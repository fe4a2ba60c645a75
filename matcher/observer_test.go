// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aferret/phonegrep/internal/observability"
)

func TestNewWithObserver_LogsVerifySteps(t *testing.T) {
	var buf bytes.Buffer
	debug := observability.NewDebugObserver(&buf)

	it, err := NewWithObserver("Call me at 650-253-0000.", "US", Valid, 1000, debug)
	require.NoError(t, err)

	_, ok := it.Next()
	require.True(t, ok)

	assert.Contains(t, buf.String(), "verify")
}

func TestNewWithObserver_NilObserverIsSilent(t *testing.T) {
	it, err := NewWithObserver("Call me at 650-253-0000.", "US", Valid, 1000, nil)
	require.NoError(t, err)

	_, ok := it.Next()
	assert.True(t, ok)
}

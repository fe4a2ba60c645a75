// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"fmt"

	"github.com/aferret/phonegrep/internal/observability"
)

// Iterator is a single-producer, single-pass cursor over a text's phone
// number matches (§4.G). It is constructed once per (text, region,
// leniency, try budget) tuple and consumed linearly; it is never
// resettable or re-windable (§7).
//
// The core spec describes the constructor as taking an injected parser
// collaborator; this port's parser is the stateless phonenumbers package
// rather than an object, so New takes no parser argument.
type Iterator struct {
	s          *scanner
	current    Match
	hasCurrent bool
	done       bool
}

// New builds an Iterator over text. region is the preferred default region
// ("" or "ZZ" for none). maxTries bounds the number of parse/verify
// attempts the scanner will make; it must be non-negative.
func New(text, region string, leniency Leniency, maxTries int) (*Iterator, error) {
	return NewWithObserver(text, region, leniency, maxTries, nil)
}

// NewWithObserver is like New but reports per-candidate accept/reject
// timing to debug when debug is non-nil, the same step-logging §3's
// observability wiring calls for.
func NewWithObserver(text, region string, leniency Leniency, maxTries int, debug *observability.DebugObserver) (*Iterator, error) {
	if maxTries < 0 {
		return nil, fmt.Errorf("matcher: max_tries must be >= 0, got %d", maxTries)
	}
	s := newScanner(text, region, leniency, maxTries)
	s.debug = debug
	return &Iterator{s: s}, nil
}

// Next advances the iterator and returns the next match, or ok=false at
// end of scan. Once it returns false it always returns false thereafter.
func (it *Iterator) Next() (Match, bool) {
	if it.done {
		return Match{}, false
	}
	m, ok := it.s.find()
	if !ok {
		it.done = true
		it.hasCurrent = false
		return Match{}, false
	}
	it.current = m
	it.hasCurrent = true
	return m, true
}

// Current returns the last match produced by Next, and whether one exists
// (false before the first successful Next call, or after end of scan).
func (it *Iterator) Current() (Match, bool) {
	return it.current, it.hasCurrent
}

// Reset is not supported: rewinding a scan mid-iteration is a contract
// violation (§7), not a recoverable error.
func (it *Iterator) Reset() {
	panic("matcher: Iterator does not support Reset")
}

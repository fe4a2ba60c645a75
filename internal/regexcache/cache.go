// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package regexcache is a process-wide, read-mostly cache of compiled
// coregex patterns, keyed by pattern string. The matcher and phonenumbers
// packages both compile a small, fixed set of patterns (the master regex,
// the pre-filters, per-region formatting patterns); none of those patterns
// are ever mutated after compilation, so a single shared cache lets every
// Matcher instance and every parse call reuse the same *coregex.Regex
// instead of recompiling it, the way the design notes ask for a
// "concurrent map or once-per-key lazy initializer".
package regexcache

import (
	"fmt"
	"sync"

	"github.com/coregx/coregex"
)

var cache sync.Map // map[string]*coregex.Regex

// Get compiles pattern on first use and returns the cached *coregex.Regex
// on every subsequent call with the same pattern string. Safe for
// concurrent use by multiple Matcher instances.
func Get(pattern string) (*coregex.Regex, error) {
	if v, ok := cache.Load(pattern); ok {
		return v.(*coregex.Regex), nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexcache: compile %q: %w", pattern, err)
	}

	actual, _ := cache.LoadOrStore(pattern, re)
	return actual.(*coregex.Regex), nil
}

// MustGet is like Get but panics on a compile error. Intended for patterns
// that are compile-time constants baked into the source, where a failure
// indicates a programmer error rather than bad input.
func MustGet(pattern string) *coregex.Regex {
	re, err := Get(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"github.com/coregx/coregex"

	"github.com/aferret/phonegrep/internal/regexcache"
)

// PlusChars is the set of characters that may stand in for a leading "+" in
// raw text: the ASCII plus sign and the fullwidth plus sign seen in CJK
// input (U+FF0B).
const PlusChars = "+＋"

// ValidPunctuationChars is the set of separator characters allowed to
// appear inside a phone number candidate between runs of digits: plain and
// fullwidth hyphens, slashes, dots, parentheses (including fullwidth and
// square brackets), tildes, and whitespace.
const ValidPunctuationChars = `-\x{2010}\x{2212}\x{FF0D}.()\[\]\x{FF08}\x{FF09}\x{FF3B}\x{FF3D}/~\x{301C}\x{FF5E}\s`

// ValidPunctuation is a regex character class built from
// ValidPunctuationChars, suitable for embedding directly in a larger
// pattern (e.g. `[valid punctuation]{0,4}` from §4.D).
const ValidPunctuation = `[` + ValidPunctuationChars + `]`

// ExtensionPatternForMatching is the regex fragment (in coregex/RE2 syntax)
// used by the master regex and by the extension-aware verifier checks to
// recognize a trailing extension. It mirrors the shape of a real
// libphonenumber extension pattern without reproducing it verbatim: an
// explicit ";ext=" marker, or a run of separators followed by an "ext"/"x"
// keyword, followed by 1-7 digits.
const ExtensionPatternForMatching = `(?:;ext=(\d{1,7})|[ \t,\-]*(?:e?xt(?:ension)?|int|[x#~])[:.]?[ \t,\-]*(\d{1,7})#?)`

// NonDigitsPattern returns the shared, process-cached regex that matches a
// single run of non-digit characters. The matcher's grouping check splits
// candidates with its own splitDigitRuns helper, not with this pattern.
func NonDigitsPattern() *coregex.Regex {
	return regexcache.MustGet(`\D+`)
}

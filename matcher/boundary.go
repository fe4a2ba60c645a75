// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/aferret/phonegrep/phonenumbers"
)

// latinRanges merges the Unicode blocks a boundary-adjacent rune must fall
// within to count as a Latin letter, the same rangetable.Merge idiom the
// uax29 tokenizer uses to combine script ranges for its filters.
var latinRanges = rangetable.Merge(
	unicode.Blocks["Basic Latin"],
	unicode.Blocks["Latin-1 Supplement"],
	unicode.Blocks["Latin Extended-A"],
	unicode.Blocks["Latin Extended-B"],
	unicode.Blocks["Latin Extended Additional"],
	unicode.Blocks["Combining Diacritical Marks"],
)

// isLeadClass reports whether c may legitimately start a phone number: a
// plus-class character, or one of the opening brackets "(", "[", the
// fullwidth left parenthesis, or the fullwidth left square bracket.
func isLeadClass(c rune) bool {
	if strings.ContainsRune(phonenumbers.PlusChars, c) {
		return true
	}
	switch c {
	case '(', '[', '（', '［':
		return true
	}
	return false
}

// isLatinLetter reports whether c is a Unicode letter or non-spacing
// combining mark within the Latin script blocks. Combining marks are
// accepted on the assumption they attach to a preceding Latin letter.
func isLatinLetter(c rune) bool {
	if !unicode.Is(latinRanges, c) {
		return false
	}
	return unicode.IsLetter(c) || unicode.Is(unicode.Mn, c)
}

// isInvalidPunctuation reports whether c is "%" or a currency symbol; a
// character boundary adjacent to either disqualifies a candidate.
func isInvalidPunctuation(c rune) bool {
	return c == '%' || unicode.Is(unicode.Sc, c)
}

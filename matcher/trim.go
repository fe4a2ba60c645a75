// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import "unicode"

// TrimAfterSecondNumberStart cuts candidate at the first "/" or "\" that is
// followed, after skipping any spaces, by an "x" -- the marker the source
// text uses to introduce a second split number ("+41 79 123 45 67 / 68,
// ext 9" is NOT cut here, since "6" follows the slash, not "x"; a literal
// "x" does trigger the cut). §6 exposes this as a standalone pure function
// for the rest of the library to reuse.
func TrimAfterSecondNumberStart(candidate string) string {
	runes := []rune(candidate)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '/' && runes[i] != '\\' {
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		if j < len(runes) && (runes[j] == 'x' || runes[j] == 'X') {
			return string(runes[:i])
		}
	}
	return candidate
}

// trimUnwanted right-strips a candidate of trailing characters that are
// neither "#" nor a letter-or-digit, keeping "#" since it marks an
// extension.
func trimUnwanted(candidate string) string {
	runes := []rune(candidate)
	firstUnwanted := -1
	for i, r := range runes {
		if r == '#' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			firstUnwanted = -1
			continue
		}
		if firstUnwanted == -1 {
			firstUnwanted = i
		}
	}
	if firstUnwanted == -1 {
		return candidate
	}
	return string(runes[:firstUnwanted])
}

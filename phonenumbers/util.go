// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import "strings"

// digitMap translates the ASCII digits and their fullwidth forms to ASCII
// "0"-"9"; digits from other Unicode decimal-digit blocks are not mapped. Real
// input mined from arbitrary text occasionally uses fullwidth digits
// (U+FF10-FF19); normalizing them here keeps the rest of the pipeline
// (length checks, pattern matching) working over plain ASCII.
var digitMap = map[rune]byte{
	'0': '0', '1': '1', '2': '2', '3': '3', '4': '4',
	'5': '5', '6': '6', '7': '7', '8': '8', '9': '9',
	'０': '0', '１': '1', '２': '2', '３': '3', '４': '4',
	'５': '5', '６': '6', '７': '7', '８': '8', '９': '9',
}

// NormalizeDigits converts every digit rune in s to its ASCII form. When
// keepNonDigits is true, every other rune is kept as-is; otherwise only
// the digits survive.
func NormalizeDigits(s string, keepNonDigits bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitMap[r]; ok {
			b.WriteByte(d)
			continue
		}
		if keepNonDigits {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeDigitsOnly strips every non-digit rune from s, normalizing
// fullwidth digits along the way.
func NormalizeDigitsOnly(s string) string {
	return NormalizeDigits(s, false)
}

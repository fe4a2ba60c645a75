// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import "strings"

// IsNumberMatch compares a parsed number against a second, loosely-formatted
// phone number string, the way §4.E.4's carrier-code check and the
// standalone matching contract in §6 both need. It never returns an error:
// an unparseable second string just can't produce better than NSNMatch.
func IsNumberMatch(first *PhoneNumber, second string) MatchType {
	if first == nil {
		return NoMatch
	}
	secondDigits := NormalizeDigitsOnly(second)
	firstDigits := first.NationalNumber
	if secondDigits == "" || firstDigits == "" {
		return NoMatch
	}

	if secondDigits == firstDigits {
		return NSNMatch
	}

	if n2, err := ParseAndKeepRawInput(second, "ZZ"); err == nil {
		switch {
		case n2.CountryCode == first.CountryCode && n2.NationalNumber == firstDigits:
			return ExactMatch
		case n2.NationalNumber == firstDigits:
			return NSNMatch
		}
	}

	// One may be a shorter, trailing fragment of the other (e.g. a short
	// code embedded at the tail of a longer dialed string).
	const minShortMatch = 4
	switch {
	case len(secondDigits) >= minShortMatch && strings.HasSuffix(firstDigits, secondDigits):
		return ShortNSNMatch
	case len(firstDigits) >= minShortMatch && strings.HasSuffix(secondDigits, firstDigits):
		return ShortNSNMatch
	}

	return NoMatch
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

// CountryCodeSource records how the country calling code of a parsed number
// was determined. The matcher's national-prefix check (§4.E.iii) dispatches
// on whether a number was parsed from international form
// (FromNumberWithPlusSign / FromNumberWithIDD / FromNumberWithoutPlusSign)
// or inferred from the caller-supplied default region (FromDefaultCountry).
type CountryCodeSource int

const (
	CountryCodeSourceUnspecified CountryCodeSource = iota
	CountryCodeSourceFromNumberWithPlusSign
	CountryCodeSourceFromNumberWithIDD
	CountryCodeSourceFromNumberWithoutPlusSign
	CountryCodeSourceFromDefaultCountry
)

func (s CountryCodeSource) String() string {
	switch s {
	case CountryCodeSourceFromNumberWithPlusSign:
		return "FROM_NUMBER_WITH_PLUS_SIGN"
	case CountryCodeSourceFromNumberWithIDD:
		return "FROM_NUMBER_WITH_IDD"
	case CountryCodeSourceFromNumberWithoutPlusSign:
		return "FROM_NUMBER_WITHOUT_PLUS_SIGN"
	case CountryCodeSourceFromDefaultCountry:
		return "FROM_DEFAULT_COUNTRY"
	default:
		return "UNSPECIFIED"
	}
}

// PhoneNumber is the parsed representation produced by Parse /
// ParseAndKeepRawInput. National significant number digits are kept as a
// string (not an integer) so that a leading zero in the national number,
// legal in several regions' NSNs, is never silently lost the way storing it
// as a numeric type would lose it.
type PhoneNumber struct {
	CountryCode    int
	NationalNumber string

	// Extension holds the digits-only extension, or "" if none.
	Extension string

	// CountryCodeSource records how CountryCode was determined. Internal
	// byproduct of ParseAndKeepRawInput; cleared by the matcher before a
	// match is returned to callers (§4.E.5).
	CountryCodeSource CountryCodeSource

	// RawInput is the original text handed to the parser, verbatim.
	// Internal byproduct; cleared by the matcher before a match is
	// returned (§4.E.5).
	RawInput string

	// PreferredDomesticCarrierCode is the carrier-selection code stripped
	// from the front of a national number during parsing, if any. Internal
	// byproduct; cleared by the matcher before a match is returned
	// (§4.E.5).
	PreferredDomesticCarrierCode string
}

// Equal reports whether two numbers describe the same phone number,
// ignoring the internal-byproduct fields that the matcher sanitizes away
// (§4.E.5, testable property §8.3: round-trip equality).
func (n *PhoneNumber) Equal(other *PhoneNumber) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.CountryCode == other.CountryCode &&
		n.NationalNumber == other.NationalNumber &&
		n.Extension == other.Extension
}

// Sanitize clears the fields that §4.E.5 requires the matcher to zero out
// before returning a match: they are internal byproducts of raw-input
// parsing, not meant to be exposed on a match.
func (n *PhoneNumber) Sanitize() {
	if n == nil {
		return
	}
	n.CountryCodeSource = CountryCodeSourceUnspecified
	n.RawInput = ""
	n.PreferredDomesticCarrierCode = ""
}

// PhoneNumberFormat selects the rendering used by Format.
type PhoneNumberFormat int

const (
	E164 PhoneNumberFormat = iota
	International
	National
	RFC3966
)

// MatchType is the result of IsNumberMatch.
type MatchType int

const (
	NoMatch MatchType = iota
	ShortNSNMatch
	NSNMatch
	ExactMatch
)

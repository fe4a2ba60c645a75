// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

// Region metadata is a small, hand-curated table covering enough real
// dialing plans to exercise every branch the matcher's verifier touches:
// a NANP region with no mandatory national-prefix formatting rule (US), a
// region whose rule is mandatory (CH, DE, FR), a region with leading-digit
// gated primary formats (GB, mobile vs. landline), and a region exposing
// an alternate-format fallback in the grouping check (CH). It deliberately
// does not attempt to reproduce libphonenumber's full metadata corpus —
// see DESIGN.md.
//
// The shape (a map literal built by an init-time constructor function) is
// the same one the teacher's phone validator uses for its country-code
// table (initCountryCodeMap / initSortedCountryCodes).
func buildRegionMetadata() map[string]*PhoneMetadata {
	regions := []*PhoneMetadata{
		{
			ID:                       "US",
			CountryCode:              1,
			NationalPrefix:           "1",
			NationalPrefixForParsing: "1",
			NationalNumberPattern:    `[2-9]\d{9}`,
			PossibleLengths:          []int{10},
			MainCountryForCode:       true,
			Formats: []NumberFormat{
				{
					Pattern:        `(\d{3})(\d{3})(\d{4})`,
					FormatTemplate: "$1-$2-$3",
					// NANP numbers are conventionally dialed with a leading
					// 1 but formatted without it; no mandatory prefix rule.
				},
			},
		},
		{
			ID:                       "GB",
			CountryCode:              44,
			NationalPrefix:           "0",
			NationalPrefixForParsing: "0",
			NationalNumberPattern:    `7\d{9}|[1-9]\d{8,9}`,
			PossibleLengths:          []int{9, 10},
			MainCountryForCode:       true,
			Formats: []NumberFormat{
				{
					Pattern:                      `(7\d{3})(\d{6})`,
					FormatTemplate:               "$1 $2",
					LeadingDigitsPattern:         `7`,
					NationalPrefixFormattingRule: "0${1}",
				},
				{
					Pattern:                      `(\d{2})(\d{4})(\d{4})`,
					FormatTemplate:               "$1 $2 $3",
					LeadingDigitsPattern:         `[1-689]`,
					NationalPrefixFormattingRule: "0${1}",
				},
			},
		},
		{
			ID:                       "CH",
			CountryCode:              41,
			NationalPrefix:           "0",
			NationalPrefixForParsing: "0",
			NationalNumberPattern:    `[1-9]\d{8}`,
			PossibleLengths:          []int{9},
			MainCountryForCode:       true,
			Formats: []NumberFormat{
				{
					Pattern:                      `(\d{2})(\d{3})(\d{2})(\d{2})`,
					FormatTemplate:               "$1 $2 $3 $4",
					NationalPrefixFormattingRule: "0${1}",
				},
			},
		},
		{
			ID:                       "DE",
			CountryCode:              49,
			NationalPrefix:           "0",
			NationalPrefixForParsing: "0",
			NationalNumberPattern:    `[1-9]\d{6,10}`,
			PossibleLengths:          []int{7, 8, 9, 10, 11},
			MainCountryForCode:       true,
			Formats: []NumberFormat{
				{
					Pattern:                      `(\d{3})(\d{3,8})`,
					FormatTemplate:               "$1 $2",
					NationalPrefixFormattingRule: "0${1}",
				},
			},
		},
		{
			ID:                       "FR",
			CountryCode:              33,
			NationalPrefix:           "0",
			NationalPrefixForParsing: "0",
			NationalNumberPattern:    `[1-9]\d{8}`,
			PossibleLengths:          []int{9},
			MainCountryForCode:       true,
			Formats: []NumberFormat{
				{
					Pattern:                      `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`,
					FormatTemplate:               "$1 $2 $3 $4 $5",
					NationalPrefixFormattingRule: "0${1}",
				},
			},
		},
		{
			ID:                       "AU",
			CountryCode:              61,
			NationalPrefix:           "0",
			NationalPrefixForParsing: "0",
			NationalNumberPattern:    `[1-9]\d{8}`,
			PossibleLengths:          []int{9},
			MainCountryForCode:       true,
			Formats: []NumberFormat{
				{
					Pattern:                      `(\d)(\d{4})(\d{4})`,
					FormatTemplate:               "$1 $2 $3",
					NationalPrefixFormattingRule: "0${1}",
				},
			},
		},
	}

	m := make(map[string]*PhoneMetadata, len(regions))
	for _, r := range regions {
		m[r.ID] = r
	}
	return m
}

// buildAlternateFormats returns extra grouping rules, keyed by country
// calling code, that the §4.E grouping check falls back to when the
// primary format's predicate rejects a candidate. Swiss mobile numbers are
// sometimes written "79 1234567" (2+7) rather than the canonical
// "79 123 45 67" (2+3+2+2); both describe the same NSN.
func buildAlternateFormats() map[int][]NumberFormat {
	return map[int][]NumberFormat{
		41: {
			{
				Pattern:              `(\d{2})(\d{7})`,
				FormatTemplate:       "$1 $2",
				LeadingDigitsPattern: `7[5-9]`,
			},
		},
	}
}

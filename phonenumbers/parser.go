// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"strconv"
	"strings"

	"github.com/coregx/coregex"

	"github.com/aferret/phonegrep/internal/regexcache"
)

// Global bounds on a national significant number's digit count, independent
// of any particular region's possible lengths.
const (
	minLengthForNSN = 2
	maxLengthForNSN = 17
)

const extensionAtEndPattern = `(?i)` + ExtensionPatternForMatching + `$`

func extensionAtEndRegex() *coregex.Regex {
	return regexcache.MustGet(extensionAtEndPattern)
}

// Parse parses text as a phone number, using defaultRegion ("ZZ" or "" for
// none) to resolve a number written in national form. RawInput,
// CountryCodeSource and PreferredDomesticCarrierCode are left unset; use
// ParseAndKeepRawInput when the matcher's national-prefix check (§4.E.iii)
// needs them.
func Parse(text, defaultRegion string) (*PhoneNumber, error) {
	return parse(text, defaultRegion, false)
}

// ParseAndKeepRawInput is the "parse-and-keep-raw-input" contract §6
// requires: like Parse, but retains the raw input and the country-code
// source the matcher's verifier needs.
func ParseAndKeepRawInput(text, defaultRegion string) (*PhoneNumber, error) {
	return parse(text, defaultRegion, true)
}

func parse(text, defaultRegion string, keepRaw bool) (*PhoneNumber, error) {
	raw := text
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, newParseError(ErrNotANumber, text, "empty input")
	}

	nationalAndExt, extension := splitExtension(trimmed)

	hasPlus := startsWithPlus(nationalAndExt)
	digits := NormalizeDigitsOnly(nationalAndExt)
	if digits == "" {
		return nil, newParseError(ErrNotANumber, text, "no digits found")
	}

	var (
		cc          int
		rest        string
		source      CountryCodeSource
		ok          bool
		carrierCode string
	)

	switch {
	case hasPlus:
		cc, rest, ok = extractCallingCode(digits)
		if !ok {
			return nil, newParseError(ErrInvalidCountryCode, text, "unrecognized country calling code")
		}
		source = CountryCodeSourceFromNumberWithPlusSign

	case strings.HasPrefix(digits, "00"):
		cc, rest, ok = extractCallingCode(digits[2:])
		if !ok {
			return nil, newParseError(ErrInvalidCountryCode, text, "unrecognized country calling code after IDD prefix")
		}
		if len(rest) < 2 {
			return nil, newParseError(ErrTooShortAfterIDD, text, "too short after IDD prefix")
		}
		source = CountryCodeSourceFromNumberWithIDD

	case defaultRegion == "" || strings.EqualFold(defaultRegion, "ZZ"):
		cc, rest, ok = extractCallingCode(digits)
		if !ok {
			return nil, newParseError(ErrInvalidCountryCode, text, "no default region and no recognizable country calling code")
		}
		source = CountryCodeSourceFromNumberWithoutPlusSign

	default:
		md := MetadataForRegion(defaultRegion)
		if md == nil {
			return nil, newParseError(ErrInvalidCountryCode, text, "unknown default region "+defaultRegion)
		}
		cc = md.CountryCode
		rest = digits
		source = CountryCodeSourceFromDefaultCountry

		if stripped, carrier, didStrip := MaybeStripNationalPrefixAndCarrierCode(rest, md); didStrip {
			rest = stripped
			carrierCode = carrier
		}
	}

	region := RegionCodeForCountryCode(cc)
	md := MetadataForRegion(region)
	if md == nil {
		return nil, newParseError(ErrInvalidCountryCode, text, "no metadata for country calling code")
	}

	// These are the same global bounds real libphonenumber enforces at parse
	// time (MIN/MAX_LENGTH_FOR_NSN): whether rest is a *possible* number for
	// its specific region is a separate, region-aware question the verifier's
	// POSSIBLE leniency answers later (see IsPossibleLength), not something
	// Parse itself should reject on.
	if len(rest) < minLengthForNSN {
		return nil, newParseError(ErrTooShortNSN, text, "national number too short")
	}
	if len(rest) > maxLengthForNSN {
		return nil, newParseError(ErrTooLongNSN, text, "national number too long")
	}

	number := &PhoneNumber{
		CountryCode:    cc,
		NationalNumber: rest,
		Extension:      extension,
	}
	if keepRaw {
		number.RawInput = raw
		number.CountryCodeSource = source
		number.PreferredDomesticCarrierCode = carrierCode
	}
	return number, nil
}

// startsWithPlus reports whether the first rune of s (ignoring leading
// whitespace) is one of PlusChars.
func startsWithPlus(s string) bool {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return strings.ContainsRune(PlusChars, r)
}

// extractCallingCode tries the longest known country calling code (3, then
// 2, then 1 digit) as a prefix of digits, the same longest-match-first
// discipline the teacher's phone validator uses for its country-code table
// (initSortedCountryCodes): "prevents '1' from matching before '1242'".
func extractCallingCode(digits string) (cc int, rest string, ok bool) {
	for _, l := range [...]int{3, 2, 1} {
		if len(digits) <= l {
			continue
		}
		n, err := strconv.Atoi(digits[:l])
		if err != nil {
			continue
		}
		if _, known := countryCodeToRegion[n]; known {
			return n, digits[l:], true
		}
	}
	return 0, "", false
}

// splitExtension separates a trailing extension (§6's
// extension-pattern-for-matching) from the rest of the number text.
func splitExtension(s string) (nationalAndExt string, extension string) {
	re := extensionAtEndRegex()
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, ""
	}
	switch {
	case len(loc) >= 4 && loc[2] >= 0:
		extension = s[loc[2]:loc[3]]
	case len(loc) >= 6 && loc[4] >= 0:
		extension = s[loc[4]:loc[5]]
	}
	return s[:loc[0]], NormalizeDigitsOnly(extension)
}

// MaybeStripNationalPrefixAndCarrierCode strips md's national prefix from
// the front of digits, if present. Real libphonenumber metadata can carry
// a capture group in the prefix-for-parsing pattern identifying a carrier
// code; none of the curated regions here need one, so the carrier-code
// return is always "".
func MaybeStripNationalPrefixAndCarrierCode(digits string, md *PhoneMetadata) (stripped string, carrierCode string, ok bool) {
	prefix := md.NationalPrefixForParsing
	if prefix == "" {
		return digits, "", false
	}
	if !strings.HasPrefix(digits, prefix) {
		return digits, "", false
	}
	rest := digits[len(prefix):]
	if !md.IsPossibleLength(rest) {
		// Stripping would leave something that can't be a national number
		// for this region; assume the digit was part of the number itself.
		return digits, "", false
	}
	return rest, "", true
}

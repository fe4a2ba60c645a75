// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aferret/phonegrep/phonenumbers"
)

// runVerifier performs the parse-and-verify pipeline (§4.E) on a single
// candidate and, on acceptance, returns the sanitized parsed number.
func runVerifier(text, candidate string, start int, region string, leniency Leniency) (*phonenumbers.PhoneNumber, bool) {
	if !matchingBrackets(candidate) {
		return nil, false
	}

	if leniency.AtLeast(Valid) && !boundaryContextOK(text, candidate, start) {
		return nil, false
	}

	num, err := phonenumbers.ParseAndKeepRawInput(candidate, region)
	if err != nil {
		return nil, false
	}

	if !leniencyAccepts(candidate, num, leniency) {
		return nil, false
	}

	num.Sanitize()
	return num, true
}

// boundaryContextOK implements §4.E.2: the candidate must not be preceded
// or followed by a Latin letter or invalid-punctuation character, unless
// the candidate itself starts in the lead class.
func boundaryContextOK(text, candidate string, start int) bool {
	firstRune, _ := utf8.DecodeRuneInString(candidate)

	if start > 0 && !isLeadClass(firstRune) {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		if isLatinLetter(before) || isInvalidPunctuation(before) {
			return false
		}
	}

	end := start + len(candidate)
	if end < len(text) {
		after, _ := utf8.DecodeRuneInString(text[end:])
		if isLatinLetter(after) || isInvalidPunctuation(after) {
			return false
		}
	}

	return true
}

func leniencyAccepts(candidate string, num *phonenumbers.PhoneNumber, leniency Leniency) bool {
	region := phonenumbers.RegionCodeForCountryCode(num.CountryCode)
	md := phonenumbers.MetadataForRegion(region)

	possible := md != nil && md.IsPossibleLength(num.NationalNumber)
	if leniency == Possible {
		return possible
	}

	valid := possible && md.IsValidNationalNumber(num.NationalNumber) &&
		nationalPrefixPresentIfRequired(num) &&
		containsOnlyValidXChars(candidate, num) &&
		notMoreThanOneSlash(candidate)
	if leniency == Valid {
		return valid
	}
	if !valid {
		return false
	}

	switch leniency {
	case StrictGrouping:
		return checkGrouping(candidate, num, allGroupsRemainGrouped)
	case ExactGrouping:
		return checkGrouping(candidate, num, allGroupsExactlyPresent)
	default:
		return false
	}
}

// nationalPrefixPresentIfRequired is §4.E.iii.
func nationalPrefixPresentIfRequired(num *phonenumbers.PhoneNumber) bool {
	if num.CountryCodeSource != phonenumbers.CountryCodeSourceFromDefaultCountry {
		return true
	}
	region := phonenumbers.RegionCodeForCountryCode(num.CountryCode)
	md := phonenumbers.MetadataForRegion(region)
	if md == nil {
		return true
	}
	nsn := phonenumbers.GetNationalSignificantNumber(num)
	rule := phonenumbers.ChooseFormattingPattern(md.Formats, nsn)
	if rule == nil || rule.NationalPrefixFormattingRule == "" {
		return true
	}
	if rule.NationalPrefixOptionalWhenFormatting {
		return true
	}
	prefixDigits := phonenumbers.NormalizeDigitsOnly(stripPlaceholderAndAfter(rule.NationalPrefixFormattingRule))
	if prefixDigits == "" {
		return true
	}
	raw := phonenumbers.NormalizeDigitsOnly(num.RawInput)
	_, _, stripped := phonenumbers.MaybeStripNationalPrefixAndCarrierCode(raw, md)
	return stripped
}

func stripPlaceholderAndAfter(rule string) string {
	if idx := strings.Index(rule, "${1}"); idx >= 0 {
		return rule[:idx]
	}
	return rule
}

// containsOnlyValidXChars is §4.E.iv. The final character of candidate is
// exempt from the rule.
func containsOnlyValidXChars(candidate string, num *phonenumbers.PhoneNumber) bool {
	runes := []rune(candidate)
	n := len(runes)
	for i := 0; i < n-1; i++ {
		if runes[i] != 'x' && runes[i] != 'X' {
			continue
		}
		if runes[i+1] == 'x' || runes[i+1] == 'X' {
			rest := string(runes[i+2:])
			if phonenumbers.IsNumberMatch(num, rest) != phonenumbers.NSNMatch {
				return false
			}
			i++
			continue
		}
		rest := string(runes[i:])
		if phonenumbers.NormalizeDigitsOnly(rest) != num.Extension {
			return false
		}
	}
	return true
}

// notMoreThanOneSlash is §4.E.v.
func notMoreThanOneSlash(candidate string) bool {
	return strings.Count(candidate, "/") < 2
}

type groupingPredicate func(formattedGroups []string, normalizedCandidate string, num *phonenumbers.PhoneNumber) bool

// checkGrouping is §4.E.grouping: run predicate against the number's
// canonical formatting, falling back to the country's alternate formats
// (gated by their leading-digits pattern) if the primary grouping fails.
func checkGrouping(candidate string, num *phonenumbers.PhoneNumber, predicate groupingPredicate) bool {
	normalized := phonenumbers.NormalizeDigits(candidate, true)
	nsn := num.NationalNumber

	if predicate(canonicalFormattedGroups(num), normalized, num) {
		return true
	}

	for _, alt := range phonenumbers.AlternateFormatsForCountry(num.CountryCode) {
		if alt.LeadingDigitsPattern == "" || !alt.LeadingDigitsMatch(nsn) {
			continue
		}
		groups, ok := alt.CaptureGroups(nsn)
		if !ok {
			continue
		}
		if predicate(groups, normalized, num) {
			return true
		}
	}
	return false
}

// canonicalFormattedGroups formats num as RFC3966, strips the country code
// and extension, and splits the remaining national number on "-".
func canonicalFormattedGroups(num *phonenumbers.PhoneNumber) []string {
	s := phonenumbers.Format(num, phonenumbers.RFC3966)
	s = strings.TrimPrefix(s, "tel:")
	if semi := strings.Index(s, ";"); semi >= 0 {
		s = s[:semi]
	}
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimPrefix(s, strconv.Itoa(num.CountryCode))
	s = strings.TrimPrefix(s, "-")
	return strings.Split(s, "-")
}

// allGroupsRemainGrouped is the "all-number-groups-remain-grouped"
// predicate.
func allGroupsRemainGrouped(groups []string, normalized string, num *phonenumbers.PhoneNumber) bool {
	pos := 0
	for gi, g := range groups {
		if g == "" {
			continue
		}
		idx := strings.Index(normalized[pos:], g)
		if idx < 0 {
			return false
		}
		idx += pos
		end := idx + len(g)

		if gi == 0 && end < len(normalized) && isASCIIDigit(normalized[end]) {
			if !strings.HasPrefix(normalized[end-len(g):], num.NationalNumber) {
				return false
			}
		}
		pos = end
	}

	if num.Extension != "" && !strings.Contains(normalized[pos:], num.Extension) {
		return false
	}
	return true
}

// allGroupsExactlyPresent is the "all-number-groups-are-exactly-present"
// predicate.
func allGroupsExactlyPresent(groups []string, normalized string, num *phonenumbers.PhoneNumber) bool {
	candidateGroups := splitDigitRuns(normalized)
	if len(candidateGroups) == 0 {
		return false
	}

	cIdx := len(candidateGroups) - 1
	if num.Extension != "" && len(candidateGroups) > 1 {
		cIdx = len(candidateGroups) - 2
	}
	c := candidateGroups[cIdx]

	if len(candidateGroups) == 1 || strings.Contains(c, num.NationalNumber) {
		return true
	}

	fi, ci := len(groups)-1, cIdx
	for fi >= 1 && ci >= 1 {
		if groups[fi] != candidateGroups[ci] {
			return false
		}
		fi--
		ci--
	}
	if fi != 0 || ci < 0 {
		return false
	}
	return strings.HasSuffix(candidateGroups[0], groups[0])
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// splitDigitRuns splits s on runs of non-digit characters, discarding empty
// groups.
func splitDigitRuns(s string) []string {
	var groups []string
	var cur strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			groups = append(groups, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		groups = append(groups, cur.String())
	}
	return groups
}

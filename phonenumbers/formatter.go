// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"strconv"
	"strings"
)

// Format renders n in the requested style. RFC3966 always joins the
// national number's format groups with "-" regardless of the chosen
// NumberFormat's own template, matching the tel: URI convention and giving
// the matcher's §4.E grouping check a stable separator to split on.
func Format(n *PhoneNumber, style PhoneNumberFormat) string {
	nsn := GetNationalSignificantNumber(n)

	switch style {
	case E164:
		return "+" + strconv.Itoa(n.CountryCode) + nsn
	case RFC3966:
		body := nsn
		if groups := formatGroups(n.CountryCode, nsn); len(groups) > 1 {
			body = strings.Join(groups, "-")
		}
		s := "tel:+" + strconv.Itoa(n.CountryCode) + "-" + body
		if n.Extension != "" {
			s += ";ext=" + n.Extension
		}
		return s
	case National:
		formatted := formatNationalNumber(n.CountryCode, nsn)
		if n.Extension != "" {
			formatted += " ext. " + n.Extension
		}
		return formatted
	default: // International
		formatted := formatNationalNumber(n.CountryCode, nsn)
		s := "+" + strconv.Itoa(n.CountryCode) + " " + formatted
		if n.Extension != "" {
			s += " ext. " + n.Extension
		}
		return s
	}
}

// formatNationalNumber applies the region's chosen NumberFormat, prefixing
// with the national-prefix-formatting-rule when one is mandatory.
func formatNationalNumber(cc int, nsn string) string {
	region := RegionCodeForCountryCode(cc)
	md := MetadataForRegion(region)
	if md == nil {
		return nsn
	}
	format := ChooseFormattingPattern(md.Formats, nsn)
	if format == nil {
		return nsn
	}
	formatted := format.apply(nsn)
	if format.NationalPrefixFormattingRule == "" {
		return formatted
	}
	rule := strings.Replace(format.NationalPrefixFormattingRule, "${1}", formatted, 1)
	return rule
}

// FormatNSNUsingPattern renders nsn with an explicit NumberFormat, bypassing
// region lookup; §6 exposes this for callers that already hold a format.
// The matcher's alternate-grouping check uses NumberFormat.CaptureGroups
// instead.
func FormatNSNUsingPattern(nsn string, format *NumberFormat) string {
	if format == nil {
		return nsn
	}
	return format.apply(nsn)
}

// formatGroups returns the digit groups FormatNSNUsingPattern's capture
// groups would produce for nsn, trying the region's primary formats and
// then its alternate formats (§4.E.grouping's fallback).
func formatGroups(cc int, nsn string) []string {
	region := RegionCodeForCountryCode(cc)
	md := MetadataForRegion(region)
	var candidates []NumberFormat
	if md != nil {
		candidates = append(candidates, md.Formats...)
	}
	candidates = append(candidates, AlternateFormatsForCountry(cc)...)

	for i := range candidates {
		groups, ok := candidates[i].CaptureGroups(nsn)
		if ok && len(groups) > 0 {
			return groups
		}
	}
	return []string{nsn}
}

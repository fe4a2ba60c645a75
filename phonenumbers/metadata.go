// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumbers

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/aferret/phonegrep/internal/regexcache"
)

// NumberFormat is one rule for grouping a national significant number into
// the dashes-and-spaces shape a human would write it in. Pattern must fully
// match the NSN and capture the groups that Format then stitches together
// using FormatTemplate (a "$1-$2-$3" style template, libphonenumber's own
// convention for its XML format rules).
type NumberFormat struct {
	// Pattern is a regex, fully matching a national significant number,
	// whose capture groups correspond to $1, $2, ... in FormatTemplate.
	Pattern string

	// FormatTemplate describes how to stitch the captured groups back
	// together, e.g. "$1-$2-$3".
	FormatTemplate string

	// LeadingDigitsPattern, if non-empty, must match a prefix of the NSN
	// for this format to be eligible; used to pick a different grouping
	// for, say, mobile numbers versus landlines that share a country code.
	LeadingDigitsPattern string

	// NationalPrefixFormattingRule, if non-empty, describes how to prefix
	// the formatted national number with the national prefix; it contains
	// the literal placeholder "${1}" standing in for the national
	// significant number (§4.E.iii).
	NationalPrefixFormattingRule string

	// NationalPrefixOptionalWhenFormatting short-circuits the §4.E.iii
	// national-prefix check: when true, a missing prefix is acceptable.
	NationalPrefixOptionalWhenFormatting bool

	compiled        *coregex.Regex
	leadingCompiled *coregex.Regex
}

func (f *NumberFormat) regex() *coregex.Regex {
	if f.compiled == nil {
		f.compiled = regexcache.MustGet(`^(?:` + f.Pattern + `)$`)
	}
	return f.compiled
}

func (f *NumberFormat) leadingDigitsRegex() *coregex.Regex {
	if f.LeadingDigitsPattern == "" {
		return nil
	}
	if f.leadingCompiled == nil {
		f.leadingCompiled = regexcache.MustGet(`^(?:` + f.LeadingDigitsPattern + `)`)
	}
	return f.leadingCompiled
}

// matches reports whether nsn satisfies both the leading-digits gate and
// the full pattern for this format.
func (f *NumberFormat) matches(nsn string) bool {
	if ld := f.leadingDigitsRegex(); ld != nil && !ld.MatchString(nsn) {
		return false
	}
	return f.regex().MatchString(nsn)
}

// apply renders nsn using this format's capture groups and template.
func (f *NumberFormat) apply(nsn string) string {
	idx := f.regex().FindStringSubmatchIndex(nsn)
	if idx == nil {
		return nsn
	}
	return expandTemplate(f.FormatTemplate, nsn, idx)
}

// LeadingDigitsMatch reports whether nsn begins with this format's
// leading-digits gate; a format with no such gate matches everything.
func (f *NumberFormat) LeadingDigitsMatch(nsn string) bool {
	ld := f.leadingDigitsRegex()
	if ld == nil {
		return true
	}
	return ld.MatchString(nsn)
}

// CaptureGroups returns the digit groups this format's pattern captures out
// of nsn, in order, or ok=false if the pattern doesn't match.
func (f *NumberFormat) CaptureGroups(nsn string) (groups []string, ok bool) {
	if !f.matches(nsn) {
		return nil, false
	}
	idx := f.regex().FindStringSubmatchIndex(nsn)
	if idx == nil {
		return nil, false
	}
	groups = make([]string, 0, len(idx)/2-1)
	for g := 1; g*2+1 < len(idx); g++ {
		lo, hi := idx[2*g], idx[2*g+1]
		if lo < 0 || hi < 0 {
			continue
		}
		groups = append(groups, nsn[lo:hi])
	}
	return groups, true
}

// expandTemplate substitutes "$N" tokens in tmpl with the Nth captured
// group from idx (a FindStringSubmatchIndex-style index pair list) of src.
func expandTemplate(tmpl, src string, idx []int) string {
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '$' || i+1 >= len(tmpl) {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		start := j
		for j < len(tmpl) && tmpl[j] >= '0' && tmpl[j] <= '9' {
			j++
		}
		if j == start {
			b.WriteByte(c)
			continue
		}
		n := 0
		for _, d := range tmpl[start:j] {
			n = n*10 + int(d-'0')
		}
		lo, hi := idx[2*n], idx[2*n+1]
		if lo >= 0 && hi >= 0 {
			b.WriteString(src[lo:hi])
		}
		i = j - 1
	}
	return b.String()
}

// PhoneMetadata describes one region's dialing conventions.
type PhoneMetadata struct {
	ID          string // region code, e.g. "US"
	CountryCode int

	NationalPrefix           string
	NationalPrefixForParsing string

	// NationalNumberPattern fully matches a valid national significant
	// number for this region.
	NationalNumberPattern string
	PossibleLengths       []int

	Formats []NumberFormat

	// MainCountryForCode marks the region libphonenumber-style metadata
	// would return from RegionCodeForCountryCode for a shared country
	// calling code (e.g. "US" for NANP's 1, over "CA").
	MainCountryForCode bool

	nsnPattern *coregex.Regex
}

func (m *PhoneMetadata) nationalNumberRegex() *coregex.Regex {
	if m.nsnPattern == nil {
		m.nsnPattern = regexcache.MustGet(`^(?:` + m.NationalNumberPattern + `)$`)
	}
	return m.nsnPattern
}

// IsValidNationalNumber reports whether nsn matches this region's national
// number pattern exactly.
func (m *PhoneMetadata) IsValidNationalNumber(nsn string) bool {
	return m.nationalNumberRegex().MatchString(nsn)
}

// IsPossibleLength reports whether len(nsn) is one of this region's
// possible national-number lengths (§4.E.4 "POSSIBLE" leniency).
func (m *PhoneMetadata) IsPossibleLength(nsn string) bool {
	n := len(nsn)
	for _, l := range m.PossibleLengths {
		if l == n {
			return true
		}
	}
	return false
}

var (
	metadataByRegion    map[string]*PhoneMetadata
	countryCodeToRegion map[int]string
	alternateFormats    map[int][]NumberFormat
)

func init() {
	metadataByRegion = buildRegionMetadata()

	countryCodeToRegion = make(map[int]string, len(metadataByRegion))
	for id, md := range metadataByRegion {
		if _, ok := countryCodeToRegion[md.CountryCode]; !ok || md.MainCountryForCode {
			countryCodeToRegion[md.CountryCode] = id
		}
	}

	alternateFormats = buildAlternateFormats()

	// Metadata is a read-only singleton shared by every concurrently running
	// scanner (§5); precompile every pattern here, single-threaded, so the
	// lazy regex/leadingDigitsRegex/nationalNumberRegex accessors below only
	// ever read an already-populated field and never race on the write.
	for _, md := range metadataByRegion {
		md.nationalNumberRegex()
		for i := range md.Formats {
			md.Formats[i].regex()
			md.Formats[i].leadingDigitsRegex()
		}
	}
	for _, formats := range alternateFormats {
		for i := range formats {
			formats[i].regex()
			formats[i].leadingDigitsRegex()
		}
	}
}

// MetadataForRegion returns the metadata for region, or nil if unknown.
func MetadataForRegion(region string) *PhoneMetadata {
	return metadataByRegion[strings.ToUpper(region)]
}

// RegionCodeForCountryCode returns the main region for a country calling
// code, or "ZZ" (the "no region" sentinel) if unknown.
func RegionCodeForCountryCode(cc int) string {
	if r, ok := countryCodeToRegion[cc]; ok {
		return r
	}
	return "ZZ"
}

// AlternateFormatsForCountry returns extra NumberFormat rules for a country
// calling code, used by §4.E.grouping when the primary format's grouping
// predicate fails.
func AlternateFormatsForCountry(cc int) []NumberFormat {
	return alternateFormats[cc]
}

// ChooseFormattingPattern returns the first format (in declaration order)
// whose leading-digits gate and full pattern both match nsn, or nil.
func ChooseFormattingPattern(formats []NumberFormat, nsn string) *NumberFormat {
	for i := range formats {
		if formats[i].matches(nsn) {
			return &formats[i]
		}
	}
	return nil
}

// GetNationalSignificantNumber returns the national number digits of n.
func GetNationalSignificantNumber(n *PhoneNumber) string {
	if n == nil {
		return ""
	}
	return n.NationalNumber
}

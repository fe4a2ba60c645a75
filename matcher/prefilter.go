// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/aferret/phonegrep/internal/regexcache"
	"github.com/aferret/phonegrep/phonenumbers"
)

const (
	publicationPagePattern = `\d{1,5}-+\d{1,5}\s{0,4}\(\d{1,4}`
	slashDatePattern       = `(?:\d{1,2}/\d{1,2}/(?:\d{4}|\d{2})|\d{4}/\d{1,2}/\d{1,2})`
	timestampPattern       = `(?:19|20)\d{2}[-/]?(?:0[1-9]|1[0-2])[-/]?(?:0[1-9]|[12]\d|3[01])[ \t](?:[01]\d|2[0-3])$`
)

func publicationPageRegex() *coregex.Regex { return regexcache.MustGet(publicationPagePattern) }
func slashDateRegex() *coregex.Regex       { return regexcache.MustGet(slashDatePattern) }
func timestampRegex() *coregex.Regex       { return regexcache.MustGet(timestampPattern) }

// groupSeparatorPattern finds a Unicode space followed by a run of
// characters that are neither a plus-class character, an opener, nor an
// ASCII digit -- the boundary between "groups" a candidate's raw text is
// split into for inner-match recovery (§4.F).
var groupSeparatorPattern = `[\s][^0-9` + escapeCharClass(phonenumbers.PlusChars) + `(\[（［]*`

func escapeCharClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func groupSeparatorRegex() *coregex.Regex { return regexcache.MustGet(groupSeparatorPattern) }

var extensionSuffixPattern = `(?i)` + phonenumbers.ExtensionPatternForMatching + `$`

func extensionSuffixRegex() *coregex.Regex { return regexcache.MustGet(extensionSuffixPattern) }

// withoutExtensionSuffix trims a trailing extension (e.g. ", ext 9") off
// candidate. An extension keyword carries no digit groups of its own, so
// recovery's group-separator search (§4.F) is scoped to the number body in
// front of it -- otherwise the space before "ext" would register as the
// candidate's last group separator and recovery would cut right before the
// extension instead of between the number's own digit groups.
func withoutExtensionSuffix(candidate string) string {
	loc := extensionSuffixRegex().FindStringIndex(candidate)
	if loc == nil {
		return candidate
	}
	return candidate[:loc[0]]
}

// findGroupSeparators returns every non-overlapping group-separator match
// in candidate, in order. coregex's Regex exposes single-match finders
// only (no FindAll*Index), so this drives FindStringIndex over successive
// remaining slices itself -- the same "advance past the last match" loop
// the scanner uses for the master regex.
func findGroupSeparators(candidate string) [][2]int {
	re := groupSeparatorRegex()
	var out [][2]int
	offset := 0
	for offset <= len(candidate) {
		loc := re.FindStringIndex(candidate[offset:])
		if loc == nil {
			break
		}
		start, end := offset+loc[0], offset+loc[1]
		out = append(out, [2]int{start, end})
		if end == start {
			offset = end + 1
		} else {
			offset = end
		}
	}
	return out
}

// isPublicationPage reports whether candidate looks like a journal-style
// page citation, e.g. "211-227 (2003)".
func isPublicationPage(candidate string) bool {
	return publicationPageRegex().MatchString(candidate)
}

// isSlashDate reports whether candidate looks like a day/month/year or
// month/day/year date written with slashes.
func isSlashDate(candidate string) bool {
	return slashDateRegex().MatchString(candidate)
}

// isTimestamp reports whether candidate ends with a "YYYY-MM-DD HH"-shaped
// run, optionally confirmed by the ":MM" tail immediately following the
// candidate in the surrounding text. A candidate at end-of-text (no tail to
// peek at) is treated as "not a timestamp" per the source behavior this
// mirrors -- see DESIGN.md.
func isTimestamp(text, candidate string, start int) bool {
	if !timestampRegex().MatchString(candidate) {
		return false
	}
	// Confirmed form: three characters following the candidate are
	// ':' then a digit 0-5 then any digit.
	tailStart := start + len(candidate)
	if tailStart+3 > len(text) {
		return false
	}
	tail := text[tailStart : tailStart+3]
	return tail[0] == ':' && tail[1] >= '0' && tail[1] <= '5' && tail[2] >= '0' && tail[2] <= '9'
}

// matchingBrackets reports whether candidate's bracket punctuation is
// balanced well enough to plausibly be a phone number: at most four
// bracket pairs total, an opener at position 0 is allowed to never close
// (it may have been cut off by an earlier trim), but every other opener
// must be closed before the candidate ends.
func matchingBrackets(candidate string) bool {
	type opener struct {
		close rune
		at    int
	}
	pairs := map[rune]rune{'(': ')', '[': ']', '（': '）', '［': '］'}
	var stack []opener
	pairCount := 0
	for i, r := range candidate {
		if closeWant, ok := pairs[r]; ok {
			stack = append(stack, opener{closeWant, i})
			continue
		}
		if len(stack) > 0 && r == stack[len(stack)-1].close {
			stack = stack[:len(stack)-1]
			pairCount++
			continue
		}
	}
	if pairCount > 4 {
		return false
	}
	if len(stack) == 0 {
		return true
	}
	if len(stack) == 1 && stack[0].at == 0 {
		return true
	}
	return false
}

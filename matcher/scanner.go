// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"github.com/coregx/coregex"

	"github.com/aferret/phonegrep/internal/observability"
	"github.com/aferret/phonegrep/internal/regexcache"
	"github.com/aferret/phonegrep/phonenumbers"
)

// masterPattern is the deliberately permissive superset regex the scanner
// drives over the text. It accepts far more than valid phone numbers; the
// pre-filters, trimmer, and verifier are responsible for rejecting what it
// over-matches. Atomic-group/possessive-quantifier behavior for
// adversarial-input safety is provided by the regex engine itself (see
// DESIGN.md), not encoded in the pattern.
var masterPattern = `(?i)(?:[` + leadCharClass() + `][` + phonenumbers.ValidPunctuationChars + `]{0,4}){0,2}` +
	`\d{1,20}(?:[` + phonenumbers.ValidPunctuationChars + `]{0,4}\d{1,20}){0,20}` +
	`(?:` + phonenumbers.ExtensionPatternForMatching + `)?`

func leadCharClass() string {
	return phonenumbers.PlusChars + `(\[（［`
}

func masterRegex() *coregex.Regex { return regexcache.MustGet(masterPattern) }

// Match is a single accepted hit: the offset and exact raw substring in the
// original text, plus the parsed, sanitized phone number.
type Match struct {
	Start  int
	Raw    string
	Number *phonenumbers.PhoneNumber
}

// scanner drives the master regex over text, applying trimming,
// pre-filters, verification, and inner-match recovery, while enforcing a
// caller-supplied try budget. It has no exported surface: the Iterator in
// iterator.go is the host-facing façade.
type scanner struct {
	text      string
	region    string
	leniency  Leniency
	tryBudget int
	index     int
	debug     *observability.DebugObserver
}

func newScanner(text, region string, leniency Leniency, tryBudget int) *scanner {
	return &scanner{text: text, region: region, leniency: leniency, tryBudget: tryBudget, index: 0}
}

// find drives the pipeline forward from s.index until it produces a match
// or runs out of text or try budget. The try budget only bounds parse/verify
// attempts (§9's open question): a run of master-regex misses costs
// nothing.
func (s *scanner) find() (Match, bool) {
	re := masterRegex()
	for {
		if s.index > len(s.text) || s.tryBudget <= 0 {
			return Match{}, false
		}

		loc := re.FindStringIndex(s.text[s.index:])
		if loc == nil {
			return Match{}, false
		}
		start := s.index + loc[0]
		end := s.index + loc[1]
		candidate := TrimAfterSecondNumberStart(s.text[start:end])

		if isPublicationPage(candidate) || isSlashDate(candidate) || isTimestamp(s.text, candidate, start) {
			s.tryBudget--
			s.advancePast(start, candidate, end)
			continue
		}

		if num, ok := s.verify(candidate, start); ok {
			m := Match{Start: start, Raw: candidate, Number: num}
			s.index = m.Start + len(m.Raw)
			return m, true
		}

		if m, ok := s.recover(candidate, start); ok {
			s.index = m.Start + len(m.Raw)
			return m, true
		}

		s.advancePast(start, candidate, end)
	}
}

// advancePast moves the scanner's cursor beyond a rejected candidate so the
// next find() call resumes past it rather than re-matching the same text.
func (s *scanner) advancePast(start int, candidate string, matchEnd int) {
	next := start + len(candidate)
	if next <= start {
		next = matchEnd
	}
	s.index = next
}

// verify runs the full verifier on candidate and, on rejection, consumes
// one unit of try budget -- the "parse/verify attempt" §3 defines the
// budget over.
func (s *scanner) verify(candidate string, start int) (*phonenumbers.PhoneNumber, bool) {
	var finish func(success bool, details string)
	if s.debug != nil {
		finish = s.debug.StartStep("matcher", "verify", candidate)
	}
	num, ok := runVerifier(s.text, candidate, start, s.region, s.leniency)
	if !ok {
		s.tryBudget--
	}
	if finish != nil {
		if ok {
			finish(true, "accepted at "+s.leniency.String())
		} else {
			finish(false, "rejected at "+s.leniency.String())
		}
	}
	return num, ok
}

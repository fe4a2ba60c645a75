// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help prints phonegrep's usage and leniency-level documentation,
// following the teacher's tabwriter-plus-color presentation.
package help

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// LeniencyInfo describes one matcher.Leniency level for --help leniency.
type LeniencyInfo struct {
	Name        string
	Description string
	Checks      []string
}

var leniencyLevels = []LeniencyInfo{
	{
		Name:        "POSSIBLE",
		Description: "Accepts anything with a plausible digit count for its region. Fastest, noisiest.",
		Checks:      []string{"region-specific possible length"},
	},
	{
		Name:        "VALID",
		Description: "Also requires the number to be a real, assignable number (valid length plus pattern match).",
		Checks:      []string{"possible length", "valid number pattern", "national prefix present if required"},
	},
	{
		Name:        "STRICT_GROUPING",
		Description: "Also requires the raw text's digit grouping to match one of the region's known formats, allowing groups to be split further by whitespace.",
		Checks:      []string{"valid number", "national prefix", "no more than one slash", "groups remain grouped"},
	},
	{
		Name:        "EXACT_GROUPING",
		Description: "The strictest level: the raw text's digit grouping must exactly reproduce a canonical format, including any required national-prefix formatting.",
		Checks:      []string{"valid number", "national prefix", "no more than one slash", "groups exactly present"},
	},
}

// System manages colored terminal output for phonegrep's help and usage text.
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system. When noColor is true, color.NoColor
// is set, disabling colored output globally, matching the teacher's
// --no-color behavior.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays phonegrep's usage information.
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("phonegrep - phone number text mining")
	fmt.Println("=====================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  phonegrep [options] [file...]")
	fmt.Println("  phonegrep [options] < input.txt")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --region\t<code>\tDefault region for national-form numbers, e.g. US, CH (default: none)")
	fmt.Fprintln(w, "  --leniency\t<level>\tPOSSIBLE, VALID, STRICT_GROUPING, or EXACT_GROUPING (default: VALID)")
	fmt.Fprintln(w, "  --try-budget\t<n>\tMaximum parse/verify attempts per scan, 0 uses the config default (default: 1000)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput style: text, e164, international, national, rfc3966 (default: text)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --debug\t\tEnable step-by-step debug logging of the matching pipeline")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help leniency\t\tDescribe the four leniency levels")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  phonegrep --region US contacts.txt")
	h.colors["example"].Println("  cat notes.txt | phonegrep --leniency STRICT_GROUPING")
	h.colors["example"].Println("  phonegrep --format e164 --config phonegrep.yaml --profile ci report.txt")
	fmt.Println()

	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Project config: phonegrep.yaml, phonegrep.yml, .phonegrep.yaml, or .phonegrep.yml")
	fmt.Println("  (searched for in the current directory when --config is not given)")
}

// ShowLeniencyHelp describes each leniency level and what it checks.
func (h *System) ShowLeniencyHelp() {
	h.colors["title"].Println("phonegrep leniency levels")
	fmt.Println("==========================")
	fmt.Println()
	fmt.Println("Leniency levels form a total order: POSSIBLE < VALID < STRICT_GROUPING < EXACT_GROUPING.")
	fmt.Println("A stricter level performs every check of the levels below it.")
	fmt.Println()

	for _, lvl := range leniencyLevels {
		h.colors["emphasis"].Println(lvl.Name)
		fmt.Printf("  %s\n", lvl.Description)
		fmt.Print("  checks: ")
		h.colors["item"].Println(strings.Join(lvl.Checks, ", "))
		fmt.Println()
	}
}

// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command phonegrep mines phone numbers out of text files (or stdin) and
// prints every match it finds.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/aferret/phonegrep/internal/config"
	"github.com/aferret/phonegrep/internal/help"
	"github.com/aferret/phonegrep/internal/observability"
	"github.com/aferret/phonegrep/internal/version"
	"github.com/aferret/phonegrep/matcher"
	"github.com/aferret/phonegrep/phonenumbers"
)

type cliFlags struct {
	region      *string
	leniency    *string
	tryBudget   *int
	format      *string
	configPath  *string
	profile     *string
	listProfile *bool
	noColor     *bool
	debug       *bool
	output      *string
	showVersion *bool
	help        *bool
}

func registerFlags() *cliFlags {
	f := &cliFlags{
		region:      flag.String("region", "", "default region for national-form numbers, e.g. US"),
		leniency:    flag.String("leniency", "", "POSSIBLE, VALID, STRICT_GROUPING, or EXACT_GROUPING"),
		tryBudget:   flag.Int("try-budget", 0, "max parse/verify attempts per scan (0 uses the config default)"),
		format:      flag.String("format", "", "output style: text, e164, international, national, rfc3966"),
		configPath:  flag.String("config", "", "path to configuration file"),
		profile:     flag.String("profile", "", "profile name to use from config file"),
		listProfile: flag.Bool("list-profiles", false, "list available profiles in config file"),
		noColor:     flag.Bool("no-color", false, "disable colored output"),
		debug:       flag.Bool("debug", false, "enable step-by-step debug logging"),
		output:      flag.String("output", "", "path to output file (default: stdout)"),
		showVersion: flag.Bool("version", false, "show version information"),
		help:        flag.Bool("help", false, "show help message"),
	}
	return f
}

func main() {
	flags := registerFlags()
	flag.Parse()

	if *flags.help {
		handleHelp(flag.Args())
		return
	}
	if *flags.showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg := config.LoadConfigOrDefault(*flags.configPath)
	if *flags.listProfile {
		for _, name := range cfg.ListProfiles() {
			fmt.Println(name)
		}
		return
	}
	if *flags.profile != "" {
		if p := cfg.GetProfile(*flags.profile); p != nil {
			applyProfile(cfg, p)
		} else {
			fmt.Fprintf(os.Stderr, "phonegrep: unknown profile %q\n", *flags.profile)
			os.Exit(1)
		}
	}
	applyFlagOverrides(cfg, flags)

	leniency, err := matcher.ParseLeniency(cfg.Defaults.Leniency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "phonegrep: %v\n", err)
		os.Exit(1)
	}
	outputFormat, err := parseFormat(cfg.Defaults.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "phonegrep: %v\n", err)
		os.Exit(1)
	}

	noColor := cfg.Defaults.NoColor || !isTerminal(os.Stdout)
	if noColor {
		color.NoColor = true
	}

	var observer *observability.StandardObserver
	var debugObs *observability.DebugObserver
	if cfg.Defaults.Debug {
		debugObs = observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	} else {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, os.Stderr)
	}

	out := os.Stdout
	if *flags.output != "" {
		f, err := os.Create(*flags.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "phonegrep: error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	sources := flag.Args()
	totalMatches := 0
	var scanErr error
	if len(sources) == 0 {
		totalMatches, scanErr = scanReader(os.Stdin, "stdin", cfg, leniency, outputFormat, observer, out)
	} else {
		for _, path := range sources {
			n, err := scanFile(path, cfg, leniency, outputFormat, observer, out)
			totalMatches += n
			if err != nil {
				fmt.Fprintf(os.Stderr, "phonegrep: %s: %v\n", path, err)
				scanErr = err
			}
		}
	}

	if debugObs != nil {
		debugObs.LogMetric("main", "total_matches", totalMatches)
	}
	if scanErr != nil {
		os.Exit(1)
	}
}

func scanFile(path string, cfg *config.Config, leniency matcher.Leniency, format phonenumbers.PhoneNumberFormat, observer *observability.StandardObserver, out io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return scanReader(f, path, cfg, leniency, format, observer, out)
}

func scanReader(r io.Reader, source string, cfg *config.Config, leniency matcher.Leniency, format phonenumbers.PhoneNumberFormat, observer *observability.StandardObserver, out io.Writer) (int, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	finish := observer.StartTiming("scanner", "scan", source)

	it, err := matcher.NewWithObserver(string(data), cfg.Defaults.Region, leniency, cfg.Defaults.TryBudget, observer.DebugObserver)
	if err != nil {
		finish(false, nil)
		return 0, err
	}

	count := 0
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		count++
		printMatch(out, source, m, format)
	}

	finish(true, map[string]interface{}{"match_count": count})
	return count, nil
}

func printMatch(out io.Writer, source string, m matcher.Match, format phonenumbers.PhoneNumberFormat) {
	rendered := phonenumbers.Format(m.Number, format)
	fmt.Fprintf(out, "%s:%d: %s (raw: %q)\n", source, m.Start, rendered, m.Raw)
}

func applyProfile(cfg *config.Config, p *config.Profile) {
	if p.Region != "" {
		cfg.Defaults.Region = p.Region
	}
	if p.Leniency != "" {
		cfg.Defaults.Leniency = p.Leniency
	}
	if p.TryBudget != 0 {
		cfg.Defaults.TryBudget = p.TryBudget
	}
	if p.Format != "" {
		cfg.Defaults.Format = p.Format
	}
	cfg.Defaults.NoColor = cfg.Defaults.NoColor || p.NoColor
	cfg.Defaults.Debug = cfg.Defaults.Debug || p.Debug
}

func applyFlagOverrides(cfg *config.Config, flags *cliFlags) {
	if *flags.region != "" {
		cfg.Defaults.Region = *flags.region
	}
	if *flags.leniency != "" {
		cfg.Defaults.Leniency = *flags.leniency
	}
	if *flags.tryBudget != 0 {
		cfg.Defaults.TryBudget = *flags.tryBudget
	}
	if *flags.format != "" {
		cfg.Defaults.Format = *flags.format
	}
	if *flags.noColor {
		cfg.Defaults.NoColor = true
	}
	if *flags.debug {
		cfg.Defaults.Debug = true
	}
}

func parseFormat(name string) (phonenumbers.PhoneNumberFormat, error) {
	switch name {
	case "", "text", "international":
		return phonenumbers.International, nil
	case "e164":
		return phonenumbers.E164, nil
	case "national":
		return phonenumbers.National, nil
	case "rfc3966":
		return phonenumbers.RFC3966, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", name)
	}
}

func handleHelp(args []string) {
	h := help.NewSystem(!isTerminal(os.Stdout))
	if len(args) > 0 && args[0] == "leniency" {
		h.ShowLeniencyHelp()
		return
	}
	h.ShowGeneralHelp()
}

// isTerminal checks if the file descriptor is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

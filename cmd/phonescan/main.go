// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command phonescan is an interactive terminal UI for live phone-number
// highlighting: type or paste text, scan it, and see every match
// underlined in place alongside its parsed rendering.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aferret/phonegrep/matcher"
	"github.com/aferret/phonegrep/phonenumbers"
)

const (
	stateInput = iota
	stateResults
	stateSettings
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("5")).
			Padding(0, 1)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("5")).
			Padding(0, 1).
			Width(45)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true).
			Underline(true)
)

var leniencyNames = []string{"POSSIBLE", "VALID", "STRICT_GROUPING", "EXACT_GROUPING"}

type foundMatch struct {
	matcher.Match
	Formatted string
}

type model struct {
	state    int
	textarea textarea.Model
	viewport viewport.Model
	matches  []foundMatch
	text     string
	width    int
	height   int
	ready    bool
	scanTime time.Duration

	region        string
	leniencyIdx   int
	tryBudget     int
	settingsFocus int
}

func initialModel() model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type text here..."
	ta.ShowLineNumbers = false
	ta.SetHeight(12)
	ta.SetWidth(70)
	ta.Focus()
	ta.CharLimit = 0

	return model{
		state:       stateInput,
		textarea:    ta,
		leniencyIdx: 1, // VALID
		tryBudget:   1000,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		taWidth := min(msg.Width-4, 80)
		m.textarea.SetWidth(taWidth)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.state == stateResults {
			m.viewport.SetContent(m.renderResults())
		}

	case tea.KeyMsg:
		switch m.state {
		case stateInput:
			switch msg.Type {
			case tea.KeyCtrlC:
				return m, tea.Quit
			case tea.KeyCtrlD:
				return m.doScan()
			case tea.KeyTab:
				m.textarea.Blur()
				m.state = stateSettings
				m.settingsFocus = 0
				return m, nil
			}
		case stateResults:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "n":
				m.textarea.Reset()
				m.textarea.Focus()
				m.state = stateInput
				m.matches = nil
				return m, textarea.Blink
			}
		case stateSettings:
			return m.updateSettings(msg)
		}
	}

	switch m.state {
	case stateInput:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	case stateResults:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab:
		m.textarea.Focus()
		m.state = stateInput
		return m, textarea.Blink
	case tea.KeyUp:
		if m.settingsFocus > 0 {
			m.settingsFocus--
		}
	case tea.KeyDown:
		if m.settingsFocus < 1 {
			m.settingsFocus++
		}
	case tea.KeyLeft:
		if m.settingsFocus == 0 && m.leniencyIdx > 0 {
			m.leniencyIdx--
		}
		if m.settingsFocus == 1 && m.tryBudget > 10 {
			m.tryBudget -= 10
		}
	case tea.KeyRight:
		if m.settingsFocus == 0 && m.leniencyIdx < len(leniencyNames)-1 {
			m.leniencyIdx++
		}
		if m.settingsFocus == 1 {
			m.tryBudget += 10
		}
	}
	return m, nil
}

func (m model) doScan() (tea.Model, tea.Cmd) {
	text := m.textarea.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	start := time.Now()
	leniency, err := matcher.ParseLeniency(leniencyNames[m.leniencyIdx])
	if err != nil {
		return m, nil
	}

	it, err := matcher.New(text, m.region, leniency, m.tryBudget)
	if err != nil {
		return m, nil
	}

	var matches []foundMatch
	for {
		match, ok := it.Next()
		if !ok {
			break
		}
		matches = append(matches, foundMatch{
			Match:     match,
			Formatted: phonenumbers.Format(match.Number, phonenumbers.International),
		})
	}

	m.text = text
	m.matches = matches
	m.scanTime = time.Since(start)
	m.state = stateResults
	m.textarea.Blur()

	if m.ready {
		m.viewport.SetContent(m.renderResults())
		m.viewport.GotoTop()
	}

	return m, nil
}

func (m model) renderAnnotated() string {
	sorted := make([]foundMatch, len(m.matches))
	copy(sorted, m.matches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	pos := 0
	for _, fm := range sorted {
		if fm.Start < pos {
			continue
		}
		if fm.Start > pos {
			b.WriteString(m.text[pos:fm.Start])
		}
		b.WriteString(matchStyle.Render(fm.Raw))
		pos = fm.Start + len(fm.Raw)
	}
	if pos < len(m.text) {
		b.WriteString(m.text[pos:])
	}
	return b.String()
}

func (m model) renderResults() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("─── ANNOTATED ") + sectionStyle.Render(strings.Repeat("─", max(m.width-16, 20))))
	b.WriteString("\n")
	b.WriteString(m.renderAnnotated())
	b.WriteString("\n\n")

	if len(m.matches) > 0 {
		b.WriteString(sectionStyle.Render("─── MATCHES ") + sectionStyle.Render(strings.Repeat("─", max(m.width-14, 20))))
		b.WriteString("\n")

		maxRaw := 0
		for _, fm := range m.matches {
			if len(fm.Raw) > maxRaw {
				maxRaw = len(fm.Raw)
			}
		}

		for _, fm := range m.matches {
			rawStyled := matchStyle.Render(fm.Raw)
			pad := strings.Repeat(" ", maxRaw-len(fm.Raw))
			valueStyled := valueStyle.Render(fm.Formatted)
			b.WriteString(fmt.Sprintf("  %s%s    %s\n", rawStyled, pad, valueStyled))
		}
	} else {
		b.WriteString(dimStyle.Render("  no phone numbers found"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) View() string {
	switch m.state {
	case stateInput:
		return m.viewInput()
	case stateResults:
		return m.viewResults()
	case stateSettings:
		return m.viewSettings()
	}
	return ""
}

func (m model) viewInput() string {
	header := headerBoxStyle.Render(titleStyle.Render("phonescan") + " — live phone number highlighting")

	settingsInfo := dimStyle.Render(fmt.Sprintf("  region:%s  leniency:%s  try-budget:%d",
		regionOrNone(m.region), leniencyNames[m.leniencyIdx], m.tryBudget))

	help := helpStyle.Render("  Ctrl+D scan  •  Tab settings  •  Ctrl+C quit")

	return fmt.Sprintf("\n%s\n%s\n\n%s\n\n%s\n", header, settingsInfo, m.textarea.View(), help)
}

func (m model) viewResults() string {
	headerText := fmt.Sprintf("%s — %d matches found (%dms)",
		titleStyle.Render("phonescan"), len(m.matches), m.scanTime.Milliseconds())
	header := headerBoxStyle.Render(headerText)

	help := helpStyle.Render("  n new scan  •  q quit")

	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n", header, m.viewport.View(), help)
}

func (m model) viewSettings() string {
	var b strings.Builder

	header := headerBoxStyle.Render(titleStyle.Render("phonescan") + " — Settings")
	b.WriteString("\n" + header + "\n\n")

	if m.settingsFocus == 0 {
		b.WriteString(fmt.Sprintf("  %s  %s   ◂ %s ▸\n",
			activeStyle.Render("▸"),
			lipgloss.NewStyle().Bold(true).Render("Leniency"),
			valueStyle.Render(leniencyNames[m.leniencyIdx])))
	} else {
		b.WriteString(fmt.Sprintf("     %s     %s\n", "Leniency", dimStyle.Render(leniencyNames[m.leniencyIdx])))
	}

	if m.settingsFocus == 1 {
		b.WriteString(fmt.Sprintf("  %s  %s   ◂ %s ▸\n",
			activeStyle.Render("▸"),
			lipgloss.NewStyle().Bold(true).Render("Try Budget"),
			valueStyle.Render(fmt.Sprintf("%d", m.tryBudget))))
	} else {
		b.WriteString(fmt.Sprintf("     %s     %s\n", "Try Budget", dimStyle.Render(fmt.Sprintf("%d", m.tryBudget))))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  Tab back  •  ↑↓ navigate  •  ←→ change value") + "\n")

	return b.String()
}

func regionOrNone(region string) string {
	if region == "" {
		return "none"
	}
	return region
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

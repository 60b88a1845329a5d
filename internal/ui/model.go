// ABOUTME: Bubbletea model for batch progress TUI
// ABOUTME: Defines per-step state and update logic
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shadow-worker/soundgen/internal/batch"
)

type stepState int

const (
	statePending stepState = iota
	stateRunning
	stateDone
	stateFailed
)

// step is one row of the progress table
type step struct {
	name    string
	state   stepState
	detail  string
	elapsed time.Duration
}

// Model represents the TUI state
type Model struct {
	// Run
	runID    string
	steps    []step
	index    map[string]int
	finished bool
	aborted  bool

	// Dimensions
	width  int
	height int
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case StepStartedMsg:
		m.setState(msg.Name, stateRunning, "", 0)
	case StepFinishedMsg:
		if msg.Result.OK() {
			m.setState(msg.Result.Name, stateDone, msg.Result.Output, msg.Result.Elapsed)
		} else {
			m.setState(msg.Result.Name, stateFailed, msg.Result.Err.Error(), msg.Result.Elapsed)
		}
	case DoneMsg:
		m.finished = true
		if msg.Report != nil {
			m.runID = msg.Report.RunID
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	for _, s := range m.steps {
		b.WriteString(m.renderStep(s))
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

// Aborted reports whether the user quit before the batch finished
func (m Model) Aborted() bool {
	return m.aborted
}

// renderHeader renders the title and overall progress
func (m Model) renderHeader() string {
	done, failed := m.counts()
	total := len(m.steps)

	status := fmt.Sprintf("%d/%d complete", done+failed, total)
	if failed > 0 {
		status += fmt.Sprintf(", %d failed", failed)
	}

	return fmt.Sprintf(`┌─ soundgen ───────────────────────────────────────────┐
│ Progress: [%s] %-29s │
├──────────────────────────────────────────────────────┤
`, renderBar(done+failed, total, 10), status)
}

// renderStep renders a single step row
func (m Model) renderStep(s step) string {
	icon := "·"
	switch s.state {
	case stateRunning:
		icon = "…"
	case stateDone:
		icon = "✓"
	case stateFailed:
		icon = "✗"
	}

	elapsed := ""
	if s.state == stateDone || s.state == stateFailed {
		elapsed = s.elapsed.Round(time.Millisecond).String()
	}

	return fmt.Sprintf("│ %s %-12s %-28s %8s │\n", icon, truncate(s.name, 12), truncate(s.detail, 28), truncate(elapsed, 8))
}

// renderFooter renders the run ID or keyboard help
func (m Model) renderFooter() string {
	line := "q:Quit"
	if m.finished {
		line = "Run " + m.runID
	}
	return fmt.Sprintf("├──────────────────────────────────────────────────────┤\n│ %-52s │\n└──────────────────────────────────────────────────────┘\n", truncate(line, 52))
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if !m.finished {
			m.aborted = true
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) setState(name string, state stepState, detail string, elapsed time.Duration) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	i, ok := m.index[name]
	if !ok {
		m.index[name] = len(m.steps)
		m.steps = append(m.steps, step{name: name})
		i = len(m.steps) - 1
	}
	m.steps[i].state = state
	m.steps[i].detail = detail
	m.steps[i].elapsed = elapsed
}

func (m Model) counts() (done, failed int) {
	for _, s := range m.steps {
		switch s.state {
		case stateDone:
			done++
		case stateFailed:
			failed++
		}
	}
	return done, failed
}

// StepStartedMsg marks a step as running
type StepStartedMsg struct {
	Name string
}

// StepFinishedMsg records a step outcome
type StepFinishedMsg struct {
	Result batch.Result
}

// DoneMsg ends the program once the batch has finished
type DoneMsg struct {
	Report *batch.Report
}

// Utility functions
func renderBar(value, max, width int) string {
	filled := 0
	if max > 0 {
		filled = (value * width) / max
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len([]rune(s)) <= length {
		return s
	}
	r := []rune(s)
	return string(r[:length-3]) + "..."
}

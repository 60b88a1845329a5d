// ABOUTME: TUI initialization and control
// ABOUTME: Wraps bubbletea program and adapts it to batch progress events
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shadow-worker/soundgen/internal/batch"
)

// NewModel creates a new TUI model listing the steps in run order
func NewModel(names []string) Model {
	m := Model{
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		m.index[name] = len(m.steps)
		m.steps = append(m.steps, step{name: name})
	}
	return m
}

// Run creates the TUI program. The caller starts it with p.Run().
func Run(names []string) *tea.Program {
	return tea.NewProgram(NewModel(names))
}

// Observer forwards batch progress to a running program
type Observer struct {
	program *tea.Program
}

var _ batch.Observer = (*Observer)(nil)

// NewObserver creates an observer that sends messages to p
func NewObserver(p *tea.Program) *Observer {
	return &Observer{program: p}
}

// StepStarted implements batch.Observer
func (o *Observer) StepStarted(name string) {
	o.program.Send(StepStartedMsg{Name: name})
}

// StepFinished implements batch.Observer
func (o *Observer) StepFinished(result batch.Result) {
	o.program.Send(StepFinishedMsg{Result: result})
}

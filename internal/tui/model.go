// Package tui renders release progress as an interactive step list. The
// orchestrator runs in a background goroutine and reports through observer
// events relayed to the program as messages.
package tui

import (
	"fmt"
	"time"

	"github.com/wahlandcase/attuned.release/internal/release"

	tea "github.com/charmbracelet/bubbletea"
)

// Observer event messages

type stepStartedMsg struct {
	state release.State
	title string
}

type stepFinishedMsg struct {
	state release.State
	note  string
}

type stepSkippedMsg struct {
	state  release.State
	reason string
}

type stepFailedMsg struct {
	state release.State
	err   error
}

type runDoneMsg struct {
	err error
}

type tickMsg time.Time

// channelObserver relays release.Observer events into the tea program
type channelObserver struct {
	ch chan tea.Msg
}

func (o channelObserver) StepStarted(state release.State, title string) {
	o.ch <- stepStartedMsg{state: state, title: title}
}

func (o channelObserver) StepFinished(state release.State, note string) {
	o.ch <- stepFinishedMsg{state: state, note: note}
}

func (o channelObserver) StepSkipped(state release.State, reason string) {
	o.ch <- stepSkippedMsg{state: state, reason: reason}
}

func (o channelObserver) StepFailed(state release.State, err error) {
	o.ch <- stepFailedMsg{state: state, err: err}
}

type stepStatus int

const (
	statusRunning stepStatus = iota
	statusDone
	statusSkipped
	statusFailed
)

type stepView struct {
	state  release.State
	title  string
	status stepStatus
	note   string
}

// Model is the progress UI state
type Model struct {
	run  *release.Run
	opts release.Options

	events chan tea.Msg

	steps        []stepView
	spinnerFrame int
	done         bool
	err          error
	width        int
	shouldQuit   bool
}

func newModel(run *release.Run, opts release.Options, events chan tea.Msg) Model {
	return Model{run: run, opts: opts, events: events, width: 80}
}

// Run executes the release under the progress UI and returns the run error
func Run(r *release.Run, opts release.Options) error {
	events := make(chan tea.Msg, 16)

	go func() {
		err := r.Execute(channelObserver{ch: events})
		events <- runDoneMsg{err: err}
	}()

	p := tea.NewProgram(newModel(r, opts, events))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	m := final.(Model)
	if m.shouldQuit && !m.done {
		return fmt.Errorf("interrupted")
	}
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(listenForEvents(m.events), tickCmd())
}

func listenForEvents(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		return m, tickCmd()

	case stepStartedMsg:
		m.steps = append(m.steps, stepView{state: msg.state, title: msg.title, status: statusRunning})
		return m, listenForEvents(m.events)

	case stepFinishedMsg:
		m.setStatus(msg.state, statusDone, msg.note)
		return m, listenForEvents(m.events)

	case stepSkippedMsg:
		m.steps = append(m.steps, stepView{state: msg.state, title: msg.state.String(), status: statusSkipped, note: msg.reason})
		return m, listenForEvents(m.events)

	case stepFailedMsg:
		m.setStatus(msg.state, statusFailed, "")
		return m, listenForEvents(m.events)

	case runDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) setStatus(state release.State, status stepStatus, note string) {
	for i := range m.steps {
		if m.steps[i].state == state {
			m.steps[i].status = status
			if note != "" {
				m.steps[i].note = note
			}
			return
		}
	}
}

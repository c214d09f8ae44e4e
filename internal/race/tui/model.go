// Package tui is the terminal practice-race client: it feeds keystrokes to
// the typing engine and renders per-character progress with live WPM.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Crazytieguy/type-harder/models"
	"github.com/Crazytieguy/type-harder/pkg/race"
	"github.com/Crazytieguy/type-harder/pkg/typing"
)

// tickMsg refreshes the WPM display once a second.
type tickMsg time.Time

// progressReportedMsg carries the outcome of an asynchronous progress
// update. A failed report is shown in the status line; the local word count
// is never rolled back.
type progressReportedMsg struct {
	err error
}

// Model is the practice-race TUI state.
type Model struct {
	engine    *typing.Engine
	paragraph models.Paragraph
	reporter  race.ProgressReporter
	room      string

	started    bool
	startedAt  time.Time
	finishedAt time.Time
	reportErr  error
	width      int
}

func NewModel(paragraph models.Paragraph, reporter race.ProgressReporter, room string) Model {
	return Model{
		engine:    typing.NewEngineForContent(paragraph.Content),
		paragraph: paragraph,
		reporter:  reporter,
		room:      room,
		width:     80,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		if m.engine.Finished() {
			return m, nil
		}
		return m, tick()
	case progressReportedMsg:
		m.reportErr = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.engine.Finished() {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		return m.handleTyped(msg)
	}
	// Backspace and everything else: typed characters are never retracted.
	return m, nil
}

func (m Model) handleTyped(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.engine.Finished() {
		return m, nil
	}
	typed := " "
	if msg.Type == tea.KeyRunes {
		typed = string(msg.Runes)
	}

	if !m.started {
		m.started = true
		m.startedAt = time.Now()
	}

	result := m.engine.Input(m.engine.TypedInput() + typed)

	if result.Finished && m.finishedAt.IsZero() {
		m.finishedAt = time.Now()
	}
	if result.WordCompleted {
		// Optimistic local update: the engine already advanced; the
		// remote commit is fire-and-forget.
		return m, reportProgress(m.reporter, m.room, result.Words)
	}
	return m, nil
}

func reportProgress(reporter race.ProgressReporter, room string, words int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return progressReportedMsg{err: reporter.ReportProgress(ctx, room, words)}
	}
}

// wpm computes words per elapsed minute since the first keystroke.
func (m Model) wpm() float64 {
	if !m.started {
		return 0
	}
	end := time.Now()
	if !m.finishedAt.IsZero() {
		end = m.finishedAt
	}
	minutes := end.Sub(m.startedAt).Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(m.engine.Words()) / minutes
}

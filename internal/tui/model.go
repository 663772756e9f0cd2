// Package tui animates searches in the terminal with bubbletea. One frame
// tick performs one expansion; a finished search stays on screen for the
// restart delay before a new maze is generated.
package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/mazestar/driver"
	"github.com/pdrpinto/mazestar/render"
)

// frameMsg asks for one Step. gen ties it to the tick chain that sent it so
// stale ticks from before a pause or reset are dropped.
type frameMsg struct {
	gen int
}

type restartMsg struct {
	gen int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for the watch command.
type Model struct {
	session       *driver.Session
	renderer      *render.Renderer
	frameInterval time.Duration
	restartDelay  time.Duration

	gen    int
	paused bool
	err    error
}

// New returns a model animating session.
func New(session *driver.Session, renderer *render.Renderer, frameInterval, restartDelay time.Duration) Model {
	return Model{
		session:       session,
		renderer:      renderer,
		frameInterval: frameInterval,
		restartDelay:  restartDelay,
	}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m Model) nextFrame() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m Model) scheduleRestart() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.restartDelay, func(time.Time) tea.Msg {
		return restartMsg{gen: gen}
	})
}

// Update handles key presses and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			m.gen++
			if m.paused {
				return m, nil
			}
			if m.session.Done() {
				return m, m.scheduleRestart()
			}
			return m, m.nextFrame()
		case "n":
			return m.restart()
		}

	case frameMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		if frame := m.session.Advance(); frame.Done() {
			return m, m.scheduleRestart()
		}
		return m, m.nextFrame()

	case restartMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		return m.restart()
	}
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.gen++
	if err := m.session.Reset(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if m.paused {
		return m, nil
	}
	return m, m.nextFrame()
}

// View draws the maze and the progress line.
func (m Model) View() string {
	if m.err != nil {
		return errStyle.Render("error: "+m.err.Error()) + "\n"
	}
	frame := m.session.Frame()

	var b strings.Builder
	b.WriteString(titleStyle.Render("mazestar"))
	b.WriteString(infoStyle.Render("  " + frame.Puzzle.ID.String()))
	b.WriteString("\n")
	b.WriteString(m.renderer.Grid(frame.Grid, frame.Snapshot))
	b.WriteString("\n")
	status := render.Summary(frame.Snapshot)
	if m.paused {
		status += "  (paused)"
	}
	b.WriteString(infoStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("space pause • n new maze • q quit"))
	return b.String()
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error { return m.err }

// Run shows model full screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

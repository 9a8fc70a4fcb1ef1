package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// helpRows is the number of terminal rows below the playfield used by the help bar.
const helpRows = 1

const pausedText = " PAUSED "

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a play session.
type Options struct {
	Game    config.PongConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables match history
	Logger  *log.Logger    // nil discards log output
	Source  string         // storage.SourceLocal or storage.SourceSSH
	Player1 string
	Player2 string
}

// Model is the Bubble Tea model for a pong session.
type Model struct {
	opts     Options
	rec      *matchRecorder // Shared by every copy of the model
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	logger   *log.Logger
	paused   bool
	quitting bool
}

// NewModel creates a model and serves the opening ball.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Source == "" {
		opts.Source = storage.SourceLocal
	}
	if opts.Player1 == "" {
		opts.Player1 = pong.SideLeft.String()
	}
	if opts.Player2 == "" {
		opts.Player2 = pong.SideRight.String()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		opts:   opts,
		rec:    newMatchRecorder(opts, logger),
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-helpRows, 0)),
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
		logger: logger,
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.rec.Record()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)

	case core.ActionRestart:
		m.rec.Restart()
		m.paused = false
		m.input.Clear()
		m.logger.Info("match restarted")

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:

	default:
		if !m.paused {
			m.input.Set(action)
		}
	}

	return m, nil
}

// handleMouse routes pointer motion to the paddle under the pointer's third
// of the arena. Motion over the score line, walls or help bar is ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}

	g := m.rec.Game()
	v := g.Viewport(m.screen.Width(), m.screen.Height())
	if !v.Contains(msg.X, msg.Y) {
		return m, nil
	}
	p := v.ToArena(msg.X, msg.Y)
	g.OnPointerMove(p.X, p.Y)

	return m, nil
}

// handleResize processes window resize events. The arena keeps its logical
// size; only the mapping onto cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if !m.paused {
		g := m.rec.Game()
		g.ApplyInput(m.input)
		res := g.Update(m.opts.Runtime.TickSeconds())
		if res.Scorer != pong.SideNone {
			s1, s2 := g.Scores()
			m.logger.Debug("point scored", "scorer", res.Scorer, "score1", s1, "score2", s2)
		}
	}

	m.input.Clear()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.rec.Game().Render(m.screen)
	if m.paused && m.screen.Height() > 0 {
		m.screen.DrawTextColored((m.screen.Width()-len(pausedText))/2, m.screen.Height()/2, pausedText, core.ColorBrightWhite)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game being played.
func (m Model) Game() *pong.Game {
	return m.rec.Game()
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the paddles
	)

	_, err := p.Run()
	return err
}

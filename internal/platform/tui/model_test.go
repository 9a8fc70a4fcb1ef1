package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Game:    config.DefaultPongConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Store:   store,
	})
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// update sends msg to m and returns the resulting model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelServes(t *testing.T) {
	m := newTestModel(t, nil)

	ball := m.Game().Ball()
	if ball.Position != core.NewVec2(400, 300) {
		t.Errorf("ball at %v, expected arena center", ball.Position)
	}
	if ball.Velocity != core.NewVec2(4, 0) {
		t.Errorf("ball velocity %v, expected opening serve (4, 0)", ball.Velocity)
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestTickAdvancesGame(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Game().Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", m.Game().Tick())
	}
	if x := m.Game().Ball().Position.X; x != 404 {
		t.Errorf("ball x = %f, expected 404", x)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected model to be paused")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("ticks should keep flowing while paused")
	}
	if m.Game().Tick() != 0 {
		t.Errorf("Tick() = %d while paused, expected 0", m.Game().Tick())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the pause banner")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if m.Paused() || m.Game().Tick() != 1 {
		t.Errorf("after unpause: paused=%v tick=%d, expected false/1", m.Paused(), m.Game().Tick())
	}
}

func TestMouseMovesPaddles(t *testing.T) {
	m := newTestModel(t, nil)

	// 80x23 playfield screen: rows 2..21 map the arena, 10 arena units per column.
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionMotion})
	if y := m.Game().Player1().Position.Y; y != 585 {
		t.Errorf("player1 y = %f, expected 585", y)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 75, Y: 21, Action: tea.MouseActionMotion})
	if y := m.Game().Player2().Position.Y; y != 15 {
		t.Errorf("player2 y = %f, expected 15", y)
	}

	// Middle third leaves both paddles alone
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionMotion})
	if m.Game().Player1().Position.Y != 585 || m.Game().Player2().Position.Y != 15 {
		t.Error("pointer in the middle third should not move a paddle")
	}
}

func TestMouseOutsidePlayfieldIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	// Row 0 is the score line, row 1 the top wall, row 22 the bottom wall
	// and row 23 the help bar.
	for _, msg := range []tea.MouseMsg{
		{X: 5, Y: 0, Action: tea.MouseActionMotion},
		{X: 5, Y: 1, Action: tea.MouseActionMotion},
		{X: 75, Y: 22, Action: tea.MouseActionMotion},
		{X: 75, Y: 23, Action: tea.MouseActionMotion},
	} {
		m, _ = update(t, m, msg)
	}

	if y := m.Game().Player1().Position.Y; y != 300 {
		t.Errorf("player1 y = %f, expected 300", y)
	}
	if y := m.Game().Player2().Position.Y; y != 300 {
		t.Errorf("player2 y = %f, expected 300", y)
	}
}

func TestMouseIgnoredWhilePaused(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionMotion})
	if y := m.Game().Player1().Position.Y; y != 300 {
		t.Errorf("player1 y = %f while paused, expected 300", y)
	}
}

func TestKeyboardNudge(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg{})

	if y := m.Game().Player1().Position.Y; y != 340 {
		t.Errorf("player1 y = %f, expected 340", y)
	}
	if y := m.Game().Player2().Position.Y; y != 260 {
		t.Errorf("player2 y = %f, expected 260", y)
	}

	// Input is consumed by the tick
	m, _ = update(t, m, TickMsg{})
	if y := m.Game().Player1().Position.Y; y != 340 {
		t.Errorf("player1 y = %f after second tick, expected 340", y)
	}
}

func TestRestartRecordsAndResets(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	m, _ = update(t, m, runeKey('r'))

	if m.Game().Tick() != 0 {
		t.Errorf("Tick() = %d after restart, expected 0", m.Game().Tick())
	}
	if v := m.Game().Ball().Velocity; v != core.NewVec2(4, 0) {
		t.Errorf("ball velocity %v after restart, expected (4, 0)", v)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 recorded match, got %d", len(matches))
	}
	if matches[0].Ticks != 10 || matches[0].Source != storage.SourceLocal {
		t.Errorf("recorded %+v, expected 10 ticks from local", matches[0])
	}
	if matches[0].Player1 != "player1" || matches[0].Player2 != "player2" {
		t.Errorf("players = %q/%q, expected defaults", matches[0].Player1, matches[0].Player2)
	}
}

func TestQuitRecordsMatch(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Error("expected model to be quitting")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	matches, _ := store.RecentMatches(10)
	if len(matches) != 1 {
		t.Errorf("expected 1 recorded match, got %d", len(matches))
	}
}

func TestQuitWithoutPlayDoesNotRecord(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	update(t, m, runeKey('q'))

	matches, _ := store.RecentMatches(10)
	if len(matches) != 0 {
		t.Errorf("expected no recorded match, got %d", len(matches))
	}
}

func TestDroppedSessionIsRecorded(t *testing.T) {
	store := openStore(t)
	first := newTestModel(t, store)
	ctx := context.WithValue(context.Background(), recorderKey{}, first.rec)

	// The program only ever holds copies of the model it started with.
	m := first
	for i := 0; i < 7; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	recordSession(ctx)
	recordSession(ctx)

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 recorded match, got %d", len(matches))
	}
	if matches[0].Ticks != 7 {
		t.Errorf("recorded %d ticks, expected 7 from the latest copy", matches[0].Ticks)
	}

	// A quit after the drop must not save the game twice.
	update(t, m, runeKey('q'))
	if matches, _ = store.RecentMatches(10); len(matches) != 1 {
		t.Errorf("expected 1 recorded match after quit, got %d", len(matches))
	}

	recordSession(context.Background())
}

func TestDroppedSessionAfterRestart(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)
	ctx := context.WithValue(context.Background(), recorderKey{}, m.rec)

	tests := []struct {
		name  string
		ticks int
		key   rune
	}{
		{"restarted game", 4, 'r'},
		{"game in progress", 9, 0},
	}
	for _, tt := range tests {
		for i := 0; i < tt.ticks; i++ {
			m, _ = update(t, m, TickMsg{})
		}
		if tt.key != 0 {
			m, _ = update(t, m, runeKey(tt.key))
		}
	}
	recordSession(ctx)

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != len(tests) {
		t.Fatalf("expected %d recorded matches, got %d", len(tests), len(matches))
	}
	got := map[int64]bool{matches[0].Ticks: true, matches[1].Ticks: true}
	for _, tt := range tests {
		if !got[int64(tt.ticks)] {
			t.Errorf("%s: no match with %d ticks in %+v", tt.name, tt.ticks, matches)
		}
	}
}

func TestResize(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, expected 40", len(lines))
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("second ? should collapse the help")
	}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionP1Up},
		{"s", runeKey('s'), core.ActionP1Down},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionP2Up},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionP2Down},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

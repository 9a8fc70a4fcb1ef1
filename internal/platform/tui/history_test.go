package tui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

func TestHistoryViewListsMatches(t *testing.T) {
	matches := []storage.Match{
		{Player1: "alice", Player2: "bob", Score1: 5, Score2: 3, LongestRally: 12, Duration: 95 * time.Second, Source: storage.SourceSSH, CreatedAt: time.Now()},
		{Player1: "player1", Player2: "player2", Score1: 1, Score2: 1, Source: storage.SourceLocal, CreatedAt: time.Now()},
	}
	stats := &storage.Stats{Matches: 2, Player1Wins: 1, Draws: 1, LongestRally: 12}

	m := NewHistoryModel(matches, stats, 100, 30)
	view := m.View()

	for _, want := range []string{"MATCH HISTORY", "alice", "5 - 3", "1m35s", "2 matches"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryViewEmpty(t *testing.T) {
	m := NewHistoryModel(nil, &storage.Stats{}, 80, 24)

	if !strings.Contains(m.View(), "No matches recorded yet") {
		t.Error("empty history should show the empty message")
	}
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(nil, nil, 80, 24)

	next, cmd := m.Update(runeKey('q'))
	hm := next.(HistoryModel)
	if !hm.IsQuitting() {
		t.Error("q should quit the history screen")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if hm.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHistoryRowWinner(t *testing.T) {
	row := historyRow(storage.Match{Player1: "alice", Player2: "a-very-long-player-name", Score1: 0, Score2: 2})

	if row[3] != "a-very-long." {
		t.Errorf("player2 cell = %q, expected truncated name", row[3])
	}
	if row[4] != "a-very-long." {
		t.Errorf("winner cell = %q, expected truncated player2", row[4])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "bob", "bob"},
		{"exact", "twelve-chars", "twelve-chars"},
		{"ascii", "a-very-long-player-name", "a-very-long."},
		{"multibyte fits", "ñññññññññññ", "ñññññññññññ"},
		{"accented", "ñññññññññññññ", "ñññññññññññ."},
		{"cyrillic", "Владимир-Кирдан", "Владимир-Ки."},
		{"emoji", "🏓🏓🏓🏓🏓🏓🏓🏓🏓🏓🏓🏓🏓", "🏓🏓🏓🏓🏓🏓🏓🏓🏓🏓🏓."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, 12)
			if got != tt.want {
				t.Errorf("truncate(%q) = %q, expected %q", tt.in, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q) produced invalid UTF-8 %q", tt.in, got)
			}
			if n := utf8.RuneCountInString(got); n > 12 {
				t.Errorf("truncate(%q) kept %d runes, expected at most 12", tt.in, n)
			}
		})
	}
}

func TestFormatStats(t *testing.T) {
	got := FormatStats(storage.Stats{Matches: 4, Player1Wins: 2, Player2Wins: 1, Draws: 1, LongestRally: 8})
	want := "4 matches  P1 wins 2  P2 wins 1  draws 1  longest rally 8"
	if got != want {
		t.Errorf("FormatStats() = %q, expected %q", got, want)
	}
}

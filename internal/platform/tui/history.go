package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// HistoryKeyMap defines the key bindings for the match history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	matches  []storage.Match
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model over already loaded matches.
// stats may be nil.
func NewHistoryModel(matches []storage.Match, stats *storage.Stats, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		matches: matches,
		stats:   stats,
		keys:    DefaultHistoryKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// historyColumns returns the table layout.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Player 1", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Player 2", Width: 12},
		{Title: "Winner", Width: 12},
		{Title: "Rally", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Source", Width: 6},
	}
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, match := range m.matches {
		rows[i] = historyRow(match)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// historyRow formats one match for display.
func historyRow(match storage.Match) table.Row {
	return table.Row{
		match.CreatedAt.Local().Format("Jan 02 15:04"),
		truncate(match.Player1, 12),
		fmt.Sprintf("%d - %d", match.Score1, match.Score2),
		truncate(match.Player2, 12),
		truncate(match.Winner(), 12),
		fmt.Sprintf("%d", match.LongestRally),
		match.Duration.Round(time.Second).String(),
		match.Source,
	}
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("MATCH HISTORY", m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.Matches > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statsStyle.Render(centerText(FormatStats(*m.stats), m.width)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nRun 'pong' to play one!")
	}

	return m.table.View()
}

// IsQuitting returns true if the user closed the screen.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// FormatStats renders aggregate statistics on one line.
func FormatStats(s storage.Stats) string {
	return fmt.Sprintf("%d matches  P1 wins %d  P2 wins %d  draws %d  longest rally %d",
		s.Matches, s.Player1Wins, s.Player2Wins, s.Draws, s.LongestRally)
}

// centerText pads text with leading spaces to center it in width columns.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunHistory shows the match history in a full-screen table.
func RunHistory(store *storage.Store, limit, width, height int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(matches, stats, width, height),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

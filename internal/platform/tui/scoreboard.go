package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maksdenisov/skystrike/internal/storage"
)

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("14")).
				Padding(0, 1)

	scoreboardStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	scoreboardTableStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// scoreboardKeys defines the scoreboard key bindings.
type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// ScoreboardModel is an interactive view of the recorded rounds.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	stats    *storage.Stats
	quitting bool
}

// NewScoreboard builds a scoreboard from the store's best rounds.
func NewScoreboard(store *storage.Store, limit int) (ScoreboardModel, error) {
	entries, err := store.TopScores(limit)
	if err != nil {
		return ScoreboardModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	return ScoreboardModel{
		table: t,
		help:  help.New(),
		keys:  defaultScoreboardKeys(),
		stats: stats,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	stats := fmt.Sprintf("%d rounds played  ·  best %d  ·  avg %.1f",
		m.stats.Rounds, m.stats.HighScore, m.stats.AvgScore)

	return lipgloss.JoinVertical(lipgloss.Left,
		scoreboardTitleStyle.Render("Sky Strike — High Scores"),
		scoreboardStatsStyle.Render(stats),
		scoreboardTableStyle.Render(m.table.View()),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive scoreboard and blocks until exit.
func RunScoreboard(store *storage.Store, limit int) error {
	m, err := NewScoreboard(store, limit)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

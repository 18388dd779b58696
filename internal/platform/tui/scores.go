package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Score screen layout constants
const (
	maxScores      = 100 // Max runs to load
	scoresChrome   = 10  // Rows used by title, best score, borders and help
	minTableHeight = 3
)

// ScoresKeyMap defines the key bindings for the score screen.
type ScoresKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoresKeyMap returns default key bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/enter", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoresModel shows the best score and the history of finished runs.
type ScoresModel struct {
	gameID    string
	best      int
	store     *storage.Store
	scores    []storage.ScoreEntry
	table     table.Model
	help      help.Model
	keys      ScoresKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoresModel creates a score screen for gameID. best is the persisted
// best score, which is kept separately from the run history.
func NewScoresModel(store *storage.Store, gameID string, best, width, height int) ScoresModel {
	h := help.New()
	h.ShowAll = false

	m := ScoresModel{
		gameID: gameID,
		best:   best,
		store:  store,
		keys:   DefaultScoresKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// createTable creates a new table sized to the screen.
func (m *ScoresModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, m.height-scoresChrome)),
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

// loadScores loads the run history from the store.
func (m *ScoresModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.gameID, maxScores); err == nil {
			m.scores = scores
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoresModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the score screen.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the score screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	scoresTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoresBestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoresBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoresEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	scoresHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the score screen.
func (m ScoresModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(scoresTitleStyle.Render(centerText("SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(scoresBestStyle.Render(centerText(fmt.Sprintf("Best score: %d", m.best), m.width)))
	b.WriteString("\n\n")

	content := m.table.View()
	if len(m.scores) == 0 {
		content = scoresEmptyStyle.Render("No runs recorded yet.\nPlay a game to set a score!")
	}
	box := scoresBoxStyle.Render(content)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box))
	b.WriteString("\n")

	b.WriteString(scoresHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Best returns the best score shown on the screen.
func (m ScoresModel) Best() int {
	return m.best
}

// Rows returns the number of runs listed.
func (m ScoresModel) Rows() int {
	return len(m.scores)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoresModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoresModel) IsQuitting() bool {
	return m.quitting
}

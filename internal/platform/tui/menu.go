package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// MenuTarget is where a menu entry leads. Every menu in the arcade is a
// list of entries tagged with a target, and SessionModel.dispatch is the
// only place targets are acted on.
type MenuTarget int

const (
	TargetNone     MenuTarget = iota // Close everything
	TargetGame                       // Start a new game
	TargetScores                     // Score screen
	TargetResume                     // Leave the pause menu and count down
	TargetMainMenu                   // Back to the main menu
)

// String returns a human-readable name for the target.
func (t MenuTarget) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetGame:
		return "game"
	case TargetScores:
		return "scores"
	case TargetResume:
		return "resume"
	case TargetMainMenu:
		return "main_menu"
	default:
		return "unknown"
	}
}

// MenuEntry is a labelled menu item.
type MenuEntry struct {
	Label  string
	Target MenuTarget
}

// MainMenuEntries returns the entries of the start screen.
func MainMenuEntries() []MenuEntry {
	return []MenuEntry{
		{Label: "Play", Target: TargetGame},
		{Label: "Score", Target: TargetScores},
		{Label: "Exit", Target: TargetNone},
	}
}

// PauseMenuEntries returns the entries shown while a game is paused.
func PauseMenuEntries() []MenuEntry {
	return []MenuEntry{
		{Label: "Continue", Target: TargetResume},
		{Label: "Exit", Target: TargetMainMenu},
	}
}

// MenuList is a vertical list of entries with a cursor.
type MenuList struct {
	entries []MenuEntry
	cursor  int
}

// NewMenuList creates a list with the cursor on the first entry.
func NewMenuList(entries []MenuEntry) MenuList {
	return MenuList{entries: entries}
}

// Entries returns the list entries.
func (l MenuList) Entries() []MenuEntry {
	return l.entries
}

// Cursor returns the highlighted entry index.
func (l MenuList) Cursor() int {
	return l.cursor
}

// Handle applies a menu action. It returns the chosen entry when the
// action selects one.
func (l *MenuList) Handle(action MenuAction) (MenuEntry, bool) {
	switch action {
	case MenuActionUp:
		if l.cursor > 0 {
			l.cursor--
		}
	case MenuActionDown:
		if l.cursor < len(l.entries)-1 {
			l.cursor++
		}
	case MenuActionSelect:
		if len(l.entries) > 0 {
			return l.entries[l.cursor], true
		}
	}
	return MenuEntry{}, false
}

// Lines returns one line per entry with the cursor marker.
func (l MenuList) Lines() []string {
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		cursor := "  "
		if i == l.cursor {
			cursor = "> "
		}
		lines[i] = cursor + e.Label
	}
	return lines
}

// DrawOn draws the list as a boxed overlay centred on the screen.
func (l MenuList) DrawOn(dst *core.Screen, title string) {
	lines := l.Lines()
	width := len([]rune(title))
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	width += 4
	height := len(lines) + 4

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+2, box.Y+1, title, core.ColorBrightCyan)
	for i, line := range lines {
		color := core.ColorWhite
		if i == l.cursor {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(box.X+2, box.Y+3+i, line, color)
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	list      MenuList
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	chosen    *MenuEntry
}

// NewMenuModel creates a new main menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		list:      NewMenuList(MainMenuEntries()),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if action == MenuActionQuit {
			m.chosen = &MenuEntry{Label: "Exit", Target: TargetNone}
			return m, nil
		}
		if entry, ok := m.list.Handle(action); ok {
			m.chosen = &entry
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("F L A P P Y   B I R D", m.width)))
	b.WriteString("\n\n")

	for i, line := range m.list.Lines() {
		line = centerText(fmt.Sprintf("%-10s", line), m.width)
		if i == m.list.Cursor() {
			line = menuSelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the selected entry, or nil if none was selected yet.
func (m MenuModel) Chosen() *MenuEntry {
	return m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

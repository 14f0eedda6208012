package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orba-arcade/internal/leaderboard"
	"github.com/vovakirdan/orba-arcade/internal/registry"
)

// boardTimeout bounds one Top query.
const boardTimeout = 2 * time.Second

// ownMark flags the rows of the session's player.
const ownMark = "*"

var (
	boardFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmpty = menuDim.Italic(true).Padding(1, 2)
)

type boardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("→/tab", "next game"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel pages through the top ten of each registered game, one
// game at a time. Rows submitted under the session's player name are
// marked.
type ScoreboardModel struct {
	games     []registry.GameInfo
	cursor    int
	board     leaderboard.Board // nil shows every board empty
	player    string
	entries   []leaderboard.Entry
	err       error
	table     table.Model
	help      help.Model
	keys      boardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first game of the catalogue.
func NewScoreboardModel(board leaderboard.Board, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		board:  board,
		player: player,
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.table = newBoardTable(height)
	m.load()
	return m
}

func newBoardTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 9},
			{Title: "When", Width: 11},
		}),
		table.WithFocused(true),
		table.WithHeight(min(leaderboard.Capacity, max(3, height-12))),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Bold(true)
	t.SetStyles(s)
	return t
}

// current returns the game on display, if any game is registered.
func (m ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.cursor], true
}

// load queries the board of the current game and refills the table.
func (m *ScoreboardModel) load() {
	m.entries, m.err = nil, nil
	if g, ok := m.current(); ok && m.board != nil {
		ctx, cancel := context.WithTimeout(context.Background(), boardTimeout)
		m.entries, m.err = m.board.Top(ctx, g.ID)
		cancel()
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rank := strconv.Itoa(i + 1)
		if m.own(e) {
			rank += ownMark
		}
		rows[i] = table.Row{rank, e.Player, strconv.Itoa(e.Score), e.Time().Format("2006-01-02")}
	}
	return rows
}

func (m ScoreboardModel) own(e leaderboard.Entry) bool {
	return m.player != "" && strings.EqualFold(e.Player, m.player)
}

// best returns the 1-based rank of the player's highest entry, or 0.
func (m ScoreboardModel) best() int {
	for i, e := range m.entries {
		if m.own(e) {
			return i + 1
		}
	}
	return 0
}

// step moves the cursor by delta games, wrapping at both ends.
func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newBoardTable(msg.Height)
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("L E A D E R B O A R D S"), m.width))
	b.WriteString("\n\n")

	g, ok := m.current()
	if !ok {
		b.WriteString(centerText(boardEmpty.Render("No games installed."), m.width))
		return b.String()
	}

	pager := fmt.Sprintf("◂  %s  ▸", menuCursor.Render(g.Title))
	b.WriteString(centerText(pager, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render(fmt.Sprintf("%d of %d", m.cursor+1, len(m.games))), m.width))
	b.WriteString("\n")
	if g.Blurb != "" {
		b.WriteString(centerText(menuDim.Render(g.Blurb), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range strings.Split(boardFrame.Render(m.body()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if s := m.summary(); s != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuDim.Render(s), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) body() string {
	switch {
	case m.err != nil:
		return menuWarn.Padding(1, 2).Render("Scores unavailable: " + m.err.Error())
	case len(m.entries) == 0:
		return boardEmpty.Render("No scores recorded yet.")
	}
	return m.table.View()
}

func (m ScoreboardModel) summary() string {
	if m.err != nil || len(m.entries) == 0 || m.player == "" {
		return ""
	}
	if r := m.best(); r > 0 {
		return fmt.Sprintf("%s %s: best %d, rank %d", ownMark, m.player, m.entries[r-1].Score, r)
	}
	if len(m.entries) < leaderboard.Capacity {
		return m.player + " has no score here yet."
	}
	return fmt.Sprintf("%s needs more than %d to enter this board.", m.player, m.entries[len(m.entries)-1].Score)
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave the arcade.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

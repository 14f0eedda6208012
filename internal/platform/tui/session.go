package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/platform/runner"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// screen identifies the active view of a session.
type screen int

const (
	screenMenu screen = iota
	screenPreset
	screenScores
	screenGame
)

// SessionModel manages the full arcade session flow inside one program:
// menu -> difficulty -> game -> menu, with the scoreboard a Tab away.
// Local menu play and every SSH connection run one.
type SessionModel struct {
	host       runner.Config
	config     core.RuntimeConfig
	configPath string
	active     screen
	menu       MenuModel
	preset     PresetModel
	scores     ScoreboardModel
	game       *Model
	live       *liveGame
	quitting   bool
}

// liveGame tracks the schedule of the running game. It is shared by every
// copy of a session model so the connection owner can stop it.
type liveGame struct {
	mu     sync.Mutex
	handle *sim.Handle
}

func (l *liveGame) set(h *sim.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handle.Cancel()
	l.handle = h
}

func (l *liveGame) stop() {
	l.mu.Lock()
	h := l.handle
	l.handle = nil
	l.mu.Unlock()
	h.Cancel()
}

// NewSessionModel creates a new session model. configPath, when set, is
// the config file every picked game loads.
func NewSessionModel(cfg core.RuntimeConfig, host runner.Config, configPath string) SessionModel {
	host = host.WithDefaults()
	return SessionModel{
		host:       host,
		config:     cfg,
		configPath: configPath,
		live:       &liveGame{},
		menu:       NewMenuModel(cfg.ScreenW, cfg.ScreenH, host.Player),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case screenPreset:
		return m.updatePreset(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.host.Board, m.host.Player, m.config.ScreenW, m.config.ScreenH)
		m.active = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.preset = NewPresetModel(*m.menu.Selected(), m.config.ScreenW, m.config.ScreenH)
		m.active = screenPreset
		return m, m.preset.Init()
	}
	return m, cmd
}

// updatePreset handles the difficulty picker.
func (m SessionModel) updatePreset(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.preset.Update(msg)
	if preset, ok := next.(PresetModel); ok {
		m.preset = preset
	}

	if m.preset.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.preset.WantsBack() {
		return m.toMenu("")
	}
	if preset, ok := m.preset.Preset(); ok {
		return m.startGame(m.preset.item.GameID, string(preset))
	}
	return m, cmd
}

// startGame creates, configures and launches a game.
func (m SessionModel) startGame(id, preset string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		return m.toMenu(err.Error())
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(m.configPath, preset); err != nil {
			m.host.Logger.Warn("could not configure game", "game", id, "error", err)
			return m.toMenu(err.Error())
		}
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewModel(game, cfg, m.host)
	m.game = &gm
	m.live.set(gm.handle)
	m.active = screenGame
	return m, m.game.Init()
}

// updateScores handles the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu("")
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		m.live.stop()
		return m.toMenu("")
	}
	return m, cmd
}

// toMenu returns to a fresh menu, optionally showing a status line.
func (m SessionModel) toMenu(status string) (tea.Model, tea.Cmd) {
	cursor := m.menu.cursor
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.host.Player).WithStatus(status)
	if cursor < len(m.menu.items) {
		m.menu.cursor = cursor
	}
	m.active = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenPreset:
		return m.preset.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// Stop cancels a game schedule that is still running. It is safe to call
// from any goroutine and on any copy of the model.
func (m SessionModel) Stop() {
	m.live.stop()
}

// RunSession runs the interactive menu flow in the local terminal.
func RunSession(cfg core.RuntimeConfig, host runner.Config, configPath string) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, host, configPath),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if s, ok := final.(SessionModel); ok {
		s.Stop()
	}
	return err
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/platform/runner"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/sim"
)

// Model is the Bubble Tea model for running one arcade game.
type Model struct {
	runner     *runner.Runner
	handle     *sim.Handle
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame *core.InputFrame
	keys       *KeyMapper
	logger     *log.Logger
	standalone bool // Back and quit end the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game and starts its frame schedule.
func NewModel(game registry.Game, cfg core.RuntimeConfig, host runner.Config) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	host = host.WithDefaults()
	r := runner.New(game, host)
	in := core.NewInputFrame()
	return Model{
		runner:     r,
		handle:     r.Start(cfg),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: &in,
		keys:       NewKeyMapper(),
		logger:     host.Logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.handle, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Point(msg.X, msg.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionFire)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.Press(msg, time.Now(), m.inputFrame)
	if isQuit {
		return m.leave(true)
	}

	// Back leaves only from a paused or finished run; otherwise it is a
	// game action like any other.
	state := m.runner.State()
	if action == core.ActionBack && (state.GameOver || state.Paused || state.Phase == sim.Briefing.String()) {
		return m.leave(m.standalone)
	}
	return m, nil
}

// leave stops the schedule and either quits or returns to the menu.
func (m Model) leave(quit bool) (tea.Model, tea.Cmd) {
	m.runner.Stop()
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

// handleResize processes window resize events. The run continues; only
// the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.runner.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame of the live schedule.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.runner.Frame(msg.Handle, msg.At, *m.inputFrame) {
		// Stale tick from a cancelled schedule: do not reschedule.
		return m, nil
	}

	// Clear presses for next frame; held keys expire on their own.
	m.inputFrame.Clear()
	m.keys.Expire(msg.At, m.inputFrame)

	return m, tickCmd(m.handle, m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() (string, error) {
	m.runner.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.runner.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.runner.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the snapshot of the last frame.
func (m Model) State() core.GameState {
	return m.runner.State()
}

// IsQuitting returns true if the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own Bubble Tea program until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, host runner.Config) error {
	model := NewModel(game, cfg, host)
	model.standalone = true
	defer model.runner.Stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/leaderboard"
	"github.com/vovakirdan/orba-arcade/internal/platform/runner"
	"github.com/vovakirdan/orba-arcade/internal/profile"
	"github.com/vovakirdan/orba-arcade/internal/registry"
	"github.com/vovakirdan/orba-arcade/internal/storage"
)

// Leaderboard backends selectable with --store.
const (
	storeSQLite = "sqlite"
	storeLocal  = "local"
)

// env holds what a command opens from the global flags: the logger, the
// per-user save area and the leaderboard backend.
type env struct {
	logger *log.Logger
	kv     leaderboard.KV
	board  leaderboard.Board
	store  *storage.Store // nil unless --store sqlite opened
	player string
	logOut io.Closer
}

// openEnv opens the environment. quiet sends logs nowhere unless --log is
// set, for commands that own the terminal.
func openEnv(quiet bool) (*env, error) {
	e := &env{}
	if err := e.openLogger(quiet); err != nil {
		return nil, err
	}

	if area, err := storage.OpenSaveArea(storage.AppName); err != nil {
		e.logger.Warn("could not open save area, using memory", "error", err)
		e.kv = storage.NewMemory()
	} else {
		e.kv = area
	}

	switch flagStore {
	case storeSQLite:
		store, err := storage.Open(flagDBPath)
		if err != nil {
			e.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
			break
		}
		e.store = store
		e.board = store
	case storeLocal:
		e.board = leaderboard.NewKVBoard(e.kv)
	default:
		e.Close()
		return nil, fmt.Errorf("unknown --store %q (want %s or %s)", flagStore, storeSQLite, storeLocal)
	}

	e.player = profile.Load(e.kv)
	if flagPlayer != "" {
		e.player = profile.Normalize(flagPlayer)
		if e.player == "" {
			e.player = profile.DefaultName
		}
	}
	return e, nil
}

func (e *env) openLogger(quiet bool) error {
	var out io.Writer = os.Stderr
	switch {
	case flagLogPath != "":
		if dir := filepath.Dir(flagLogPath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out, e.logOut = f, f
	case quiet:
		out = io.Discard
	}

	e.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagVerbose {
		e.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// host returns the collaborators a game runner reports to. The player
// name is written back to the save area whenever a game starts.
func (e *env) host() runner.Config {
	return runner.Config{Board: e.board, Player: e.player, Logger: e.logger, Profile: e.kv}
}

// Close releases the database and the log file.
func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
	if e.logOut != nil {
		e.logOut.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// createGame instantiates and configures a registered game.
func createGame(id, configPath, preset string) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(configPath, preset); err != nil {
			return nil, err
		}
	}
	return game, nil
}

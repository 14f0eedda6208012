package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orba-arcade/internal/core"
	"github.com/vovakirdan/orba-arcade/internal/registry"
)

var (
	flagTicks  int
	flagRender bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a headless deterministic session",
	Long: `Run a game without a display, feeding it seeded random input at a
fixed time scale, and print the final state. The same --seed always
produces the same run. Nothing is submitted to the leaderboard.

Examples:
  arcade sim prism --seed 7
  arcade sim zenvoid --ticks 3600 --render`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1800, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final screen")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, args []string) error {
	game, err := createGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	res := simulate(game, cfg, flagTicks)

	fmt.Printf("game:    %s\n", game.ID())
	fmt.Printf("seed:    %d\n", cfg.Seed)
	fmt.Printf("frames:  %d\n", res.Frames)
	fmt.Printf("phase:   %s\n", res.State.Phase)
	fmt.Printf("level:   %d\n", res.State.Level)
	fmt.Printf("score:   %d\n", res.State.Score)
	if res.State.Health >= 0 {
		fmt.Printf("health:  %d\n", res.State.Health)
	}
	for _, ev := range res.Events {
		fmt.Printf("event:   %s score=%d level=%d\n", eventName(ev.Kind), ev.Score, ev.Level)
	}

	if flagRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println()
		fmt.Print(screen.String())
	}
	return nil
}

// simResult is the outcome of a headless run.
type simResult struct {
	Frames int
	State  core.GameState
	Events []core.Event
}

// simulate plays up to ticks frames with a seeded bot and stops at the
// first terminal event.
func simulate(game registry.Game, cfg core.RuntimeConfig, ticks int) simResult {
	game.Reset(cfg)
	bot := newBot(cfg.Seed, cfg.ScreenW, cfg.ScreenH)

	var res simResult
	for res.Frames < ticks {
		step := game.Step(core.NewTick(bot.next(game.State()), 1))
		res.Frames++
		res.State = step.State
		for _, ev := range step.Events {
			if ev.Kind == core.EventLevelUp || ev.Terminal() {
				res.Events = append(res.Events, ev)
			}
			if ev.Terminal() {
				return res
			}
		}
	}
	return res
}

var botMoves = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// bot produces scripted input: it confirms briefings, holds a direction
// for a while, fires often and now and then uses specials and lanes.
type bot struct {
	rng    *rand.Rand
	w, h   int
	move   core.Action
	hold   int
	px, py int
}

func newBot(seed int64, w, h int) *bot {
	return &bot{rng: rand.New(rand.NewSource(seed)), w: w, h: h, px: w / 2, py: h / 2}
}

func (b *bot) next(state core.GameState) core.InputFrame {
	in := core.NewInputFrame()
	if state.Phase == "briefing" {
		in.Set(core.ActionConfirm)
		return in
	}

	if b.hold <= 0 {
		b.move = botMoves[b.rng.Intn(len(botMoves))]
		b.hold = 10 + b.rng.Intn(40)
		in.Set(b.move)
	}
	b.hold--
	in.Hold(b.move, true)

	if b.rng.Intn(6) == 0 {
		in.Set(core.ActionFire)
	}
	in.Hold(core.ActionFire, b.rng.Intn(3) == 0)
	if b.rng.Intn(240) == 0 {
		in.Set(core.ActionSpecial)
	}
	if b.rng.Intn(8) == 0 {
		in.Set(core.LaneActions[b.rng.Intn(len(core.LaneActions))])
	}

	b.px = core.Clamp(b.px+b.rng.Intn(5)-2, 0, b.w-1)
	b.py = core.Clamp(b.py+b.rng.Intn(3)-1, 0, b.h-1)
	in.Point(b.px, b.py)
	return in
}

func eventName(k core.EventKind) string {
	switch k {
	case core.EventGameOver:
		return "game_over"
	case core.EventComplete:
		return "complete"
	case core.EventLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

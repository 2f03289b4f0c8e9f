package main

import (
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagFPS   int
	flagLevel string
	flagHold  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  A/D, Left/Right  - Move the paddle
  Space            - Launch the ball
  W/S, Up/Down     - Select level (menu)
  Enter            - Start / back to menu after a win
  Esc, Q/Ctrl+C    - Quit
  ?                - Toggle help

Terminals report no key releases, so a key counts as held until no
auto-repeat arrives for --hold. If the paddle stutters when a key is first
held, raise --hold above your terminal's repeat delay; if it coasts after
release, lower it.

Difficulty options:
  easy   - Wider paddle, slower ball, more screen effects
  normal - Default settings
  hard   - Narrower paddle, faster ball, fewer screen effects

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --level two --seed 42
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to select in the menu")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lvls, err := loadLevels(cfg)
	if err != nil {
		return err
	}
	start, err := levelIndex(lvls, flagLevel)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	world := mgl64.Vec2{cfg.Field.Width, cfg.Field.Height}
	opts := tui.Options{TickRate: flagFPS, HoldWindow: flagHold, Logger: logger}

	return tui.Run(rc, world, opts, func(r breakout.Renderer, s breakout.SoundPlayer) (*breakout.Game, error) {
		g, err := breakout.New(cfg, lvls,
			breakout.WithRenderer(r),
			breakout.WithSound(s),
			breakout.WithLogger(logger),
			breakout.WithSeed(rc.Seed),
		)
		if err != nil {
			return nil, err
		}
		g.Level = start
		return g, nil
	})
}

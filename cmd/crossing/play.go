package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
	"github.com/vovakirdan/bug-crossing/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bug Crossing",
	Long: `Start playing in this terminal.

Controls:
  Arrows/hjkl/wasd - Move one tile
  Enter/Space      - Start, or play again after game over
  Mouse click      - Press the on-screen buttons
  R                - Play again (after game over)
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 7 lives, fewer bugs, speed grows with your score
  normal - 5 lives, bugs start 30% faster and speed up as you score
  hard   - 3 lives, more bugs, starting 70% faster
  fixed  - No speed-up, bugs keep their drawn speed

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --config ./my-crossing.yaml
  crossing play --seed 42 --log-file crossing.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores (default: login name)")
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.CrossingConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.CrossingConfig{}, err
	}

	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return config.CrossingConfig{}, err
	}
	config.ApplyCrossingPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.CrossingConfig{}, err
	}
	return cfg, nil
}

// playerName returns --player, falling back to the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func runPlay(_ *cobra.Command, _ []string) {
	// The game owns the terminal; logs only go to --log-file.
	logger, closer, err := newLogger("crossing", io.Discard)
	exitOnError("logger", err)
	defer closer.Close()

	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore(logger)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: scores will not be saved")
	}

	player := playerName()
	logger.Info("starting game", "player", player, "difficulty", flagDifficulty, "seed", flagSeed)

	runErr := tui.Run(crossing.New(gameCfg), store, cfg, logger, player)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}

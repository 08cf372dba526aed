package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagDriver        string
	flagScoresBackend string
	flagScoresPath    string
	flagPlayer        string
	flagSeed          int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the game at its menu.

Controls:
  Arrows/WASD/HJKL  - Steer, move the menu cursor
  Enter/Space       - Confirm
  Esc/Q/Ctrl+C      - Quit

Items:
  @  Apple        - grow by one
  >  Speed boost  - faster for a while
  %  Reverse      - head and tail swap

Examples:
  snake play
  snake play --driver tcell
  snake play --scores-backend sqlite --player ada
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDriver, "driver", "", "Terminal driver: tea, tcell")
	cmd.Flags().StringVar(&flagScoresBackend, "scores-backend", "", "Score storage: json, sqlite")
	cmd.Flags().StringVar(&flagScoresPath, "scores-path", "", "Score file path")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

// applyPlayFlags overrides config values with the flags the user set.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.UI.Driver = flagDriver
	}
	if flags.Changed("scores-backend") {
		cfg.Scores.Backend = flagScoresBackend
	}
	if flags.Changed("scores-path") {
		cfg.Scores.Path = flagScoresPath
	}
	if flags.Changed("player") {
		cfg.Scores.Player = flagPlayer
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	applyPlayFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := openStore(cfg.Scores, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "driver", cfg.UI.Driver, "seed", seed, "player", cfg.Scores.Player)

	driver, err := platform.Open(cfg.UI.Driver, platform.Options{
		Keymap: platform.NewKeymap(cfg.Input),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	state := game.New(cfg.Game, rand.New(rand.NewSource(seed)))
	renderer := engine.NewScreenRenderer(driver, cfg.Game.FieldWidth, cfg.Game.FieldHeight, logger)
	loop := engine.NewLoop(state, driver, renderer, store, engine.Options{
		TickInterval: cfg.Game.TickInterval,
		IdleWait:     cfg.Loop.IdleWait,
		Player:       cfg.Scores.Player,
		MenuTop:      cfg.Scores.MenuTop,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("play: %w", err)
	}
	logger.Info("bye")
	return nil
}

// openStore opens the configured backend. A SQLite failure falls back to
// the JSON file so scores keep being recorded.
func openStore(cfg config.ScoresConfig, logger *log.Logger) (storage.Store, error) {
	store, err := storage.Open(cfg, logger)
	if err == nil || cfg.Backend != config.BackendSQLite {
		return store, err
	}

	logger.Warn("sqlite scores unavailable, using json", "err", err)
	fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	return storage.Open(config.ScoresConfig{Backend: config.BackendJSON, Player: cfg.Player}, logger)
}

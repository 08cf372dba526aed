// snake is a terminal snake game.
//
// Usage:
//
//	snake                 - Play (same as "snake play")
//	snake play            - Play a game
//	snake scores          - Show the high score list
//	snake config          - Print the effective configuration
//	snake drivers         - List terminal drivers
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--log-file <path>    - Log file (default: <data dir>/snake.log)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"

	// Import drivers to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A terminal snake game with apples, speed boosts and reversals.

Available commands:
  play     - Play (default)
  scores   - View high scores
  config   - Print the effective configuration
  drivers  - List terminal drivers

Examples:
  snake
  snake play --driver tcell --player ada
  snake scores --interactive
  snake config > ~/.config/tui-snake/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: <data dir>/snake.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(driversCmd)
}

// loadConfig loads the configuration and reports where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// openLogger opens the log file. The terminal belongs to the driver, so
// nothing is logged to stderr.
func openLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		dir, err := storage.DataDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, "snake.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the ranked score list.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --interactive
  snake scores --scores-backend sqlite
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print (0 = all)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
	scoresCmd.Flags().StringVar(&flagScoresBackend, "scores-backend", "", "Score storage: json, sqlite")
	scoresCmd.Flags().StringVar(&flagScoresPath, "scores-path", "", "Score file path")
}

func runScores(cmd *cobra.Command, args []string) error {
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

	store, err := openStore(cfg.Scores, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		logger.Info("scores cleared")
		fmt.Println("Scores cleared.")
		return nil
	}

	entries, err := store.Load()
	if err != nil {
		return err
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(entries, width, height)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}
	if flagLimit > 0 && len(entries) > flagLimit {
		entries = entries[:flagLimit]
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")

	for i, e := range entries {
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, e.PlayerName, e.Score, date)
	}

	fmt.Println()
	fmt.Printf("Best: %d (%s)\n", entries[0].Score, entries[0].PlayerName)
	return nil
}

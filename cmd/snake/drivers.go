package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List terminal drivers",
	Long:  `Shows the terminal drivers compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runDrivers,
}

func runDrivers(cmd *cobra.Command, args []string) {
	names := platform.Names()
	if len(names) == 0 {
		fmt.Println("No drivers available.")
		return
	}

	fmt.Println("Available drivers:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'snake play --driver <name>' or set ui.driver in the config.")
}

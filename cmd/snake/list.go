package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered variant with its board size and the display it needs.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board", "Needs")
	fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----", "-----")

	for _, g := range games {
		s := snake.SettingsFromConfig(cfg, g.ID == snake.IDCompact)
		board := fmt.Sprintf("%dx%d", s.Rows, s.Cols)
		fmt.Printf("  %-*s  %-*s  %-10s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, board, snake.RequiredSize(s.Rows, s.Cols))
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}

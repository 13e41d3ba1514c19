// snake is a classic snake game for the terminal, played on a field whose
// edges wrap around.
//
// Usage:
//
//	snake                     - Play the classic board
//	snake play [variant]      - Play a variant (snake, snake_compact)
//	snake menu                - Pick a variant interactively, see high scores
//	snake list                - List variants
//	snake scores [variant]    - Show high scores
//	snake config              - Print the active configuration
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.snake/scores.db)
//	--config <path>   - Use a custom YAML config
//	--log-file <path> - Write logs here, "-" for stderr (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagTick    time.Duration
	flagSound   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat, grow, and do not bite yourself",
	Long: `Snake is the classic game in your terminal. The field wraps around at
every edge; the only way to lose is to run into your own body, or to fill
the whole field.

Available commands:
  play     - Play a variant directly (the default)
  menu     - Interactive variant picker with high scores
  list     - Show all variants
  scores   - View high scores
  config   - Print or install the configuration

Examples:
  snake
  snake play snake_compact --frontend tea
  snake menu
  snake scores --all`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick interval (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects (overrides config)")

	rootCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTcell, "Frontend: tcell or tea")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

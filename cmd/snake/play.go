package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	frontendTcell = "tcell"
	frontendTea   = "tea"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without a variant the classic 30x120 board is used.

Controls:
  Arrows/WASD  - Turn
  F2/Q/Esc     - Quit
  R            - Restart after game over (tea frontend)
  Ctrl+S       - Save a screenshot (tea frontend)

Frontends:
  tcell  - Draws only the cells that change; the session ends on a loss
  tea    - Bubble Tea; stays open after a loss so you can restart

Examples:
  snake play
  snake play snake_compact
  snake play --frontend tea --tick 50ms
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTcell, "Frontend: tcell or tea")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd, args); err != nil {
		var tooSmall *snake.DisplayTooSmallError
		if errors.As(err, &tooSmall) {
			fmt.Fprintln(os.Stderr, tooSmall)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func play(cmd *cobra.Command, args []string) error {
	gameID := snake.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings := snake.SettingsFromConfig(cfg, gameID == snake.IDCompact)

	// The field must fit before the terminal is taken over.
	width, height, isTerm := terminalSize()
	if !isTerm {
		return errors.New("stdout is not a terminal")
	}
	if err := snake.CheckDisplay(settings.Rows, settings.Cols, snake.Size{Rows: height, Cols: width}); err != nil {
		return err
	}

	logger, logCloser := mustLogger()
	defer logCloser.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := newPlayer(cfg.Audio, logger)
	defer player.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "variant", gameID, "frontend", flagFrontend, "seed", seed)

	switch flagFrontend {
	case frontendTcell:
		err = playTcell(gameID, settings, cfg, seed, store, logger, player)
	case frontendTea:
		err = playTea(gameID, cfg, width, height, seed, store, logger, player)
	default:
		err = fmt.Errorf("unknown frontend %q (want %s or %s)", flagFrontend, frontendTcell, frontendTea)
	}
	if err != nil {
		logger.Error("play failed", "error", err)
	}
	return err
}

// playTcell runs one session on a raw tcell screen and records its score.
func playTcell(
	gameID string,
	settings snake.Settings,
	cfg config.SnakeConfig,
	seed int64,
	store *storage.Store,
	logger *log.Logger,
	player audio.Player,
) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	res, err := term.Play(ctx, screen, term.Options{
		Settings: settings,
		Glyphs:   cfg.Glyphs,
		Tick:     cfg.Timing.Tick(),
		Seed:     seed,
		Logger:   logger.WithPrefix("snake/" + gameID),
		Audio:    player,
	})
	if err != nil {
		return err
	}

	if store != nil && res.Score > 0 {
		if _, err := store.SaveResult(gameID, res.Score, res.Outcome()); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}
	return nil
}

// playTea runs the variant under Bubble Tea. Scores are saved by the model.
func playTea(
	gameID string,
	cfg config.SnakeConfig,
	width, height int,
	seed int64,
	store *storage.Store,
	logger *log.Logger,
	player audio.Player,
) error {
	snake.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	_, err = tui.Run(game, core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    cfg.Timing.Tick(),
		Seed:    seed,
	}, tui.Options{
		Store:  store,
		Logger: logger.WithPrefix("snake/" + gameID),
		Audio:  player,
	})
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const defaultLogFile = "~/.snake/snake.log"

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// newLogger opens the log destination named by --log-file. The returned
// closer must be called once logging is done. Logging never goes to the
// terminal while a game owns it unless "-" is asked for explicitly.
func newLogger() (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "snake",
	}
	if flagLogFile == "-" {
		return log.NewWithOptions(os.Stderr, opts), io.NopCloser(nil), nil
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// mustLogger is newLogger for commands that cannot go on without one; it
// falls back to a discarding logger and says so on stderr.
func mustLogger() (*log.Logger, io.Closer) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return logger, closer
}

// loadConfig loads the game configuration, applying the global overrides.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}
	if flagTick != 0 {
		cfg.Timing.TickMS = int(flagTick / time.Millisecond)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("after flag overrides: %w", err)
	}
	return cfg, nil
}

// openStore opens the scores database; a failure is logged and play goes on
// without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newPlayer opens the speaker when sound is on.
func newPlayer(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	p, err := audio.New(cfg)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return p
}

// terminalSize reports the size of the terminal on stdout.
func terminalSize() (width, height int, ok bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24, false
	}
	return w, h, true
}

package term

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultGoodbyeDelay is how long the farewell stays on screen.
const DefaultGoodbyeDelay = time.Second

// Options configures a terminal session.
type Options struct {
	Settings snake.Settings
	Glyphs   config.GlyphConfig
	Tick     time.Duration
	Seed     int64
	Logger   *log.Logger
	Audio    audio.Player
	// GoodbyeDelay overrides DefaultGoodbyeDelay; negative skips the farewell.
	GoodbyeDelay time.Duration
}

// Play runs one session on screen until it is lost or quit, then shows the
// farewell. The caller owns screen and must Init and Fini it.
func Play(ctx context.Context, screen tcell.Screen, opts Options) (snake.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	f, err := NewFrontend(screen, opts.Settings.Rows, opts.Settings.Cols, opts.Glyphs)
	if err != nil {
		return snake.Result{}, err
	}
	defer f.Close()

	session, err := snake.NewSession(opts.Settings, rand.New(rand.NewSource(opts.Seed)), f)
	if err != nil {
		return snake.Result{}, err
	}
	f.Attach(session)

	logger.Info("session started",
		"rows", opts.Settings.Rows,
		"cols", opts.Settings.Cols,
		"seed", opts.Seed,
		"tick", opts.Tick,
	)

	res, err := snake.RunFunc(ctx, session, f, opts.Tick, func(r snake.TickResult) {
		if r.Ate {
			player.Play(audio.EffectEat)
		}
	})
	if err != nil {
		logger.Error("session aborted", "error", err, "score", res.Score)
		return res, err
	}
	if res.Status == snake.StatusLost {
		player.Play(audio.EffectLose)
	}
	logger.Info("session ended",
		"score", res.Score,
		"length", res.Length,
		"eaten", res.Eaten,
		"ticks", res.Ticks,
		"reason", res.Reason,
	)

	f.Goodbye(ctx, res, opts.GoodbyeDelay)
	return res, nil
}

// Goodbye clears the screen and shows the farewell for delay, or until ctx
// is done.
func (f *Frontend) Goodbye(ctx context.Context, res snake.Result, delay time.Duration) {
	if delay < 0 {
		return
	}
	if delay == 0 {
		delay = DefaultGoodbyeDelay
	}

	f.screen.Clear()
	w, h := f.screen.Size()
	msg := snake.GoodbyeLine(res)
	f.text((w-len(msg))/2, h/2, msg, stylePanel)
	f.screen.Show()

	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

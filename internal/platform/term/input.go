package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrScreenClosed is returned by Poll once the screen stops delivering events.
var ErrScreenClosed = errors.New("term: screen closed")

// Poll shows what was drawn since the last call and waits up to timeout for
// a key. The first key that maps to an input ends the wait early. Resizes
// repaint the whole screen and fail when the field no longer fits.
func (f *Frontend) Poll(ctx context.Context, timeout time.Duration) (snake.Input, error) {
	if err := ctx.Err(); err != nil {
		return snake.InputNone, err
	}
	f.screen.Show()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return snake.InputNone, ctx.Err()

		case <-timer.C:
			return snake.InputNone, nil

		case ev, ok := <-f.events:
			if !ok {
				return snake.InputNone, ErrScreenClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if in := KeyInput(ev); in != snake.InputNone {
					return in, nil
				}
			case *tcell.EventResize:
				if err := f.repaint(); err != nil {
					return snake.InputNone, err
				}
				f.screen.Show()
			}
		}
	}
}

// KeyInput maps a key event to an engine input.
func KeyInput(ev *tcell.EventKey) snake.Input {
	switch ev.Key() {
	case tcell.KeyUp:
		return snake.InputUp
	case tcell.KeyDown:
		return snake.InputDown
	case tcell.KeyLeft:
		return snake.InputLeft
	case tcell.KeyRight:
		return snake.InputRight
	case tcell.KeyF2, tcell.KeyCtrlC, tcell.KeyEscape:
		return snake.InputQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return snake.InputUp
		case 's', 'S':
			return snake.InputDown
		case 'a', 'A':
			return snake.InputLeft
		case 'd', 'D':
			return snake.InputRight
		case 'q', 'Q':
			return snake.InputQuit
		}
	}
	return snake.InputNone
}

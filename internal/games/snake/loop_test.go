package snake

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunScriptedQuit(t *testing.T) {
	s := newTestSession(t, 10, 10, 3, 1, nil)
	src := NewScriptedInput(InputDown, InputNone, InputQuit, InputUp)

	res, err := Run(context.Background(), s, src, time.Millisecond)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Status != StatusQuit {
		t.Errorf("Status = %v, expected quit", res.Status)
	}
	if res.Ticks != 2 {
		t.Errorf("Ticks = %d, expected 2", res.Ticks)
	}
	if src.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", src.Remaining())
	}
}

func TestRunUntilLost(t *testing.T) {
	s := newTestSession(t, 4, 4, 4, 1, nil)

	res, err := Run(context.Background(), s, NewScriptedInput(), time.Millisecond)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Status != StatusLost || res.Reason != ReasonSelfCollision {
		t.Errorf("Result = %+v, expected lost by self-collision", res)
	}
	if res.Length != 4 || res.Score != 0 {
		t.Errorf("Result = %+v, expected length 4 and no score", res)
	}
}

func TestRunContextCancelled(t *testing.T) {
	s := newTestSession(t, 10, 10, 3, 1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, s, NewScriptedInput(InputDown), time.Millisecond)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Status != StatusQuit {
		t.Errorf("Status = %v, expected quit", res.Status)
	}
	if res.Ticks != 0 {
		t.Errorf("Ticks = %d, expected 0", res.Ticks)
	}
}

func TestRunFuncSeesFinalTick(t *testing.T) {
	s := newTestSession(t, 1, 3, 2, 1, nil)

	var ticks []TickResult
	res, err := RunFunc(context.Background(), s, NewScriptedInput(), time.Millisecond, func(r TickResult) {
		ticks = append(ticks, r)
	})
	if err != nil {
		t.Fatalf("RunFunc() error = %v", err)
	}
	if res.Reason != ReasonBoardFull {
		t.Fatalf("Result = %+v, expected board-full", res)
	}
	if len(ticks) != 1 {
		t.Fatalf("onTick called %d times, expected 1", len(ticks))
	}
	if !ticks[0].Ate || ticks[0].Status != StatusLost {
		t.Errorf("last tick = %+v, expected it to eat and end the session", ticks[0])
	}
}

type failingInput struct{ err error }

func (f failingInput) Poll(context.Context, time.Duration) (Input, error) {
	return InputNone, f.err
}

func TestRunPollError(t *testing.T) {
	s := newTestSession(t, 10, 10, 3, 1, nil)
	boom := errors.New("terminal gone")

	res, err := Run(context.Background(), s, failingInput{err: boom}, time.Millisecond)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, expected %v", err, boom)
	}
	if res.Status != StatusRunning {
		t.Errorf("Status = %v, expected running", res.Status)
	}
}

func TestResultOutcome(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Result{Status: StatusRunning}, ""},
		{Result{Status: StatusQuit}, "quit"},
		{Result{Status: StatusLost, Reason: ReasonSelfCollision}, "self-collision"},
		{Result{Status: StatusLost, Reason: ReasonBoardFull}, "board-full"},
	}
	for _, tt := range tests {
		if got := tt.res.Outcome(); got != tt.want {
			t.Errorf("Outcome(%+v) = %q, expected %q", tt.res, got, tt.want)
		}
	}
}

package snake

import (
	"context"
	"errors"
	"time"
)

// InputSource delivers at most one input per call, waiting no longer than
// timeout. A call that times out returns InputNone.
type InputSource interface {
	Poll(ctx context.Context, timeout time.Duration) (Input, error)
}

// ScriptedInput replays a fixed list of inputs, then InputNone forever.
// It never waits.
type ScriptedInput struct {
	inputs []Input
	pos    int
}

// NewScriptedInput returns a source that yields inputs in order.
func NewScriptedInput(inputs ...Input) *ScriptedInput {
	return &ScriptedInput{inputs: inputs}
}

// Poll returns the next scripted input.
func (s *ScriptedInput) Poll(ctx context.Context, _ time.Duration) (Input, error) {
	if err := ctx.Err(); err != nil {
		return InputNone, err
	}
	if s.pos >= len(s.inputs) {
		return InputNone, nil
	}
	in := s.inputs[s.pos]
	s.pos++
	return in, nil
}

// Remaining returns how many scripted inputs have not been consumed.
func (s *ScriptedInput) Remaining() int {
	return len(s.inputs) - s.pos
}

// Result summarises a finished session.
type Result struct {
	Score  int
	Length int
	Eaten  int
	Ticks  uint64
	Status Status
	Reason Reason
}

// Outcome names how the session ended: the loss reason, "quit", or empty
// while it is still running.
func (r Result) Outcome() string {
	switch r.Status {
	case StatusLost:
		return r.Reason.String()
	case StatusQuit:
		return StatusQuit.String()
	}
	return ""
}

// ResultOf summarises the session as it stands.
func ResultOf(s *Session) Result {
	return Result{
		Score:  s.Score(),
		Length: s.Len(),
		Eaten:  s.Eaten(),
		Ticks:  s.Ticks(),
		Status: s.Status(),
		Reason: s.Reason(),
	}
}

// Run drives s until it is lost or quit. Every iteration polls exactly one
// input with a wait of at most timeout and then ticks, so the poll doubles as
// frame pacing. Cancelling ctx ends the session as quit; any other poll
// error is returned together with the partial result.
func Run(ctx context.Context, s *Session, src InputSource, timeout time.Duration) (Result, error) {
	return RunFunc(ctx, s, src, timeout, nil)
}

// RunFunc is Run with onTick called after every tick, including the one
// that ends the session. A nil onTick is ignored.
func RunFunc(ctx context.Context, s *Session, src InputSource, timeout time.Duration, onTick func(TickResult)) (Result, error) {
	for s.Status() == StatusRunning {
		in, err := src.Poll(ctx, timeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.Quit()
				break
			}
			return ResultOf(s), err
		}
		res := s.Tick(in)
		if onTick != nil {
			onTick(res)
		}
	}
	return ResultOf(s), nil
}

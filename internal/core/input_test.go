package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("New frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionQuit)
	if !f.Has(ActionUp) || !f.Has(ActionQuit) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionQuit) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionIsTurn(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionNone, false},
		{ActionQuit, false},
		{ActionConfirm, false},
		{ActionRestart, false},
	}

	for _, tc := range tests {
		if tc.action.IsTurn() != tc.expected {
			t.Errorf("%s.IsTurn() = %v, expected %v", tc.action, tc.action.IsTurn(), tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q, expected %q", ActionQuit.String(), "Quit")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}

package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRequiredSize(t *testing.T) {
	if got := RequiredSize(30, 120); got != (Size{Rows: 36, Cols: 122}) {
		t.Errorf("RequiredSize(30, 120) = %v, expected 36x122", got)
	}
}

func TestCheckDisplay(t *testing.T) {
	tests := []struct {
		have Size
		ok   bool
	}{
		{Size{36, 122}, true},
		{Size{50, 200}, true},
		{Size{35, 122}, false},
		{Size{36, 121}, false},
		{Size{24, 80}, false},
	}
	for _, tt := range tests {
		err := CheckDisplay(30, 120, tt.have)
		if (err == nil) != tt.ok {
			t.Errorf("CheckDisplay(%v) error = %v, expected ok=%v", tt.have, err, tt.ok)
		}
	}
}

func TestDisplayTooSmallMessage(t *testing.T) {
	err := CheckDisplay(30, 120, Size{Rows: 24, Cols: 80})

	var tooSmall *DisplayTooSmallError
	if !errors.As(err, &tooSmall) {
		t.Fatalf("CheckDisplay() error = %v, expected *DisplayTooSmallError", err)
	}
	want := "This screen has 24 rows and 80 columns. Enlarge it.\n" +
		"You need at least 36 rows and 122 columns."
	if err.Error() != want {
		t.Errorf("Error() = %q, expected %q", err.Error(), want)
	}
}

func TestNewLayoutCentresField(t *testing.T) {
	l, err := NewLayout(30, 120, Size{Rows: 40, Cols: 130})
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}

	if want := core.NewRect(4, 2, 122, 32); l.Field != want {
		t.Errorf("Field = %+v, expected %+v", l.Field, want)
	}
	if want := core.NewRect(0, 36, 130, 4); l.Panel != want {
		t.Errorf("Panel = %+v, expected %+v", l.Panel, want)
	}
	if x, y := l.CellAt(Point{0, 0}); x != 5 || y != 3 {
		t.Errorf("CellAt(0,0) = (%d,%d), expected (5,3)", x, y)
	}
	if x, y := l.CellAt(Point{29, 119}); x != 124 || y != 32 {
		t.Errorf("CellAt(29,119) = (%d,%d), expected (124,32)", x, y)
	}
	if l.Field.Bottom() > l.Panel.Y {
		t.Errorf("field bottom %d overlaps panel at %d", l.Field.Bottom(), l.Panel.Y)
	}
}

func TestNewLayoutMinimal(t *testing.T) {
	l, err := NewLayout(5, 5, RequiredSize(5, 5))
	if err != nil {
		t.Fatalf("NewLayout() error = %v", err)
	}
	if l.Field.X != 0 || l.Field.Y != 0 {
		t.Errorf("Field at (%d,%d), expected (0,0)", l.Field.X, l.Field.Y)
	}
	if l.Field.Bottom() != l.Panel.Y {
		t.Errorf("field bottom %d, panel top %d", l.Field.Bottom(), l.Panel.Y)
	}
}

func TestGoodbyeLine(t *testing.T) {
	if got := GoodbyeLine(Result{Status: StatusLost, Score: 21}); got != "You scored 21 points!" {
		t.Errorf("GoodbyeLine(lost) = %q", got)
	}
	if got := GoodbyeLine(Result{Status: StatusQuit, Score: 21}); got != ByeMessage {
		t.Errorf("GoodbyeLine(quit) = %q", got)
	}
}

package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimSurface(t *testing.T) (*TcellSurface, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	s, err := NewTcellSurface(sim)
	if err != nil {
		t.Fatalf("NewTcellSurface() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, sim
}

func TestTcellSurface_WriteIsOneBased(t *testing.T) {
	s, sim := newSimSurface(t)

	s.MoveTo(2, 3)
	s.Write("ok", Style{})
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	for i, want := range "ok" {
		got, _, _, _ := sim.GetContent(1+i, 2)
		if got != want {
			t.Errorf("cell (%d,2) = %q, want %q", 1+i, got, want)
		}
	}
}

func TestTcellSurface_InvertStyle(t *testing.T) {
	s, sim := newSimSurface(t)

	s.MoveTo(1, 1)
	s.Write("H", Style{Invert: true})
	s.Write("n", Style{})

	_, _, st, _ := sim.GetContent(0, 0)
	if _, _, attr := st.Decompose(); attr&tcell.AttrReverse == 0 {
		t.Error("inverted write did not set the reverse attribute")
	}
	_, _, st, _ = sim.GetContent(1, 0)
	if _, _, attr := st.Decompose(); attr&tcell.AttrReverse != 0 {
		t.Error("plain write set the reverse attribute")
	}
}

func TestTcellSurface_Size(t *testing.T) {
	s, _ := newSimSurface(t)
	cols, rows, err := s.Size()
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}
	if cols <= 0 || rows <= 0 {
		t.Errorf("Size() = %dx%d, want positive dimensions", cols, rows)
	}
}

func TestTcellKeyCode(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), "r"},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "arrow_left"},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl_c"},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tcellKeyCode(tt.ev); got != tt.want {
				t.Errorf("tcellKeyCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

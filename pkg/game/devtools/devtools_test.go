package devtools

import (
	"bytes"
	"strings"
	"testing"

	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/state"
)

func TestDumpMap(t *testing.T) {
	grid, err := world.Layout("arena")
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	g, err := state.NewGame(grid, state.Vec2{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	g.MoveTo(state.Vec2{X: 6, Y: 5})

	var buf bytes.Buffer
	if err := DumpMap(&buf, g, "arena"); err != nil {
		t.Fatalf("DumpMap() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"layout: arena",
		"size: 12x12",
		"player: 6.00, 5.00 (cell 6, 5)",
		"visited: 2",
		"#....v@....#",
		"############",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBindings(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBindings(&buf); err != nil {
		t.Fatalf("WriteBindings() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Rotate Left:") || !strings.HasSuffix(lines[0], "a, arrow_left") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[6], "ctrl_c, escape, q") {
		t.Errorf("quit line = %q", lines[6])
	}
}

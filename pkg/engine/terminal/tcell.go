package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"raymarch/pkg/engine/input"
)

// TcellSurface draws on a tcell screen and reads keys from its event stream.
type TcellSurface struct {
	screen tcell.Screen
	col    int
	row    int

	events chan tcell.Event
	quit   chan struct{}
}

// OpenTcell creates and initializes a screen on the controlling terminal.
func OpenTcell() (*TcellSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTcellSurface(screen)
}

// NewTcellSurface initializes screen and starts forwarding its events.
// Passing a tcell.SimulationScreen gives a surface usable in tests.
func NewTcellSurface(screen tcell.Screen) (*TcellSurface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)

	s := &TcellSurface{
		screen: screen,
		col:    1,
		row:    1,
		events: make(chan tcell.Event, keyBuffer),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)

	return s, nil
}

// Poll returns the next pending key without blocking.
// Resize events are handled here and never reported as keys.
func (s *TcellSurface) Poll() (input.RawInput, bool) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return input.RawInput{}, false
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if code := tcellKeyCode(ev); code != "" {
					return input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: ev.When()}, true
				}
			}
		default:
			return input.RawInput{}, false
		}
	}
}

// tcellKeyCode translates a key event into the code used by the bindings table.
func tcellKeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return string(r)
	}
	return ""
}

// Size returns the screen dimensions
func (s *TcellSurface) Size() (int, int, error) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("query screen size: got %dx%d", cols, rows)
	}
	return cols, rows, nil
}

// Clear blanks the screen
func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

// HideCursor hides the cursor
func (s *TcellSurface) HideCursor() {
	s.screen.HideCursor()
}

// ShowCursor shows the cursor at the current position
func (s *TcellSurface) ShowCursor() {
	s.screen.ShowCursor(s.col-1, s.row-1)
}

// MoveTo positions the cursor (1-based)
func (s *TcellSurface) MoveTo(col, row int) {
	s.col = col
	s.row = row
}

// Write draws text at the cursor, one cell per rune
func (s *TcellSurface) Write(text string, style Style) {
	st := tcellStyle(style)
	for _, r := range text {
		s.screen.SetContent(s.col-1, s.row-1, r, nil, st)
		s.col++
	}
}

// Flush shows the frame
func (s *TcellSurface) Flush() error {
	s.screen.Show()
	return nil
}

// Close stops event forwarding and restores the terminal.
func (s *TcellSurface) Close() error {
	close(s.quit)
	s.screen.Fini()
	return nil
}

func tcellStyle(style Style) tcell.Style {
	st := tcell.StyleDefault
	switch style.Fg {
	case ColorWhite:
		st = st.Foreground(tcell.ColorWhite)
	case ColorSilver:
		st = st.Foreground(tcell.ColorSilver)
	case ColorGray:
		st = st.Foreground(tcell.ColorGray)
	case ColorGreen:
		st = st.Foreground(tcell.ColorGreen).Bold(true)
	case ColorYellow:
		st = st.Foreground(tcell.ColorYellow)
	case ColorRed:
		st = st.Foreground(tcell.ColorRed).Bold(true)
	}
	if style.Invert {
		st = st.Reverse(true)
	}
	return st
}

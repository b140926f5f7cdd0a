package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"

	"raymarch/pkg/engine/input"
)

const (
	escClear      = "\x1b[2J"
	escClearBelow = "\x1b[J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escMoveTo     = "\x1b[%d;%dH"
)

// keyBuffer is how many decoded keys may wait between polls before new ones are dropped.
const keyBuffer = 64

// ANSISurface writes ANSI escape sequences to a stream, the way a plain
// raw-mode terminal program would.
type ANSISurface struct {
	out  *bufio.Writer
	size func() (int, int, error)
	err  error

	// set when attached to a real terminal
	fd       int
	oldState *term.State
	keys     chan string
}

// NewANSISurface creates a surface that writes to w and asks size for the
// current dimensions. It does not touch terminal modes and has no key input.
func NewANSISurface(w io.Writer, size func() (int, int, error)) *ANSISurface {
	return &ANSISurface{
		out:  bufio.NewWriter(w),
		size: size,
		fd:   -1,
	}
}

// OpenANSI puts stdin into raw mode and returns a surface drawing on stdout.
// Keys are read by a background goroutine and handed out by Poll.
func OpenANSI() (*ANSISurface, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	// Raw mode output goes straight to a tty, so colors are always wanted.
	color.ForceOpenColor()

	outFd := int(os.Stdout.Fd())
	s := NewANSISurface(os.Stdout, func() (int, int, error) {
		return QuerySize(outFd)
	})
	s.fd = fd
	s.oldState = oldState
	s.keys = make(chan string, keyBuffer)

	go s.readKeys(os.Stdin)

	return s, nil
}

// escapeWait is how long a trailing ESC waits for the rest of an arrow
// sequence before it counts as the escape key.
const escapeWait = 50 * time.Millisecond

// readKeys runs until stdin fails; the goroutine ends with the process.
func (s *ANSISurface) readKeys(r io.Reader) {
	chunks := make(chan []byte)
	go func() {
		defer close(chunks)
		buf := make([]byte, 32)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				chunks <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()

	var dec input.TerminalDecoder
	for {
		var timeout <-chan time.Time
		if dec.Pending() {
			timeout = time.After(escapeWait)
		}

		select {
		case chunk, ok := <-chunks:
			if !ok {
				s.pushKeys(dec.Flush())
				return
			}
			s.pushKeys(dec.Decode(chunk))
		case <-timeout:
			s.pushKeys(dec.Flush())
		}
	}
}

func (s *ANSISurface) pushKeys(codes []string) {
	for _, code := range codes {
		select {
		case s.keys <- code:
		default:
			// Buffer full, drop key
		}
	}
}

// Poll returns the next pending key without blocking.
func (s *ANSISurface) Poll() (input.RawInput, bool) {
	if s.keys == nil {
		return input.RawInput{}, false
	}
	select {
	case code := <-s.keys:
		return input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: time.Now()}, true
	default:
		return input.RawInput{}, false
	}
}

// Size returns the terminal dimensions
func (s *ANSISurface) Size() (int, int, error) {
	return s.size()
}

func (s *ANSISurface) writeRaw(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.out.WriteString(str)
}

// Clear blanks the screen
func (s *ANSISurface) Clear() {
	s.writeRaw(escClear)
}

// HideCursor hides the terminal cursor
func (s *ANSISurface) HideCursor() {
	s.writeRaw(escHideCursor)
}

// ShowCursor shows the terminal cursor
func (s *ANSISurface) ShowCursor() {
	s.writeRaw(escShowCursor)
}

// MoveTo positions the cursor (1-based)
func (s *ANSISurface) MoveTo(col, row int) {
	s.writeRaw(fmt.Sprintf(escMoveTo, row, col))
}

// Write draws text at the cursor
func (s *ANSISurface) Write(text string, style Style) {
	s.writeRaw(ansiStyle(style).Sprint(text))
}

// Flush writes the buffered frame to the terminal
func (s *ANSISurface) Flush() error {
	if s.err != nil {
		return fmt.Errorf("write frame: %w", s.err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// Close restores the cursor, clears the screen below it and leaves raw mode.
func (s *ANSISurface) Close() error {
	s.MoveTo(1, 1)
	s.writeRaw(escClearBelow)
	s.ShowCursor()
	err := s.Flush()

	if s.oldState != nil {
		if rerr := term.Restore(s.fd, s.oldState); rerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", rerr)
		}
		s.oldState = nil
	}
	return err
}

func ansiStyle(style Style) color.Style {
	st := color.Style{}
	switch style.Fg {
	case ColorWhite:
		st = append(st, color.FgLightWhite)
	case ColorSilver:
		st = append(st, color.FgWhite)
	case ColorGray:
		st = append(st, color.FgGray)
	case ColorGreen:
		st = append(st, color.FgGreen, color.OpBold)
	case ColorYellow:
		st = append(st, color.FgYellow)
	case ColorRed:
		st = append(st, color.FgRed, color.OpBold)
	}
	if style.Invert {
		st = append(st, color.OpReverse)
	}
	return st
}

// Package window shows the character grid in an Ebiten desktop window.
//
// Ebiten owns the main loop here: every Update runs exactly one game tick
// through a Stepper, and Draw paints the last flushed frame.
package window

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"raymarch/pkg/engine/input"
	"raymarch/pkg/engine/terminal"
)

// FontSize is the glyph size in pixels
const FontSize = 16

// keyQueue bounds the keys kept between ticks
const keyQueue = 16

// Stepper runs one tick and reports whether the program should quit.
type Stepper interface {
	Step() (bool, error)
}

// Window is a terminal.Backend and input.Source drawn by Ebiten.
// Surface calls made from Step fill the embedded Buffer; Flush hands the
// frame to Draw.
type Window struct {
	*terminal.Buffer

	title string
	face  *text.GoTextFace
	cellW float64
	cellH float64

	mu    sync.Mutex
	front []terminal.BufferCell
	cols  int
	rows  int

	keys    []string
	scratch []ebiten.Key

	ctx     context.Context
	stepper Stepper
}

// New creates a window of cols x rows character cells.
func New(cols, rows int, title string) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load monospace font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: FontSize}
	cellW, cellH := text.Measure("M", face, 0)

	w := &Window{
		Buffer: terminal.NewBuffer(cols, rows),
		title:  title,
		face:   face,
		cellW:  cellW,
		cellH:  cellH,
		cols:   cols,
		rows:   rows,
	}
	w.front = w.Buffer.CopyCells(nil)
	return w, nil
}

// Poll returns the oldest key pressed since the last tick
func (w *Window) Poll() (input.RawInput, bool) {
	if len(w.keys) == 0 {
		return input.RawInput{}, false
	}
	code := w.keys[0]
	w.keys = w.keys[1:]
	return input.RawInput{Device: input.DeviceKeyboard, Code: code}, true
}

// Flush publishes the buffer to Draw
func (w *Window) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.front = w.Buffer.CopyCells(w.front)
	w.cols, w.rows, _ = w.Buffer.Size()
	return nil
}

// Close is a no-op; the window goes away when Run returns.
func (w *Window) Close() error {
	return nil
}

// Run opens the window and steps s once per Ebiten update until s quits,
// fails, or ctx is done.
func (w *Window) Run(ctx context.Context, s Stepper) error {
	w.ctx = ctx
	w.stepper = s

	cols, rows, _ := w.Buffer.Size()
	ebiten.SetWindowSize(int(float64(cols)*w.cellW), int(float64(rows)*w.cellH))
	ebiten.SetWindowTitle(w.title)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if w.ctx != nil && w.ctx.Err() != nil {
		return ebiten.Termination
	}

	w.scratch = inpututil.AppendJustPressedKeys(w.scratch[:0])
	for _, k := range w.scratch {
		if code := keyCode(k); code != "" && len(w.keys) < keyQueue {
			w.keys = append(w.keys, code)
		}
	}

	quit, err := w.stepper.Step()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w.mu.Lock()
	defer w.mu.Unlock()

	for row := 0; row < w.rows; row++ {
		line := w.front[row*w.cols : (row+1)*w.cols]
		start := 0
		for col := 1; col <= len(line); col++ {
			if col < len(line) && line[col].Style == line[start].Style {
				continue
			}
			w.drawRun(screen, line[start:col], start, row)
			start = col
		}
	}
}

// drawRun paints cells of one style starting at 0-based (col, row).
func (w *Window) drawRun(screen *ebiten.Image, cells []terminal.BufferCell, col, row int) {
	style := cells[0].Style
	x := float64(col) * w.cellW
	y := float64(row) * w.cellH

	fg := palette(style.Fg)
	if style.Invert {
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(float64(len(cells))*w.cellW), float32(w.cellH), fg, false)
		fg = colorBackground
	}

	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Rune
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(screen, string(runes), w.face, op)
}

// Layout implements ebiten.Game; the logical screen always fits the grid.
func (w *Window) Layout(_, _ int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return int(float64(w.cols) * w.cellW), int(float64(w.rows) * w.cellH)
}

var (
	colorBackground = color.RGBA{15, 15, 26, 255}
	colorText       = color.RGBA{200, 210, 245, 255}
)

func palette(c terminal.Color) color.Color {
	switch c {
	case terminal.ColorWhite:
		return color.RGBA{245, 245, 255, 255}
	case terminal.ColorSilver:
		return color.RGBA{180, 180, 200, 255}
	case terminal.ColorGray:
		return color.RGBA{110, 110, 130, 255}
	case terminal.ColorGreen:
		return color.RGBA{0, 255, 0, 255}
	case terminal.ColorYellow:
		return color.RGBA{255, 220, 100, 255}
	case terminal.ColorRed:
		return color.RGBA{255, 100, 100, 255}
	}
	return colorText
}

// keyCode maps an Ebiten key to the code used by the input bindings.
func keyCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeyEscape:
		return "escape"
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	}
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		if k == ebiten.KeyC && ebiten.IsKeyPressed(ebiten.KeyControl) {
			return "ctrl_c"
		}
		return string(rune('a' + int(k-ebiten.KeyA)))
	}
	return ""
}

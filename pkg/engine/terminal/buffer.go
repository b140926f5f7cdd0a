package terminal

import "strings"

// BufferCell is one character cell of a Buffer
type BufferCell struct {
	Rune  rune
	Style Style
}

var blankCell = BufferCell{Rune: ' '}

// Buffer is an in-memory Surface. It backs the window backend and serves as
// a recording surface in tests.
type Buffer struct {
	cols, rows    int
	cells         []BufferCell
	col, row      int
	cursorVisible bool
	flushes       int
}

// NewBuffer creates a blank buffer of the given size.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{cursorVisible: true}
	b.Resize(cols, rows)
	return b
}

// Resize changes the grid size and blanks it.
func (b *Buffer) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	b.cols, b.rows = cols, rows
	b.cells = make([]BufferCell, cols*rows)
	b.Clear()
}

func (b *Buffer) Size() (int, int, error) {
	return b.cols, b.rows, nil
}

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blankCell
	}
}

func (b *Buffer) HideCursor() {
	b.cursorVisible = false
}

func (b *Buffer) ShowCursor() {
	b.cursorVisible = true
}

// CursorVisible reports the last HideCursor/ShowCursor call
func (b *Buffer) CursorVisible() bool {
	return b.cursorVisible
}

func (b *Buffer) MoveTo(col, row int) {
	b.col, b.row = col, row
}

// Write stores text from the cursor onwards, dropping anything off the grid.
func (b *Buffer) Write(text string, style Style) {
	for _, r := range text {
		if b.row >= 1 && b.row <= b.rows && b.col >= 1 && b.col <= b.cols {
			b.cells[(b.row-1)*b.cols+b.col-1] = BufferCell{Rune: r, Style: style}
		}
		b.col++
	}
}

func (b *Buffer) Flush() error {
	b.flushes++
	return nil
}

// Flushes counts Flush calls
func (b *Buffer) Flushes() int {
	return b.flushes
}

// At returns the cell at 1-based (col, row); off-grid reads are blank.
func (b *Buffer) At(col, row int) BufferCell {
	if row < 1 || row > b.rows || col < 1 || col > b.cols {
		return blankCell
	}
	return b.cells[(row-1)*b.cols+col-1]
}

// Row returns the glyphs of a 1-based row as a string
func (b *Buffer) Row(row int) string {
	if row < 1 || row > b.rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[(row-1)*b.cols : row*b.cols] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns all rows joined by newlines
func (b *Buffer) String() string {
	rows := make([]string, b.rows)
	for r := range rows {
		rows[r] = b.Row(r + 1)
	}
	return strings.Join(rows, "\n")
}

// CopyCells copies the grid into dst, growing it when needed.
func (b *Buffer) CopyCells(dst []BufferCell) []BufferCell {
	if cap(dst) < len(b.cells) {
		dst = make([]BufferCell, len(b.cells))
	}
	dst = dst[:len(b.cells)]
	copy(dst, b.cells)
	return dst
}

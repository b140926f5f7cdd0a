package terminal

// Color is a backend-neutral foreground color.
type Color int

// Colors understood by every backend
const (
	ColorDefault Color = iota
	ColorWhite
	ColorSilver
	ColorGray
	ColorGreen
	ColorYellow
	ColorRed
)

// Style describes how text is drawn
type Style struct {
	Invert bool
	Fg     Color
}

// Surface is a character grid addressed by 1-based (column, row), origin top-left.
//
// MoveTo and Write do not report errors; a backend keeps the first write
// failure and returns it from the next Flush.
type Surface interface {
	// Size returns the current number of columns and rows
	Size() (cols, rows int, err error)

	// Clear blanks the whole surface
	Clear()

	HideCursor()
	ShowCursor()

	// MoveTo positions the cursor for the next Write
	MoveTo(col, row int)

	// Write draws text at the cursor and advances it
	Write(text string, style Style)

	// Flush pushes the frame to the device
	Flush() error
}

// Backend is a Surface bound to a real device that must be released on exit.
type Backend interface {
	Surface

	// Close shows the cursor, clears below it and restores the device
	Close() error
}

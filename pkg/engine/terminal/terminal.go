// Package terminal provides the render surface the game draws on and the
// terminal backends that implement it.
package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// QuerySize returns the size of the terminal behind fd.
func QuerySize(fd int) (cols, rows int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("query terminal size: got %dx%d", cols, rows)
	}
	return cols, rows, nil
}

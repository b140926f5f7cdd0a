// Package shading maps ray distances to glyphs and decides which rows of a
// screen column show wall, sky or floor.
package shading

import "raymarch/pkg/engine/terminal"

// Ramp orders the wall glyphs from nearest (darkest) to farthest (lightest).
const Ramp = "@&%#*+=~-:,."

// Blank is drawn for sky, floor and walls beyond the ramp.
const Blank = ' '

// MaxShadedDistance is the farthest distance that still gets a wall glyph.
const MaxShadedDistance = len(Ramp)

// Shade returns the wall glyph for a hit distance in steps.
func Shade(distance int) rune {
	if distance < 1 || distance > MaxShadedDistance {
		return Blank
	}
	return rune(Ramp[distance-1])
}

// Bands returns the first wall row and the first floor row of a column with
// the given number of rows. Rows before ceiling are sky, rows from floor on
// are floor. The wall band shrinks as distance grows.
func Bands(rows, distance int) (ceiling, floor int) {
	if rows <= 0 {
		return 0, 0
	}
	if distance < 1 {
		distance = 1
	}
	ceiling = rows/2 - rows/distance
	if ceiling < 0 {
		ceiling = 0
	}
	if ceiling > rows/2 {
		ceiling = rows / 2
	}
	return ceiling, rows - ceiling
}

// GlyphAt returns the glyph for row (0-based) of a column of rows rows whose ray hit at distance.
func GlyphAt(row, rows, distance int) rune {
	ceiling, floor := Bands(rows, distance)
	if row < ceiling || row >= floor {
		return Blank
	}
	return Shade(distance)
}

// Column fills dst with the glyphs of one screen column, top to bottom.
func Column(dst []rune, distance int) []rune {
	rows := len(dst)
	ceiling, floor := Bands(rows, distance)
	glyph := Shade(distance)
	for row := range dst {
		if row < ceiling || row >= floor {
			dst[row] = Blank
		} else {
			dst[row] = glyph
		}
	}
	return dst
}

// StyleFor returns the foreground used for a wall at distance.
// Near walls are drawn brighter than far ones.
func StyleFor(distance int) terminal.Style {
	switch {
	case distance <= MaxShadedDistance/3:
		return terminal.Style{Fg: terminal.ColorWhite}
	case distance <= 2*MaxShadedDistance/3:
		return terminal.Style{Fg: terminal.ColorSilver}
	default:
		return terminal.Style{Fg: terminal.ColorGray}
	}
}

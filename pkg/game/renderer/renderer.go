// Package renderer composites the ray-cast view, the minimap, the HUD line
// and the pause box onto a terminal.Surface.
//
// Row 1 is the HUD. Rows 2 and below hold the view, one strip per screen
// column. Every frame rewrites every cell it owns, so no back buffer is kept.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"raymarch/pkg/engine/clock"
	"raymarch/pkg/engine/terminal"
	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/shading"
	"raymarch/pkg/game/state"
)

// Minimap glyphs
const (
	PlayerIcon    = "@"
	IconWall      = "#"
	IconVisited   = "."
	IconUnvisited = " "
)

// ViewTop is the first screen row of the 3-D view
const ViewTop = 2

var (
	StyleNormal = terminal.Style{}
	StyleHUD    = terminal.Style{Invert: true}
	StylePlayer = terminal.Style{Fg: terminal.ColorGreen}
	StyleMapBox = terminal.Style{Fg: terminal.ColorGray}
	StyleBox    = terminal.Style{Fg: terminal.ColorYellow}
)

// Renderer draws frames. It keeps scratch buffers between frames and is not
// safe for concurrent use.
type Renderer struct {
	tr     Translator
	column []rune
	line   strings.Builder
}

// New creates a renderer that looks its strings up in tr.
// A nil tr shows the raw keys.
func New(tr Translator) *Renderer {
	if tr == nil {
		tr = identity{}
	}
	return &Renderer{tr: tr}
}

// RenderFrame draws the full running view: 3-D strips, minimap and HUD.
// dists holds one hit distance per screen column.
func (r *Renderer) RenderFrame(s terminal.Surface, cols, rows int, g *state.Game, dists []int, elapsed time.Duration) {
	mapW, mapH := r.minimapSize(g.Grid, cols, rows)
	r.drawView(s, cols, rows, dists, mapW, mapH)
	if mapW > 0 {
		r.drawMinimap(s, g)
	}
	r.DrawHUD(s, cols, g, elapsed)
}

// DrawHUD draws the inverted status line across row 1.
func (r *Renderer) DrawHUD(s terminal.Surface, cols int, g *state.Game, elapsed time.Duration) {
	text := fmt.Sprintf(" %s: %.2f  %s: %d  %s",
		r.tr.Get(KeyHUDRotation), g.Rotation,
		r.tr.Get(KeyHUDFPS), clock.FPS(elapsed),
		r.tr.Get(KeyHUDHelp))

	s.MoveTo(1, 1)
	s.Write(fit(text, cols), StyleHUD)
}

// DrawPaused replaces the whole screen with a centred box holding the pause message.
func (r *Renderer) DrawPaused(s terminal.Surface, cols, rows int) {
	s.Clear()

	lines := []string{"", r.tr.Get(KeyPausedTitle), r.tr.Get(KeyPausedHint), ""}
	inner := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > inner {
			inner = n
		}
	}
	inner += 4
	if inner > cols-2 {
		inner = cols - 2
	}
	if inner < 0 {
		inner = 0
	}

	width := inner + 2
	height := len(lines) + 2
	left := (cols-width)/2 + 1
	top := (rows-height)/2 + 1
	if left < 1 {
		left = 1
	}
	if top < 1 {
		top = 1
	}

	border := "+" + strings.Repeat("-", inner) + "+"
	s.MoveTo(left, top)
	s.Write(border, StyleBox)
	for i, l := range lines {
		s.MoveTo(left, top+1+i)
		s.Write("|", StyleBox)
		s.Write(center(l, inner), StyleNormal)
		s.Write("|", StyleBox)
	}
	s.MoveTo(left, top+height-1)
	s.Write(border, StyleBox)
}

// minimapSize returns the minimap dimensions, or zero when it does not fit
// beside a usable view.
func (r *Renderer) minimapSize(grid *world.Grid, cols, rows int) (int, int) {
	w, h := grid.Width(), grid.Height()
	if w > cols || h > rows-ViewTop+1 {
		return 0, 0
	}
	return w, h
}

// drawView writes every view cell not covered by the minimap, grouping runs
// of equal style into single writes.
func (r *Renderer) drawView(s terminal.Surface, cols, rows int, dists []int, mapW, mapH int) {
	viewRows := rows - ViewTop + 1
	if viewRows <= 0 {
		return
	}

	for y := 0; y < viewRows; y++ {
		start := 0
		if y < mapH {
			start = mapW
		}
		if start >= cols {
			continue
		}

		s.MoveTo(start+1, ViewTop+y)
		r.line.Reset()
		runStyle := StyleNormal
		for x := start; x < cols; x++ {
			d := 0
			if x < len(dists) {
				d = dists[x]
			}
			glyph := shading.GlyphAt(y, viewRows, d)
			style := StyleNormal
			if glyph != shading.Blank {
				style = shading.StyleFor(d)
			}
			if style != runStyle && r.line.Len() > 0 {
				s.Write(r.line.String(), runStyle)
				r.line.Reset()
			}
			runStyle = style
			r.line.WriteRune(glyph)
		}
		if r.line.Len() > 0 {
			s.Write(r.line.String(), runStyle)
		}
	}
}

// drawMinimap draws the grid top-down at the top-left corner of the view.
func (r *Renderer) drawMinimap(s terminal.Surface, g *state.Game) {
	player := g.Position.Cell()
	grid := g.Grid

	for y := 0; y < grid.Height(); y++ {
		s.MoveTo(1, ViewTop+y)
		r.line.Reset()
		for x := 0; x < grid.Width(); x++ {
			p := world.Point{X: x, Y: y}
			if p == player {
				if r.line.Len() > 0 {
					s.Write(r.line.String(), StyleMapBox)
					r.line.Reset()
				}
				s.Write(PlayerIcon, StylePlayer)
				continue
			}
			switch {
			case grid.IsWall(x, y):
				r.line.WriteString(IconWall)
			case g.HasVisited(p):
				r.line.WriteString(IconVisited)
			default:
				r.line.WriteString(IconUnvisited)
			}
		}
		if r.line.Len() > 0 {
			s.Write(r.line.String(), StyleMapBox)
		}
	}
}

// fit pads or truncates text to exactly width runes.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
}

// center pads text on both sides to width runes, truncating if needed.
func center(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return fit(text, width)
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-n-left)
}

// Package raycast marches rays through the wall grid, one screen column at a time.
//
// The march advances in whole world units and tests the rounded cell after
// every step. Distances are step counts, not Euclidean lengths, and every ray
// stops after a fixed number of steps even if it never meets a wall.
package raycast

import (
	"errors"
	"fmt"
	"math"

	"raymarch/pkg/engine/world"
	"raymarch/pkg/game/state"
)

// ErrStepCapTooSmall is returned when the step cap cannot reach the map border.
var ErrStepCapTooSmall = errors.New("step cap is smaller than the map")

// RayAngle returns the angle of the ray for column out of total columns.
// fov is the half-width of the view, so column 0 looks fov to the left and
// the middle column looks straight along rotation.
func RayAngle(rotation, fov float64, column, total int) float64 {
	if total < 1 {
		total = 1
	}
	return rotation + fov*(2*float64(column)/float64(total)-1)
}

// March walks from origin along angle and returns the first step that lands
// in a wall, or maxSteps if none does. The result is always at least 1.
func March(grid *world.Grid, origin state.Vec2, angle float64, maxSteps int) int {
	if maxSteps < 1 {
		maxSteps = 1
	}
	dx, dy := math.Sin(angle), math.Cos(angle)

	for step := 1; step < maxSteps; step++ {
		s := float64(step)
		x := int(math.Round(origin.X + dx*s))
		y := int(math.Round(origin.Y + dy*s))
		if grid.IsWall(x, y) {
			return step
		}
	}
	return maxSteps
}

// Cast returns the hit distance, in steps, for one screen column.
func Cast(grid *world.Grid, origin state.Vec2, rotation, fov float64, column, total, maxSteps int) int {
	return March(grid, origin, RayAngle(rotation, fov, column, total), maxSteps)
}

// Caster binds a grid to a view angle and a step cap that is known to reach the border.
type Caster struct {
	grid     *world.Grid
	fov      float64
	maxSteps int
}

// NewCaster validates the step cap against the grid. A maxSteps of zero
// selects the grid's largest dimension.
func NewCaster(grid *world.Grid, fov float64, maxSteps int) (*Caster, error) {
	if grid == nil {
		return nil, errors.New("new caster: nil grid")
	}
	if maxSteps == 0 {
		maxSteps = grid.MaxDimension()
	}
	if maxSteps < grid.MaxDimension() {
		return nil, fmt.Errorf("max steps %d for a %dx%d map: %w", maxSteps, grid.Width(), grid.Height(), ErrStepCapTooSmall)
	}
	return &Caster{grid: grid, fov: fov, maxSteps: maxSteps}, nil
}

// MaxSteps returns the step cap
func (c *Caster) MaxSteps() int {
	return c.maxSteps
}

// FOV returns the half-width of the view in radians
func (c *Caster) FOV() float64 {
	return c.fov
}

// Cast returns the hit distance for one column
func (c *Caster) Cast(origin state.Vec2, rotation float64, column, total int) int {
	return Cast(c.grid, origin, rotation, c.fov, column, total, c.maxSteps)
}

// CastColumns returns one hit distance per screen column, reusing dst when it is large enough.
func (c *Caster) CastColumns(dst []int, origin state.Vec2, rotation float64, total int) []int {
	if cap(dst) < total {
		dst = make([]int, total)
	}
	dst = dst[:total]
	for col := range dst {
		dst[col] = c.Cast(origin, rotation, col, total)
	}
	return dst
}

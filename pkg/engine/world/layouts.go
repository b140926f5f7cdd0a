package world

import (
	"fmt"
	"sort"
)

// DefaultLayout is the name of the layout used when none is requested.
const DefaultLayout = "arena"

var layouts = map[string][]string{
	// A single open room; the reference scene for the renderer.
	"arena": {
		"############",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"#..........#",
		"############",
	},
	"pillars": {
		"################",
		"#..............#",
		"#..##......##..#",
		"#..##......##..#",
		"#..............#",
		"#..............#",
		"#......##......#",
		"#......##......#",
		"#..............#",
		"#..............#",
		"#..##......##..#",
		"#..##......##..#",
		"#..............#",
		"################",
	},
	"halls": {
		"####################",
		"#.......#..........#",
		"#.......#..........#",
		"#.......#....###...#",
		"#.......#....#.....#",
		"#............#.....#",
		"#.......######.....#",
		"#..................#",
		"#####.....#........#",
		"#.........#####..###",
		"#.........#........#",
		"#.........#........#",
		"####################",
	},
}

// Layout returns the named built-in grid.
func Layout(name string) (*Grid, error) {
	rows, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %v)", name, LayoutNames())
	}
	return Parse(rows)
}

// LayoutNames returns the names of all built-in layouts in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

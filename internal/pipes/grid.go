package pipes

// Grid is a field of tiles. Rows may have different lengths; position
// (x, y) indexes row y, column x.
type Grid [][]*Tile

// Parse builds a Grid from input lines. Every character becomes a tile;
// unrecognized characters become ground. The start tile begins with its
// OnLoop flag set.
func Parse(lines []string) Grid {
	grid := make(Grid, 0, len(lines))
	for y, line := range lines {
		row := make([]*Tile, 0, len(line))
		for x := 0; x < len(line); x++ {
			shape := ParseShape(line[x])
			row = append(row, &Tile{
				Shape:   shape,
				X:       x,
				Y:       y,
				IsStart: shape == Start,
				OnLoop:  shape == Start,
			})
		}
		grid = append(grid, row)
	}
	return grid
}

// At returns the tile at column x, row y, or nil when the position lies
// outside the grid.
func (g Grid) At(x, y int) *Tile {
	if y < 0 || y >= len(g) {
		return nil
	}
	row := g[y]
	if x < 0 || x >= len(row) {
		return nil
	}
	return row[x]
}

// Offset is a relative neighbor position.
type Offset struct {
	DX, DY int
}

// connections maps each pipe shape to the two neighbor offsets it joins.
// Ground and the unresolved start marker join nothing.
var connections = map[Shape][2]Offset{
	Vertical:   {{0, -1}, {0, 1}},
	Horizontal: {{-1, 0}, {1, 0}},
	BendNE:     {{0, -1}, {1, 0}},
	BendNW:     {{0, -1}, {-1, 0}},
	BendSE:     {{0, 1}, {1, 0}},
	BendSW:     {{0, 1}, {-1, 0}},
}

// Connections returns the two neighbor offsets a shape joins. ok is false
// for shapes with no connections.
func Connections(s Shape) (offsets [2]Offset, ok bool) {
	offsets, ok = connections[s]
	return offsets, ok
}

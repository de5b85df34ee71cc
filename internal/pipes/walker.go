package pipes

import "errors"

var (
	// ErrNoStart means the parsed grid contains no start tile.
	ErrNoStart = errors.New("no start tile in grid")
	// ErrStartShape means the start tile's neighbors do not identify a
	// single pipe shape (exactly two of the four must connect back).
	ErrStartShape = errors.New("start tile neighbors do not form a pipe")
)

// ResolveStart locates the start tile and replaces its marker shape with
// the concrete pipe inferred from the four adjacent tiles. When more than
// one tile is flagged as start, the last one in row-major order wins.
// Calling it again after the shape has been resolved is a no-op.
func ResolveStart(g Grid) (*Tile, error) {
	var start *Tile
	for _, row := range g {
		for _, t := range row {
			if t.IsStart {
				start = t
			}
		}
	}
	if start == nil {
		return nil, ErrNoStart
	}
	if start.Shape != Start {
		return start, nil
	}

	north := pointsAt(g.At(start.X, start.Y-1), start.X, start.Y)
	south := pointsAt(g.At(start.X, start.Y+1), start.X, start.Y)
	east := pointsAt(g.At(start.X+1, start.Y), start.X, start.Y)
	west := pointsAt(g.At(start.X-1, start.Y), start.X, start.Y)

	count := 0
	for _, connected := range []bool{north, south, east, west} {
		if connected {
			count++
		}
	}
	if count != 2 {
		return nil, ErrStartShape
	}

	switch {
	case north && south:
		start.Shape = Vertical
	case east && west:
		start.Shape = Horizontal
	case north && east:
		start.Shape = BendNE
	case north && west:
		start.Shape = BendNW
	case south && east:
		start.Shape = BendSE
	default:
		start.Shape = BendSW
	}
	return start, nil
}

// pointsAt reports whether tile t has a pipe connection aimed at (x, y).
// A nil tile (out of bounds) never connects.
func pointsAt(t *Tile, x, y int) bool {
	if t == nil {
		return false
	}
	offsets, ok := Connections(t.Shape)
	if !ok {
		return false
	}
	for _, o := range offsets {
		if t.X+o.DX == x && t.Y+o.DY == y {
			return true
		}
	}
	return false
}

// Traverse walks the loop from the resolved start tile until it comes back
// around, marking every visited tile OnLoop, and returns the distance to
// the point on the loop farthest from the start. The grid must contain a
// single well-formed loop; malformed input is not validated.
func Traverse(g Grid, start *Tile) int {
	offsets, _ := Connections(start.Shape)

	prev := start
	current := g.At(start.X+offsets[0].DX, start.Y+offsets[0].DY)
	current.OnLoop = true

	steps := 0
	for current.X != start.X || current.Y != start.Y {
		next := nextAlongLoop(g, current, prev)
		next.OnLoop = true
		prev, current = current, next
		steps++
	}

	// steps counts moves starting one tile past the start, so the full
	// cycle length is steps+1 and the farthest point sits at ceil(steps/2).
	return (steps + 1) / 2
}

// nextAlongLoop returns whichever of current's two connections is not the
// tile we arrived from.
func nextAlongLoop(g Grid, current, prev *Tile) *Tile {
	offsets, _ := Connections(current.Shape)
	candidate := g.At(current.X+offsets[0].DX, current.Y+offsets[0].DY)
	if candidate != nil && (candidate.X != prev.X || candidate.Y != prev.Y) {
		return candidate
	}
	return g.At(current.X+offsets[1].DX, current.Y+offsets[1].DY)
}

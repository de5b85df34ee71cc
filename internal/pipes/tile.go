// Package pipes solves the pipe maze puzzle: find the closed loop of
// connected pipes through the start tile and the distance to the point on
// the loop farthest from the start.
package pipes

// Shape identifies the pipe at a single grid cell.
type Shape uint8

const (
	// Ground is a cell with no pipe.
	Ground Shape = iota
	// Vertical connects north and south.
	Vertical
	// Horizontal connects east and west.
	Horizontal
	// BendNE connects north and east.
	BendNE
	// BendNW connects north and west.
	BendNW
	// BendSW connects south and west.
	BendSW
	// BendSE connects south and east.
	BendSE
	// Start is the unresolved start marker; ResolveStart replaces it with
	// the concrete pipe shape inferred from its neighbors.
	Start
)

// shapeForChar maps input characters to shapes. Anything not listed
// parses as ground.
var shapeForChar = map[byte]Shape{
	'|': Vertical,
	'-': Horizontal,
	'L': BendNE,
	'J': BendNW,
	'7': BendSW,
	'F': BendSE,
	'.': Ground,
	'S': Start,
}

// glyphForShape maps shapes to their display glyphs.
var glyphForShape = map[Shape]rune{
	Vertical:   '┃',
	Horizontal: '━',
	BendNE:     '┗',
	BendNW:     '┛',
	BendSW:     '┓',
	BendSE:     '┏',
	Ground:     '░',
	Start:      '╳',
}

// ParseShape returns the shape an input character stands for.
func ParseShape(c byte) Shape {
	return shapeForChar[c]
}

// Glyph returns the display glyph for a shape.
func (s Shape) Glyph() rune {
	return glyphForShape[s]
}

// String returns a shape name for logging and test output.
func (s Shape) String() string {
	switch s {
	case Ground:
		return "ground"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case BendNE:
		return "bend-ne"
	case BendNW:
		return "bend-nw"
	case BendSW:
		return "bend-sw"
	case BendSE:
		return "bend-se"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}

// Tile is one grid cell: a pipe shape at a position, plus flags set during
// parsing (IsStart) and traversal (OnLoop).
type Tile struct {
	Shape   Shape
	X, Y    int
	IsStart bool
	OnLoop  bool
}

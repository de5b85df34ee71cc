package lagoon

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examplePlan = []string{
	"R 6 (#70c710)",
	"D 5 (#0dc571)",
	"L 2 (#5713f0)",
	"D 2 (#d2c081)",
	"R 2 (#59c680)",
	"D 2 (#411b91)",
	"L 5 (#8ceee2)",
	"U 2 (#caa173)",
	"L 1 (#1b58a2)",
	"U 2 (#caa171)",
	"R 2 (#7807d2)",
	"U 3 (#a77fa3)",
	"L 2 (#015232)",
	"U 2 (#7a21e3)",
}

func digExample(t *testing.T) *Lagoon {
	t.Helper()

	instructions := ParseInstructions(examplePlan)
	require.Len(t, instructions, len(examplePlan))

	var lagoon Lagoon
	require.NoError(t, lagoon.DigTrenches(instructions))
	return &lagoon
}

func TestColorFromValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Color{R: 0xAB, G: 0xCD, B: 0xEF}, ColorFromValue(0xABCDEF))
	assert.Equal(t, Color{R: 0xFF, G: 0xFF, B: 0xFF}, White)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("#abcdef")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xAB, G: 0xCD, B: 0xEF}, c)

	_, err = ParseColor("abcdef")
	assert.Error(t, err)

	_, err = ParseColor("#xyzxyz")
	assert.Error(t, err)
}

func TestParseInstruction(t *testing.T) {
	t.Parallel()

	inst, err := ParseInstruction("R 6 (#70c710)")
	require.NoError(t, err)
	assert.Equal(t, Instruction{
		Direction: Right,
		Length:    6,
		Color:     Color{R: 0x70, G: 0xC7, B: 0x10},
	}, inst)

	_, err = ParseInstruction("R 6")
	assert.Error(t, err)

	_, err = ParseInstruction("X 6 (#70c710)")
	assert.Error(t, err)
}

func TestDigTrenches(t *testing.T) {
	t.Parallel()

	lagoon := digExample(t)
	assert.Equal(t, 7, lagoon.Width)
	assert.Equal(t, 10, lagoon.Height)

	// Re-anchoring leaves no negative coordinates.
	for _, seg := range lagoon.Segments {
		assert.GreaterOrEqual(t, seg.Start.X, 0)
		assert.GreaterOrEqual(t, seg.Start.Y, 0)
		assert.GreaterOrEqual(t, seg.End.X, 0)
		assert.GreaterOrEqual(t, seg.End.Y, 0)
	}
}

func TestDigTrenchesEmptyPlan(t *testing.T) {
	t.Parallel()

	var lagoon Lagoon
	assert.Error(t, lagoon.DigTrenches(nil))
}

func TestMakeGridAndFloodFill(t *testing.T) {
	t.Parallel()

	grid := digExample(t).MakeGrid()
	require.Len(t, grid, 10)
	require.Len(t, grid[0], 7)

	// The outline alone digs 38 cells.
	assert.Equal(t, 38, grid.CountFilled())

	grid.FloodFill(ColorFromValue(0xFF0000))
	assert.Equal(t, 62, grid.CountFilled())
}

func TestWriteImage(t *testing.T) {
	t.Parallel()

	grid := digExample(t).MakeGrid()
	grid.FloodFill(ColorFromValue(0xFF0000))

	var buf bytes.Buffer
	require.NoError(t, grid.WriteImage(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 7, bounds.Dx())
	assert.Equal(t, 10, bounds.Dy())
}

func TestWriteImageEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Error(t, Grid{}.WriteImage(&buf))
}

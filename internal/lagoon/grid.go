package lagoon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// White is the untouched terrain color.
var White = ColorFromValue(0xFFFFFF)

// Grid is the rasterized lagoon, row major.
type Grid [][]Color

// MakeGrid rasterizes the trench segments onto a white grid.
func (l *Lagoon) MakeGrid() Grid {
	grid := make(Grid, l.Height)
	for y := range grid {
		grid[y] = make([]Color, l.Width)
		for x := range grid[y] {
			grid[y][x] = White
		}
	}

	for _, seg := range l.Segments {
		switch {
		case seg.Start.X == seg.End.X:
			x := seg.Start.X
			lo, hi := ordered(seg.Start.Y, seg.End.Y)
			for y := lo; y <= hi; y++ {
				grid[y][x] = seg.Color
			}
		case seg.Start.Y == seg.End.Y:
			y := seg.Start.Y
			lo, hi := ordered(seg.Start.X, seg.End.X)
			for x := lo; x <= hi; x++ {
				grid[y][x] = seg.Color
			}
		}
	}
	return grid
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// FloodFill fills the region around the grid center with fillColor,
// stopping at any cell that differs from the center's starting color.
func (g Grid) FloodFill(fillColor Color) {
	if len(g) == 0 || len(g[0]) == 0 {
		return
	}
	width, height := len(g[0]), len(g)
	startX, startY := width/2, height/2
	inside := g[startY][startX]
	if inside == fillColor {
		return
	}

	queue := []Point{{X: startX, Y: startY}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if g[p.Y][p.X] != inside {
			continue
		}
		g[p.Y][p.X] = fillColor

		if p.Y > 0 {
			queue = append(queue, Point{X: p.X, Y: p.Y - 1})
		}
		if p.Y < height-1 {
			queue = append(queue, Point{X: p.X, Y: p.Y + 1})
		}
		if p.X > 0 {
			queue = append(queue, Point{X: p.X - 1, Y: p.Y})
		}
		if p.X < width-1 {
			queue = append(queue, Point{X: p.X + 1, Y: p.Y})
		}
	}
}

// CountFilled counts the cells dug out: everything that is not the
// untouched terrain color.
func (g Grid) CountFilled() int {
	count := 0
	for _, row := range g {
		for _, c := range row {
			if c != White {
				count++
			}
		}
	}
	return count
}

// WriteImage encodes the grid as a PNG.
func (g Grid) WriteImage(w io.Writer) error {
	if len(g) == 0 || len(g[0]) == 0 {
		return fmt.Errorf("empty lagoon grid")
	}

	img := image.NewRGBA(image.Rect(0, 0, len(g[0]), len(g)))
	for y, row := range g {
		for x, c := range row {
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode lagoon image: %w", err)
	}
	return nil
}

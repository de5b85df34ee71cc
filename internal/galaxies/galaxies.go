// Package galaxies sums the shortest paths between galaxy pairs on an
// expanding star map: empty rows and columns stretch by an expansion
// factor before distances are measured.
package galaxies

import (
	"fmt"
)

// Galaxy is one "#" on the map.
type Galaxy struct {
	X, Y uint64
}

// StepsTo is the Manhattan distance between two galaxies.
func (g Galaxy) StepsTo(other Galaxy) uint64 {
	return absDiff(g.X, other.X) + absDiff(g.Y, other.Y)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Map is the parsed star map.
type Map struct {
	Galaxies []Galaxy
	Width    uint64
	Height   uint64
}

// Parse reads the map, recording every "#" cell. Errors when the map
// holds no galaxies at all.
func Parse(lines []string) (*Map, error) {
	m := &Map{Height: uint64(len(lines))}
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			if line[x] != '#' {
				continue
			}
			g := Galaxy{X: uint64(x), Y: uint64(y)}
			m.Galaxies = append(m.Galaxies, g)
			if g.X+1 > m.Width {
				m.Width = g.X + 1
			}
		}
	}
	if len(m.Galaxies) == 0 {
		return nil, fmt.Errorf("star map has no galaxies")
	}
	return m, nil
}

// Expand stretches every empty row and column so it is amount cells
// wide. amount of 1 leaves sizes as they are plus one per empty line,
// matching the part-one "doubling" reading.
func (m *Map) Expand(amount uint64) {
	grow := amount
	if amount > 1 {
		grow = amount - 1
	}

	for row := uint64(0); row < m.Height; row++ {
		if m.rowOccupied(row) {
			continue
		}
		for i := range m.Galaxies {
			if m.Galaxies[i].Y > row {
				m.Galaxies[i].Y += grow
			}
		}
		m.Height += grow
		row += grow
	}

	for col := uint64(0); col < m.Width; col++ {
		if m.colOccupied(col) {
			continue
		}
		for i := range m.Galaxies {
			if m.Galaxies[i].X > col {
				m.Galaxies[i].X += grow
			}
		}
		m.Width += grow
		col += grow
	}
}

func (m *Map) rowOccupied(row uint64) bool {
	for _, g := range m.Galaxies {
		if g.Y == row {
			return true
		}
	}
	return false
}

func (m *Map) colOccupied(col uint64) bool {
	for _, g := range m.Galaxies {
		if g.X == col {
			return true
		}
	}
	return false
}

// SumDistances totals the shortest path between every unordered pair of
// galaxies.
func (m *Map) SumDistances() uint64 {
	var total uint64
	for i := 0; i < len(m.Galaxies); i++ {
		for j := i + 1; j < len(m.Galaxies); j++ {
			total += m.Galaxies[i].StepsTo(m.Galaxies[j])
		}
	}
	return total
}

// Package lagoon digs the lavaduct lagoon trench plan and renders it as
// an image: the trench outline keeps each instruction's color and the
// interior is flood filled.
package lagoon

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the four dig headings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection reads a single U, D, L, or R character.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case 'U', 'u':
		return Up, nil
	case 'D', 'd':
		return Down, nil
	case 'L', 'l':
		return Left, nil
	case 'R', 'r':
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", c)
}

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ColorFromValue unpacks a 0xRRGGBB value.
func ColorFromValue(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ParseColor reads a "#rrggbb" hex color.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q missing # prefix", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("malformed color %q: %w", s, err)
	}
	return ColorFromValue(uint32(v)), nil
}

// Instruction is one line of the dig plan.
type Instruction struct {
	Direction Direction
	Length    int
	Color     Color
}

// ParseInstruction reads a line like "R 6 (#70c710)".
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Instruction{}, fmt.Errorf("malformed dig instruction %q", line)
	}

	dir, err := ParseDirection(fields[0][0])
	if err != nil {
		return Instruction{}, fmt.Errorf("instruction %q: %w", line, err)
	}

	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return Instruction{}, fmt.Errorf("malformed length in %q: %w", line, err)
	}

	color, err := ParseColor(strings.Trim(fields[2], "()"))
	if err != nil {
		return Instruction{}, fmt.Errorf("instruction %q: %w", line, err)
	}

	return Instruction{Direction: dir, Length: length, Color: color}, nil
}

// ParseInstructions parses every line, skipping lines that fail to
// parse.
func ParseInstructions(lines []string) []Instruction {
	instructions := make([]Instruction, 0, len(lines))
	for _, line := range lines {
		inst, err := ParseInstruction(line)
		if err != nil {
			continue
		}
		instructions = append(instructions, inst)
	}
	return instructions
}

// Point is a trench coordinate. Digging starts at the origin, so raw
// coordinates can go negative until the lagoon is re-anchored.
type Point struct {
	X, Y int
}

// Segment is one straight run of trench.
type Segment struct {
	Start, End Point
	Color      Color
}

func (s *Segment) shift(dx, dy int) {
	s.Start.X += dx
	s.Start.Y += dy
	s.End.X += dx
	s.End.Y += dy
}

// Lagoon accumulates trench segments and their bounding box.
type Lagoon struct {
	Width, Height int
	Segments      []Segment

	digPos Point
}

// DigTrench digs one instruction from the current position.
func (l *Lagoon) DigTrench(inst Instruction) {
	start := l.digPos
	end := start
	switch inst.Direction {
	case Up:
		end.Y -= inst.Length
	case Down:
		end.Y += inst.Length
	case Left:
		end.X -= inst.Length
	case Right:
		end.X += inst.Length
	}

	l.Segments = append(l.Segments, Segment{Start: start, End: end, Color: inst.Color})
	l.digPos = end
}

// DigTrenches digs the full plan, then re-anchors every segment so the
// bounding box starts at the origin.
func (l *Lagoon) DigTrenches(instructions []Instruction) error {
	if len(instructions) == 0 {
		return fmt.Errorf("empty dig plan")
	}

	for _, inst := range instructions {
		l.DigTrench(inst)
	}

	minX, maxX := l.Segments[0].Start.X, l.Segments[0].Start.X
	minY, maxY := l.Segments[0].Start.Y, l.Segments[0].Start.Y
	for _, seg := range l.Segments {
		for _, p := range []Point{seg.Start, seg.End} {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}

	l.Width = maxX - minX + 1
	l.Height = maxY - minY + 1

	// Digging starts at (0,0), so the minimums are never positive and
	// shifting by their magnitude moves everything into quadrant one.
	dx, dy := absInt(minX), absInt(minY)
	for i := range l.Segments {
		l.Segments[i].shift(dx, dy)
	}
	l.digPos.X += dx
	l.digPos.Y += dy
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

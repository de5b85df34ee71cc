// Package gears reads engine schematics: numbers adjacent to a symbol are
// part numbers, and "*" symbols touching exactly two numbers are gears.
package gears

import (
	"regexp"
	"strconv"
)

// symbolRE matches anything that is neither part of a number, a letter,
// nor the "." filler.
var (
	symbolRE = regexp.MustCompile(`[^\w.]`)
	numberRE = regexp.MustCompile(`\d+`)
)

// Box is an inclusive rectangle of grid coordinates.
type Box struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Value is a number found in the schematic together with its adjacency
// bounding box (the number's cells grown by one in every direction,
// clamped at the grid origin).
type Value struct {
	Value  int
	Bounds Box
}

// NewValue builds a Value for a number spanning columns [startX, endX] on
// row y.
func NewValue(value, startX, endX, y int) Value {
	bounds := Box{
		MinX: startX - 1,
		MaxX: endX + 1,
		MinY: y - 1,
		MaxY: y + 1,
	}
	if bounds.MinX < 0 {
		bounds.MinX = 0
	}
	if bounds.MinY < 0 {
		bounds.MinY = 0
	}
	return Value{Value: value, Bounds: bounds}
}

// IsPartNumber reports whether any symbol touches the value.
func (v Value) IsPartNumber(symbols []Symbol) bool {
	for _, s := range symbols {
		if v.Bounds.Contains(s.X, s.Y) {
			return true
		}
	}
	return false
}

// Symbol is a non-digit, non-"." character in the schematic.
type Symbol struct {
	Symbol string
	X, Y   int
}

// GearRatio returns the product of the two values adjacent to a "*"
// symbol, and false when the symbol is not a gear.
func (s Symbol) GearRatio(values []Value) (int, bool) {
	if s.Symbol != "*" {
		return 0, false
	}

	var adjacent []Value
	for _, v := range values {
		if v.Bounds.Contains(s.X, s.Y) {
			adjacent = append(adjacent, v)
		}
	}
	if len(adjacent) != 2 {
		return 0, false
	}
	return adjacent[0].Value * adjacent[1].Value, true
}

// Schematic is the parsed engine schematic.
type Schematic struct {
	Values  []Value
	Symbols []Symbol
}

// Parse scans the schematic lines for numbers and symbols.
func Parse(lines []string) Schematic {
	var schematic Schematic
	for y, line := range lines {
		for _, loc := range symbolRE.FindAllStringIndex(line, -1) {
			schematic.Symbols = append(schematic.Symbols, Symbol{
				Symbol: line[loc[0]:loc[1]],
				X:      loc[0],
				Y:      y,
			})
		}
		for _, loc := range numberRE.FindAllStringIndex(line, -1) {
			// The regexp guarantees a base-10 number.
			value, _ := strconv.Atoi(line[loc[0]:loc[1]])
			schematic.Values = append(schematic.Values, NewValue(value, loc[0], loc[1]-1, y))
		}
	}
	return schematic
}

// SumPartNumbers sums every number adjacent to at least one symbol.
func (s Schematic) SumPartNumbers() int {
	total := 0
	for _, v := range s.Values {
		if v.IsPartNumber(s.Symbols) {
			total += v.Value
		}
	}
	return total
}

// SumGearRatios sums the gear ratio of every gear in the schematic.
func (s Schematic) SumGearRatios() int {
	total := 0
	for _, sym := range s.Symbols {
		if ratio, ok := sym.GearRatio(s.Values); ok {
			total += ratio
		}
	}
	return total
}

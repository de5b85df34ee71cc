package gears

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSchematic = "467..114..\n" +
	"...*......\n" +
	"..35..633.\n" +
	"......#...\n" +
	"617*......\n" +
	".....+.58.\n" +
	"..592.....\n" +
	"......755.\n" +
	"...$.*....\n" +
	".664.598.."

func parseExample(t *testing.T) Schematic {
	t.Helper()
	return Parse(strings.Split(exampleSchematic, "\n"))
}

func TestNewValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  int
		startX int
		endX   int
		y      int
		want   Value
	}{
		{
			name:   "interior",
			value:  35,
			startX: 2, endX: 3, y: 2,
			want: Value{Value: 35, Bounds: Box{MinX: 1, MaxX: 4, MinY: 1, MaxY: 3}},
		},
		{
			name:   "clamped at origin",
			value:  467,
			startX: 0, endX: 2, y: 0,
			want: Value{Value: 467, Bounds: Box{MinX: 0, MaxX: 3, MinY: 0, MaxY: 1}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewValue(tt.value, tt.startX, tt.endX, tt.y))
		})
	}
}

func TestValueIsPartNumber(t *testing.T) {
	t.Parallel()

	value := Value{Value: 35, Bounds: Box{MinX: 1, MaxX: 4, MinY: 1, MaxY: 3}}

	assert.True(t, value.IsPartNumber([]Symbol{{Symbol: "+", X: 4, Y: 2}}))
	assert.False(t, value.IsPartNumber([]Symbol{{Symbol: "+", X: 4, Y: 6}}))
	assert.False(t, value.IsPartNumber(nil))
}

func TestSymbolGearRatio(t *testing.T) {
	t.Parallel()

	schematic := parseExample(t)

	// The "*" at (3,1) touches 467 and 35 only.
	ratio, ok := schematic.Symbols[0].GearRatio(schematic.Values)
	require.True(t, ok)
	assert.Equal(t, 467*35, ratio)

	// The "*" at (3,4) touches only 617.
	_, ok = schematic.Symbols[2].GearRatio(schematic.Values)
	assert.False(t, ok)

	// Non-star symbols are never gears.
	_, ok = Symbol{Symbol: "#", X: 6, Y: 3}.GearRatio(schematic.Values)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	t.Parallel()

	schematic := parseExample(t)

	wantValues := []int{467, 114, 35, 633, 617, 58, 592, 755, 664, 598}
	require.Len(t, schematic.Values, len(wantValues))
	for i, want := range wantValues {
		assert.Equal(t, want, schematic.Values[i].Value)
	}

	wantSymbols := []Symbol{
		{Symbol: "*", X: 3, Y: 1},
		{Symbol: "#", X: 6, Y: 3},
		{Symbol: "*", X: 3, Y: 4},
		{Symbol: "+", X: 5, Y: 5},
		{Symbol: "$", X: 3, Y: 8},
		{Symbol: "*", X: 5, Y: 8},
	}
	assert.Equal(t, wantSymbols, schematic.Symbols)
}

func TestSumPartNumbers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4361, parseExample(t).SumPartNumbers())
}

func TestSumGearRatios(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 467835, parseExample(t).SumGearRatios())
}

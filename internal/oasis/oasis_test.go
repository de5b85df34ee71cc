package oasis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleReport = []string{
	"0 3 6 9 12 15",
	"1 3 6 10 15 21",
	"10 13 16 21 30 45",
}

func TestParse(t *testing.T) {
	t.Parallel()

	report, err := Parse(exampleReport)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 3, 6, 9, 12, 15},
		{1, 3, 6, 10, 15, 21},
		{10, 13, 16, 21, 30, 45},
	}, report.Histories)
}

func TestParseNegativeValues(t *testing.T) {
	t.Parallel()

	report, err := Parse([]string{"-3 0 3"})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-3, 0, 3}}, report.Histories)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil)
	assert.Error(t, err)
}

func TestNextValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		history []int
		want    int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18},
		{[]int{1, 3, 6, 10, 15, 21}, 28},
		{[]int{10, 13, 16, 21, 30, 45}, 68},
		{[]int{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextValue(tt.history), "history %v", tt.history)
	}
}

func TestPrevValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, PrevValue([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, -3, PrevValue([]int{0, 3, 6, 9, 12, 15}))
}

func TestSums(t *testing.T) {
	t.Parallel()

	report, err := Parse(exampleReport)
	require.NoError(t, err)

	assert.Equal(t, 114, report.SumNext())
	assert.Equal(t, 2, report.SumPrev())
}

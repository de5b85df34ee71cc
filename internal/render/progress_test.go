package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current uint64
		total   uint64
		width   int
		want    string
	}{
		{
			name:    "empty",
			current: 0,
			total:   10,
			width:   17,
			want:    "[░░░░░░░░░░]   0%",
		},
		{
			name:    "half",
			current: 5,
			total:   10,
			width:   17,
			want:    "[█████░░░░░]  50%",
		},
		{
			name:    "full",
			current: 10,
			total:   10,
			width:   17,
			want:    "[██████████] 100%",
		},
		{
			name:    "overshoot clamps",
			current: 15,
			total:   10,
			width:   17,
			want:    "[██████████] 100%",
		},
		{
			name:    "zero total",
			current: 3,
			total:   0,
			width:   17,
			want:    "",
		},
		{
			name:    "too narrow",
			current: 3,
			total:   10,
			width:   9,
			want:    "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Bar(tt.current, tt.total, tt.width))
		})
	}
}

func TestMeter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	meter := NewMeter(&buf, 100)

	meter.Add(50)
	meter.Add(50)
	meter.Finish()

	out := buf.String()
	assert.Contains(t, out, "\r")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "100%")
	assert.True(t, strings.HasSuffix(out, "\n"), "Finish ends the line")
}

func TestMeterRedrawsOnlyOnChange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	meter := NewMeter(&buf, 1000)

	// Sub-percent increments must not spam the writer.
	meter.Add(1)
	after := buf.Len()
	for i := 0; i < 8; i++ {
		meter.Add(1)
	}
	assert.Equal(t, after, buf.Len())

	meter.Add(1)
	assert.Greater(t, buf.Len(), after, "crossing a percent redraws")
}

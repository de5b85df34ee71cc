package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// Bar renders a progress bar like "[████░░░░]  50%".
// Returns an empty string when total is zero or the width is too small.
func Bar(current, total uint64, width int) string {
	if total == 0 || width < 10 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	barWidth := width - 7 // space for "[] XXX%"
	filled := int(pct * float64(barWidth))
	empty := barWidth - filled

	bar := "[" +
		strings.Repeat("█", filled) +
		strings.Repeat("░", empty) +
		"]"

	return fmt.Sprintf("%s %3d%%", bar, int(pct*100))
}

// Meter redraws a Bar in place on a single terminal line. Add is safe to
// call from multiple goroutines; the line only redraws when the displayed
// percentage changes.
type Meter struct {
	out     io.Writer
	total   uint64
	width   int
	done    atomic.Uint64
	mu      sync.Mutex
	lastPct int
}

// NewMeter creates a Meter for total units of work, drawing to out.
func NewMeter(out io.Writer, total uint64) *Meter {
	return &Meter{out: out, total: total, width: 47, lastPct: -1}
}

// Add records n completed units and redraws if the percentage moved.
func (m *Meter) Add(n uint64) {
	done := m.done.Add(n)
	if m.total == 0 {
		return
	}

	pct := int(float64(done) / float64(m.total) * 100)

	m.mu.Lock()
	defer m.mu.Unlock()
	if pct == m.lastPct {
		return
	}
	m.lastPct = pct
	fmt.Fprintf(m.out, "\r%s", Bar(done, m.total, m.width))
}

// Finish draws the full bar and terminates the line.
func (m *Meter) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	fmt.Fprintf(m.out, "\r%s\n", Bar(m.total, m.total, m.width))
}

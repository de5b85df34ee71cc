// Package oasis extrapolates sensor history sequences by repeatedly
// taking differences until they vanish.
package oasis

import (
	"fmt"
	"strconv"
	"strings"
)

// Report holds one history sequence per input line.
type Report struct {
	Histories [][]int
}

// Parse reads whitespace separated integer histories, one per line.
func Parse(lines []string) (*Report, error) {
	var histories [][]int
	for _, line := range lines {
		var history []int
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				continue
			}
			history = append(history, n)
		}
		if len(history) > 0 {
			histories = append(histories, history)
		}
	}
	if len(histories) == 0 {
		return nil, fmt.Errorf("report has no histories")
	}
	return &Report{Histories: histories}, nil
}

func differences(vals []int) []int {
	diffs := make([]int, len(vals)-1)
	for i := range diffs {
		diffs[i] = vals[i+1] - vals[i]
	}
	return diffs
}

func allZero(vals []int) bool {
	for _, v := range vals {
		if v != 0 {
			return false
		}
	}
	return true
}

// NextValue extrapolates the value following the history.
func NextValue(history []int) int {
	if allZero(history) {
		return 0
	}
	return history[len(history)-1] + NextValue(differences(history))
}

// PrevValue extrapolates the value preceding the history.
func PrevValue(history []int) int {
	if allZero(history) {
		return 0
	}
	return history[0] - PrevValue(differences(history))
}

// SumNext sums the next extrapolated value of every history.
func (r *Report) SumNext() int {
	total := 0
	for _, h := range r.Histories {
		total += NextValue(h)
	}
	return total
}

// SumPrev sums the previous extrapolated value of every history.
func (r *Report) SumPrev() int {
	total := 0
	for _, h := range r.Histories {
		total += PrevValue(h)
	}
	return total
}

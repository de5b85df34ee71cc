// Package races counts the ways to win toy boat races. Holding the
// button for t units gives speed t for the rest of the race.
package races

import (
	"fmt"
	"strconv"
	"strings"
)

// MultiRace is the part-one reading of the input: parallel lists of race
// times and record distances.
type MultiRace struct {
	Times     []int
	Distances []int
}

// ParseMultiRace reads the two-line race table:
//
//	Time:      7  15   30
//	Distance:  9  40  200
func ParseMultiRace(text string) (MultiRace, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return MultiRace{}, fmt.Errorf("race table needs two lines")
	}

	times, err := parseKeyedNumbers("Time", lines[0])
	if err != nil {
		return MultiRace{}, err
	}
	distances, err := parseKeyedNumbers("Distance", lines[1])
	if err != nil {
		return MultiRace{}, err
	}
	if len(times) != len(distances) {
		return MultiRace{}, fmt.Errorf("mismatched race table: %d times, %d distances",
			len(times), len(distances))
	}

	return MultiRace{Times: times, Distances: distances}, nil
}

func parseKeyedNumbers(key, line string) ([]int, error) {
	lineKey, rest, found := strings.Cut(line, ":")
	if !found || lineKey != key {
		return nil, fmt.Errorf("expected %q line, got %q", key, line)
	}

	var nums []int
	for _, field := range strings.Fields(rest) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// canWin reports whether holding for holdTime beats the winning distance
// in a race of the given length.
func canWin(time, winningDistance, holdTime int) bool {
	return (time-holdTime)*holdTime >= winningDistance
}

// WinningCount counts the hold times that beat the record in race i.
func (r MultiRace) WinningCount(i int) int {
	time := r.Times[i]
	winningDistance := r.Distances[i] + 1

	count := 0
	for hold := 1; hold < time; hold++ {
		if canWin(time, winningDistance, hold) {
			count++
		}
	}
	return count
}

// ProductOfWins multiplies the winning counts of every race, the
// part-one answer.
func (r MultiRace) ProductOfWins() int {
	if len(r.Times) == 0 {
		return 0
	}
	product := 1
	for i := range r.Times {
		product *= r.WinningCount(i)
	}
	return product
}

// SingleRace is the part-two reading: the same table with the spaces
// between digits removed, giving one long race.
type SingleRace struct {
	Time     int
	Distance int
}

// ParseSingleRace reads the race table as a single kerned race.
func ParseSingleRace(text string) (SingleRace, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return SingleRace{}, fmt.Errorf("race table needs two lines")
	}

	time, err := parseKernedNumber("Time", lines[0])
	if err != nil {
		return SingleRace{}, err
	}
	distance, err := parseKernedNumber("Distance", lines[1])
	if err != nil {
		return SingleRace{}, err
	}
	return SingleRace{Time: time, Distance: distance}, nil
}

func parseKernedNumber(key, line string) (int, error) {
	lineKey, rest, found := strings.Cut(line, ":")
	if !found || lineKey != key {
		return 0, fmt.Errorf("expected %q line, got %q", key, line)
	}

	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(rest), " ", ""))
	if err != nil {
		return 0, fmt.Errorf("malformed %s value: %w", key, err)
	}
	return n, nil
}

// WinningCount counts the hold times that beat the record. progress,
// when non-nil, receives completed hold-time counts.
func (r SingleRace) WinningCount(progress func(uint64)) int {
	count := 0
	var sinceReport uint64

	for hold := 1; hold < r.Time; hold++ {
		if (r.Time-hold)*hold > r.Distance {
			count++
		}
		sinceReport++
		if sinceReport == 1<<20 {
			if progress != nil {
				progress(sinceReport)
			}
			sinceReport = 0
		}
	}
	if progress != nil && sinceReport > 0 {
		progress(sinceReport)
	}
	return count
}

// Package trebuchet recovers calibration values from scrambled lines of
// text. A calibration value combines the first and last digit on a line;
// part two also counts spelled-out digits.
package trebuchet

import (
	"fmt"
	"strings"
)

// spelledDigits maps digit words to digits. Overlapping pairs like
// "oneight" come first so both digits survive the replacement.
var spelledDigits = []struct {
	word   string
	digits string
}{
	{"oneight", "18"},
	{"eightwo", "82"},
	{"nineight", "98"},
	{"twone", "21"},
	{"threeight", "38"},
	{"fiveight", "58"},
	{"sevenine", "79"},
	{"zero", "0"},
	{"one", "1"},
	{"two", "2"},
	{"three", "3"},
	{"four", "4"},
	{"five", "5"},
	{"six", "6"},
	{"seven", "7"},
	{"eight", "8"},
	{"nine", "9"},
}

// SpellDigits rewrites spelled-out digit words in line as digits.
func SpellDigits(line string) string {
	for _, r := range spelledDigits {
		line = strings.ReplaceAll(line, r.word, r.digits)
	}
	return line
}

// CalibrationValue combines the first and last digit on a line into a
// two-digit number. Errors when the line holds no digits at all.
func CalibrationValue(line string) (int, error) {
	first, last := -1, -1
	for _, c := range []byte(line) {
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digits in line %q", line)
	}
	return first*10 + last, nil
}

// SumCalibrations sums the calibration value of every line.
func SumCalibrations(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		value, err := CalibrationValue(line)
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

// SumSpelledCalibrations sums calibration values after expanding
// spelled-out digits on each line.
func SumSpelledCalibrations(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		value, err := CalibrationValue(SpellDigits(line))
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

// Package input loads puzzle input files. Every solver works on a whole
// file read into memory up front; there is no streaming.
package input

import (
	"fmt"
	"os"
	"strings"
)

// ReadFile reads an entire input file and returns its text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// Lines splits puzzle text into lines. Line endings may be \n or \r\n.
// The empty trailing line produced by a final newline is dropped.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// ReadLines reads an input file and returns its lines.
func ReadLines(path string) ([]string, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Lines(text), nil
}

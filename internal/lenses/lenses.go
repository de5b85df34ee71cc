// Package lenses runs the lava facility initialization sequence: the
// HASH checksum for part one and the 256-box lens shuffle for part two.
package lenses

import (
	"fmt"
	"strconv"
	"strings"
)

// Hash is the HASH algorithm: start at 0, add each character's code,
// multiply by 17, keep the remainder mod 256.
func Hash(s string) int {
	h := 0
	for _, c := range []byte(s) {
		h = (h + int(c)) * 17 % 256
	}
	return h
}

// Sequence is the comma separated initialization sequence.
type Sequence struct {
	Steps []string
}

// Parse splits the sequence on commas. Trailing whitespace on the input
// is the caller's problem; each step is kept verbatim.
func Parse(text string) Sequence {
	return Sequence{Steps: strings.Split(strings.TrimRight(text, "\n"), ",")}
}

// SumOfHashes is the part-one checksum over every step.
func (s Sequence) SumOfHashes() int {
	total := 0
	for _, step := range s.Steps {
		total += Hash(step)
	}
	return total
}

// Lens is a labeled lens sitting in a box slot.
type Lens struct {
	Label       string
	FocalLength int
}

// BoxLenses runs the sequence against 256 boxes. "label=n" inserts or
// replaces the lens, "label-" removes it; insertion order is preserved.
func (s Sequence) BoxLenses() ([256][]Lens, error) {
	var boxes [256][]Lens

	for _, step := range s.Steps {
		if label, rest, found := strings.Cut(step, "="); found {
			focal, err := strconv.Atoi(rest)
			if err != nil {
				return boxes, fmt.Errorf("malformed step %q: %w", step, err)
			}
			insertLens(&boxes[Hash(label)], Lens{Label: label, FocalLength: focal})
			continue
		}

		label := strings.TrimSuffix(step, "-")
		removeLens(&boxes[Hash(label)], label)
	}
	return boxes, nil
}

func insertLens(box *[]Lens, lens Lens) {
	for i, existing := range *box {
		if existing.Label == lens.Label {
			(*box)[i] = lens
			return
		}
	}
	*box = append(*box, lens)
}

func removeLens(box *[]Lens, label string) {
	for i, existing := range *box {
		if existing.Label == label {
			*box = append((*box)[:i], (*box)[i+1:]...)
			return
		}
	}
}

// FocusingPower scores the boxes: (box+1) * (slot+1) * focal length,
// summed over every lens.
func FocusingPower(boxes [256][]Lens) int {
	total := 0
	for boxID, box := range boxes {
		for slot, lens := range box {
			total += (boxID + 1) * (slot + 1) * lens.FocalLength
		}
	}
	return total
}

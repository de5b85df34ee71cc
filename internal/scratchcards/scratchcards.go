// Package scratchcards scores lottery scratchcards and runs the part-two
// copy game, where each win duplicates the following cards.
package scratchcards

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Card is one scratchcard. Count tracks how many copies of it exist
// during the copy game; a freshly parsed card has one.
type Card struct {
	ID        int
	Count     int
	Winning   []int
	Scratched []int
}

// ParseCard reads a line like
// "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(line string) (Card, error) {
	header, rest, found := strings.Cut(line, ":")
	if !found {
		return Card{}, fmt.Errorf("malformed card line %q", line)
	}

	fields := strings.Fields(header)
	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || id == 0 {
		return Card{}, fmt.Errorf("malformed card id in %q", header)
	}

	winStr, scratchStr, found := strings.Cut(rest, "|")
	if !found {
		return Card{}, fmt.Errorf("card %d has no number separator", id)
	}

	return Card{
		ID:        id,
		Count:     1,
		Winning:   parseNumbers(winStr),
		Scratched: parseNumbers(scratchStr),
	}, nil
}

func parseNumbers(s string) []int {
	var nums []int
	for _, field := range strings.Fields(s) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

// ParseCards parses every line, skipping lines that fail to parse.
func ParseCards(lines []string) []Card {
	cards := make([]Card, 0, len(lines))
	for _, line := range lines {
		card, err := ParseCard(line)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

// Matches counts scratched numbers that appear among the winning ones.
func (c Card) Matches() int {
	count := 0
	for _, n := range c.Scratched {
		if slices.Contains(c.Winning, n) {
			count++
		}
	}
	return count
}

// Score is the part-one score: 1 for the first match, doubled for each
// additional one.
func (c Card) Score() int {
	matches := c.Matches()
	if matches == 0 {
		return 0
	}
	return 1 << (matches - 1)
}

// TotalScore sums the score of every card.
func TotalScore(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Score()
	}
	return total
}

// RunCopyGame plays the part-two copy game in place: each copy of card i
// wins a copy of the next Matches() cards. Returns the total number of
// cards held at the end.
func RunCopyGame(cards []Card) int {
	for i := range cards {
		matches := cards[i].Matches()
		end := i + matches
		if end >= len(cards) {
			end = len(cards) - 1
		}
		for j := i + 1; j <= end; j++ {
			cards[j].Count += cards[i].Count
		}
	}

	total := 0
	for _, c := range cards {
		total += c.Count
	}
	return total
}

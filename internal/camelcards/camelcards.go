// Package camelcards ranks Camel Cards hands and totals the winnings.
// In joker games the J card counts as a wildcard for hand typing but as
// the weakest card for tie-breaks.
package camelcards

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Card is a card's strength: 2 through 9 at face value, T=10, Q=12,
// K=13, A=14. J is 11 in standard games and Joker (1) in joker games.
type Card uint8

const Joker Card = 1

// ParseCard reads one card character. joker controls how 'J' is scored.
func ParseCard(c byte, joker bool) (Card, error) {
	switch c {
	case 'A':
		return 14, nil
	case 'K':
		return 13, nil
	case 'Q':
		return 12, nil
	case 'J':
		if joker {
			return Joker, nil
		}
		return 11, nil
	case 'T':
		return 10, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Card(c - '0'), nil
	}
	return 0, fmt.Errorf("unknown card %q", c)
}

// HandType orders hands from HighCard (weakest) to FiveOfAKind.
type HandType uint8

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// typeOf classifies five cards. Jokers join whichever group is largest.
func typeOf(cards [5]Card) HandType {
	counts := map[Card]int{}
	jokers := 0
	for _, c := range cards {
		if c == Joker {
			jokers++
			continue
		}
		counts[c]++
	}

	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	best += jokers

	switch len(counts) {
	case 0, 1:
		return FiveOfAKind
	case 2:
		if best == 4 {
			return FourOfAKind
		}
		return FullHouse
	case 3:
		if best == 3 {
			return ThreeOfAKind
		}
		return TwoPair
	case 4:
		return OnePair
	}
	return HighCard
}

// Hand is one dealt hand and its bid.
type Hand struct {
	Cards [5]Card
	Type  HandType
	Bid   int
}

// ParseHand reads a line like "32T3K 765". joker switches the J card to
// wildcard scoring.
func ParseHand(line string, joker bool) (Hand, error) {
	cardsStr, bidStr, found := strings.Cut(line, " ")
	if !found || len(cardsStr) != 5 {
		return Hand{}, fmt.Errorf("malformed hand line %q", line)
	}

	var hand Hand
	for i := 0; i < 5; i++ {
		card, err := ParseCard(cardsStr[i], joker)
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q: %w", cardsStr, err)
		}
		hand.Cards[i] = card
	}

	bid, err := strconv.Atoi(strings.TrimSpace(bidStr))
	if err != nil {
		return Hand{}, fmt.Errorf("malformed bid in %q: %w", line, err)
	}
	hand.Bid = bid

	hand.Type = typeOf(hand.Cards)
	return hand, nil
}

// ParseHands parses every line, skipping lines that fail to parse.
func ParseHands(lines []string, joker bool) []Hand {
	hands := make([]Hand, 0, len(lines))
	for _, line := range lines {
		hand, err := ParseHand(line, joker)
		if err != nil {
			continue
		}
		hands = append(hands, hand)
	}
	return hands
}

// Less orders hands by type, then card by card from the left.
func (h Hand) Less(other Hand) bool {
	if h.Type != other.Type {
		return h.Type < other.Type
	}
	for i := range h.Cards {
		if h.Cards[i] != other.Cards[i] {
			return h.Cards[i] < other.Cards[i]
		}
	}
	return false
}

// Winnings sorts the hands by strength in place and sums bid times rank.
func Winnings(hands []Hand) int {
	sort.Slice(hands, func(i, j int) bool {
		return hands[i].Less(hands[j])
	})

	total := 0
	for i, hand := range hands {
		total += hand.Bid * (i + 1)
	}
	return total
}

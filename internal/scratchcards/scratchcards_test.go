package scratchcards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleCards = "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53\n" +
	"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19\n" +
	"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1\n" +
	"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83\n" +
	"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36\n" +
	"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11"

func parseExample(t *testing.T) []Card {
	t.Helper()
	cards := ParseCards(strings.Split(exampleCards, "\n"))
	require.Len(t, cards, 6)
	return cards
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	card, err := ParseCard("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)
	assert.Equal(t, Card{
		ID:        1,
		Count:     1,
		Winning:   []int{41, 48, 83, 86, 17},
		Scratched: []int{83, 86, 6, 31, 17, 9, 48, 53},
	}, card)
}

func TestParseCardMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{"no colon", "Card 1"},
		{"bad id", "Card x: 1 2 | 3 4"},
		{"no separator", "Card 1: q z f"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCard(tt.line)
			assert.Error(t, err)
		})
	}
}

func TestCardScore(t *testing.T) {
	t.Parallel()

	cards := parseExample(t)

	// Card 1 has four matches, so the score doubles three times.
	assert.Equal(t, 4, cards[0].Matches())
	assert.Equal(t, 8, cards[0].Score())

	// Card 5 has no matches.
	assert.Equal(t, 0, cards[4].Matches())
	assert.Equal(t, 0, cards[4].Score())
}

func TestTotalScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 13, TotalScore(parseExample(t)))
}

func TestRunCopyGame(t *testing.T) {
	t.Parallel()

	cards := parseExample(t)
	assert.Equal(t, 30, RunCopyGame(cards))

	wantCounts := []int{1, 2, 4, 8, 14, 1}
	for i, want := range wantCounts {
		assert.Equal(t, want, cards[i].Count, "card %d copies", i+1)
	}
}

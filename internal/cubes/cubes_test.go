package cubes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Hand
	}{
		{"3 blue, 4 red", Hand{Red: 4, Blue: 3}},
		{"1 red, 2 green, 6 blue", Hand{Red: 1, Green: 2, Blue: 6}},
		{"2 green", Hand{Green: 2}},
		{"5 purple", Hand{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseHand(tt.in))
		})
	}
}

func TestParseGame(t *testing.T) {
	t.Parallel()

	game, err := ParseGame("Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue")
	require.NoError(t, err)
	assert.Equal(t, Game{ID: 2, MaxRed: 1, MaxGreen: 3, MaxBlue: 4}, game)
}

func TestParseGameMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseGame("Game 11")
	assert.Error(t, err)
}

func TestGamePossible(t *testing.T) {
	t.Parallel()

	possible := Game{ID: 2, MaxRed: 1, MaxGreen: 3, MaxBlue: 4}
	assert.True(t, possible.Possible(3, 5, 10))

	tooBlue := Game{ID: 5, MaxRed: 1, MaxGreen: 3, MaxBlue: 11}
	assert.False(t, tooBlue.Possible(3, 5, 10))
}

var exampleGames = []Game{
	{ID: 1, MaxRed: 4, MaxGreen: 2, MaxBlue: 6},
	{ID: 2, MaxRed: 1, MaxGreen: 3, MaxBlue: 4},
	{ID: 3, MaxRed: 20, MaxGreen: 13, MaxBlue: 6},
	{ID: 4, MaxRed: 14, MaxGreen: 3, MaxBlue: 15},
	{ID: 5, MaxRed: 6, MaxGreen: 3, MaxBlue: 2},
}

func TestSumPossibleIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, SumPossibleIDs(exampleGames, 12, 13, 14))
}

func TestSumPowers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2286, SumPowers(exampleGames))
}

func TestParseGamesSkipsBadLines(t *testing.T) {
	t.Parallel()

	games := ParseGames([]string{
		"Game 1: 4 red, 2 green, 6 blue",
		"not a game",
		"Game 2: 1 blue",
	})
	require.Len(t, games, 2)
	assert.Equal(t, 1, games[0].ID)
	assert.Equal(t, 2, games[1].ID)
}

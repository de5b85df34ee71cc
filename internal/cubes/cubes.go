// Package cubes scores the cube guessing game: each game reveals several
// hands of colored cubes, and only the per-color maximum across hands
// matters for both parts.
package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// Hand is one reveal of cubes from the bag.
type Hand struct {
	Red   int
	Green int
	Blue  int
}

// ParseHand reads a reveal like "3 blue, 4 red". Unknown colors and
// malformed counts are ignored rather than rejected.
func ParseHand(s string) Hand {
	var hand Hand
	for _, part := range strings.Split(s, ", ") {
		count, name, found := strings.Cut(part, " ")
		if !found {
			continue
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			n = 0
		}
		switch name {
		case "red":
			hand.Red = n
		case "green":
			hand.Green = n
		case "blue":
			hand.Blue = n
		}
	}
	return hand
}

// Game holds the per-color maximum seen across a game's hands, which is
// the minimal bag that could have produced it.
type Game struct {
	ID       int
	MaxRed   int
	MaxGreen int
	MaxBlue  int
}

// ParseGame reads a line like
// "Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red".
func ParseGame(line string) (Game, error) {
	header, rest, found := strings.Cut(line, ": ")
	if !found {
		return Game{}, fmt.Errorf("malformed game line %q", line)
	}

	fields := strings.Split(header, " ")
	id, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Game{}, fmt.Errorf("malformed game id in %q: %w", header, err)
	}

	game := Game{ID: id}
	for _, handStr := range strings.Split(rest, "; ") {
		hand := ParseHand(handStr)
		game.MaxRed = max(game.MaxRed, hand.Red)
		game.MaxGreen = max(game.MaxGreen, hand.Green)
		game.MaxBlue = max(game.MaxBlue, hand.Blue)
	}
	return game, nil
}

// ParseGames parses every line, skipping lines that fail to parse.
func ParseGames(lines []string) []Game {
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		game, err := ParseGame(line)
		if err != nil {
			continue
		}
		games = append(games, game)
	}
	return games
}

// Possible reports whether the game could be played with a bag holding
// the given cube counts.
func (g Game) Possible(red, green, blue int) bool {
	return g.MaxRed <= red && g.MaxGreen <= green && g.MaxBlue <= blue
}

// Power is the product of the minimal bag's cube counts.
func (g Game) Power() int {
	return g.MaxRed * g.MaxGreen * g.MaxBlue
}

// SumPossibleIDs sums the IDs of games playable with the given bag.
func SumPossibleIDs(games []Game, red, green, blue int) int {
	total := 0
	for _, g := range games {
		if g.Possible(red, green, blue) {
			total += g.ID
		}
	}
	return total
}

// SumPowers sums the cube power of every game.
func SumPowers(games []Game) int {
	total := 0
	for _, g := range games {
		total += g.Power()
	}
	return total
}

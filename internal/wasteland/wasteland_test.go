package wasteland

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleNetwork = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)`

const cyclingNetwork = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)`

const ghostNetwork = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)`

func parseNetwork(t *testing.T, text string) *Network {
	t.Helper()
	network, err := Parse(strings.Split(text, "\n"))
	require.NoError(t, err)
	return network
}

func TestParseDirections(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Direction{Left, Left, Right}, ParseDirections("LLR"))
	// Only L and R count.
	assert.Equal(t, []Direction{Left}, ParseDirections("dsfhjla"))
	assert.Empty(t, ParseDirections(""))
}

func TestParseNode(t *testing.T) {
	t.Parallel()

	node, err := ParseNode("AAA = (BBB, CCC)")
	require.NoError(t, err)
	assert.Equal(t, Node{Name: "AAA", Left: "BBB", Right: "CCC"}, node)

	_, err = ParseNode("AAA = s")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Parallel()

	network := parseNetwork(t, exampleNetwork)
	assert.Len(t, network.Directions, 2)
	assert.Len(t, network.Nodes, 7)
	assert.Equal(t, []string{"AAA"}, network.StartKeys)

	_, err := Parse([]string{"xyz", ""})
	assert.Error(t, err)
}

func TestCountSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		network string
		want    int
	}{
		{"direct", exampleNetwork, 2},
		{"directions cycle", cyclingNetwork, 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			network := parseNetwork(t, tt.network)
			steps, err := network.CountSteps("AAA", "ZZZ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, steps)
		})
	}
}

func TestCountStepsUnknownStart(t *testing.T) {
	t.Parallel()

	_, err := parseNetwork(t, exampleNetwork).CountSteps("QQQ", "ZZZ")
	assert.Error(t, err)
}

func TestGhostSteps(t *testing.T) {
	t.Parallel()

	network := parseNetwork(t, ghostNetwork)
	require.Equal(t, []string{"11A", "22A"}, network.StartKeys)

	steps, err := network.GhostSteps(context.Background(), "Z")
	require.NoError(t, err)
	assert.Equal(t, 6, steps)
}

func TestLCM(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, lcm(2, 3))
	assert.Equal(t, 12, lcm(4, 6))
	assert.Equal(t, 5, lcm(5, 5))
}

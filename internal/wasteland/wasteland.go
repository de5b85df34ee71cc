// Package wasteland walks the desert node network: a repeating left/right
// direction sequence over "AAA = (BBB, CCC)" nodes. Part two walks every
// ..A node simultaneously, which reduces to an LCM of cycle lengths.
package wasteland

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Direction is one step of the instruction sequence.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// ParseDirections reads the instruction line, ignoring anything that is
// not an L or R.
func ParseDirections(line string) []Direction {
	var dirs []Direction
	for _, c := range strings.ToUpper(line) {
		switch c {
		case 'L':
			dirs = append(dirs, Left)
		case 'R':
			dirs = append(dirs, Right)
		}
	}
	return dirs
}

// Node is one network entry with its left and right successors.
type Node struct {
	Name  string
	Left  string
	Right string
}

// ParseNode reads a line like "AAA = (BBB, CCC)".
func ParseNode(line string) (Node, error) {
	name, rest, found := strings.Cut(line, " = ")
	if !found {
		return Node{}, fmt.Errorf("malformed node line %q", line)
	}

	left, right, found := strings.Cut(rest, ", ")
	if !found {
		return Node{}, fmt.Errorf("malformed node successors in %q", line)
	}

	return Node{
		Name:  name,
		Left:  strings.ReplaceAll(left, "(", ""),
		Right: strings.ReplaceAll(right, ")", ""),
	}, nil
}

// Network is the parsed puzzle input.
type Network struct {
	Directions []Direction
	Nodes      map[string]Node
	// StartKeys are the nodes ending in A, in input order.
	StartKeys []string
}

// Parse reads the instruction line, a blank line, then the node list.
func Parse(lines []string) (*Network, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty network")
	}

	directions := ParseDirections(lines[0])
	if len(directions) == 0 {
		return nil, fmt.Errorf("no directions in %q", lines[0])
	}

	network := &Network{
		Directions: directions,
		Nodes:      map[string]Node{},
	}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		node, err := ParseNode(line)
		if err != nil {
			return nil, err
		}
		network.Nodes[node.Name] = node
		if strings.HasSuffix(node.Name, "A") {
			network.StartKeys = append(network.StartKeys, node.Name)
		}
	}
	return network, nil
}

// CountSteps walks from startKey until a node name ends with
// targetSuffix, cycling the direction sequence.
func (n *Network) CountSteps(startKey, targetSuffix string) (int, error) {
	node, ok := n.Nodes[startKey]
	if !ok {
		return 0, fmt.Errorf("unknown start node %q", startKey)
	}

	steps := 0
	for {
		dir := n.Directions[steps%len(n.Directions)]
		next := node.Left
		if dir == Right {
			next = node.Right
		}

		node, ok = n.Nodes[next]
		if !ok {
			return 0, fmt.Errorf("node %q has missing successor %q", startKey, next)
		}
		steps++

		if strings.HasSuffix(node.Name, targetSuffix) {
			return steps, nil
		}
	}
}

// GhostSteps is the part-two answer: every start node walks at once, and
// they all stand on a target node after the LCM of their cycle lengths.
// One walker runs per start node.
func (n *Network) GhostSteps(ctx context.Context, targetSuffix string) (int, error) {
	if len(n.StartKeys) == 0 {
		return 0, fmt.Errorf("network has no start nodes")
	}

	group, _ := errgroup.WithContext(ctx)
	counts := make([]int, len(n.StartKeys))

	for i, key := range n.StartKeys {
		i, key := i, key
		group.Go(func() error {
			steps, err := n.CountSteps(key, targetSuffix)
			if err != nil {
				return err
			}
			counts[i] = steps
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	steps := counts[0]
	for _, c := range counts[1:] {
		steps = lcm(steps, c)
	}
	return steps, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

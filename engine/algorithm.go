package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm indicates an algorithm name or value with no strategy.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm identifies a search strategy.
type Algorithm uint8

const (
	BFS Algorithm = iota + 1
	DFS
	GBFS
	Dijkstra
	AStar
)

var algorithmNames = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	GBFS:     "gbfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
}

// Algorithms lists every strategy in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, GBFS, Dijkstra, AStar}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a.valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

func (a Algorithm) valid() bool {
	return a >= BFS && a <= AStar
}

// Weighted reports whether a routes by cell surcharges.
func (a Algorithm) Weighted() bool {
	return a == Dijkstra || a == AStar
}

// ParseAlgorithm resolves a case-insensitive name; "a*" is accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "a*" {
		return AStar, nil
	}
	for _, a := range Algorithms() {
		if algorithmNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText encodes a by name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an algorithm name.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Package search finds shortest paths through a wall-mask maze.
package search

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-robot/game/maze"
)

var (
	ErrNoPath      = errors.New("goal is unreachable")
	ErrOutOfBounds = errors.New("search endpoint is out of the maze")
)

// ShortestPath runs a breadth-first search from start to goal and returns the
// cells of a shortest path, both endpoints included. Neighbors are expanded in
// the order North, East, South, West, so ties always break the same way.
// Nothing is cached between calls.
func ShortestPath(m *maze.Maze, start, goal maze.CellPosition) ([]maze.CellPosition, error) {
	if !m.InBound(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !m.InBound(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal)
	}

	size := m.Size()
	index := func(p maze.CellPosition) int { return p.Row*size + p.Col }

	// parent[i] is the index of the cell that first discovered cell i; -1 for
	// undiscovered cells.
	parent := make([]int, size*size)
	for i := range parent {
		parent[i] = -1
	}
	parent[index(start)] = index(start)

	queue := []maze.CellPosition{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			return reconstruct(parent, index(start), index(goal), size), nil
		}

		for _, move := range m.Neighbors(cur) {
			next := index(move.To)
			if parent[next] == -1 {
				parent[next] = index(cur)
				queue = append(queue, move.To)
			}
		}
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, start, goal)
}

// Distance returns the number of moves on a shortest path.
func Distance(m *maze.Maze, start, goal maze.CellPosition) (int, error) {
	path, err := ShortestPath(m, start, goal)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// reconstruct walks parent pointers back from goal and reverses the result.
func reconstruct(parent []int, start, goal, size int) []maze.CellPosition {
	var path []maze.CellPosition
	for node := goal; ; node = parent[node] {
		path = append(path, maze.CellPosition{Row: node / size, Col: node % size})
		if node == start {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

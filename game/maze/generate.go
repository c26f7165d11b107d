package maze

import (
	"fmt"
	"math/rand"
)

const (
	maxGeneratedDimension = 64
)

// generator carves a perfect maze with Wilson's algorithm. All randomness
// comes from rng so a seed always yields the same layout.
type generator struct {
	maze *Maze
	rng  *rand.Rand
}

// Generate builds a fully connected size×size maze with Wilson's algorithm
// (loop-erased random walks). The boundary stays closed and the result is
// deterministic for a given seed.
func Generate(size int, seed int64) (*Maze, error) {
	if size < minMazeDimension || size > maxGeneratedDimension {
		return nil, fmt.Errorf("%w: got %d, generated mazes support %d..%d",
			ErrInvalidDimensions, size, minMazeDimension, maxGeneratedDimension)
	}

	grid := make([][]WallMask, size)
	for r := range grid {
		grid[r] = make([]WallMask, size)
		for c := range grid[r] {
			grid[r][c] = allWalls
		}
	}

	g := &generator{
		maze: &Maze{size: size, grid: grid},
		rng:  rand.New(rand.NewSource(seed)),
	}
	g.generateMaze()
	return g.maze, nil
}

// randomCellPosition picks a uniformly random cell.
func (g *generator) randomCellPosition() CellPosition {
	return CellPosition{Row: g.rng.Intn(g.maze.size), Col: g.rng.Intn(g.maze.size)}
}

// randomUnvisitedCellPosition picks a random cell not yet part of the tree.
func (g *generator) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := g.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// adjacent lists every in-bound neighbor of pos, ignoring walls, in the fixed
// heading order.
func (g *generator) adjacent(pos CellPosition) []Move {
	var result []Move
	for _, h := range Headings() {
		next := pos.Step(h)
		if g.maze.InBound(next) {
			result = append(result, Move{From: pos, To: next, Direction: h})
		}
	}
	return result
}

// randomWalk walks from a random unvisited cell until it hits the tree,
// remembering only the last exit taken from every cell. Following those exits
// from the start yields the loop-erased path.
func (g *generator) randomWalk(visited map[CellPosition]struct{}) (CellPosition, map[CellPosition]Move) {
	start := g.randomUnvisitedCellPosition(visited)
	exits := make(map[CellPosition]Move)
	cell := start

	for {
		neighbors := g.adjacent(cell)
		next := neighbors[g.rng.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next.To]; included {
			break
		}
		cell = next.To
	}

	return start, exits
}

// generateMaze grows the spanning tree until every cell is part of it.
func (g *generator) generateMaze() {
	total := g.maze.size * g.maze.size
	visited := make(map[CellPosition]struct{}, total)
	visited[g.randomCellPosition()] = struct{}{}

	for len(visited) < total {
		start, exits := g.randomWalk(visited)
		for cell := start; ; {
			if _, included := visited[cell]; included {
				break
			}
			move := exits[cell]
			g.maze.openWall(move)
			visited[cell] = struct{}{}
			cell = move.To
		}
	}
}

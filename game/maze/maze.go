/*
Package maze provides the wall-mask grid model the robot navigates.

A Maze is a square N×N grid in which every cell carries a WallMask of its
four walls. Walls are expected to be symmetric: a wall flagged on a cell's
edge is also flagged on the neighbor's opposite edge. AddWall keeps that
invariant for layouts built in code, but the grid itself does not enforce it.

The package also ships the reference 8×8 layout, a seeded Wilson's algorithm
generator and an ASCII renderer.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	minMazeDimension = 2
)

var (
	ErrInvalidDimensions = errors.New("maze grid must be square with size >= 2")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
	ErrInvalidHeading    = errors.New("invalid heading")
)

// Maze is an N×N grid of wall masks.
type Maze struct {
	size int          // Number of rows and columns
	grid [][]WallMask // grid[row][col]
}

// New copies the given wall grid into a Maze. The grid must be square with
// at least two rows.
func New(walls [][]WallMask) (*Maze, error) {
	size := len(walls)
	if size < minMazeDimension {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidDimensions, size)
	}

	grid := make([][]WallMask, size)
	for r, row := range walls {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(row), size)
		}
		grid[r] = make([]WallMask, size)
		copy(grid[r], row)
	}

	return &Maze{size: size, grid: grid}, nil
}

// NewBordered returns an open size×size maze whose boundary cells have their
// outward walls set.
func NewBordered(size int) (*Maze, error) {
	if size < minMazeDimension {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimensions, size)
	}

	grid := make([][]WallMask, size)
	for r := range grid {
		grid[r] = make([]WallMask, size)
	}
	for i := 0; i < size; i++ {
		grid[0][i] |= WallNorth
		grid[size-1][i] |= WallSouth
		grid[i][0] |= WallWest
		grid[i][size-1] |= WallEast
	}

	return &Maze{size: size, grid: grid}, nil
}

// Size returns N for an N×N maze.
func (m *Maze) Size() int {
	return m.size
}

// InBound reports whether pos lies inside the grid.
func (m *Maze) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.size && pos.Col >= 0 && pos.Col < m.size
}

// Walls returns the wall mask of a cell. Out-of-bound cells are fully walled.
func (m *Maze) Walls(pos CellPosition) WallMask {
	if !m.InBound(pos) {
		return allWalls
	}
	return m.grid[pos.Row][pos.Col]
}

// HasWall reports whether a wall blocks travel from pos in heading h.
func (m *Maze) HasWall(pos CellPosition, h Heading) bool {
	return m.Walls(pos).Has(h.Wall())
}

// Neighbors returns every unobstructed move out of pos in the order North,
// East, South, West. Neighbors outside the grid are skipped even if the wall
// flag is missing.
func (m *Maze) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, h := range Headings() {
		if m.HasWall(pos, h) {
			continue
		}
		next := pos.Step(h)
		if !m.InBound(next) {
			continue
		}
		result = append(result, Move{From: pos, To: next, Direction: h})
	}
	return result
}

// AddWall sets the wall on pos's edge in heading h and the opposite wall on
// the neighbor sharing that edge, if the neighbor is inside the grid.
func (m *Maze) AddWall(pos CellPosition, h Heading) error {
	if !m.InBound(pos) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	m.grid[pos.Row][pos.Col] |= h.Wall()
	if next := pos.Step(h); m.InBound(next) {
		m.grid[next.Row][next.Col] |= h.Reverse().Wall()
	}
	return nil
}

// openWall removes the wall between the two cells of a move.
func (m *Maze) openWall(move Move) {
	m.grid[move.From.Row][move.From.Col] &^= move.Direction.Wall()
	m.grid[move.To.Row][move.To.Col] &^= move.Direction.Reverse().Wall()
}

// Grid returns a copy of the wall masks, row by row.
func (m *Maze) Grid() [][]WallMask {
	out := make([][]WallMask, m.size)
	for r := range m.grid {
		out[r] = make([]WallMask, m.size)
		copy(out[r], m.grid[r])
	}
	return out
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.render(func(CellPosition) string { return "   " })
}

// RenderWithRobot draws the maze with the robot shown as a heading arrow and
// the goal cell marked "G".
func (m *Maze) RenderWithRobot(robot CellPosition, heading Heading, goal CellPosition) string {
	return m.render(func(pos CellPosition) string {
		switch pos {
		case robot:
			return " " + string(heading.Glyph()) + " "
		case goal:
			return " G "
		default:
			return "   "
		}
	})
}

func (m *Maze) render(content func(CellPosition) string) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < m.size; col++ {
		if m.HasWall(CellPosition{Row: 0, Col: col}, North) {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.size; row++ {
		// Cell rows
		if m.HasWall(CellPosition{Row: row, Col: 0}, West) {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.size; col++ {
			pos := CellPosition{Row: row, Col: col}
			output.WriteString(content(pos))
			if m.HasWall(pos, East) {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.size; col++ {
			if m.HasWall(CellPosition{Row: row, Col: col}, South) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

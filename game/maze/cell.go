package maze

import "fmt"

// WallMask is a per-cell bitfield of the four walls surrounding a cell.
type WallMask uint8

// Wall flags. The values match the integer masks used by layout files.
const (
	WallNorth WallMask = 1 << iota // WallNorth blocks travel to row-1.
	WallEast                       // WallEast blocks travel to col+1.
	WallSouth                      // WallSouth blocks travel to row+1.
	WallWest                       // WallWest blocks travel to col-1.

	allWalls = WallNorth | WallEast | WallSouth | WallWest
)

// Has reports whether every flag in w is set on the mask.
func (m WallMask) Has(w WallMask) bool {
	return m&w == w
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" yaml:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" yaml:"col" bson:"col"` // Column index of the cell
}

// Step returns the position one cell away in the given heading.
func (cp CellPosition) Step(h Heading) CellPosition {
	d := h.Delta()
	return CellPosition{Row: cp.Row + d.Row, Col: cp.Col + d.Col}
}

// String formats the position as "(row, col)".
func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", cp.Row, cp.Col)
}

// Move represents an unobstructed step from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Heading      // Absolute direction of travel
}

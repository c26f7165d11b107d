package maze

const referenceSize = 8

// referenceInternalWalls are the internal walls of the reference 8×8 layout,
// each given as a cell and the side of that cell the wall sits on.
var referenceInternalWalls = []struct {
	pos  CellPosition
	side Heading
}{
	{CellPosition{Row: 0, Col: 1}, South},
	{CellPosition{Row: 1, Col: 1}, East},
	{CellPosition{Row: 1, Col: 2}, South},
	{CellPosition{Row: 2, Col: 2}, East},
	{CellPosition{Row: 2, Col: 3}, East},
	{CellPosition{Row: 3, Col: 3}, South},
	{CellPosition{Row: 4, Col: 3}, East},
	{CellPosition{Row: 4, Col: 4}, South},
	{CellPosition{Row: 5, Col: 4}, East},
	{CellPosition{Row: 5, Col: 5}, South},
	{CellPosition{Row: 6, Col: 5}, East},
	{CellPosition{Row: 6, Col: 6}, South},
}

// Reference8x8 returns the reference layout: an 8×8 grid with closed outer
// walls and twelve internal walls. Every cell is reachable from every other.
func Reference8x8() *Maze {
	m, _ := NewBordered(referenceSize)
	for _, w := range referenceInternalWalls {
		_ = m.AddWall(w.pos, w.side)
	}
	return m
}

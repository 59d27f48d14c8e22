package cellsel

import "testing"

func TestCell_IgnoresExtent(t *testing.T) {
	checkCells(t, []Coord{C(1, 2)}, Cell{Row: 1, Col: 2}.Cells(2, 3))
	checkCells(t, []Coord{C(1, 2)}, Cell{Row: 1, Col: 2}.Cells(0, 0))
	checkCells(t, []Coord{C(50, 70)}, Cell{Row: 50, Col: 70}.Cells(2, 3))
}

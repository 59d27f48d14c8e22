package cellsel

import "sort"

// MergeMode tells a Combination how to merge its children.
type MergeMode int

const (
	MergeUnion      MergeMode = iota // cells of either child, without repeats
	MergeDifference                  // cells of the left child absent from the right one
)

func (m MergeMode) String() string {
	switch m {
	case MergeUnion:
		return "union"
	case MergeDifference:
		return "difference"
	default:
		return "unknown"
	}
}

// Combination merges the cells of two selectors. It is a Selector itself,
// so combinations chain without limit.
type Combination struct {
	Left  Selector
	Right Selector
	Mode  MergeMode
}

// Union selects the cells of both selectors. The result holds no repeats and
// is ordered by row, then column.
func Union(left, right Selector) Combination {
	return Combination{Left: left, Right: right, Mode: MergeUnion}
}

// Difference selects the cells of left that right does not select, keeping
// the order of left.
func Difference(left, right Selector) Combination {
	return Combination{Left: left, Right: right, Mode: MergeDifference}
}

// UnionWith adds the cells of other to c.
func (c Combination) UnionWith(other Selector) Combination {
	return Union(c, other)
}

// Except removes the cells of other from c.
func (c Combination) Except(other Selector) Combination {
	return Difference(c, other)
}

// Cells evaluates both children against the same extent and merges them.
func (c Combination) Cells(countRows, countColumns int) []Coord {
	left := cellsOf(c.Left, countRows, countColumns)
	right := cellsOf(c.Right, countRows, countColumns)

	switch c.Mode {
	case MergeDifference:
		return removeCells(left, right)
	default:
		return combineCells(left, right)
	}
}

func cellsOf(s Selector, countRows, countColumns int) []Coord {
	if s == nil {
		return nil
	}
	return s.Cells(countRows, countColumns)
}

// combineCells joins two sets of cells, dropping repeats.
func combineCells(left, right []Coord) []Coord {
	seen := make(map[Coord]struct{}, len(left)+len(right))
	var cells []Coord
	for _, set := range [][]Coord{left, right} {
		for _, cell := range set {
			if _, ok := seen[cell]; ok {
				continue
			}
			seen[cell] = struct{}{}
			cells = append(cells, cell)
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// removeCells drops from left every cell present in right.
func removeCells(left, right []Coord) []Coord {
	exclude := make(map[Coord]struct{}, len(right))
	for _, cell := range right {
		exclude[cell] = struct{}{}
	}
	var cells []Coord
	for _, cell := range left {
		if _, ok := exclude[cell]; !ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

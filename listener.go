package cellsel

// ApplyListener is notified before and after a CellOption changes a cell.
// Implement it to veto changes on particular cells, or to trace them.
type ApplyListener interface {
	// BeforeChangeCell is called before opt changes the cell at c.
	// Return false to skip the change.
	BeforeChangeCell(c Coord, opt CellOption) bool

	// AfterChangeCell is called after the cell at c was handled, whether or
	// not the change was skipped.
	AfterChangeCell(c Coord, opt CellOption)
}

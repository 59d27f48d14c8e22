package cellsel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// checkCells compares selected cells, treating nil and empty as equal.
func checkCells(t *testing.T, want, got []Coord) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectors_ZeroExtent(t *testing.T) {
	selectors := map[string]Selector{
		"All":              All(),
		"Full":             Full{},
		"Segment":          NewSegment(SpanFrom(1), SpanInclusive(0, 3)),
		"Frame":            Frame{},
		"Rows":             NewRows(SpanAll()),
		"Columns":          NewColumns(SpanAll()),
		"Row":              Row(0),
		"Column":           Column(0),
		"FirstRow":         FirstRow{},
		"LastRow":          LastRow{},
		"FirstColumn":      FirstColumn{},
		"LastColumn":       LastColumn{},
		"LastRowOffset":    LastRowOffset{Offset: 2},
		"LastColumnOffset": LastColumnOffset{Offset: 2},
		"Area":             NewArea(C(0, 0), C(3, 3)),
		"Empty":            Empty{},
		"Difference":       Difference(FirstRow{}, Cell{}),
	}
	for name, sel := range selectors {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Empty(t, sel.Cells(0, 0))
			})
		})
	}
}

func TestSelectors_StayInsideGrid(t *testing.T) {
	selectors := []Selector{
		All(), Frame{}, NewSegment(SpanInclusive(1, 40), SpanFrom(2)),
		NewRows(SpanInclusive(0, 99)), NewColumns(SpanTo(99)),
		Row(3), Column(4), FirstRow{}, LastRow{}, FirstColumn{}, LastColumn{},
		LastRowOffset{Offset: 1}, LastColumnOffset{Offset: 4},
		NewArea(C(2, 2), C(20, 20)),
	}
	const rows, cols = 4, 5
	for _, sel := range selectors {
		for _, c := range sel.Cells(rows, cols) {
			assert.True(t, c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols,
				"%T selected %v outside %dx%d", sel, c, rows, cols)
		}
	}
}

func TestSelectorFunc(t *testing.T) {
	diagonal := SelectorFunc(func(rows, cols int) []Coord {
		var cells []Coord
		for i := 0; i < min(rows, cols); i++ {
			cells = append(cells, C(i, i))
		}
		return cells
	})
	checkCells(t, []Coord{C(0, 0), C(1, 1)}, diagonal.Cells(2, 3))
	checkCells(t, []Coord{
		C(0, 1), C(0, 2),
		C(1, 0), C(1, 2),
		C(1, 0),
		C(0, 2), C(1, 2),
	}, Difference(Frame{}, diagonal).Cells(2, 3))
}

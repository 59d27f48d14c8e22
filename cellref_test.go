package cellsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoord_String(t *testing.T) {
	assert.Equal(t, "A1", C(0, 0).String())
	assert.Equal(t, "C2", C(1, 2).String())
	assert.Equal(t, "AA10", C(9, 26).String())
	assert.Equal(t, "R-1C0", C(-1, 0).String())
}

func TestParseCoord(t *testing.T) {
	cases := map[string]struct {
		input   string
		want    Coord
		wantErr bool
	}{
		"Simple":     {input: "A1", want: C(0, 0)},
		"Lowercase":  {input: "c2", want: C(1, 2)},
		"Absolute":   {input: "$B$5", want: C(4, 1)},
		"WithSheet":  {input: "Sheet1!C3", want: C(2, 2)},
		"Quoted":     {input: "'My Sheet'!AA10", want: C(9, 26)},
		"Spaces":     {input: "  D4 ", want: C(3, 3)},
		"Empty":      {input: "", wantErr: true},
		"NoRow":      {input: "A", wantErr: true},
		"NoColumn":   {input: "11", wantErr: true},
		"NotAName":   {input: "??", wantErr: true},
		"OnlySheet":  {input: "Sheet1!", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCoord(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseArea(t *testing.T) {
	a, err := ParseArea("B2:D4")
	require.NoError(t, err)
	assert.Equal(t, Area{First: C(1, 1), Last: C(3, 3)}, a)
	assert.Equal(t, "B2:D4", a.String())

	// Corners are normalized.
	a, err = ParseArea("Sheet1!D4:B2")
	require.NoError(t, err)
	assert.Equal(t, Area{First: C(1, 1), Last: C(3, 3)}, a)

	a, err = ParseArea("C3")
	require.NoError(t, err)
	assert.Equal(t, Area{First: C(2, 2), Last: C(2, 2)}, a)

	_, err = ParseArea("A1:")
	assert.Error(t, err)
	_, err = ParseArea(":B2")
	assert.Error(t, err)
}

func TestArea_Cells(t *testing.T) {
	a := NewArea(C(2, 1), C(1, 2))
	checkCells(t, []Coord{C(1, 1), C(1, 2), C(2, 1), C(2, 2)}, a.Cells(5, 5))

	// Only the part inside the grid is selected.
	checkCells(t, []Coord{C(1, 1)}, a.Cells(2, 2))
	assert.Empty(t, a.Cells(1, 1))
	assert.Equal(t, NewSegment(SpanInclusive(1, 2), SpanInclusive(1, 2)), a.Segment())
}

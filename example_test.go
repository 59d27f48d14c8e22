package cellsel_test

import (
	"fmt"

	"github.com/javajack/cellsel"
	"github.com/xuri/excelize/v2"
)

func ExampleUnion() {
	// Header row and first column, without the corner cell.
	sel := cellsel.Union(cellsel.FirstRow{}, cellsel.FirstColumn{}).Except(cellsel.Cell{Row: 0, Col: 0})
	fmt.Println(sel.Cells(3, 3))
	// Output: [B1 C1 A2 A3]
}

func ExampleLastRow_ShiftedBackward() {
	fmt.Println(cellsel.LastRow{}.Cells(5, 2))
	fmt.Println(cellsel.LastRow{}.ShiftedBackward(1).Cells(5, 2))
	fmt.Println(cellsel.LastRow{}.ShiftedBackward(5).Cells(5, 2))
	// Output:
	// [A5 B5]
	// [A4 B4]
	// []
}

func ExampleCompile() {
	sel, err := cellsel.Compile(`Area("A1:C3") - Frame()`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sel.Cells(3, 3))
	// Output: [B2]
}

func ExampleSheet_Apply() {
	f := excelize.NewFile()
	defer f.Close()
	for _, cell := range []string{"A1", "B1", "A2", "B2"} {
		f.SetCellValue("Sheet1", cell, cell)
	}

	s, err := cellsel.NewSheet(f, "Sheet1")
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := s.Apply(cellsel.Modify(cellsel.Row(1), cellsel.Value("-"))); err != nil {
		fmt.Println(err)
		return
	}

	rows, _ := f.GetRows("Sheet1")
	fmt.Println(rows)
	// Output: [[A1 B1] [- -]]
}

package compose

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "background"

var xlsxHeader = []any{"X", "Iraw", "Ibkg", "I"}

// WriteXLSX stores the four columns of r in a new workbook at path.
func WriteXLSX(path string, r Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return err
	}

	for i := range r.X {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{r.X[i], r.Raw[i], r.Background[i], r.Net[i]}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("compose: row %d: %w", i+1, err)
		}
	}

	return f.SaveAs(path)
}

// ReadXLSX loads a workbook written by WriteXLSX.
func ReadXLSX(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return Result{}, err
	}

	var r Result
	for i, row := range rows {
		if i == 0 {
			continue
		}

		if len(row) < 4 {
			return Result{}, fmt.Errorf("compose: %s row %d: want 4 cells, got %d", SheetName, i+1, len(row))
		}

		var vals [4]float64
		for c := range vals {
			if _, err := fmt.Sscan(row[c], &vals[c]); err != nil {
				return Result{}, fmt.Errorf("compose: %s row %d: %w", SheetName, i+1, err)
			}
		}

		r.X = append(r.X, vals[0])
		r.Raw = append(r.Raw, vals[1])
		r.Background = append(r.Background, vals[2])
		r.Net = append(r.Net, vals[3])
	}

	return r, nil
}

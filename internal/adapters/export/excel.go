package export

import (
	"io"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Employees"

func writeExcel(w io.Writer, employees []*employee.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{e.ID, e.Name, e.Age, e.Job, e.Email, e.Gender, e.Phone, e.Address}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 8); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", "H", 22); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

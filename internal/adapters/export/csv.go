package export

import (
	"encoding/csv"
	"io"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
)

func writeCSV(w io.Writer, employees []*employee.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range employees {
		if err := cw.Write(toRow(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

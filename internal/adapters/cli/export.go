package cli

import (
	"context"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"github.com/spf13/cobra"
)

func (r *runner) newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all employees to a file",
	}

	cmd.AddCommand(
		r.newExportFormatCommand("csv", "Export to a CSV file", Exporter.ToCSV),
		r.newExportFormatCommand("excel", "Export to an Excel workbook", Exporter.ToExcel),
		r.newExportFormatCommand("pdf", "Export to a PDF report", Exporter.ToPDF),
	)
	return cmd
}

func (r *runner) newExportFormatCommand(use, short string, run func(Exporter, context.Context, string) employee.Result[string]) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <path>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withSession(cmd, func(s *Session) error {
				res := run(s.Exports, cmd.Context(), args[0])
				return report(cmd, res.OK, res.Message)
			})
		},
	}
}

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ogurasousui/codex-employee-roster/internal/core/employee"
	"github.com/spf13/cobra"
)

var fieldLabels = map[string]string{
	employee.FieldName:    "Name",
	employee.FieldAge:     "Age",
	employee.FieldJob:     "Job",
	employee.FieldEmail:   "Email",
	employee.FieldGender:  "Gender",
	employee.FieldPhone:   "Phone",
	employee.FieldAddress: "Address",
}

func bindFieldFlags(cmd *cobra.Command) map[string]*string {
	values := make(map[string]*string, len(employee.RequiredFields))
	for _, name := range employee.RequiredFields {
		values[name] = cmd.Flags().String(name, "", fieldLabels[name])
	}
	return values
}

func (r *runner) newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
	}
	values := bindFieldFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		fields := make(employee.Fields, len(values))
		for name, v := range values {
			fields[name] = *v
		}

		return r.withSession(cmd, func(s *Session) error {
			res := s.Records.AddRecord(cmd.Context(), fields)
			if err := report(cmd, res.OK, res.Message); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\n", res.Payload)
			return nil
		})
	}
	return cmd
}

func (r *runner) newListCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withSession(cmd, func(s *Session) error {
				res := s.Records.GetAllRecords(cmd.Context())
				if !res.OK {
					return report(cmd, false, res.Message)
				}

				matched := filterEmployees(res.Payload, search)
				if len(matched) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No employees found")
					return nil
				}
				return writeTable(cmd, matched)
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on id or name")
	return cmd
}

func (r *runner) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0])
			if err != nil {
				return err
			}

			return r.withSession(cmd, func(s *Session) error {
				res := s.Records.GetRecordByID(cmd.Context(), id)
				if !res.OK {
					return report(cmd, false, res.Message)
				}
				writeDetail(cmd, res.Payload)
				return nil
			})
		},
	}
}

func (r *runner) newUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee; omitted fields keep their stored values",
		Args:  cobra.ExactArgs(1),
		Long: `Update an employee. Fields not given as flags keep their stored values.
For an unknown id every field must be given; the result is then reported as a failed update.`,
	}
	values := bindFieldFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(cmd, args[0])
		if err != nil {
			return err
		}

		return r.withSession(cmd, func(s *Session) error {
			// 見つからない場合も UpdateRecord に判定させ、検証と存在確認の順序をサービスに揃える
			fields := employee.Fields{}
			if current := s.Records.GetRecordByID(cmd.Context(), id); current.OK {
				fields = current.Payload.Fields()
			}
			for name, v := range values {
				if cmd.Flags().Changed(name) {
					fields[name] = *v
				}
			}

			res := s.Records.UpdateRecord(cmd.Context(), id, fields)
			return report(cmd, res.OK, res.Message)
		})
	}
	return cmd
}

func (r *runner) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0])
			if err != nil {
				return err
			}

			return r.withSession(cmd, func(s *Session) error {
				res := s.Records.DeleteRecord(cmd.Context(), id)
				return report(cmd, res.OK, res.Message)
			})
		},
	}
}

func parseID(cmd *cobra.Command, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, report(cmd, false, fmt.Sprintf("Invalid employee ID: %s", raw))
	}
	return id, nil
}

// filterEmployees は ID または名前に query を含む社員を返します。大文字小文字は区別しません。
func filterEmployees(employees []*employee.Employee, query string) []*employee.Employee {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return employees
	}

	matched := make([]*employee.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strconv.FormatInt(e.ID, 10), query) ||
			strings.Contains(strings.ToLower(e.Name), query) {
			matched = append(matched, e)
		}
	}
	return matched
}

func writeTable(cmd *cobra.Command, employees []*employee.Employee) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tAge\tJob\tEmail\tGender\tPhone\tAddress")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Age, e.Job, e.Email, e.Gender, e.Phone, oneLine(e.Address))
	}
	return tw.Flush()
}

func writeDetail(cmd *cobra.Command, e *employee.Employee) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID: %d\n", e.ID)
	fields := e.Fields()
	for _, name := range employee.RequiredFields {
		fmt.Fprintf(out, "%s: %s\n", fieldLabels[name], fields[name])
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package cli

import (
	"fmt"

	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (r *runner) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", config.KeyDBPath, r.cfg.DBPath)
			fmt.Fprintf(out, "%s: %s\n", config.KeyTheme, r.cfg.Theme)
			fmt.Fprintf(out, "database.driver: %s\n", r.cfg.Database.Driver)
			return nil
		},
	}

	set := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Persist a setting (" + config.KeyDBPath + " or " + config.KeyTheme + ")",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{config.KeyDBPath, config.KeyTheme},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.cfg.Set(args[0], args[1]); err != nil {
				return report(cmd, false, fmt.Sprintf("Error saving settings: %v", err))
			}
			if err := r.cfg.Save(r.configPath); err != nil {
				r.logger.Error("save settings", zap.String("path", r.configPath), zap.Error(err))
				return report(cmd, false, fmt.Sprintf("Error saving settings: %v", err))
			}
			r.logger.Info("settings saved", zap.String("key", args[0]))
			return report(cmd, true, "Settings saved successfully")
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

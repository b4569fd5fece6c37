package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Print a stored report",
		Long:  "Print the report persisted by an earlier run. Requires report.output_dir to be configured.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, *configPath)
			if err != nil {
				return err
			}
			return application.Show(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newRunsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List runs with a stored report",
		Long:  "List the IDs of runs whose report was persisted, oldest first. Requires report.output_dir to be configured.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, *configPath)
			if err != nil {
				return err
			}
			return application.ListRuns(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

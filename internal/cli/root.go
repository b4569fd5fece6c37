package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cookie-analytics/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

var Version = "dev"

func NewRootCmd() *cobra.Command {
	var (
		configPath string
		csvPath    string
	)

	root := &cobra.Command{
		Use:   "cookie-report",
		Short: "Rank cookies by size from exported request logs",
		Long: "cookie-report reads a CSV export of application logs carrying BEGIN-COOKIE-SIZES entries, " +
			"normalizes volatile cookie names and prints per-cookie size statistics, largest first.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd, configPath)
			if err != nil {
				return err
			}
			_, err = application.Run(cmd.Context(), csvPath, cmd.OutOrStdout())
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	root.Flags().StringVar(&csvPath, "csv", "", "Path to the exported log table (CSV with _raw, _time and index columns)")
	_ = root.MarkFlagRequired("csv")

	root.AddCommand(
		newShowCmd(&configPath),
		newRunsCmd(&configPath),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("cookie-report %s\n", Version))

	return root
}

// Execute runs the command tree and exits with a status derived from the error category.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.ExitCode()
	}
	var configErr *configError
	if errors.As(err, &configErr) {
		return 2
	}
	return 1
}

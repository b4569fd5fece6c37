package cli

import (
	"cookie-analytics/internal/app"
	"cookie-analytics/internal/shared/configs"

	"github.com/spf13/cobra"
)

// configError marks failures to load or validate configuration.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

// newApp loads configuration and builds the application. Logs go to the command's stderr.
func newApp(cmd *cobra.Command, configPath string) (*app.App, error) {
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, &configError{err: err}
	}
	application, err := app.New(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, &configError{err: err}
	}
	return application, nil
}

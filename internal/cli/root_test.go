package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cookie-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportTable = `_raw,_time,index
"req a BEGIN-COOKIE-SIZES(total=20) csrftoken: 64 END-COOKIE-SIZES",2021-09-15 17:51:13,prod
"req b BEGIN-COOKIE-SIZES(total=30) csrftoken: 70 END-COOKIE-SIZES",2021-09-15 18:00:00,stage
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "cookie-report", cmd.Use)
	assert.Equal(t, Version, cmd.Version)
}

func TestRootCmdSubcommands(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	subCmds := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subCmds[sub.Name()] = true
	}

	for _, name := range []string{"show", "runs"} {
		assert.True(t, subCmds[name], "root should have subcommand %q", name)
	}
}

func TestRootCmdVersionFlag(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, Version)
}

func TestRootCmdRequiresCSV(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"csv"`)
}

func TestRootCmdWritesReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := writeFile(t, dir, "export.csv", exportTable)

	stdout, stderr, err := execute(t, "--csv", csvPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "name,max_full_size,"))
	assert.Equal(t, `csrftoken,81,75,70,64,2021-09-15 17:51:13+00:00,2,1,1,30,20,"prod,stage"`, lines[1])
	assert.Contains(t, stderr, "run completed")
}

func TestRootCmdStoredReportRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := writeFile(t, dir, "export.csv", exportTable)
	configPath := writeFile(t, dir, "config.yaml", "log:\n  level: warn\nreport:\n  output_dir: "+filepath.Join(dir, "out")+"\n")

	report, _, err := execute(t, "--config", configPath, "--csv", csvPath)
	require.NoError(t, err)

	listed, _, err := execute(t, "runs", "--config", configPath)
	require.NoError(t, err)
	runIDs := strings.Fields(listed)
	require.Len(t, runIDs, 1)

	shown, _, err := execute(t, "show", runIDs[0], "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, report, shown)
}

func TestShowCmdErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "report:\n  output_dir: "+filepath.Join(dir, "out")+"\n")

	tests := []struct {
		name         string
		args         []string
		expectedCode string
		exitCode     int
	}{
		{
			name:         "unknown run",
			args:         []string{"show", "01J8ZQ3V6W3N7X9Y2K5M4P1R0T", "--config", configPath},
			expectedCode: "APP_1003",
			exitCode:     1,
		},
		{
			name:         "malformed run id",
			args:         []string{"show", "not-a-run", "--config", configPath},
			expectedCode: "APP_1002",
			exitCode:     2,
		},
		{
			name:         "storage not configured",
			args:         []string{"show", "01J8ZQ3V6W3N7X9Y2K5M4P1R0T"},
			expectedCode: "APP_1005",
			exitCode:     2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError, got %v", err)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.exitCode, exitCode(err))
		})
	}
}

func TestShowCmdRequiresRunID(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid argument", svcerrors.NewInvalidArgumentError("APP_1001", "bad input", nil), 2},
		{"not found", svcerrors.NewNotFoundError("APP_1000", "missing", nil), 1},
		{"internal", svcerrors.NewInternalErrorUndefined(errors.New("boom")), 1},
		{"config", &configError{err: errors.New("config validation failed")}, 2},
		{"other", errors.New("unknown flag: --nope"), 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, exitCode(tt.err))
		})
	}
}

func TestRootCmdInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := writeFile(t, dir, "export.csv", exportTable)
	configPath := writeFile(t, dir, "config.yaml", "log:\n  level: loud\n")

	_, _, err := execute(t, "--config", configPath, "--csv", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Equal(t, 2, exitCode(err))
}

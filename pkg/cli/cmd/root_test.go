package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parissa-gb/yaml-compare/pkg/cli/cmd"
	"github.com/parissa-gb/yaml-compare/pkg/report/htmlreport"
	"github.com/parissa-gb/yaml-compare/pkg/yamldoc"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := cmd.NewRootCmd("test", "none", "unknown")

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCmd_IdenticalFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "a: 1\nb: two\n")
	right := writeFile(t, dir, "right.yaml", "b: \"two\"\na: 1\n")

	out, _, err := runCommand(t, left, right)
	require.NoError(t, err)
	require.Contains(t, out, "no differences found")
}

func TestRootCmd_ReportsDifferences(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "a: 1\nb:\n  c: 2\n")
	right := writeFile(t, dir, "right.yaml", "a: 1\nb:\n  c: 3\nd: 4\n")

	out, _, err := runCommand(t, left, right)
	require.NoError(t, err)
	require.Contains(t, out, "b.c")
	require.Contains(t, out, "2 difference(s)")
}

func TestRootCmd_ConfigKeysPerSide(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "kind: ConfigMap\ndata:\n  app-dev: \"port: 8080\"\n")
	right := writeFile(t, dir, "right.yaml", "kind: ConfigMap\ndata:\n  app-prod: \"port: 9090\"\n")

	out, _, err := runCommand(t, left, right, "app-dev:app-prod")
	require.NoError(t, err)
	require.Contains(t, out, "port")
	require.Contains(t, out, "8080")
	require.Contains(t, out, "9090")
}

func TestRootCmd_StartPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "app:\n  db:\n    timeout: 30\n  other: 1\n")
	right := writeFile(t, dir, "right.yaml", "app:\n  db:\n    timeout: 60\n  other: 2\n")

	out, _, err := runCommand(t, left, right, "", "app.db")
	require.NoError(t, err)
	require.Contains(t, out, "timeout")
	require.NotContains(t, out, "other")
}

func TestRootCmd_WritesHTMLReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "a: 1\n")
	right := writeFile(t, dir, "right.yaml", "a: 2\n")
	reportPath := filepath.Join(dir, "report.html")

	out, _, err := runCommand(t, left, right, "--html", reportPath, "--theme", "night")
	require.NoError(t, err)
	require.Contains(t, out, "HTML report saved to "+reportPath)

	content, readErr := os.ReadFile(reportPath)
	require.NoError(t, readErr)
	require.Contains(t, string(content), `data-theme="night"`)
}

func TestRootCmd_UnknownTheme(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "a: 1\n")
	right := writeFile(t, dir, "right.yaml", "a: 2\n")

	_, _, err := runCommand(t, left, right, "--theme", "sepia")
	require.ErrorIs(t, err, htmlreport.ErrUnknownTheme)
	require.Equal(t, cmd.ExitArguments, cmd.ExitCode(err))
}

func TestRootCmd_TooFewArguments(t *testing.T) {
	t.Parallel()

	_, _, err := runCommand(t, "only-one.yaml")
	require.ErrorIs(t, err, cmd.ErrArguments)
	require.Equal(t, cmd.ExitArguments, cmd.ExitCode(err))
}

func TestRootCmd_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "a: 1\n")

	_, _, err := runCommand(t, left, filepath.Join(dir, "absent.yaml"))
	require.ErrorIs(t, err, yamldoc.ErrRead)
	require.Equal(t, cmd.ExitIO, cmd.ExitCode(err))
}

func TestRootCmd_MissingStartPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	left := writeFile(t, dir, "left.yaml", "x:\n  z: 1\n")
	right := writeFile(t, dir, "right.yaml", "x:\n  z: 2\n")

	_, _, err := runCommand(t, left, right, "", "x.y")
	require.ErrorIs(t, err, yamldoc.ErrPathNotFound)
	require.Equal(t, cmd.ExitPathNotFound, cmd.ExitCode(err))
}

func TestExitCode_Mapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cmd.ExitOK},
		{name: "arguments", err: cmd.ErrArguments, want: cmd.ExitArguments},
		{name: "theme", err: htmlreport.ErrUnknownTheme, want: cmd.ExitArguments},
		{name: "read", err: yamldoc.ErrRead, want: cmd.ExitIO},
		{name: "write", err: htmlreport.ErrWrite, want: cmd.ExitIO},
		{name: "parse", err: yamldoc.ErrParse, want: cmd.ExitParse},
		{name: "key", err: yamldoc.ErrKeyNotFound, want: cmd.ExitKeyNotFound},
		{name: "path", err: yamldoc.ErrPathNotFound, want: cmd.ExitPathNotFound},
		{name: "other", err: errors.New("boom"), want: cmd.ExitUnexpected},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.want, cmd.ExitCode(testCase.err))
		})
	}
}

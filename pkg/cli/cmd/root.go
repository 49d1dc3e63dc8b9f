package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parissa-gb/yaml-compare/pkg/report/htmlreport"
	"github.com/parissa-gb/yaml-compare/pkg/yamldoc"
)

// ErrArguments indicates missing or malformed command-line arguments.
var ErrArguments = errors.New("invalid arguments")

// Exit codes returned by the process. Every failure kind gets its own code so
// scripts can branch on the outcome without parsing messages.
const (
	// ExitOK is returned on success, including "no differences found".
	ExitOK = 0
	// ExitUnexpected is returned for failures outside the known taxonomy.
	ExitUnexpected = 1
	// ExitArguments is returned for missing or malformed CLI arguments.
	ExitArguments = 2
	// ExitIO is returned when an input file is unreadable or the report is unwritable.
	ExitIO = 3
	// ExitParse is returned for invalid YAML syntax.
	ExitParse = 4
	// ExitKeyNotFound is returned when the ConfigMap data key is absent.
	ExitKeyNotFound = 5
	// ExitPathNotFound is returned when a start-path segment cannot be followed.
	ExitPathNotFound = 6
)

const (
	minPositionalArgs = 2
	maxPositionalArgs = 4
)

// NewRootCmd creates and returns the root command with version info.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "yaml-compare <file1> <file2> [configKey[:configKey2]] [startPath]",
		Short: "Semantically compare two YAML documents or ConfigMaps",
		Long: "yaml-compare compares two YAML documents while ignoring surface formatting\n" +
			"(key order, quoting, flow vs block style). It can extract a ConfigMap data\n" +
			"key whose value is embedded YAML, descend a dot-notation start path, and\n" +
			"render the differences as a console table and/or a themeable HTML report.",
		Example: "  yaml-compare dev.yaml prod.yaml\n" +
			"  yaml-compare dev.yaml prod.yaml app-config\n" +
			"  yaml-compare dev.yaml prod.yaml app-config:app-config-prod app.db.settings\n" +
			"  yaml-compare dev.yaml prod.yaml --html report.html --theme night",
		Args:          positionalArgs,
		RunE:          opts.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "Write an HTML report to the given file")
	cmd.Flags().StringVar(&opts.themeName, "theme", "light", "Default HTML report theme (light, night, contrast)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// ExitCode maps an execution error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrArguments), errors.Is(err, htmlreport.ErrUnknownTheme):
		return ExitArguments
	case errors.Is(err, yamldoc.ErrParse):
		return ExitParse
	case errors.Is(err, yamldoc.ErrKeyNotFound):
		return ExitKeyNotFound
	case errors.Is(err, yamldoc.ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, yamldoc.ErrRead), errors.Is(err, htmlreport.ErrWrite):
		return ExitIO
	default:
		return ExitUnexpected
	}
}

// --- internals ---

// positionalArgs validates the argument count, wrapping the cobra error so
// usage mistakes map to the argument exit code.
func positionalArgs(cmd *cobra.Command, args []string) error {
	err := cobra.RangeArgs(minPositionalArgs, maxPositionalArgs)(cmd, args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArguments, err)
	}

	return nil
}

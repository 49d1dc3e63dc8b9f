package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/parissa-gb/yaml-compare/pkg/diff"
	"github.com/parissa-gb/yaml-compare/pkg/report/console"
	"github.com/parissa-gb/yaml-compare/pkg/report/htmlreport"
	"github.com/parissa-gb/yaml-compare/pkg/utils/notify"
	"github.com/parissa-gb/yaml-compare/pkg/yamldoc"
)

// compareOptions carries the flag values of the root command.
type compareOptions struct {
	htmlPath  string
	themeName string
	verbose   bool
}

// run executes the comparison pipeline.
func (o *compareOptions) run(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd, o.verbose)

	theme, err := htmlreport.ParseTheme(o.themeName)
	if err != nil {
		return err
	}

	leftFile, rightFile := args[0], args[1]

	var configKeyArg, startPath string
	if len(args) > 2 {
		configKeyArg = args[2]
	}

	if len(args) > 3 {
		startPath = args[3]
	}

	leftKey, rightKey := splitConfigKeys(configKeyArg)

	left, err := yamldoc.Load(leftFile, yamldoc.LoadOptions{ConfigKey: leftKey, StartPath: startPath})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"file": leftFile, "key": leftKey}).Debug("loaded left document")

	right, err := yamldoc.Load(rightFile, yamldoc.LoadOptions{ConfigKey: rightKey, StartPath: startPath})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"file": rightFile, "key": rightKey}).Debug("loaded right document")

	leftLabel, rightLabel := sourceLabels(leftFile, rightFile)
	result := diff.Compare(left, right, leftLabel, rightLabel)

	log.WithFields(logrus.Fields{
		"added":        result.Summary.Added,
		"removed":      result.Summary.Removed,
		"changed":      result.Summary.Changed,
		"type_changed": result.Summary.TypeChanged,
	}).Debug("comparison complete")

	out := cmd.OutOrStdout()
	console.Render(out, result, console.Options{Width: terminalWidth(out)})

	if o.htmlPath == "" {
		return nil
	}

	err = htmlreport.Write(o.htmlPath, result, htmlreport.Options{
		Theme:       theme,
		GeneratedAt: time.Now(),
		ConfigKey:   configKeyArg,
		StartPath:   startPath,
	})
	if err != nil {
		return err
	}

	notify.Successf(out, "HTML report saved to %s", o.htmlPath)

	return nil
}

// splitConfigKeys parses the combined config-key argument. A single token
// applies to both files; "key1:key2" applies each side separately.
func splitConfigKeys(arg string) (string, string) {
	if arg == "" {
		return "", ""
	}

	if left, right, found := strings.Cut(arg, ":"); found {
		return left, right
	}

	return arg, arg
}

// sourceLabels derives display labels for the two files. Base names are used
// unless they collide, in which case the full paths disambiguate.
func sourceLabels(leftFile, rightFile string) (string, string) {
	leftLabel, rightLabel := filepath.Base(leftFile), filepath.Base(rightFile)
	if leftLabel == rightLabel {
		return leftFile, rightFile
	}

	return leftLabel, rightLabel
}

func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}

// terminalWidth reports the column count when out is a terminal, zero
// otherwise (the console renderer falls back to its default).
func terminalWidth(out any) int {
	file, ok := out.(*os.File)
	if !ok {
		return 0
	}

	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}

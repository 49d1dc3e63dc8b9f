// Package main is the entry point for the yaml-compare application.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/parissa-gb/yaml-compare/internal/buildmeta"
	"github.com/parissa-gb/yaml-compare/pkg/cli/cmd"
	"github.com/parissa-gb/yaml-compare/pkg/utils/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			panicMessage := fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack())
			notify.WriteMessage(notify.Message{
				Type:    notify.ErrorType,
				Content: panicMessage,
				Writer:  errWriter,
			})

			exitCode = cmd.ExitUnexpected
		}
	}()

	exitCode = runner(args)

	return exitCode
}

func runWithArgs(args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)

		return cmd.ExitCode(err)
	}

	return cmd.ExitOK
}

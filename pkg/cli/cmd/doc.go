// Package cmd provides the command-line interface for yaml-compare.
//
// The root command runs the full comparison pipeline: load both YAML files
// (optionally extracting a ConfigMap data key and descending a dot-notation
// start path), compute the structural diff, render it to the console, and
// optionally write an HTML report. Failures map to distinct exit codes via
// [ExitCode].
package cmd

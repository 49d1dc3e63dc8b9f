// Package cli provides the command wiring for the yaml-compare tool.
//
// The cli/cmd subpackage holds the cobra root command and the comparison
// pipeline it drives.
package cli

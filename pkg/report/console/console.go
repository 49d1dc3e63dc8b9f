package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mitchellh/go-wordwrap"

	"github.com/parissa-gb/yaml-compare/pkg/diff"
	"github.com/parissa-gb/yaml-compare/pkg/utils/notify"
)

const (
	defaultValueWidth = 40
	minValueWidth     = 16
	maxValueWidth     = 60
	// fixedOverhead approximates the index and kind columns plus borders and
	// padding, leaving the rest of the terminal for path and value columns.
	fixedOverhead = 30
)

// Options tunes console rendering.
type Options struct {
	// Width is the terminal width in columns. Zero or negative selects a
	// conservative default.
	Width int
}

// Render writes the comparison result to w: header, record table (or a
// "no differences found" line), and the summary counts.
func Render(w io.Writer, result diff.Result, opts Options) {
	notify.Titlef(w, "🔍", "comparing %s vs %s", result.LeftLabel, result.RightLabel)

	if result.Empty() {
		notify.Successf(w, "no differences found")

		return
	}

	renderTable(w, result, valueWidth(opts.Width))

	summary := result.Summary
	notify.Infof(
		w,
		"%d difference(s): %d added, %d removed, %d changed, %d type changed",
		summary.Total(), summary.Added, summary.Removed, summary.Changed, summary.TypeChanged,
	)
}

func renderTable(w io.Writer, result diff.Result, width int) {
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers("#", "PATH", "KIND", result.LeftLabel, result.RightLabel)

	for _, record := range result.Records {
		tbl.Row(
			strconv.Itoa(record.Index),
			record.Path,
			record.Kind.String(),
			fitCell(record.Before, width),
			fitCell(record.After, width),
		)
	}

	fmt.Fprintln(w, tbl.Render())
}

// valueWidth derives the per-value column cap from the terminal width.
func valueWidth(terminalWidth int) int {
	if terminalWidth <= 0 {
		return defaultValueWidth
	}

	width := (terminalWidth - fixedOverhead) / 3
	if width < minValueWidth {
		return minValueWidth
	}

	if width > maxValueWidth {
		return maxValueWidth
	}

	return width
}

// fitCell wraps a value at word boundaries and hard-truncates any line that
// still exceeds the cap (compact JSON has no break opportunities).
func fitCell(value string, width int) string {
	if value == "" {
		return ""
	}

	wrapped := wordwrap.WrapString(value, uint(width))
	lines := strings.Split(wrapped, "\n")

	for i, line := range lines {
		lines[i] = truncate(line, width)
	}

	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}

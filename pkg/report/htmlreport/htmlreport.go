package htmlreport

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/parissa-gb/yaml-compare/pkg/diff"
)

// Theme selects the default report appearance. Presentation-only: it never
// affects diff semantics.
type Theme string

// Available report themes.
const (
	// Light is the default bright appearance.
	Light Theme = "light"
	// Night is the dark appearance.
	Night Theme = "night"
	// HighContrast maximizes readability with pure black on white.
	HighContrast Theme = "contrast"
)

var (
	// ErrWrite indicates the report file could not be written.
	ErrWrite = errors.New("write error")
	// ErrUnknownTheme indicates an unrecognized theme name.
	ErrUnknownTheme = errors.New("unknown theme")
)

// ParseTheme resolves a theme name from the CLI. An empty name selects Light.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "", "light":
		return Light, nil
	case "night", "dark":
		return Night, nil
	case "contrast", "high-contrast":
		return HighContrast, nil
	default:
		return "", fmt.Errorf("%w: %q (expected light, night, or contrast)", ErrUnknownTheme, name)
	}
}

// Options tunes report rendering.
type Options struct {
	// Theme is the default theme applied before the user toggles another.
	Theme Theme
	// GeneratedAt stamps the report header. The zero time omits the stamp,
	// keeping the output fully deterministic.
	GeneratedAt time.Time
	// ConfigKey and StartPath describe the extraction context shown in the
	// report header. Either may be empty.
	ConfigKey string
	StartPath string
}

// page is the root template context.
type page struct {
	LeftLabel   string
	RightLabel  string
	ConfigKey   string
	StartPath   string
	Theme       Theme
	GeneratedAt string
	Summary     diff.Summary
	Total       int
	Sections    []section
}

// section is one collapsible group of records sharing a change kind.
type section struct {
	Class      string
	Icon       string
	Label      string
	ShowBefore bool
	ShowAfter  bool
	Records    []diff.Record
}

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

// Render produces the full report document for a comparison result.
func Render(result diff.Result, opts Options) ([]byte, error) {
	theme := opts.Theme
	if theme == "" {
		theme = Light
	}

	data := page{
		LeftLabel:  result.LeftLabel,
		RightLabel: result.RightLabel,
		ConfigKey:  opts.ConfigKey,
		StartPath:  opts.StartPath,
		Theme:      theme,
		Summary:    result.Summary,
		Total:      result.Summary.Total(),
		Sections:   buildSections(result),
	}

	if !opts.GeneratedAt.IsZero() {
		data.GeneratedAt = opts.GeneratedAt.UTC().Format(time.RFC3339)
	}

	var buf bytes.Buffer

	err := reportTemplate.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return buf.Bytes(), nil
}

// Write renders the report and writes it in a single operation, so a failed
// render never leaves a partial file behind.
func Write(path string, result diff.Result, opts Options) error {
	content, err := Render(result, opts)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, content, 0o644) //nolint:gosec // reports are meant to be shared
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return nil
}

// buildSections groups records by change kind. Section order is fixed:
// changed values, entries only in the left source, entries only in the right
// source, type changes. Records keep their global index.
func buildSections(result diff.Result) []section {
	byKind := map[diff.Kind][]diff.Record{}
	for _, record := range result.Records {
		byKind[record.Kind] = append(byKind[record.Kind], record)
	}

	candidates := []section{
		{
			Class:      "changed",
			Icon:       "🔄",
			Label:      "Changed values",
			ShowBefore: true,
			ShowAfter:  true,
			Records:    byKind[diff.Changed],
		},
		{
			Class:      "removed",
			Icon:       "📤",
			Label:      "Only in " + result.LeftLabel,
			ShowBefore: true,
			Records:    byKind[diff.Removed],
		},
		{
			Class:      "added",
			Icon:       "📥",
			Label:      "Only in " + result.RightLabel,
			ShowAfter:  true,
			Records:    byKind[diff.Added],
		},
		{
			Class:      "typechanged",
			Icon:       "🔀",
			Label:      "Type changed",
			ShowBefore: true,
			ShowAfter:  true,
			Records:    byKind[diff.TypeChanged],
		},
	}

	sections := make([]section, 0, len(candidates))

	for _, candidate := range candidates {
		if len(candidate.Records) > 0 {
			sections = append(sections, candidate)
		}
	}

	return sections
}

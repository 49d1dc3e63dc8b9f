package diff

import (
	"sort"

	yamlv3 "gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/parissa-gb/yaml-compare/pkg/yamldoc"
)

// classify converts raw changes into the uniform record shape: display
// rendering for values, lexicographic path ordering, contiguous 1-based
// indices, and per-kind counts.
func classify(changes []change, leftLabel, rightLabel string) Result {
	records := make([]Record, 0, len(changes))

	var summary Summary

	for _, chg := range changes {
		records = append(records, Record{
			Path:   chg.path.String(),
			Kind:   chg.kind,
			Before: renderValue(chg.before),
			After:  renderValue(chg.after),
		})

		switch chg.kind {
		case Added:
			summary.Added++
		case Removed:
			summary.Removed++
		case Changed:
			summary.Changed++
		case TypeChanged:
			summary.TypeChanged++
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Path != records[j].Path {
			return records[i].Path < records[j].Path
		}

		return records[i].Kind < records[j].Kind
	})

	for i := range records {
		records[i].Index = i + 1
	}

	return Result{
		LeftLabel:  leftLabel,
		RightLabel: rightLabel,
		Records:    records,
		Summary:    summary,
	}
}

// renderValue produces the display form of a document value. Scalars use
// their canonical form; composites are rendered as compact JSON with sorted
// keys so the rendering is deterministic and single-line.
func renderValue(doc *yamldoc.Document) string {
	if doc == nil {
		return ""
	}

	if doc.IsScalar() {
		return doc.ScalarString()
	}

	raw, err := yamlv3.Marshal(doc.AsInterface())
	if err != nil {
		return doc.Kind.String()
	}

	compact, err := sigsyaml.YAMLToJSON(raw)
	if err != nil {
		return doc.Kind.String()
	}

	return string(compact)
}

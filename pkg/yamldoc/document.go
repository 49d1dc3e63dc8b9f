package yamldoc

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Kind identifies the node variant held by a Document.
type Kind int

// Document node kinds.
const (
	// Null represents an absent or explicit null value.
	Null Kind = iota
	// String represents a textual scalar.
	String
	// Number represents an integer or floating point scalar.
	Number
	// Boolean represents a true/false scalar.
	Boolean
	// Sequence represents an ordered list of documents.
	Sequence
	// Mapping represents a set of uniquely keyed child documents.
	Mapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Document is a normalized YAML tree node. Exactly one of Mapping, Sequence,
// or Value is meaningful, selected by Kind. Mapping keys are unique within a
// node; sequence order is semantically significant and preserved.
type Document struct {
	// Kind selects the node variant.
	Kind Kind
	// Mapping holds the children of a mapping node, keyed by string.
	Mapping map[string]Document
	// Sequence holds the children of a sequence node in source order.
	Sequence []Document
	// Value holds the decoded scalar value (string, int64, float64, or bool).
	Value any
}

// IsScalar reports whether the document is a leaf value.
func (d Document) IsScalar() bool {
	return d.Kind != Mapping && d.Kind != Sequence
}

// Keys returns the mapping keys in sorted order. Returns nil for non-mappings.
func (d Document) Keys() []string {
	if d.Kind != Mapping {
		return nil
	}

	keys := make([]string, 0, len(d.Mapping))
	for key := range d.Mapping {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// ScalarString returns the canonical textual form of a scalar document.
// Equivalent scalars render identically regardless of their source notation.
func (d Document) ScalarString() string {
	switch d.Kind {
	case Null:
		return "null"
	case Boolean:
		if d.Value == true {
			return "true"
		}

		return "false"
	case Number:
		return formatNumber(d.Value)
	case String:
		str, _ := d.Value.(string)

		return str
	default:
		return ""
	}
}

// AsInterface converts the document back into plain Go values suitable for
// serialization (map[string]any, []any, and scalars).
func (d Document) AsInterface() any {
	switch d.Kind {
	case Mapping:
		out := make(map[string]any, len(d.Mapping))
		for key, child := range d.Mapping {
			out[key] = child.AsInterface()
		}

		return out
	case Sequence:
		out := make([]any, len(d.Sequence))
		for i, child := range d.Sequence {
			out[i] = child.AsInterface()
		}

		return out
	default:
		return d.Value
	}
}

// fromValue normalizes a decoded YAML value into a Document.
func fromValue(value any) Document {
	switch val := value.(type) {
	case nil:
		return Document{Kind: Null}
	case bool:
		return Document{Kind: Boolean, Value: val}
	case int:
		return Document{Kind: Number, Value: int64(val)}
	case int64:
		return Document{Kind: Number, Value: val}
	case uint64:
		return Document{Kind: Number, Value: val}
	case float64:
		return Document{Kind: Number, Value: val}
	case string:
		return Document{Kind: String, Value: val}
	case time.Time:
		// yaml.v3 resolves timestamp-shaped scalars; keep the source notation
		// comparable by treating them as strings.
		return Document{Kind: String, Value: val.Format(time.RFC3339)}
	case []any:
		seq := make([]Document, len(val))
		for i, item := range val {
			seq[i] = fromValue(item)
		}

		return Document{Kind: Sequence, Sequence: seq}
	case map[string]any:
		mapping := make(map[string]Document, len(val))
		for key, item := range val {
			mapping[key] = fromValue(item)
		}

		return Document{Kind: Mapping, Mapping: mapping}
	case map[any]any:
		mapping := make(map[string]Document, len(val))
		for key, item := range val {
			mapping[scalarKey(key)] = fromValue(item)
		}

		return Document{Kind: Mapping, Mapping: mapping}
	default:
		return Document{Kind: String, Value: stringify(val)}
	}
}

// scalarKey renders a non-string mapping key canonically.
func scalarKey(key any) string {
	return fromValue(key).ScalarString()
}

func stringify(value any) string {
	if str, ok := value.(string); ok {
		return str
	}

	return fmt.Sprint(value)
}

func formatNumber(value any) string {
	switch num := value.(type) {
	case int64:
		return strconv.FormatInt(num, 10)
	case uint64:
		return strconv.FormatUint(num, 10)
	case float64:
		return strconv.FormatFloat(num, 'g', -1, 64)
	default:
		return ""
	}
}

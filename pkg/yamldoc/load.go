package yamldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const configMapKind = "ConfigMap"

// LoadOptions narrows which part of a file is loaded.
type LoadOptions struct {
	// ConfigKey names a ConfigMap data key whose value is parsed as embedded
	// YAML. Empty means no key extraction.
	ConfigKey string
	// StartPath is a dot-notation path descended after key extraction.
	// Empty means the whole tree.
	StartPath string
}

// Load reads a YAML file and returns the normalized document selected by the
// given options.
func Load(path string, opts LoadOptions) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w in %s", err, path)
	}

	if opts.ConfigKey != "" {
		doc, err = extractConfigKey(doc, opts.ConfigKey)
		if err != nil {
			return Document{}, fmt.Errorf("%w in %s", err, path)
		}
	}

	doc, err = Navigate(doc, opts.StartPath)
	if err != nil {
		return Document{}, fmt.Errorf("%w in %s", err, path)
	}

	return doc, nil
}

// Parse decodes YAML content into a normalized document. Multi-document
// streams are supported: if any document is a ConfigMap its data mapping is
// selected, otherwise the first non-empty document wins.
func Parse(content []byte) (Document, error) {
	docs, err := decodeAll(content)
	if err != nil {
		return Document{}, err
	}

	if len(docs) == 0 {
		return Document{Kind: Null}, nil
	}

	for _, doc := range docs {
		if data, ok := configMapData(doc); ok {
			return data, nil
		}
	}

	return docs[0], nil
}

// Navigate descends a dot-notation path through nested mappings.
func Navigate(doc Document, path string) (Document, error) {
	if path == "" {
		return doc, nil
	}

	current := doc
	for _, segment := range strings.Split(path, ".") {
		if current.Kind != Mapping {
			return Document{}, fmt.Errorf(
				"%w: segment %q of %q is not reachable (parent is %s)",
				ErrPathNotFound, segment, path, current.Kind,
			)
		}

		child, ok := current.Mapping[segment]
		if !ok {
			return Document{}, fmt.Errorf(
				"%w: segment %q of %q", ErrPathNotFound, segment, path,
			)
		}

		current = child
	}

	return current, nil
}

func decodeAll(content []byte) ([]Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))

	var docs []Document

	for {
		var value any

		err := decoder.Decode(&value)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		docs = append(docs, fromValue(value))
	}

	return docs, nil
}

// configMapData returns the data mapping of a ConfigMap document.
func configMapData(doc Document) (Document, bool) {
	if doc.Kind != Mapping {
		return Document{}, false
	}

	kind, ok := doc.Mapping["kind"]
	if !ok || kind.Kind != String || kind.Value != configMapKind {
		return Document{}, false
	}

	data, ok := doc.Mapping["data"]
	if !ok || data.Kind != Mapping {
		return Document{}, false
	}

	return data, true
}

// extractConfigKey resolves a named data key against the loaded root. The
// root may be the data mapping itself (ConfigMap documents) or a mapping that
// carries a nested data mapping. String values are parsed as embedded YAML,
// falling back to the plain string when they do not parse.
func extractConfigKey(doc Document, key string) (Document, error) {
	if doc.Kind != Mapping {
		return Document{}, fmt.Errorf(
			"%w: %q (root is %s, not a mapping)", ErrKeyNotFound, key, doc.Kind,
		)
	}

	root := doc
	if data, ok := doc.Mapping["data"]; ok && data.Kind == Mapping {
		root = data
	}

	value, ok := root.Mapping[key]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	if value.Kind != String {
		return value, nil
	}

	text, _ := value.Value.(string)

	embedded, err := decodeAll([]byte(text))
	if err != nil || len(embedded) == 0 || embedded[0].Kind == Null {
		return value, nil
	}

	return embedded[0], nil
}

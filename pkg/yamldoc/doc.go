// Package yamldoc loads YAML files into normalized document trees.
//
// A [Document] is a tagged-variant tree of mappings, sequences, and scalars.
// Loading normalizes away surface formatting (key order, quoting, flow vs
// block style) so that two documents compare equal whenever the values they
// represent are equal.
//
// The loader understands the Kubernetes ConfigMap convention: a document with
// kind ConfigMap holds stringified YAML under its data mapping, and a named
// data key can be extracted and parsed as embedded YAML. A dot-notation start
// path can further narrow the loaded tree to a nested mapping.
package yamldoc

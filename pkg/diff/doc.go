// Package diff computes structural differences between normalized YAML
// documents and flattens them into a stable, addressable list of records.
//
// Mappings are compared by key (order-insensitive) and sequences by index
// (order-sensitive). Records are ordered by path, lexicographically ascending,
// and numbered from 1; the same numbering is shared by every presenter.
package diff

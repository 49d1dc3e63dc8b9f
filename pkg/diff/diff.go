package diff

import (
	"github.com/parissa-gb/yaml-compare/pkg/yamldoc"
)

// change is a raw difference produced by the tree walk, before display
// rendering and ordering.
type change struct {
	path   path
	kind   Kind
	before *yamldoc.Document
	after  *yamldoc.Document
}

// Compare computes the structural differences between two documents and
// returns the classified, deterministically ordered result.
func Compare(left, right yamldoc.Document, leftLabel, rightLabel string) Result {
	var changes []change

	walk(nil, left, right, &changes)

	return classify(changes, leftLabel, rightLabel)
}

// walk records every divergence between the two subtrees rooted at p.
// Traversal is over sorted mapping keys, so emission order never depends on
// map iteration order.
func walk(p path, left, right yamldoc.Document, changes *[]change) {
	if structure(left) != structure(right) {
		l, r := left, right
		*changes = append(*changes, change{path: p, kind: TypeChanged, before: &l, after: &r})

		return
	}

	switch {
	case left.Kind == yamldoc.Mapping:
		walkMappings(p, left, right, changes)
	case left.Kind == yamldoc.Sequence:
		walkSequences(p, left, right, changes)
	default:
		if !scalarsEqual(left, right) {
			l, r := left, right
			*changes = append(*changes, change{path: p, kind: Changed, before: &l, after: &r})
		}
	}
}

func walkMappings(p path, left, right yamldoc.Document, changes *[]change) {
	for _, key := range left.Keys() {
		leftChild := left.Mapping[key]

		rightChild, ok := right.Mapping[key]
		if !ok {
			l := leftChild
			*changes = append(*changes, change{path: p.child(key), kind: Removed, before: &l})

			continue
		}

		walk(p.child(key), leftChild, rightChild, changes)
	}

	for _, key := range right.Keys() {
		if _, ok := left.Mapping[key]; ok {
			continue
		}

		r := right.Mapping[key]
		*changes = append(*changes, change{path: p.child(key), kind: Added, after: &r})
	}
}

// walkSequences compares sequences index by index. No alignment heuristics:
// an inserted element shifts every later index into a reported change.
func walkSequences(p path, left, right yamldoc.Document, changes *[]change) {
	shared := len(left.Sequence)
	if len(right.Sequence) < shared {
		shared = len(right.Sequence)
	}

	for i := 0; i < shared; i++ {
		walk(p.element(i), left.Sequence[i], right.Sequence[i], changes)
	}

	for i := shared; i < len(left.Sequence); i++ {
		l := left.Sequence[i]
		*changes = append(*changes, change{path: p.element(i), kind: Removed, before: &l})
	}

	for i := shared; i < len(right.Sequence); i++ {
		r := right.Sequence[i]
		*changes = append(*changes, change{path: p.element(i), kind: Added, after: &r})
	}
}

// structure reduces a document kind to its comparison family. Scalar kinds
// collapse into one family so that scalar type drift is reported as a value
// change, not a structural one.
func structure(doc yamldoc.Document) int {
	switch doc.Kind {
	case yamldoc.Mapping:
		return 2
	case yamldoc.Sequence:
		return 1
	default:
		return 0
	}
}

// scalarsEqual compares two scalar documents. Scalars of the same kind match
// on their canonical forms. Across kinds, string/number and string/boolean
// pairs match when the canonical forms agree, mirroring how loosely typed
// YAML values drift between quoted and unquoted notation.
func scalarsEqual(left, right yamldoc.Document) bool {
	if left.Kind == right.Kind {
		return left.ScalarString() == right.ScalarString()
	}

	if coercible(left.Kind, right.Kind) {
		return left.ScalarString() == right.ScalarString()
	}

	return false
}

func coercible(a, b yamldoc.Kind) bool {
	pair := func(x, y yamldoc.Kind) bool {
		return (a == x && b == y) || (a == y && b == x)
	}

	return pair(yamldoc.String, yamldoc.Number) || pair(yamldoc.String, yamldoc.Boolean)
}

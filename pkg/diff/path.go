package diff

import (
	"strconv"
	"strings"
)

// segment is one step of a node address: either a mapping key or a sequence
// index.
type segment struct {
	key   string
	index int
	isKey bool
}

// path addresses a node in a document tree.
type path []segment

func (p path) child(key string) path {
	next := make(path, len(p), len(p)+1)
	copy(next, p)

	return append(next, segment{key: key, isKey: true})
}

func (p path) element(index int) path {
	next := make(path, len(p), len(p)+1)
	copy(next, p)

	return append(next, segment{index: index})
}

// String renders the path with keys joined by dots and sequence indices as
// [n]. Keys that would make the rendering ambiguous are quoted, so distinct
// nodes always produce distinct path strings.
func (p path) String() string {
	if len(p) == 0 {
		return "."
	}

	var builder strings.Builder

	for i, seg := range p {
		if !seg.isKey {
			builder.WriteString("[")
			builder.WriteString(strconv.Itoa(seg.index))
			builder.WriteString("]")

			continue
		}

		if i > 0 {
			builder.WriteString(".")
		}

		builder.WriteString(renderKey(seg.key))
	}

	return builder.String()
}

func renderKey(key string) string {
	if key == "" || strings.ContainsAny(key, ".[]\"") {
		return strconv.Quote(key)
	}

	return key
}

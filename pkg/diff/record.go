package diff

// Kind classifies a single difference.
type Kind int

const (
	// Added marks a path that exists only in the right document.
	Added Kind = iota
	// Removed marks a path that exists only in the left document.
	Removed
	// Changed marks a path whose scalar value differs between the documents.
	Changed
	// TypeChanged marks a path whose structural kind differs (for example a
	// mapping on one side and a scalar on the other).
	TypeChanged
)

// String returns the human-readable label of the kind.
func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	case TypeChanged:
		return "type changed"
	default:
		return "unknown"
	}
}

// Record is one reported difference at a specific path.
type Record struct {
	// Index is the 1-based position in the deterministic record ordering.
	Index int
	// Path addresses the diverging node: mapping keys joined by dots,
	// sequence indices as [n].
	Path string
	// Kind classifies the difference.
	Kind Kind
	// Before is the display rendering of the left-hand value, empty for Added.
	Before string
	// After is the display rendering of the right-hand value, empty for Removed.
	After string
}

// Summary holds per-kind record counts.
type Summary struct {
	Added       int
	Removed     int
	Changed     int
	TypeChanged int
}

// Total returns the number of records across all kinds.
func (s Summary) Total() int {
	return s.Added + s.Removed + s.Changed + s.TypeChanged
}

// Result is the immutable outcome of one comparison, consumed by all
// presenters.
type Result struct {
	// LeftLabel and RightLabel identify the compared sources.
	LeftLabel  string
	RightLabel string
	// Records holds the ordered differences. Empty when the documents are
	// semantically equal.
	Records []Record
	// Summary holds the per-kind counts.
	Summary Summary
}

// Empty reports whether the comparison found no differences.
func (r Result) Empty() bool {
	return len(r.Records) == 0
}

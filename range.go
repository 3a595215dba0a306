package moveslice

// A Bound is one endpoint of a Range. It is either unbounded or carries an
// index that is part of the selection (Included) or just outside of it
// (Excluded).
type Bound struct {
	kind  boundKind
	index int
}

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Included returns a bound whose index belongs to the selection.
func Included(i int) Bound {
	return Bound{kind: included, index: i}
}

// Excluded returns a bound whose index is just outside the selection.
func Excluded(i int) Bound {
	return Bound{kind: excluded, index: i}
}

// Unbounded returns a bound that resolves to the corresponding edge of the
// sequence: 0 for a start bound, the sequence's length for an end bound.
func Unbounded() Bound {
	return Bound{kind: unbounded}
}

// A Range selects a chunk of a sequence by two bounds, without knowing the
// sequence's length. Resolve turns it into a concrete index pair.
type Range struct {
	Start Bound
	End   Bound
}

// NewRange returns the half-open range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: Included(start), End: Excluded(end)}
}

// NewInclusiveRange returns the closed range [start, end].
func NewInclusiveRange(start, end int) Range {
	return Range{Start: Included(start), End: Included(end)}
}

// RangeFrom returns the range [start, <length>).
func RangeFrom(start int) Range {
	return Range{Start: Included(start), End: Unbounded()}
}

// RangeTo returns the range [0, end).
func RangeTo(end int) Range {
	return Range{Start: Unbounded(), End: Excluded(end)}
}

// FullRange returns the range covering the whole sequence.
func FullRange() Range {
	return Range{Start: Unbounded(), End: Unbounded()}
}

// Resolve maps the range to a concrete half-open [start, end) pair for a
// sequence of the given length: an unbounded start resolves to 0, an
// unbounded end to length, an included end e to e+1 and an excluded start s
// to s+1. Resolve performs no validation; the relocation entry points check
// the resolved pair against the sequence.
func (r Range) Resolve(length int) (start, end int) {
	switch r.Start.kind {
	case unbounded:
		start = 0
	case included:
		start = r.Start.index
	case excluded:
		start = r.Start.index + 1
	}

	switch r.End.kind {
	case unbounded:
		end = length
	case included:
		end = r.End.index + 1
	case excluded:
		end = r.End.index
	}

	return start, end
}

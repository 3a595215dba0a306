package moveslice

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBounds is returned (wrapped) when the requested chunk does not
	// fit the slice, whatever the destination.
	ErrInvalidBounds = errors.New("moveslice: chunk bounds out of range")

	// ErrOutOfBoundsMove is returned (wrapped) when the chunk is valid but the
	// destination would push part of it outside the slice.
	ErrOutOfBoundsMove = errors.New("moveslice: destination out of range")
)

// An InvalidBoundsError reports a chunk whose bounds do not fit the sequence.
// It unwraps to ErrInvalidBounds.
type InvalidBoundsError struct {
	Len   int //length of the sequence
	Start int
	End   int
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("moveslice: chunk bounds [%d,%d) out of range for length %d", e.Start, e.End, e.Len)
}

func (e *InvalidBoundsError) Unwrap() error {
	return ErrInvalidBounds
}

// An OutOfBoundsMoveError reports a valid chunk whose destination range
// [Start, End) falls partly or fully outside the sequence.
// It unwraps to ErrOutOfBoundsMove.
type OutOfBoundsMoveError struct {
	Len   int //length of the sequence
	Start int //destination of the chunk's first element
	End   int //Start + chunk size, saturated at the int limit
}

func (e *OutOfBoundsMoveError) Error() string {
	return fmt.Sprintf("moveslice: destination [%d,%d) out of range for length %d", e.Start, e.End, e.Len)
}

func (e *OutOfBoundsMoveError) Unwrap() error {
	return ErrOutOfBoundsMove
}

// checkBounds validates a relocation before any element is touched: first the
// chunk against the sequence, then the destination range against the sequence.
// A nil return guarantees 0 <= start <= end <= length and
// 0 <= to <= to+(end-start) <= length.
func checkBounds(length, start, end, to int) error {
	if start < 0 || start > end || end > length {
		return &InvalidBoundsError{Len: length, Start: start, End: end}
	}
	//the first check established end-start <= length, so this subtraction
	//cannot overflow, unlike to+(end-start) for a destination near the int
	//limit.
	if to < 0 || to > length-(end-start) {
		destEnd := to + (end - start)
		if destEnd < to {
			destEnd = math.MaxInt
		}
		return &OutOfBoundsMoveError{Len: length, Start: to, End: destEnd}
	}
	return nil
}

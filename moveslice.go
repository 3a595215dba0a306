// Package moveslice relocates a contiguous chunk of a slice to another
// position of the same slice.
//
// The chunk is the half-open index range [start, end); the destination is the
// index its first element should land on. Relocation happens entirely in
// place. The chunk keeps the relative order of its elements, and so do the
// elements it travels past, which slide over to fill the vacated space.
// Everything outside the span bridging the two positions is left untouched.
// The heavy lifting is a single cyclic rotation of that span (three in-place
// reversals), so a call runs in time linear in the span's length and
// allocates nothing.
//
//	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
//	moveslice.MustMove(arr, 3, 6, 1)
//	// arr is now [1, 4, 5, 6, 2, 3, 7, 8, 9]
//
// Move and MoveRange report bad input as an *InvalidBoundsError (the chunk
// itself does not fit the slice) or an *OutOfBoundsMoveError (the chunk fits
// but the destination would push it past the end); both match the
// ErrInvalidBounds / ErrOutOfBoundsMove sentinels with errors.Is. The Must
// variants panic with the same error values instead. A failed call leaves the
// slice exactly as it was.
//
// MoveData and MustMoveData relocate elements of any indexed collection that
// implements Interface, for callers whose data does not live in a slice.
package moveslice

// Move relocates the chunk s[start:end] so that its first element ends up at
// index to, shifting the elements in between to close the gap. The chunk and
// the shifted elements both keep their relative order. Move mutates s in
// place and performs no allocation.
//
// Move returns an *InvalidBoundsError if the chunk bounds do not satisfy
// 0 <= start <= end <= len(s), and an *OutOfBoundsMoveError if the
// destination range [to, to+(end-start)) does not fit the slice. On error s
// is left unchanged. A zero-width chunk or a destination equal to start is a
// no-op.
func Move[S ~[]E, E any](s S, start, end, to int) error {
	if err := checkBounds(len(s), start, end, to); err != nil {
		return err
	}

	size := end - start
	if size == 0 || to == start {
		return nil
	}

	if to > start {
		// Forward move: the chunk travels right. Rotating the span from the
		// chunk's old start to the destination's end left by the chunk size
		// parks the chunk at the span's back and slides the intervening
		// elements down to fill the gap.
		rotateLeft(s[start:to+size], size)
	} else {
		// Backward move: the chunk sits at the back of the span from the
		// destination to the chunk's old end. Rotating right by the chunk
		// size brings it to the front.
		rotateRight(s[to:end], size)
	}

	return nil
}

// MoveRange is Move with the chunk given as a Range, resolved against len(s).
func MoveRange[S ~[]E, E any](s S, r Range, to int) error {
	start, end := r.Resolve(len(s))
	return Move(s, start, end, to)
}

// MustMove is like Move but panics with the error instead of returning it.
// Use it where out-of-range input is a programming error.
func MustMove[S ~[]E, E any](s S, start, end, to int) {
	if err := Move(s, start, end, to); err != nil {
		panic(err)
	}
}

// MustMoveRange is like MoveRange but panics with the error instead of
// returning it.
func MustMoveRange[S ~[]E, E any](s S, r Range, to int) {
	if err := MoveRange(s, r, to); err != nil {
		panic(err)
	}
}

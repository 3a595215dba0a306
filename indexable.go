package moveslice

// Interface is the minimal view of an indexed collection needed to relocate a
// chunk of it: a length and the ability to swap two elements. It is
// sort.Interface without Less, so any sortable collection already satisfies
// it.
type Interface interface {
	// Len is the number of elements in the collection.
	Len() int
	// Swap exchanges the elements with indexes i and j.
	Swap(i, j int)
}

// MoveData relocates the chunk [start, end) of data so that its first
// element ends up at index to, like Move does for a slice. Elements are moved
// exclusively through data.Swap, so the collection's own storage is mutated
// in place.
//
// The bounds rules and errors are the same as Move's: an
// *InvalidBoundsError for a chunk that does not fit the collection, an
// *OutOfBoundsMoveError for a destination that would push it past the end,
// and no Swap call at all on error.
func MoveData(data Interface, start, end, to int) error {
	if err := checkBounds(data.Len(), start, end, to); err != nil {
		return err
	}

	size := end - start
	if size == 0 || to == start {
		return nil
	}

	if to > start {
		rotateLeftData(data, start, to+size, size)
	} else {
		rotateRightData(data, to, end, size)
	}

	return nil
}

// MustMoveData is like MoveData but panics with the error instead of
// returning it.
func MustMoveData(data Interface, start, end, to int) {
	if err := MoveData(data, start, end, to); err != nil {
		panic(err)
	}
}

// reverseData reverses the window [i, j) of data by swapping pairs inward
// from both ends.
func reverseData(data Interface, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		data.Swap(i, j)
	}
}

// rotateLeftData cyclically shifts the window [i, j) of data left by n
// positions with the same three reversals as rotateLeft. n must be in
// [0, j-i].
func rotateLeftData(data Interface, i, j, n int) {
	if n == 0 || n == j-i {
		return
	}
	reverseData(data, i, i+n)
	reverseData(data, i+n, j)
	reverseData(data, i, j)
}

// rotateRightData cyclically shifts the window [i, j) of data right by n
// positions. n must be in [0, j-i].
func rotateRightData(data Interface, i, j, n int) {
	rotateLeftData(data, i, j, (j-i)-n)
}

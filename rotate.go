package moveslice

// reverse reverses s in place.
func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// rotateLeft cyclically shifts s left by n positions, in place, using the
// three-reversal technique: O(len(s)) swaps, no auxiliary buffer. The first n
// elements end up at the back of s, everything else moves n positions to the
// front. n must be in [0, len(s)]; both edges are no-ops.
func rotateLeft[E any](s []E, n int) {
	if n == 0 || n == len(s) {
		return
	}
	reverse(s[:n])
	reverse(s[n:])
	reverse(s)
}

// rotateRight cyclically shifts s right by n positions, in place. The last n
// elements end up at the front of s. n must be in [0, len(s)].
func rotateRight[E any](s []E, n int) {
	rotateLeft(s, len(s)-n)
}

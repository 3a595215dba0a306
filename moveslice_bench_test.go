package moveslice

import (
	"sort"
	"testing"
)

func BenchmarkMove(b *testing.B) {
	s := make([]int, 100_000)
	for i := range s {
		s[i] = i
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		//move the first quarter to the back, then bring it back to the front
		if err := Move(s, 0, 25_000, 75_000); err != nil {
			b.Fatal(err)
		}
		if err := Move(s, 75_000, 100_000, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMoveData(b *testing.B) {
	s := make([]int, 100_000)
	for i := range s {
		s[i] = i
	}
	data := sort.IntSlice(s)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := MoveData(data, 0, 25_000, 75_000); err != nil {
			b.Fatal(err)
		}
		if err := MoveData(data, 75_000, 100_000, 0); err != nil {
			b.Fatal(err)
		}
	}
}

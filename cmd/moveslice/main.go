package main

import (
	"fmt"
	"os"

	"moveslice"
)

// Small demonstration: relocate the chunk 2..5 of a sequence so that it
// starts at index 4.
func main() {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	fmt.Println(arr)

	if err := moveslice.MoveRange(arr, moveslice.NewRange(2, 5), 4); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(arr)
}

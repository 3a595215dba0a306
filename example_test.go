package moveslice

import (
	"fmt"
	"sort"
)

func Example() {

	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	MustMove(arr, 3, 6, 1)
	fmt.Println(arr)

	MustMove(arr, 3, 6, 6)
	fmt.Println(arr)

	// Output:
	// [1 4 5 6 2 3 7 8 9]
	// [1 4 5 7 8 9 6 2 3]
}

func ExampleMove() {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	if err := Move(arr, 3, 6, 6); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(arr)

	// Output:
	// [1 2 3 7 8 9 4 5 6]
}

func ExampleMove_outOfRange() {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	err := Move(arr, 3, 6, 7)
	fmt.Println(err)
	fmt.Println(arr)

	// Output:
	// moveslice: destination [7,10) out of range for length 9
	// [1 2 3 4 5 6 7 8 9]
}

func ExampleMustMove() {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	//moving a chunk onto its own position changes nothing
	MustMove(arr, 0, 3, 0)
	fmt.Println(arr)

	// Output:
	// [1 2 3 4 5 6 7 8 9]
}

func ExampleMoveRange() {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	MustMoveRange(arr, NewRange(2, 5), 4)
	fmt.Println(arr)

	// Output:
	// [1 2 6 7 3 4 5 8 9]
}

func ExampleMoveData() {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	MustMoveData(sort.IntSlice(arr), 6, 9, 0)
	fmt.Println(arr)

	// Output:
	// [7 8 9 1 2 3 4 5 6]
}

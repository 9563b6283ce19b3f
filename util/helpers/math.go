package helpers

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](numbers ...T) T {
	var min T = numbers[0]
	for _, n := range numbers {
		if n < min {
			min = n
		}
	}
	return min
}

func Max[T constraints.Ordered](numbers ...T) T {
	var max T = numbers[0]
	for _, n := range numbers {
		if n > max {
			max = n
		}
	}
	return max
}

// AlignUp rounds n up to a multiple of align, which must be a power of two.
func AlignUp[T constraints.Unsigned](n, align T) T {
	return (n + align - 1) &^ (align - 1)
}

func IsPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2Ceil returns the smallest k such that 1<<k >= n.
func Log2Ceil[T constraints.Unsigned](n T) int {
	k := 0
	for T(1)<<k < n {
		k++
	}
	return k
}

/*
Package aoc collects small functional helpers shared by the daily puzzle
solvers of this module.

Every puzzle of the Advent of Code 2021 series lives in its own package
below days/ and is compiled into its own executable below cmd/. The helpers
in this package are the glue between parsing and computation: folding,
summing, windowing and counting over slices, and collecting an exact number
of items from a slice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package aoc

import (
	"cmp"
	"fmt"
)

// Number is a constraint for types which support + and *.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Map returns a new slice with f applied to every element of xs.
func Map[A, B any](xs []A, f func(A) B) []B {
	ys := make([]B, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// Fold reduces xs from left to right, starting with init.
func Fold[A, B any](xs []A, init B, f func(B, A) B) B {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Sum adds up all elements of xs. The sum of an empty slice is 0.
func Sum[T Number](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

// Product multiplies all elements of xs. The product of an empty slice is 1.
func Product[T Number](xs []T) T {
	var p T = 1
	for _, x := range xs {
		p *= x
	}
	return p
}

// Windows returns all contiguous sub-slices of length n, in order.
// The windows share memory with xs.
func Windows[T any](xs []T, n int) [][]T {
	if n <= 0 || n > len(xs) {
		return nil
	}
	w := make([][]T, 0, len(xs)-n+1)
	for i := 0; i+n <= len(xs); i++ {
		w = append(w, xs[i:i+n])
	}
	return w
}

// Counts maps every distinct element of xs to the number of its occurrences.
func Counts[K comparable](xs []K) map[K]int {
	m := make(map[K]int, len(xs))
	for _, x := range xs {
		m[x]++
	}
	return m
}

// MinMax returns the smallest and the largest element of xs.
// ok is false for an empty slice.
func MinMax[T cmp.Ordered](xs []T) (lo, hi T, ok bool) {
	if len(xs) == 0 {
		return lo, hi, false
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo, hi = min(lo, x), max(hi, x)
	}
	return lo, hi, true
}

// Exactly checks that xs holds exactly n items and returns xs unchanged.
// Too few or too many items result in an error.
func Exactly[T any](n int, xs []T) ([]T, error) {
	if len(xs) > n {
		return nil, fmt.Errorf("iterator produces items over the target size %d", n)
	}
	if len(xs) < n {
		return nil, fmt.Errorf("iterator produces %d items which is smaller than the target size %d",
			len(xs), n)
	}
	return xs, nil
}

// Abs returns the absolute value of x.
func Abs[T ~int | ~int64 | ~int32](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or +1, depending on the sign of x.
func Sign[T ~int | ~int64 | ~int32](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD[T ~int | ~int64](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

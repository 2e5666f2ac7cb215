// Package segtree defines core types for the segment tree: the Monoid that
// drives folding, the Number constraint and the stock Sum, Min and Max monoids.
package segtree

import (
	"errors"
	"math"
)

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidRange indicates l < 0, r >= Len() or l > r.
	ErrInvalidRange = errors.New("segtree: invalid range")
)

// Monoid is an associative Combine with its Identity element.
type Monoid[T any] struct {
	Combine  func(a, b T) T
	Identity T
}

// Number is any type Sum can aggregate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds values; the identity is 0.
func Sum[T Number]() Monoid[T] {
	return Monoid[T]{Combine: func(a, b T) T { return a + b }}
}

// Min keeps the smaller value; the identity is +Inf.
func Min() Monoid[float64] {
	return Monoid[float64]{Combine: math.Min, Identity: math.Inf(1)}
}

// Max keeps the larger value; the identity is -Inf.
func Max() Monoid[float64] {
	return Monoid[float64]{Combine: math.Max, Identity: math.Inf(-1)}
}

// Package segtree implements a fixed-size segment tree over a monoid.
//
// The tree is implicit: cell 1 is the root, cell c has children 2c and 2c+1,
// and 4n cells always suffice for n leaves. Each internal cell holds
// Combine(left, right) of its children, so Query(l, r) folds O(log n) cells
// and Update(i, v) rewrites one root-to-leaf chain.
//
// Sum, Min and Max monoids are provided; any associative Combine with an
// identity element works. Combine need not be commutative: results always
// fold left to right.
//
// Out-of-range indices are errors (ErrIndexOutOfRange, ErrInvalidRange);
// nothing is clamped or silently ignored.
package segtree

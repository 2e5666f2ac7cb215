// Package traffic simulates time-varying congestion on a core.Graph and keeps
// range aggregates over the current edge weights.
//
// An Index numbers every edge of the graph into a dense slot: ascending
// source id, then insertion order within a source (the order of
// core.Graph.AllEdges). A segment tree over the slots answers corridor
// loads, the summed current weight of a contiguous slot range, in O(log E).
//
// A Simulator drives the weights. For tick t each slot s gets
//
//	w = base * (1 + amplitude * noise(s*scale, t*scale))
//
// clamped at 0, where base is the weight captured when the Index was built
// and noise is seeded OpenSimplex in [-1, 1]. Steps are absolute, not
// cumulative: the same tick always produces the same weights.
//
// Adding edges invalidates an Index (ErrStaleIndex); rebuild it with NewIndex.
package traffic

// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvroute/core"
)

// AllPairs computes the all-pairs closure of g.
// See AllPairsContext.
func AllPairs(g *core.Graph) (*Result, error) {
	return AllPairsContext(context.Background(), g)
}

// AllPairsContext computes the all-pairs closure of g, checking ctx once per
// intermediate node.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ctx.Err() (wrapped) on cancellation.
//   - ErrNegativeCycle if any d(u,u) < 0 after the closure.
func AllPairsContext(ctx context.Context, g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Index nodes by ascending id.
	ids := g.NodeIDs()
	n := len(ids)
	res := &Result{
		ids:   ids,
		index: make(map[int]int, n),
		pred:  make([]int, n*n),
	}
	for i, id := range ids {
		res.index[id] = i
	}
	if n == 0 {
		return res, nil
	}

	// 2) Work on the dense backing slice directly.
	res.dist = mat.NewDense(n, n, nil)
	raw := res.dist.RawMatrix()
	data, stride := raw.Data, raw.Stride

	// 3) Init: 0 on the diagonal, +Inf elsewhere, no predecessors.
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.pred[i*n+j] = noPred
			if i == j {
				data[i*stride+j] = 0
				res.pred[i*n+j] = i
				continue
			}
			data[i*stride+j] = math.Inf(1)
		}
	}

	// 4) Direct edges; parallel edges keep the cheapest.
	for _, e := range g.AllEdges() {
		i, j = res.index[e.From], res.index[e.To]
		if e.Weight < data[i*stride+j] {
			data[i*stride+j] = e.Weight
			res.pred[i*n+j] = i
		}
	}

	// 5) Relax every pair through each intermediate k; +Inf legs are skipped.
	var ik, kj, cand float64
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("floydwarshall: interrupted at k=%d: %w", k, err)
		}
		for i = 0; i < n; i++ {
			ik = data[i*stride+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = data[k*stride+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[i*stride+j] {
					data[i*stride+j] = cand
					res.pred[i*n+j] = res.pred[k*n+j]
				}
			}
		}
	}

	// 6) A negative diagonal means a negative cycle through that node.
	for i = 0; i < n; i++ {
		if data[i*stride+i] < 0 {
			return nil, fmt.Errorf("%w: through node %d", ErrNegativeCycle, ids[i])
		}
	}

	return res, nil
}

// NodeIDs returns the ids covered by the result, ascending.
func (r *Result) NodeIDs() []int {
	out := make([]int, len(r.ids))
	copy(out, r.ids)

	return out
}

// Distance returns d(u,v); +Inf when v is unreachable from u.
// Unknown ids wrap core.ErrNodeNotFound.
func (r *Result) Distance(u, v int) (float64, error) {
	i, j, err := r.pair(u, v)
	if err != nil {
		return core.Infinity, err
	}

	return r.dist.At(i, j), nil
}

// Predecessor returns the node preceding v on the shortest u→v path.
// ok is false when no path exists or either id is unknown.
func (r *Result) Predecessor(u, v int) (int, bool) {
	i, j, err := r.pair(u, v)
	if err != nil {
		return 0, false
	}
	p := r.pred[i*len(r.ids)+j]
	if p == noPred {
		return 0, false
	}

	return r.ids[p], true
}

// Path rebuilds the shortest u→v path from the predecessor table.
// It returns an empty path when v is unreachable from u.
func (r *Result) Path(u, v int) ([]int, error) {
	i, j, err := r.pair(u, v)
	if err != nil {
		return nil, err
	}
	n := len(r.ids)
	if r.pred[i*n+j] == noPred {
		return []int{}, nil
	}

	rev := []int{r.ids[j]}
	for cur := j; cur != i; {
		cur = r.pred[i*n+cur]
		rev = append(rev, r.ids[cur])
		if len(rev) > n {
			// Only reachable with a corrupted table; closure rejects negative cycles.
			return nil, fmt.Errorf("floydwarshall: path %d→%d does not terminate", u, v)
		}
	}
	for a, b := 0, len(rev)-1; a < b; a, b = a+1, b-1 {
		rev[a], rev[b] = rev[b], rev[a]
	}

	return rev, nil
}

// Distances returns d(u,v) for every ordered pair, +Inf included.
func (r *Result) Distances() map[int]map[int]float64 {
	out := make(map[int]map[int]float64, len(r.ids))
	for i, u := range r.ids {
		row := make(map[int]float64, len(r.ids))
		for j, v := range r.ids {
			row[v] = r.dist.At(i, j)
		}
		out[u] = row
	}

	return out
}

// Predecessors returns pred(u,v) for every pair that has one.
func (r *Result) Predecessors() map[int]map[int]int {
	n := len(r.ids)
	out := make(map[int]map[int]int, n)
	for i, u := range r.ids {
		row := make(map[int]int)
		for j, v := range r.ids {
			if p := r.pred[i*n+j]; p != noPred {
				row[v] = r.ids[p]
			}
		}
		out[u] = row
	}

	return out
}

func (r *Result) pair(u, v int) (int, int, error) {
	i, ok := r.index[u]
	if !ok {
		return 0, 0, fmt.Errorf("floydwarshall: node %d: %w", u, core.ErrNodeNotFound)
	}
	j, ok := r.index[v]
	if !ok {
		return 0, 0, fmt.Errorf("floydwarshall: node %d: %w", v, core.ErrNodeNotFound)
	}

	return i, j, nil
}

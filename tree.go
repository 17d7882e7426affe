package ivtree

import (
	"fmt"
	"math"

	"github.com/Workiva/go-datastructures/bitarray"
)

// Tree is a static interval tree.
//
// A tree is created by Build and never changes afterwards. All methods are
// safe for concurrent use.
type Tree[T Number, V any] struct {
	root      *node[T]
	records   []Interval[T, V] // input intervals, in input order
	endpoints []endpoint[T]    // sorted ascending by key
	stats     Stats
}

// Stats describes the shape of a tree.
type Stats struct {
	Intervals    int // number of intervals stored
	Nodes        int // number of partition nodes
	EmptyNodes   int // nodes with an empty center-set
	Depth        int // length of the longest root-to-node path, root has depth 1
	MaxCenterSet int // largest number of intervals kept at a single node
}

// Build creates an interval tree for a non-empty set of intervals.
//
// Every interval must satisfy Left <= Right and have finite endpoints;
// otherwise Build fails with ErrInvalidInterval. An empty set yields ErrEmptyInput. The tree keeps a
// copy of the intervals, clients are free to re-use the slice.
func Build[T Number, V any](intervals []Interval[T, V]) (*Tree[T, V], error) {
	if len(intervals) == 0 {
		return nil, ErrEmptyInput
	}
	if len(intervals) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d intervals exceed capacity", ErrInvalidInterval, len(intervals))
	}
	for i, iv := range intervals {
		if !iv.IsValid() {
			return nil, fmt.Errorf("%w: #%d = %v", ErrInvalidInterval, i, iv)
		}
	}
	records := make([]Interval[T, V], len(intervals))
	copy(records, intervals)
	set := make([]int32, len(records))
	for i := range set {
		set[i] = int32(i)
	}
	b := newBuilder(records)
	root := b.partition(set, 1)
	sortEndpoints(b.endpoints)
	assert(len(b.endpoints) == 2*len(records), "endpoint index incomplete after build")
	b.stats.Intervals = len(records)
	tracer().Debugf("ivtree: built tree of %d intervals, %d nodes, depth %d",
		b.stats.Intervals, b.stats.Nodes, b.stats.Depth)
	return &Tree[T, V]{
		root:      root,
		records:   records,
		endpoints: b.endpoints,
		stats:     b.stats,
	}, nil
}

// Len returns the number of intervals in the tree.
func (t *Tree[T, V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Intervals returns a copy of the intervals the tree has been built from,
// in input order.
func (t *Tree[T, V]) Intervals() []Interval[T, V] {
	if t == nil {
		return nil
	}
	ivs := make([]Interval[T, V], len(t.records))
	copy(ivs, t.records)
	return ivs
}

// Stats returns statistics about the shape of the tree.
func (t *Tree[T, V]) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	return t.stats
}

// --- Point queries ---------------------------------------------------------

// QueryPoint returns all intervals containing p, bounds included.
//
// The order of the result is unspecified, but deterministic for a given tree
// and point. If no interval contains p, the result is empty.
func (t *Tree[T, V]) QueryPoint(p T) []Interval[T, V] {
	var result []Interval[T, V]
	t.EachPoint(p, func(iv Interval[T, V]) bool {
		result = append(result, iv)
		return true
	})
	return result
}

// EachPoint calls fn for every interval containing p, in the same order
// QueryPoint would report them. Iteration stops early if fn returns false.
func (t *Tree[T, V]) EachPoint(p T, fn func(Interval[T, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	stab(t.root, t.records, p, nil, func(r int32) bool {
		return fn(t.records[r])
	})
}

// --- Range queries ---------------------------------------------------------

// QueryRange returns all intervals overlapping the closed query interval
// [left,right]. Every matching interval is reported exactly once, intervals
// touching a query boundary included.
//
// If left > right, QueryRange fails with ErrInvalidQueryInterval.
func (t *Tree[T, V]) QueryRange(left, right T) ([]Interval[T, V], error) {
	var result []Interval[T, V]
	err := t.EachRange(left, right, func(iv Interval[T, V]) bool {
		result = append(result, iv)
		return true
	})
	return result, err
}

// EachRange calls fn once for every interval overlapping [left,right], in the
// same order QueryRange would report them. Iteration stops early if fn
// returns false.
//
// Intervals having at least one endpoint inside the query window are found
// through the endpoint index. The only overlapping intervals not found this
// way enclose the window completely and thus contain its left boundary; these
// are collected by stabbing the tree at left. Intervals already reported are
// tracked in a set local to the call, so concurrent range queries do not
// interfere.
func (t *Tree[T, V]) EachRange(left, right T, fn func(Interval[T, V]) bool) error {
	if !(left <= right) {
		return fmt.Errorf("%w: [%v,%v]", ErrInvalidQueryInterval, left, right)
	}
	if t == nil || t.root == nil || fn == nil {
		return nil
	}
	seen := bitarray.NewSparseBitArray()
	isSeen := func(r int32) bool {
		found, _ := seen.GetBit(uint64(r))
		return found
	}
	for _, ep := range t.endpoints[firstNotBefore(t.endpoints, left):] {
		if ep.key > right {
			break
		}
		if isSeen(ep.rec) {
			continue
		}
		seen.SetBit(uint64(ep.rec))
		if !fn(t.records[ep.rec]) {
			return nil
		}
	}
	stab(t.root, t.records, left, isSeen, func(r int32) bool {
		return fn(t.records[r])
	})
	return nil
}

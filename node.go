package ivtree

import (
	"cmp"
	"slices"
)

// node is a partition node of the tree. It keeps the intervals straddling
// its center, referenced by index into the tree's record table.
//
// byLeft holds the center-set ascending by left endpoint, byRight holds the
// same records descending by right endpoint. Children are owned exclusively
// by their parent and are nil if the corresponding subset was empty.
type node[T Number] struct {
	center  T
	byLeft  []int32
	byRight []int32
	left    *node[T]
	right   *node[T]
}

// builder collects the endpoint index while nodes are partitioned.
type builder[T Number, V any] struct {
	records   []Interval[T, V]
	endpoints []endpoint[T]
	stats     Stats
}

func newBuilder[T Number, V any](records []Interval[T, V]) *builder[T, V] {
	return &builder[T, V]{
		records:   records,
		endpoints: make([]endpoint[T], 0, 2*len(records)),
	}
}

// partition builds the subtree for a non-empty set of records.
//
// Records in set are in ascending record order; the subsets handed down to
// the children keep this order, which makes sorting of center-sets stable
// with respect to input order.
func (b *builder[T, V]) partition(set []int32, depth int) *node[T] {
	assert(len(set) > 0, "partition called with empty interval set")
	lo, hi := b.records[set[0]].Left, b.records[set[0]].Right
	for _, r := range set[1:] {
		lo = min(lo, b.records[r].Left)
		hi = max(hi, b.records[r].Right)
	}
	n := &node[T]{center: midpoint(lo, hi)}
	var below, above []int32
	for _, r := range set {
		switch iv := b.records[r]; {
		case iv.Right < n.center:
			below = append(below, r)
		case iv.Left > n.center:
			above = append(above, r)
		default:
			n.byLeft = append(n.byLeft, r)
		}
	}
	assert(len(below) < len(set) && len(above) < len(set), "partition made no progress")
	n.byRight = slices.Clone(n.byLeft)
	slices.SortStableFunc(n.byLeft, func(x, y int32) int {
		return cmp.Compare(b.records[x].Left, b.records[y].Left)
	})
	slices.SortStableFunc(n.byRight, func(x, y int32) int {
		return cmp.Compare(b.records[y].Right, b.records[x].Right)
	})
	b.stats.Nodes++
	b.stats.Depth = max(b.stats.Depth, depth)
	b.stats.MaxCenterSet = max(b.stats.MaxCenterSet, len(n.byLeft))
	if len(n.byLeft) == 0 {
		b.stats.EmptyNodes++
	}
	if len(below) > 0 {
		n.left = b.partition(below, depth+1)
	}
	if len(above) > 0 {
		n.right = b.partition(above, depth+1)
	}
	for _, r := range n.byLeft {
		b.endpoints = append(b.endpoints,
			endpoint[T]{key: b.records[r].Left, rec: r, side: LeftEnd},
			endpoint[T]{key: b.records[r].Right, rec: r, side: RightEnd},
		)
	}
	return n
}

// stab walks down the tree along point p and hands every record containing p
// to emit. Records for which skip returns true are passed over without
// terminating the scan of a center-set; a nil skip never skips.
//
// stab returns false if emit asked to stop.
func stab[T Number, V any](n *node[T], records []Interval[T, V], p T,
	skip func(int32) bool, emit func(int32) bool) bool {
	//
	for n != nil {
		switch {
		case p < n.center:
			for _, r := range n.byLeft {
				if records[r].Left > p {
					break
				}
				if skip != nil && skip(r) {
					continue
				}
				if !emit(r) {
					return false
				}
			}
			n = n.left
		case p > n.center:
			for _, r := range n.byRight {
				if records[r].Right < p {
					break
				}
				if skip != nil && skip(r) {
					continue
				}
				if !emit(r) {
					return false
				}
			}
			n = n.right
		case p == n.center:
			for _, r := range n.byLeft {
				if skip != nil && skip(r) {
					continue
				}
				if !emit(r) {
					return false
				}
			}
			return true
		default: // incomparable, e.g. NaN
			return true
		}
	}
	return true
}

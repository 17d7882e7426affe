package ivtree

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Side tells which end of an interval an endpoint is.
type Side uint8

const (
	// LeftEnd marks the lower endpoint of an interval.
	LeftEnd Side = iota
	// RightEnd marks the upper endpoint of an interval.
	RightEnd
)

func (s Side) String() string {
	switch s {
	case LeftEnd:
		return "left"
	case RightEnd:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// endpoint is an entry of the endpoint index: one endpoint value of the
// interval stored as record rec.
type endpoint[T Number] struct {
	key  T
	rec  int32
	side Side
}

// sortEndpoints orders the endpoint index ascending by value. Ties are broken
// by record and side to make enumeration deterministic.
func sortEndpoints[T Number](eps []endpoint[T]) {
	slices.SortFunc(eps, func(a, b endpoint[T]) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		if c := cmp.Compare(a.rec, b.rec); c != 0 {
			return c
		}
		return cmp.Compare(a.side, b.side)
	})
}

// firstNotBefore returns the position of the first endpoint with a value not
// preceding left, i.e. key >= left, or len(eps) if there is none.
func firstNotBefore[T Number](eps []endpoint[T], left T) int {
	return sort.Search(len(eps), func(i int) bool {
		return eps[i].key >= left
	})
}

// Endpoint is one occurrence of an interval endpoint in the tree's endpoint
// index. Every interval occurs twice, once with its left and once with its
// right endpoint.
type Endpoint[T Number, V any] struct {
	ep   endpoint[T]
	tree *Tree[T, V]
}

// Key is the endpoint value.
func (e Endpoint[T, V]) Key() T {
	return e.ep.key
}

// Side tells whether Key is the left or the right end of the interval.
func (e Endpoint[T, V]) Side() Side {
	return e.ep.side
}

// Interval returns the interval this endpoint belongs to.
func (e Endpoint[T, V]) Interval() Interval[T, V] {
	return e.tree.records[e.ep.rec]
}

// Ordinal is the position of the interval in the input to Build. Both
// endpoints of an interval have the same ordinal.
func (e Endpoint[T, V]) Ordinal() int {
	return int(e.ep.rec)
}

func (e Endpoint[T, V]) String() string {
	return fmt.Sprintf("%v(%s of #%d)", e.ep.key, e.ep.side, e.ep.rec)
}

// Endpoints iterates over the endpoint index of the tree, ascending by value.
//
// The sequence carries no intersection semantics: it enumerates endpoint
// occurrences, not intervals. Clients wanting every interval once should
// filter on Side or de-duplicate by Ordinal.
func (t *Tree[T, V]) Endpoints() iter.Seq[Endpoint[T, V]] {
	return func(yield func(Endpoint[T, V]) bool) {
		if t == nil {
			return
		}
		for _, ep := range t.endpoints {
			if !yield(Endpoint[T, V]{ep: ep, tree: t}) {
				return
			}
		}
	}
}

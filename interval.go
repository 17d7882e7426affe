package ivtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types intervals may range over. Computing a
// node's center needs arithmetic, therefore ordering alone is not enough.
type Number interface {
	constraints.Integer | constraints.Float
}

// NoValue is the payload type for intervals which do not carry a value.
type NoValue struct{}

// Interval is a closed interval [Left,Right] with an optional payload.
//
// Left <= Right and finite endpoints are required for intervals handed to
// Build; see IsValid.
type Interval[T Number, V any] struct {
	Left, Right T
	Value       V
}

// Span creates an interval [left,right] without payload.
func Span[T Number](left, right T) Interval[T, NoValue] {
	return Interval[T, NoValue]{Left: left, Right: right}
}

// IsValid reports whether left <= right and both endpoints are finite.
// Intervals with NaN or infinite endpoints are never valid.
func (iv Interval[T, V]) IsValid() bool {
	return iv.Left <= iv.Right && isFinite(iv.Left) && isFinite(iv.Right)
}

// isFinite is false for NaN and ±Inf and always true for integers.
func isFinite[T Number](x T) bool {
	return x-x == 0
}

// midpoint returns a value halfway between lo and hi, lo <= hi, without
// leaving the range of T. The result always lies within [lo,hi].
func midpoint[T Number](lo, hi T) T {
	// x - x/2*2 is the remainder of an integer division by 2 and
	// (almost) zero for floats
	rlo, rhi := lo-lo/2*2, hi-hi/2*2
	c := lo/2 + hi/2 + (rlo+rhi)/2
	return max(lo, min(c, hi))
}

// Contains reports whether p lies within the closed interval.
func (iv Interval[T, V]) Contains(p T) bool {
	return iv.Left <= p && p <= iv.Right
}

// Overlaps reports whether iv and [left,right] share at least one point.
// Touching intervals do overlap.
func (iv Interval[T, V]) Overlaps(left, right T) bool {
	return iv.Left <= right && left <= iv.Right
}

func (iv Interval[T, V]) String() string {
	return fmt.Sprintf("[%v,%v]", iv.Left, iv.Right)
}

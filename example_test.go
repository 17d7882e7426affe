package ivtree_test

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/ivtree"
)

func Example() {
	tree, err := ivtree.Build([]ivtree.Interval[int, string]{
		{Left: 1, Right: 5, Value: "first"},
		{Left: 7, Right: 10, Value: "second"},
		{Left: 1, Right: 2, Value: "third"},
	})
	if err != nil {
		panic(err)
	}
	overlaps, _ := tree.QueryRange(5, 8)
	var names []string
	for _, iv := range overlaps {
		names = append(names, iv.Value)
	}
	slices.Sort(names) // order is unspecified
	fmt.Println(strings.Join(names, " "))
	// Output: first second
}

func ExampleTree_QueryPoint() {
	tree, _ := ivtree.Build([]ivtree.Interval[float64, ivtree.NoValue]{
		ivtree.Span(0.0, 1.0),
		ivtree.Span(0.5, 2.0),
		ivtree.Span(3.0, 4.0),
	})
	hits := tree.QueryPoint(0.75)
	slices.SortFunc(hits, func(a, b ivtree.Interval[float64, ivtree.NoValue]) int {
		return cmp.Compare(a.Left, b.Left)
	})
	fmt.Println(hits)
	// Output: [[0,1] [0.5,2]]
}

func ExampleTree_Endpoints() {
	tree, _ := ivtree.Build([]ivtree.Interval[int, ivtree.NoValue]{
		ivtree.Span(4, 6),
		ivtree.Span(1, 3),
	})
	for ep := range tree.Endpoints() {
		fmt.Printf("%d %s of %v\n", ep.Key(), ep.Side(), ep.Interval())
	}
	// Output:
	// 1 left of [1,3]
	// 3 right of [1,3]
	// 4 left of [4,6]
	// 6 right of [4,6]
}

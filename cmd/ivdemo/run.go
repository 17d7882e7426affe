package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/ivtree"
	"github.com/npillmayer/ivtree/ivfile"
)

var errAmbiguousQuery = errors.New("either --point or --range may be given, not both")

// run builds a tree from ivs, queries it as requested by opts and draws
// intervals, query and result to w.
func run(w io.Writer, ivs []ivfile.Interval, opts *options) error {
	if len(opts.point) > 0 && len(opts.span) > 0 {
		return errAmbiguousQuery
	}
	tree, err := ivtree.Build(ivs)
	if err != nil {
		return err
	}
	if opts.dotFile != "" {
		if err := writeDot(tree, opts.dotFile); err != nil {
			return err
		}
	}
	lo, hi := fitWindow(ivs)
	if len(opts.window) > 0 {
		if lo, hi, err = pair(opts.window, "window"); err != nil {
			return err
		}
		if lo == hi {
			return fmt.Errorf("window: empty display window [%v,%v]", lo, hi)
		}
	}
	width := opts.width
	if width <= 0 {
		width = consoleWidth(int(os.Stdout.Fd()))
	}
	b := newBars(w, lo, hi, width)
	fmt.Fprintln(w, "Intervals:")
	for _, iv := range ivs {
		b.interval(iv, PlainBar)
	}
	var result []ivfile.Interval
	switch {
	case len(opts.point) > 1:
		return fmt.Errorf("point: expected 1 value, have %d", len(opts.point))
	case len(opts.point) == 1:
		fmt.Fprintln(w, "Query:")
		b.point(opts.point[0], QueryBar)
		result = tree.QueryPoint(opts.point[0])
	case len(opts.span) > 0:
		left, right, err := pair(opts.span, "range")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Query:")
		b.interval(ivfile.Interval{Left: left, Right: right}, QueryBar)
		if result, err = tree.QueryRange(left, right); err != nil {
			return err
		}
	default:
		printStats(w, tree.Stats(), -1)
		return nil
	}
	fmt.Fprintln(w, "Intersects:")
	for _, iv := range result {
		b.interval(iv, HitBar)
	}
	printStats(w, tree.Stats(), len(result))
	return nil
}

func printStats(w io.Writer, st ivtree.Stats, hits int) {
	fmt.Fprintf(w, "%s intervals in %s nodes, depth %d",
		humanize.Comma(int64(st.Intervals)), humanize.Comma(int64(st.Nodes)), st.Depth)
	if hits >= 0 {
		fmt.Fprintf(w, ", %s hits", humanize.Comma(int64(hits)))
	}
	fmt.Fprintln(w)
}

func writeDot(tree *ivtree.Tree[float64, string], name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	ivtree.Tree2Dot(tree, f)
	return f.Close()
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ivtree"
	"github.com/npillmayer/ivtree/ivfile"
	"golang.org/x/term"
)

// Role tells the renderer how to colour a bar.
type Role int

// Roles of bars.
const (
	PlainBar Role = iota
	QueryBar
	HitBar
)

// bars draws intervals and points as rows of ASCII characters, mapping a
// display window [lo,hi] onto a fixed number of columns.
//
// An interval is drawn as
//
//	<------>
//
// or as a single 'x' if both endpoints fall onto the same column. A point is
// drawn as '|'.
type bars struct {
	w      io.Writer
	lo, hi float64
	cols   int
	colors map[Role]*color.Color
}

func newBars(w io.Writer, lo, hi float64, cols int) *bars {
	if !(hi > lo) {
		hi = lo + 1
	}
	return &bars{
		w:      w,
		lo:     lo,
		hi:     hi,
		cols:   max(cols, 2),
		colors: makeDefaultPalette(),
	}
}

func makeDefaultPalette() map[Role]*color.Color {
	palette := map[Role]*color.Color{
		PlainBar: color.New(color.FgBlue),
		QueryBar: color.New(color.FgGreen, color.Bold),
		HitBar:   color.New(color.FgRed),
	}
	return palette
}

// column maps x onto a column, clipped to the output width.
func (b *bars) column(x float64) int {
	part := (x - b.lo) / (b.hi - b.lo)
	c := int(part*float64(b.cols-1) + 0.5)
	return max(0, min(c, b.cols-1))
}

func (b *bars) interval(iv ivfile.Interval, role Role) {
	l, r := b.column(iv.Left), b.column(iv.Right)
	bar := "x"
	if l < r {
		bar = "<" + strings.Repeat("-", r-l-1) + ">"
	}
	b.row(l, bar, role)
}

func (b *bars) point(x float64, role Role) {
	b.row(b.column(x), "|", role)
}

func (b *bars) row(indent int, bar string, role Role) {
	io.WriteString(b.w, strings.Repeat(" ", indent))
	if c, ok := b.colors[role]; ok {
		c.Fprint(b.w, bar)
	} else {
		io.WriteString(b.w, bar)
	}
	io.WriteString(b.w, "\n")
}

// fitWindow returns a display window enclosing all intervals with a margin
// of 20% of their extent on either side.
func fitWindow(ivs []ivfile.Interval) (lo, hi float64) {
	lo, hi = ivs[0].Left, ivs[0].Right
	for _, iv := range ivs[1:] {
		lo = min(lo, iv.Left)
		hi = max(hi, iv.Right)
	}
	margin := (hi - lo) / 5
	if margin == 0 {
		margin = 1
	}
	return lo - margin, hi + margin
}

// consoleWidth checks whether stdout is a terminal, and if so reads the
// terminal's width. Otherwise it returns 80.
func consoleWidth(fd int) int {
	width := 80
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			width = w - 1
		}
	}
	ivtree.T().P("output", "console").Debugf("setting output width to %d columns", width)
	return width
}

func pair(values []float64, name string) (float64, float64, error) {
	if len(values) != 2 {
		return 0, 0, fmt.Errorf("%s: expected 2 values, have %d", name, len(values))
	}
	if !(values[0] <= values[1]) {
		return 0, 0, fmt.Errorf("%s: expected lower bound first, have %v", name, values)
	}
	return values[0], values[1], nil
}

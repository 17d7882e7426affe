package main

import (
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ivtree/ivfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/cobra"
)

func TestBars(t *testing.T) {
	color.NoColor = true
	var sb strings.Builder
	b := newBars(&sb, 0, 10, 11)
	b.interval(ivfile.Interval{Left: 2, Right: 5}, PlainBar)
	b.interval(ivfile.Interval{Left: 3, Right: 3}, HitBar)
	b.point(10, QueryBar)
	b.interval(ivfile.Interval{Left: -5, Right: 20}, PlainBar)
	want := "  <-->\n" +
		"   x\n" +
		"          |\n" +
		"<--------->\n"
	if sb.String() != want {
		t.Errorf("expected\n%q, got\n%q", want, sb.String())
	}
}

func TestFitWindow(t *testing.T) {
	lo, hi := fitWindow(tiles(10, 90))
	if lo >= 0 || hi <= 10.0/90 {
		t.Errorf("expected window to enclose all tiles, is [%v,%v]", lo, hi)
	}
	lo, hi = fitWindow([]ivfile.Interval{{Left: 3, Right: 3}})
	if lo != 2 || hi != 4 {
		t.Errorf("expected window [2,4] for single point, is [%v,%v]", lo, hi)
	}
}

func TestRunTilesRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	color.NoColor = true
	var sb strings.Builder
	opts := &options{width: 80, span: []float64{0.0278, 0.0722}}
	if err := run(&sb, tiles(10, 90), opts); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	t.Logf("\n%s", out)
	parts := strings.Split(out, "Intersects:\n")
	if len(parts) != 2 {
		t.Fatalf("expected an 'Intersects:' section")
	}
	lines := strings.Split(strings.TrimSpace(parts[1]), "\n")
	if len(lines) != 6 { // 5 hits + statistics
		t.Errorf("expected 5 hits and statistics, got %d lines", len(lines))
	}
	if !strings.Contains(out, "10 intervals") || !strings.Contains(out, "5 hits") {
		t.Errorf("expected statistics line to report 10 intervals and 5 hits")
	}
}

func TestRunRejectsAmbiguousQuery(t *testing.T) {
	var sb strings.Builder
	opts := &options{width: 80, point: []float64{1}, span: []float64{0, 1}}
	if err := run(&sb, tiles(3, 1), opts); err != errAmbiguousQuery {
		t.Errorf("expected errAmbiguousQuery, got %v", err)
	}
	opts = &options{width: 80, span: []float64{2, 1}}
	if err := run(&sb, tiles(3, 1), opts); err == nil {
		t.Errorf("expected error for reversed range")
	}
}

func TestRunRejectsEmptyWindow(t *testing.T) {
	var sb strings.Builder
	opts := &options{width: 80, window: []float64{1, 1}}
	if err := run(&sb, tiles(3, 1), opts); err == nil {
		t.Errorf("expected error for empty display window")
	}
	b := newBars(&sb, 1, 1, 11)
	if c := b.column(1); c != 0 {
		t.Errorf("expected degenerate window to map onto column 0, got %d", c)
	}
}

func TestSourcesRejectInvalidCount(t *testing.T) {
	for _, cmd := range []*cobra.Command{tilesCmd(&options{}), randomCmd(&options{})} {
		cmd.SetArgs([]string{"--count=-3"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		if err := cmd.Execute(); err == nil {
			t.Errorf("%s: expected error for negative count", cmd.Name())
		}
	}
	if checkCount(0) == nil || checkCount(1) != nil {
		t.Errorf("expected only positive counts to be accepted")
	}
}

func TestRandomIntervalsWithinBounds(t *testing.T) {
	ivs := randomIntervals(newRand(3), 100, -5, 5)
	for _, iv := range ivs {
		if iv.Left < -5 || iv.Right > 5 || iv.Left > iv.Right {
			t.Fatalf("interval %v out of bounds", iv)
		}
	}
}

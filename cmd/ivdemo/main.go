// Package main provides ivdemo, a small program to visualize interval trees
// and their query results on the console.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// options are shared by all sub-commands.
type options struct {
	verbose bool
	noColor bool
	width   int
	window  []float64 // display window [lo,hi]; empty means fit to data
	point   []float64 // query point, at most one
	span    []float64 // query interval [left,right]
	dotFile string    // write tree as Graphviz DOT to this file
}

func main() {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "ivdemo",
		Short: "ivdemo - visualize interval trees and their queries",
		Long: `ivdemo builds an interval tree from a set of intervals, queries it
and draws intervals and query results as bars on the console.

Commands:
  tiles     Unit intervals [i/d,(i+1)/d]
  random    Random intervals within bounds
  file      Intervals from a YAML file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			gtrace.CoreTracer = gologadapter.New()
			if opts.verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
			}
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.IntVarP(&opts.width, "width", "w", 0, "output width in columns (default: terminal width or 80)")
	flags.Float64SliceVar(&opts.window, "window", nil, "display window lo,hi (default: fit to intervals)")
	flags.Float64SliceVarP(&opts.point, "point", "p", nil, "query intervals containing this point")
	flags.Float64SliceVarP(&opts.span, "range", "r", nil, "query intervals overlapping left,right")
	flags.StringVar(&opts.dotFile, "dot", "", "write the tree in Graphviz DOT format to this file")

	rootCmd.AddCommand(tilesCmd(opts))
	rootCmd.AddCommand(randomCmd(opts))
	rootCmd.AddCommand(fileCmd(opts))

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"math/rand"

	"github.com/npillmayer/ivtree/ivfile"
	"github.com/spf13/cobra"
)

func tilesCmd(opts *options) *cobra.Command {
	var count int
	var divisor float64
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Query unit intervals [i/d,(i+1)/d], i = 0…n-1",
		Long: `Query unit intervals [i/d,(i+1)/d], i = 0…n-1.

Example:
  ivdemo tiles --range 0.0278,0.0722    # reports intervals 2…6`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			if !(divisor > 0) {
				return fmt.Errorf("divisor: expected a positive value, have %v", divisor)
			}
			return run(cmd.OutOrStdout(), tiles(count, divisor), opts)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of intervals")
	cmd.Flags().Float64VarP(&divisor, "divisor", "d", 90, "divisor d")
	return cmd
}

func randomCmd(opts *options) *cobra.Command {
	var count int
	var seed int64
	var bounds []float64
	var save string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Query random intervals within bounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkCount(count); err != nil {
				return err
			}
			lo, hi, err := pair(bounds, "bounds")
			if err != nil {
				return err
			}
			ivs := randomIntervals(newRand(seed), count, lo, hi)
			if save != "" {
				if err := ivfile.Save(save, ivs); err != nil {
					return err
				}
			}
			return run(cmd.OutOrStdout(), ivs, opts)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of intervals")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64SliceVar(&bounds, "bounds", []float64{-5, 5}, "lo,hi bounds for interval endpoints")
	cmd.Flags().StringVar(&save, "save", "", "save the generated intervals to this YAML file")
	return cmd
}

func fileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "file [path]",
		Short: "Query intervals loaded from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ivs, err := ivfile.Load(args[0])
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), ivs, opts)
		},
	}
}

func tiles(n int, d float64) []ivfile.Interval {
	ivs := make([]ivfile.Interval, n)
	for i := range ivs {
		ivs[i] = ivfile.Interval{Left: float64(i) / d, Right: float64(i+1) / d}
	}
	return ivs
}

// randomIntervals creates n intervals [a,b] with a uniform in [lo,hi] and b
// uniform in [a,hi].
func randomIntervals(rnd *rand.Rand, n int, lo, hi float64) []ivfile.Interval {
	ivs := make([]ivfile.Interval, n)
	for i := range ivs {
		a := lo + (hi-lo)*rnd.Float64()
		b := a + (hi-a)*rnd.Float64()
		ivs[i] = ivfile.Interval{Left: a, Right: b}
	}
	return ivs
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func checkCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("count: expected a positive number of intervals, have %d", count)
	}
	return nil
}

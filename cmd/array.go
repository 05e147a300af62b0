/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/meshfield/arrays"
	"github.com/notargets/meshfield/display"
)

// ArrayCmd represents the array command
var ArrayCmd = &cobra.Command{
	Use:   "array",
	Short: "Walk through LabeledArray construction, assignment, conversion and combination",
	Long: `
Allocates an array of (x,y) tuples, assigns into slices of it, labels it,
converts it to polar form and back, computes magnitudes, and aggregates and
melds it with itself.

meshfield array -r 4 -p 1`,
	Run: func(cmd *cobra.Command, args []string) {
		rows, _ := cmd.Flags().GetInt("rows")
		plotComp, _ := cmd.Flags().GetInt("plot")
		if err := RunArray(cmd.OutOrStdout(), rows, plotComp, settingsFromConfig()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err.Error())
			exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ArrayCmd)
	ArrayCmd.Flags().IntP("rows", "r", 4, "number of tuples in the demonstration array")
	ArrayCmd.Flags().IntP("plot", "p", -1, "component to plot, -1 for none")
}

// RunArray replays the array workflow, printing every intermediate result to w
func RunArray(w io.Writer, rows, plotComp int, s Settings) (err error) {
	var (
		arr, polar, cart *arrays.LabeledArray
	)
	if arr, err = arrays.New(rows, 2); err != nil {
		return
	}
	// Alloc on an existing array, then a reshape from a flat sequence
	if err = arr.Alloc(rows, 2); err != nil {
		return
	}
	flat, err := arrays.FromFlat(make([]float64, 2*rows), 1)
	if err != nil {
		return
	}
	if err = flat.Rearrange(2); err != nil {
		return
	}
	fmt.Fprintf(w, "Allocated %d x 2, uniform zero = %v\n", rows, flat.IsUniform(0, 0))

	if rows == 0 {
		fmt.Fprintf(w, "%s", arr.String())
		return
	}
	if err = arr.SetSlice(":", ":", 1.); err != nil {
		return
	}
	if rows > 1 {
		if err = arr.SetSlice(fmt.Sprintf("1:%d", rows), ":", 1.); err != nil {
			return
		}
	}
	seq := make([]float64, rows)
	for i := range seq {
		seq[i] = float64(i + 1)
	}
	if err = arr.SetSlice(":", 1, seq); err != nil {
		return
	}
	arr.SetName("array of doubles")
	if err = arr.SetComponentLabels([]string{"x", "y"}); err != nil {
		return
	}
	fmt.Fprintf(w, "Values: %v\n", arr.Values())
	fmt.Fprintln(w, display.Table(arr, s.Table))

	if polar, err = arr.ToPolar(); err != nil {
		return
	}
	if err = polar.SetComponentLabels([]string{"r", "theta"}); err != nil {
		return
	}
	fmt.Fprintln(w, display.Table(polar, s.Table))
	if cart, err = polar.ToCartesian(); err != nil {
		return
	}
	mag := cart.Magnitude()
	if err = mag.SetComponentLabels([]string{"|x|"}); err != nil {
		return
	}
	fmt.Fprintln(w, display.Table(mag, s.Table))
	fmt.Fprintf(w, "Uniform magnitude (1.e-13): %v\n", mag.IsUniform(1., 1.e-13))

	agg, err := arrays.Aggregate(arr, arr)
	if err != nil {
		return
	}
	meld, err := arrays.Meld(arr, arr)
	if err != nil {
		return
	}
	nr, nc := agg.Dims()
	fmt.Fprintf(w, "Aggregate: %d x %d\n", nr, nc)
	nr, nc = meld.Dims()
	fmt.Fprintf(w, "Meld:      %d x %d\n", nr, nc)

	if plotComp >= 0 {
		var chart string
		if chart, err = display.Plot(arr, plotComp, s.Plot); err != nil {
			return
		}
		fmt.Fprintln(w, chart)
	}
	return
}

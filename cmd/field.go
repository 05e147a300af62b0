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
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/meshfield/InputParameters"
	"github.com/notargets/meshfield/arrays"
	"github.com/notargets/meshfield/display"
	"github.com/notargets/meshfield/field"
	"github.com/notargets/meshfield/mesh"
)

var exit = os.Exit

// FieldCmd represents the field command
var FieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Build a Cartesian mesh and fill a field on it from a YAML workflow file",
	Long: `
Reads mesh axes and a field definition from a YAML workflow file, builds the
Cartesian mesh and its unstructured form, then fills the field from a named
analytic function.

meshfield field -I workflow.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			wf  *InputParameters.Workflow
		)
		fileName, _ := cmd.Flags().GetString("inputFile")
		plotComp, _ := cmd.Flags().GetInt("plot")
		if wf, err = processInput(cmd.OutOrStdout(), fileName); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err.Error())
			exit(1)
			return
		}
		wf.Print(cmd.OutOrStdout())
		if _, err = RunField(cmd.OutOrStdout(), wf, plotComp, settingsFromConfig()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err.Error())
			exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(FieldCmd)
	FieldCmd.Flags().StringP("inputFile", "I", "", "YAML workflow file, describing:\n\t- mesh axes\n\t- field support, time, nature and function")
	FieldCmd.Flags().IntP("plot", "p", -1, "field component to plot, -1 for none")
}

func processInput(w io.Writer, fileName string) (wf *InputParameters.Workflow, err error) {
	var (
		data []byte
	)
	if len(fileName) == 0 {
		fmt.Fprintf(w, "Example File:%s\n", InputParameters.ExampleWorkflow)
		fmt.Fprintf(w, "Named functions: %v, or any expression in x, y, z\n", field.AnalyticNames())
		return nil, fmt.Errorf("must supply a workflow file (-I, --inputFile)")
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	wf = &InputParameters.Workflow{}
	if err = wf.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return
}

// RunField builds the mesh and field described by wf, printing a summary to w
func RunField(w io.Writer, wf *InputParameters.Workflow, plotComp int, s Settings) (f *field.FieldDouble, err error) {
	var (
		cm     = mesh.NewCMesh(wf.MeshName)
		um     *mesh.UMesh
		axes   = make([]*arrays.LabeledArray, len(wf.Axes))
		on     field.TypeOfField
		td     field.TimeDiscretization
		nature field.Nature
		fn     field.AnalyticFunc
	)
	for n, ax := range wf.Axes {
		var x []float64
		if x, err = ax.Linspace(); err != nil {
			return
		}
		if axes[n], err = arrays.FromFlat(x, 1); err != nil {
			return
		}
		axes[n].SetName(ax.Name)
	}
	if err = cm.SetCoords(axes...); err != nil {
		return
	}
	if um, err = cm.BuildUnstructured(); err != nil {
		return
	}
	fmt.Fprintf(w, "Mesh %q: dimension %d, %d nodes, %d cells of type %s\n",
		um.Name(), um.MeshDimension(), um.NumberOfNodes(), um.NumberOfCells(), um.CellTypes[0])

	if on, err = field.ParseTypeOfField(wf.Support); err != nil {
		return
	}
	if td, err = field.ParseTimeDiscretization(wf.Time); err != nil {
		return
	}
	if nature, err = field.ParseNature(wf.Nature); err != nil {
		return
	}
	if fn, err = field.LookupAnalytic(wf.Function); err != nil {
		return
	}
	f = field.NewFieldDouble(on, td)
	f.SetMesh(um)
	f.SetName(wf.FieldName)
	if err = f.SetNature(nature); err != nil {
		return
	}
	if td == field.OneTime {
		if err = f.SetTime(wf.TimeValue, wf.Iteration, 0); err != nil {
			return
		}
	}
	if err = f.FillFromAnalytic(wf.Components, fn); err != nil {
		return
	}
	if err = f.Array().SetComponentLabels(wf.ComponentLabels()); err != nil {
		return
	}
	if err = f.CheckConsistency(); err != nil {
		return
	}
	fmt.Fprintf(w, "Field %q: %s, %s, nature %s\n", f.Name(), f.TypeOfField(), f.TimeDiscretization(), f.Nature())
	fmt.Fprintln(w, display.Table(f.Array(), s.Table))
	if plotComp >= 0 {
		var chart string
		if chart, err = display.Plot(f.Array(), plotComp, s.Plot); err != nil {
			return
		}
		fmt.Fprintln(w, chart)
	}
	return
}

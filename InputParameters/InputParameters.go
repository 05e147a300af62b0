package InputParameters

import (
	"fmt"
	"io"
	"sort"

	"github.com/ghodss/yaml"
)

// Axis describes a linearly spaced coordinate axis
type Axis struct {
	Name   string  `yaml:"Name"`
	Min    float64 `yaml:"Min"`
	Max    float64 `yaml:"Max"`
	Points int     `yaml:"Points"`
}

func (ax Axis) Linspace() (x []float64, err error) {
	if ax.Points < 2 {
		err = fmt.Errorf("axis %q needs at least 2 points, has %d", ax.Name, ax.Points)
		return
	}
	x = make([]float64, ax.Points)
	for i := range x {
		x[i] = ax.Min + (ax.Max-ax.Min)*float64(i)/float64(ax.Points-1)
	}
	return
}

// Parameters obtained from the YAML workflow file
type Workflow struct {
	Title      string  `yaml:"Title"`
	MeshName   string  `yaml:"MeshName"`
	Axes       []Axis  `yaml:"Axes"`
	FieldName  string  `yaml:"FieldName"`
	Support    string  `yaml:"Support"`
	Time       string  `yaml:"Time"`
	Nature     string  `yaml:"Nature"`
	Function   string  `yaml:"Function"`
	Components int     `yaml:"Components"`
	TimeValue  float64 `yaml:"TimeValue"`
	Iteration  int     `yaml:"Iteration"`
	// Per component labels applied to the computed field values
	Labels map[int]string `yaml:"Labels"`
}

var ExampleWorkflow = `
########################################
Title: "Cheat sheet"
MeshName: "mesh"
Axes:
  - {Name: x, Min: 0, Max: 1, Points: 3}
  - {Name: y, Min: 0, Max: 1, Points: 3}
FieldName: "aField"
Support: ON_CELLS     # or ON_NODES
Time: ONE_TIME        # or NO_TIME
Nature: IntensiveMaximum
Function: "x+y"
Components: 2
TimeValue: 0.
Iteration: 0
########################################
`

func (wf *Workflow) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, wf); err != nil {
		return
	}
	wf.setDefaults()
	return
}

func (wf *Workflow) setDefaults() {
	if len(wf.MeshName) == 0 {
		wf.MeshName = "mesh"
	}
	if len(wf.Support) == 0 {
		wf.Support = "ON_CELLS"
	}
	if len(wf.Time) == 0 {
		wf.Time = "NO_TIME"
	}
	if len(wf.Nature) == 0 {
		wf.Nature = "NoNature"
	}
	if wf.Components == 0 {
		wf.Components = 1
	}
}

func (wf *Workflow) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", wf.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Mesh\n", wf.MeshName)
	for i, ax := range wf.Axes {
		fmt.Fprintf(w, "Axes[%d] = %s: %d points in [%g, %g]\n", i, ax.Name, ax.Points, ax.Min, ax.Max)
	}
	fmt.Fprintf(w, "[%s]\t\t\t= Field\n", wf.FieldName)
	fmt.Fprintf(w, "[%s, %s]\t= Support, Time\n", wf.Support, wf.Time)
	fmt.Fprintf(w, "[%s]\t= Nature\n", wf.Nature)
	fmt.Fprintf(w, "[%s] x %d\t\t= Function x Components\n", wf.Function, wf.Components)
	keys := make([]int, 0, len(wf.Labels))
	for k := range wf.Labels {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "Labels[%d] = %s\n", key, wf.Labels[key])
	}
}

// ComponentLabels returns one label per component, or nil when none are set
func (wf *Workflow) ComponentLabels() (labels []string) {
	if len(wf.Labels) == 0 {
		return nil
	}
	labels = make([]string, wf.Components)
	for k, v := range wf.Labels {
		if k >= 0 && k < wf.Components {
			labels[k] = v
		}
	}
	return
}

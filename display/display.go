// Package display renders LabeledArrays in a terminal: a bordered table of the
// tuples and an ASCII plot of one component.
package display

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/notargets/meshfield/arrays"
)

var ErrEmpty = errors.New("display: nothing to plot")

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#444466"))

	RowIndex = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff"))
)

type TableOptions struct {
	Precision int // Digits after the decimal point
	MaxRows   int // Rows beyond this are elided, 0 shows all
}

func componentHeaders(la *arrays.LabeledArray) (headers []string) {
	_, nc := la.Dims()
	headers = la.ComponentLabels()
	if len(headers) == 0 {
		headers = make([]string, nc)
	}
	for j := range headers {
		if len(headers[j]) == 0 {
			headers[j] = "c" + strconv.Itoa(j)
		}
	}
	return
}

// Table renders the array as a bordered table, one line per tuple
func Table(la *arrays.LabeledArray, opts TableOptions) string {
	var (
		nr, nc  = la.Dims()
		headers = componentHeaders(la)
		shown   = nr
	)
	if opts.MaxRows > 0 && opts.MaxRows < nr {
		shown = opts.MaxRows
	}
	cells := make([][]string, shown)
	widths := make([]int, nc+1)
	widths[0] = len(strconv.Itoa(nr)) + 1
	for j, h := range headers {
		widths[j+1] = lipgloss.Width(h)
	}
	for i := 0; i < shown; i++ {
		row, _ := la.Row(i)
		cells[i] = make([]string, nc)
		for j, v := range row {
			cells[i][j] = strconv.FormatFloat(v, 'f', opts.Precision, 64)
			if w := len(cells[i][j]); w > widths[j+1] {
				widths[j+1] = w
			}
		}
	}
	cell := func(style lipgloss.Style, w int, s string) string {
		return style.Width(w + 2).Align(lipgloss.Right).Render(s)
	}
	lines := make([]string, 0, shown+3)
	hdr := []string{cell(RowIndex, widths[0], "#")}
	for j, h := range headers {
		hdr = append(hdr, cell(lipgloss.NewStyle(), widths[j+1], h))
	}
	lines = append(lines, Header.Render(lipgloss.JoinHorizontal(lipgloss.Top, hdr...)))
	for i := 0; i < shown; i++ {
		line := []string{cell(RowIndex, widths[0], strconv.Itoa(i))}
		for j := range cells[i] {
			line = append(line, cell(Value, widths[j+1], cells[i][j]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	if shown < nr {
		lines = append(lines, RowIndex.Render(fmt.Sprintf("... %d more tuples", nr-shown)))
	}
	name := la.Name()
	if len(name) == 0 {
		name = "(unnamed)"
	}
	title := Title.Render(fmt.Sprintf("%s  [%d x %d]", name, nr, nc))
	return Panel.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...))
}

type PlotOptions struct {
	Height, Width int
}

// Plot draws component j of the array against tuple index
func Plot(la *arrays.LabeledArray, j int, opts PlotOptions) (chart string, err error) {
	var (
		data []float64
	)
	if data, err = la.Column(j); err != nil {
		return
	}
	if len(data) == 0 {
		return "", fmt.Errorf("component %d of %q: %w", j, la.Name(), ErrEmpty)
	}
	caption := componentHeaders(la)[j]
	if len(la.Name()) != 0 {
		caption = la.Name() + ": " + caption
	}
	plotOpts := []asciigraph.Option{asciigraph.Caption(caption)}
	if opts.Height > 0 {
		plotOpts = append(plotOpts, asciigraph.Height(opts.Height))
	}
	if opts.Width > 0 {
		plotOpts = append(plotOpts, asciigraph.Width(opts.Width))
	}
	return asciigraph.Plot(data, plotOpts...), nil
}

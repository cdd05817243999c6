package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/tessellab/gosom/grid"
)

// ErrNilGrid indicates a nil grid was passed to a renderer.
var ErrNilGrid = errors.New("render: grid is nil")

// ComponentPlanes writes one aligned table per vector component: a header
// line "component k" followed by H rows of W cell values (%.4f), rows in
// enumeration order. Planes are separated by a blank line.
func ComponentPlanes(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for c := 0; c < g.Dim(); c++ {
		if c > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "component %d\n", c)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				v, _ := g.At(x, y) // loop bounds guarantee in-range coordinates
				if x > 0 {
					fmt.Fprint(tw, "\t")
				}
				fmt.Fprintf(tw, "%.4f", v[c])
			}
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}

// FlatTSV writes a tab-separated dump of the grid: a header line
// "neuron\tx\ty\tc0...c{Z-1}", then one line per cell in enumeration order
// with the neuron index, its coordinates, and the full prototype vector.
// Component values use the shortest exact decimal representation.
func FlatTSV(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "neuron\tx\ty")
	for c := 0; c < g.Dim(); c++ {
		fmt.Fprintf(bw, "\tc%d", c)
	}
	fmt.Fprintln(bw)

	for k, coord := range g.Topology().Coords() {
		fmt.Fprintf(bw, "%d\t%d\t%d", k, coord.X, coord.Y)
		v, _ := g.At(coord.X, coord.Y)
		for _, c := range v {
			fmt.Fprint(bw, "\t", strconv.FormatFloat(c, 'g', -1, 64))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

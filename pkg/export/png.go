// Package export renders computed tree geometry to image files. It reads
// node positions and values only; it never mutates the tree.
package export

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bstviz/bstviz/pkg/layout"
	"github.com/bstviz/bstviz/pkg/tree"
)

// Options controls the rendered image.
type Options struct {
	// Scale multiplies the layout coordinates; 0 means 2.0.
	Scale float64

	// Padding is the margin around the tree bounds; 0 means 80.
	Padding float64
}

var (
	nodeColor = drawing.ColorFromHex("3498db")
	edgeColor = drawing.ColorFromHex("34495e")
)

// PNG draws the nodes and their parent edges at their layout coordinates
// and writes the result to path. Nodes must carry computed positions.
func PNG(nodes []*tree.Node, path string, opts Options) error {
	if len(nodes) == 0 {
		return errors.New("nothing to export: tree is empty")
	}

	if opts.Scale == 0 {
		opts.Scale = 2.0
	}

	if opts.Padding == 0 {
		opts.Padding = 80
	}

	minX, minY, maxX, maxY, _ := layout.Bounds(nodes)

	graph := chart.Chart{
		Width:  int((maxX-minX)*opts.Scale + 2*opts.Padding),
		Height: int((maxY-minY)*opts.Scale + 2*opts.Padding),
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: minX - 1, Max: maxX + 1},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			// layout Y grows downward, chart Y grows upward
			Range: &chart.ContinuousRange{Min: -maxY - 1, Max: -minY + 1},
		},
	}

	for _, n := range nodes {
		if n.Parent == nil {
			continue
		}

		graph.Series = append(graph.Series, chart.ContinuousSeries{
			XValues: []float64{n.Parent.X, n.X},
			YValues: []float64{-n.Parent.Y, -n.Y},
			Style: chart.Style{
				StrokeColor: edgeColor,
				StrokeWidth: 2,
			},
		})
	}

	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	labels := make([]chart.Value2, len(nodes))
	for i, n := range nodes {
		xs[i] = n.X
		ys[i] = -n.Y
		labels[i] = chart.Value2{
			XValue: n.X,
			YValue: -n.Y,
			Label:  strconv.Itoa(n.Value),
		}
	}

	graph.Series = append(graph.Series,
		chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    12,
				DotColor:    nodeColor,
			},
		},
		chart.AnnotationSeries{
			Annotations: labels,
		},
	)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can not create image file: %s", path)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return errors.Wrap(err, "can not render tree image")
	}

	return nil
}

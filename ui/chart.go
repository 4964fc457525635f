package ui

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 640
	chartHeight = 320
)

// ErrNotEnoughPoints is returned when a series is too short to draw a line.
var ErrNotEnoughPoints = errors.New("not enough points to plot")

// renderLineChart draws an index-vs-value line for the series and returns
// the decoded image.
func renderLineChart(values []float64) (image.Image, error) {
	if len(values) < 2 {
		return nil, ErrNotEnoughPoints
	}

	xs := make([]float64, len(values))

	for i := range values {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: values,
			},
		},
	}

	var buf bytes.Buffer

	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}

	return png.Decode(&buf)
}

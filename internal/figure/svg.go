package figure

import (
	"io"
	"strconv"

	"diamonddash/internal/errors"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartHeight    = 420
	chartMinWidth  = 640
	chartMargin    = 160
	barSpacing     = 2
	wideBarWidth   = 24
	narrowBarWidth = 10
)

// RenderSVG draws the histogram as an SVG bar chart
func RenderSVG(fig *Figure, w io.Writer) error {
	if fig == nil || len(fig.Bins) == 0 {
		return errors.InvalidInput("figure has no bins to render")
	}

	barWidth := wideBarWidth
	if len(fig.Bins) > 40 {
		barWidth = narrowBarWidth
	}
	width := len(fig.Bins)*(barWidth+barSpacing) + chartMargin
	if width < chartMinWidth {
		width = chartMinWidth
	}

	bars := make([]chart.Value, len(fig.Bins))
	for i, b := range fig.Bins {
		bars[i] = chart.Value{
			Value: float64(b.Count),
			Label: strconv.FormatFloat(b.Lower, 'g', 4, 64),
		}
	}

	maxCount := fig.MaxCount()
	if maxCount < 1 {
		maxCount = 1
	}

	graph := chart.BarChart{
		Title:      fig.Title,
		Width:      width,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: chart.YAxis{
			Name:  fig.YAxis.Title,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return errors.Wrapf(err, "failed to render %s", fig.Title)
	}
	return nil
}

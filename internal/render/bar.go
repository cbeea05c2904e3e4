package render

import (
	"fmt"
	"io"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
	"github.com/wcharczuk/go-chart/v2"
)

// barSpacing is the horizontal gap between bars, in pixels.
const barSpacing = 4

// renderBar draws one bar per key. Bar width shrinks with the number of
// bars so the chart always fits the configured canvas.
func renderBar(data *schema.ChartData, cfg *contract.Config, provider chart.RendererProvider, out io.Writer) error {
	total := 0
	bars := make([]chart.Value, len(data.Keys))
	for i := range data.Keys {
		bars[i] = chart.Value{
			Value: float64(data.Values[i]),
			Label: data.Labels[i],
		}
		total += data.Values[i]
	}
	if len(bars) == 0 || total == 0 {
		return fmt.Errorf("no data to chart for %s", data.Kind)
	}

	graph := chart.BarChart{
		Title:      data.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		BarWidth:   barWidth(cfg.Width, len(bars)),
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
	return graph.Render(provider, out)
}

// barWidth fits n bars plus their spacing into the canvas, leaving room
// for the value axis.
func barWidth(canvasWidth, n int) int {
	w := (canvasWidth-80)/n - barSpacing
	if w < 2 {
		return 2
	}
	return w
}

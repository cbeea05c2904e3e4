package render

import (
	"fmt"
	"io"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
	"github.com/wcharczuk/go-chart/v2"
)

// renderPie draws one slice per key. Zero-valued entries are dropped
// since a zero slice has no area and only clutters the legend.
func renderPie(data *schema.ChartData, cfg *contract.Config, provider chart.RendererProvider, out io.Writer) error {
	var values []chart.Value
	for i := range data.Keys {
		if data.Values[i] == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(data.Values[i]),
			Label: data.Labels[i],
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("no data to chart for %s", data.Kind)
	}

	graph := chart.PieChart{
		Title:  data.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Values: values,
	}
	return graph.Render(provider, out)
}

package render

import (
	"fmt"
	"io"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Dot radius bounds for the punchcard, in pixels.
const (
	minDotWidth = 3
	maxDotWidth = 14
)

// renderDot draws the hour-of-week punchcard: a scatter plot with one
// row per weekday and one column per hour, where the dot area tracks the
// commit count of that cell. Empty cells get no dot.
func renderDot(data *schema.ChartData, cfg *contract.Config, provider chart.RendererProvider, out io.Writer) error {
	var xs, ys []float64
	var counts []int
	maxCount := 0

	for row, day := range data.SeriesKeys {
		for hour, count := range data.Series[day] {
			if count == 0 {
				continue
			}
			xs = append(xs, float64(hour))
			ys = append(ys, float64(row))
			counts = append(counts, count)
			if count > maxCount {
				maxCount = count
			}
		}
	}
	if len(xs) == 0 {
		return fmt.Errorf("no data to chart for %s", data.Kind)
	}

	dotWidth := func(_, _ chart.Range, index int, _, _ float64) float64 {
		span := float64(maxDotWidth - minDotWidth)
		return minDotWidth + span*float64(counts[index])/float64(maxCount)
	}

	graph := chart.Chart{
		Title:  data.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.XAxis{
			Ticks: hourTicks(),
			Range: &chart.ContinuousRange{Min: -1, Max: 24},
		},
		YAxis: chart.YAxis{
			Ticks: weekdayTicks(data.SeriesKeys),
			Range: &chart.ContinuousRange{Min: -1, Max: float64(len(data.SeriesKeys))},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth:      chart.Disabled,
					DotWidth:         minDotWidth,
					DotWidthProvider: dotWidth,
					DotColor:         drawing.ColorBlue,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(provider, out)
}

// hourTicks labels every second hour to keep the axis readable.
func hourTicks() []chart.Tick {
	var ticks []chart.Tick
	for h := 0; h < 24; h += 2 {
		ticks = append(ticks, chart.Tick{
			Value: float64(h),
			Label: fmt.Sprintf("%02d", h),
		})
	}
	return ticks
}

// weekdayTicks labels each row with its weekday name. The boundary ticks
// keep the range anchored without showing a label.
func weekdayTicks(days []string) []chart.Tick {
	ticks := []chart.Tick{{Value: -1, Label: ""}}
	for i, day := range days {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: day})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(days)), Label: ""})
	return ticks
}

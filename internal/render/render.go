// Package render draws chart data as SVG or PNG images.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart renders the chart data to the configured output target. A
// ".png" suffix selects PNG; anything else, including stdout, gets SVG.
func WriteChart(data *schema.ChartData, cfg *contract.Config) error {
	out, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("cannot open output %q: %w", cfg.OutputFile, err)
	}
	if out != os.Stdout {
		defer func() { _ = out.Close() }()
	}

	provider := rendererFor(cfg.OutputFile)
	switch data.Kind.Shape() {
	case schema.PieShape:
		return renderPie(data, cfg, provider, out)
	case schema.DotShape:
		return renderDot(data, cfg, provider, out)
	default:
		return renderBar(data, cfg, provider, out)
	}
}

// rendererFor picks the image backend from the target file name.
func rendererFor(target string) chart.RendererProvider {
	if strings.HasSuffix(strings.ToLower(target), ".png") {
		return chart.PNG
	}
	return chart.SVG
}

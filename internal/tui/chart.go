package tui

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"runcalc/internal/analysis"
	"runcalc/internal/service"
)

// RenderPaceChart plots predicted pace, in minutes per unit, across the prediction distances
func RenderPaceChart(predictions []service.PredictionDisplay, unit analysis.Unit, width int) string {
	if len(predictions) < 2 {
		return ""
	}
	if width <= 0 || width > 60 {
		width = 50
	}

	data := make([]float64, len(predictions))
	for i, p := range predictions {
		data[i] = p.PaceSeconds / 60
	}

	first, last := predictions[0], predictions[len(predictions)-1]
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("pace (%s), %s to %s", unit.PaceLabel(), first.Distance, last.Distance)),
	)
}

package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SettlementChart plots the settlement of each load case in order
func SettlementChart(names []string, settlements []float64) string {
	if len(settlements) == 0 {
		return ""
	}

	series := make([]float64, len(settlements))
	for i, s := range settlements {
		series[i] = s * 1000 // mm
	}
	if len(series) == 1 {
		series = append(series, series[0])
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(len(series)*12),
		asciigraph.Precision(2),
		asciigraph.Caption("Settlement per load case (mm)"),
	))
	sb.WriteString("\n\n")

	for i, name := range names {
		if i >= len(settlements) {
			break
		}
		sb.WriteString(fmt.Sprintf("  %d. %-20s %8.2f mm\n", i+1, name, settlements[i]*1000))
	}

	return sb.String()
}

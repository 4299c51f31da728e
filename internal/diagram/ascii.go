package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D plan coordinate (m)
type Point struct {
	X float64
	Y float64
}

// PressureDiagramData holds data for drawing the soil pressure under a footing
type PressureDiagramData struct {
	Case string

	// Footing width in the direction of the moment (m)
	Width float64

	// Analysis results
	Eccentricity float64 // m
	SigmaMax     float64 // kN/m²
	SigmaMin     float64 // kN/m²
	Triangular   bool

	// Limits
	Kern         float64 // B/6 (m)
	TippingLimit float64 // B/3 (m)
	Tipping      bool
}

// ContactLength returns the width in contact with the soil (m).
// With a triangular distribution the contact is 3·(B/2 − e).
func (d PressureDiagramData) ContactLength() float64 {
	if !d.Triangular {
		return d.Width
	}
	c := 3 * (d.Width/2 - math.Abs(d.Eccentricity))
	return math.Max(0, math.Min(c, d.Width))
}

// PressureAt returns the contact pressure at distance x from the loaded edge
func (d PressureDiagramData) PressureAt(x float64) float64 {
	if !d.Triangular {
		return d.SigmaMax + (d.SigmaMin-d.SigmaMax)*x/d.Width
	}
	c := d.ContactLength()
	if c <= 0 || x >= c {
		return 0
	}
	return d.SigmaMax * (1 - x/c)
}

// DrawPressureDiagram creates an ASCII diagram of the contact pressure across the width
func DrawPressureDiagram(data PressureDiagramData) string {
	var sb strings.Builder

	rows := 12
	barWidth := 40

	title := "  PRESSURE DISTRIBUTION"
	if data.Case != "" {
		title += " - " + data.Case
	}
	sb.WriteString("\n")
	sb.WriteString(title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(title))-2) + "\n\n")

	scale := 0.0
	if data.SigmaMax > 0 {
		scale = float64(barWidth) / data.SigmaMax
	}

	for i := 0; i <= rows; i++ {
		x := data.Width * float64(i) / float64(rows)
		p := data.PressureAt(x)

		barLen := int(math.Round(p * scale))
		if barLen < 0 {
			barLen = 0
		}

		label := fmt.Sprintf("  x = %5.2f m │", x)
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("%s%s▶ σmax = %.2f kN/m²\n", label, strings.Repeat("█", barLen), data.SigmaMax))
		case rows:
			sb.WriteString(fmt.Sprintf("%s%s▶ σmin = %.2f kN/m²\n", label, strings.Repeat("█", barLen), data.SigmaMin))
		default:
			sb.WriteString(fmt.Sprintf("%s%s\n", label, strings.Repeat("█", barLen)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Eccentricity e = %.4f m (kern B/6 = %.4f m, tipping limit B/3 = %.4f m)\n",
		data.Eccentricity, data.Kern, data.TippingLimit))
	if data.Triangular {
		sb.WriteString(fmt.Sprintf("  Triangular distribution, contact length = %.2f m\n", data.ContactLength()))
	} else {
		sb.WriteString("  Linear distribution, resultant within the middle third\n")
	}
	if data.Tipping {
		sb.WriteString("  ⚠ Tipping risk: e > B/3\n")
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CaseMarker holds the values annotated on the plan for one load case
type CaseMarker struct {
	Name         string
	Settlement   float64 // m
	Eccentricity float64 // m
	Rotation     float64 // degrees
}

// PlanDiagramData holds data for drawing the footing plan
type PlanDiagramData struct {
	Length  float64 // L (m), along X
	Width   float64 // B (m), along Y
	Corners []Point // annotation anchors, in case order
	Cases   []CaseMarker
}

// CornerLabel returns the annotation for the i-th case
func CornerLabel(c CaseMarker) string {
	return fmt.Sprintf("%s\nSettlement: %.4f m\nEcc: %.4f m\nRot: %.2f°", c.Name, c.Settlement, c.Eccentricity, c.Rotation)
}

// ExportFootingPlan exports the footing plan with one annotated corner per load case
// and returns the path written. The i-th case is placed at corner i mod 4.
// Unsupported extensions get ".png" appended.
func ExportFootingPlan(data PlanDiagramData, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = "Footing Settlement, Eccentricity, and Rotation Representation"
	p.Title.Padding = vg.Points(20)
	p.X.Label.Text = "Footing Length (m)"
	p.Y.Label.Text = "Footing Width (m)"
	p.Add(plotter.NewGrid())

	corners := data.Corners
	if len(corners) == 0 {
		return "", fmt.Errorf("footing plan needs at least one corner")
	}

	// Footing outline
	outline := make(plotter.XYs, len(corners)+1)
	for i, c := range corners {
		outline[i] = plotter.XY{X: c.X, Y: c.Y}
	}
	outline[len(corners)] = outline[0]
	footingLine, err := plotter.NewLine(outline)
	if err != nil {
		return "", err
	}
	footingLine.LineStyle.Width = vg.Points(2)
	footingLine.LineStyle.Color = color.Black
	p.Add(footingLine)

	// Middle third in the direction of the moment
	kern, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.Width / 3},
		{X: data.Length, Y: data.Width / 3},
		{X: data.Length, Y: 2 * data.Width / 3},
		{X: 0, Y: 2 * data.Width / 3},
		{X: 0, Y: data.Width / 3},
	})
	if err != nil {
		return "", err
	}
	kern.LineStyle.Width = vg.Points(1)
	kern.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	kern.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(kern)
	p.Legend.Add("Middle third", kern)

	// Corners
	cornerPts := make(plotter.XYs, len(corners))
	for i, c := range corners {
		cornerPts[i] = plotter.XY{X: c.X, Y: c.Y}
	}
	scatter, err := plotter.NewScatter(cornerPts)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add("Corner 1", scatter)

	// Annotations, stacked when more than four cases share a corner
	if len(data.Cases) > 0 {
		xys := make([]plotter.XY, len(data.Cases))
		texts := make([]string, len(data.Cases))
		for i, c := range data.Cases {
			corner := corners[i%len(corners)]
			offset := float64(i/len(corners)) * 0.8
			xys[i] = plotter.XY{X: corner.X, Y: corner.Y + offset}
			texts[i] = CornerLabel(c)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
		if err != nil {
			return "", err
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Font.Size = vg.Points(8)
			labels.TextStyle[i].XAlign = draw.XRight
			labels.TextStyle[i].YAlign = draw.YBottom
		}
		p.Add(labels)
	}

	p.X.Min = -1
	p.X.Max = data.Length + 1
	p.Y.Min = -1
	p.Y.Max = data.Width + 1

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	path := filename
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tex", ".tif", ".tiff":
	default:
		path += ".png"
	}
	if err := p.Save(width, height, path); err != nil {
		return "", err
	}
	return path, nil
}

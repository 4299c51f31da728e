package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofound/internal/diagram"
	"github.com/alexiusacademia/gofound/internal/din"
	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/alexiusacademia/gofound/internal/project"
	"github.com/alexiusacademia/gofound/internal/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Input
	analyzeFile string

	// Geometry overrides (m)
	analyzeLength float64
	analyzeWidth  float64
	analyzeDepth  float64

	// Material overrides
	analyzeE   float64
	analyzeSBC float64

	// Options
	analyzeParallel    bool
	analyzeShowDiagram bool
	analyzeShowChart   bool

	// Exports
	analyzePlotFile string
	analyzePDFFile  string
	analyzeXLSXFile string
)

var footingAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze settlement, tipping and rotation for each load case",
	Long: `Compute for each load case of a rectangular footing:

  e    = M / V
  e ≤ B/6:  σmax,min = V/(B·L) · (1 ± 6e/B)     (linear distribution)
  e > B/6:  σmax = 2V/(B·L), σmin = 0           (triangular distribution)
  S    = σmax · B · f / E
  tipping risk if e > B/3
  tan α = M / (B · E · f)

f is the correction factor of the load case (1.0 if none is given).

Examples:
  # Reference crane foundation (4 load cases)
  gofound footing analyze

  # Project file with a different footing width
  gofound footing analyze -f tc2.yaml --width 8.5

  # Excel load cases, plan plot and PDF report
  gofound footing analyze -f cases.xlsx -L 7.7 -B 7.7 -H 1.4 --plot plan.png --pdf report.pdf`,
	RunE: runFootingAnalyze,
}

func init() {
	footingCmd.AddCommand(footingAnalyzeCmd)

	footingAnalyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Project file (.json, .yaml, .yml, .xlsx)")

	// Geometry flags
	footingAnalyzeCmd.Flags().Float64VarP(&analyzeLength, "length", "L", din.FootingLength, "Footing length L (m)")
	footingAnalyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "B", din.FootingWidth, "Footing width B in the moment direction (m)")
	footingAnalyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "H", din.FootingDepth, "Footing depth H (m)")

	// Material flags
	footingAnalyzeCmd.Flags().Float64VarP(&analyzeE, "elastic-modulus", "E", din.ElasticModulus, "Elastic modulus of the subsoil E (kN/m²)")
	footingAnalyzeCmd.Flags().Float64Var(&analyzeSBC, "soil-bearing-capacity", din.SoilBearingCapacity, "Soil bearing capacity (kN/m², reported only)")

	// Options
	footingAnalyzeCmd.Flags().BoolVar(&analyzeParallel, "parallel", false, "Evaluate load cases concurrently")
	footingAnalyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII pressure diagram per load case")
	footingAnalyzeCmd.Flags().BoolVar(&analyzeShowChart, "chart", false, "Show ASCII settlement chart")

	// Exports
	footingAnalyzeCmd.Flags().StringVarP(&analyzePlotFile, "plot", "o", "", "Export footing plan plot (png, svg, pdf, ...)")
	footingAnalyzeCmd.Flags().StringVar(&analyzePDFFile, "pdf", "", "Export PDF calculation report")
	footingAnalyzeCmd.Flags().StringVar(&analyzeXLSXFile, "xlsx", "", "Export results workbook")
}

// analysisInput collects everything the engine needs for one run
type analysisInput struct {
	Project  *project.Project
	Geometry footing.Geometry
	Cases    footing.LoadCases
	Config   footing.Config
}

// buildAnalysisInput applies defaults < environment < project file < flags
func buildAnalysisInput(cmd *cobra.Command, base footing.Material) (*analysisInput, error) {
	p := project.Default()
	if analyzeFile != "" {
		loaded, err := project.LoadFromFile(analyzeFile)
		if err != nil {
			return nil, fmt.Errorf("loading project: %w", err)
		}
		p = loaded
		log.Debugf("loaded %d load cases from %s", len(p.Cases), analyzeFile)
	}

	geom := p.Geometry
	if geom == (footing.Geometry{}) {
		geom = din.DefaultGeometry()
	}
	flags := cmd.Flags()
	if flags.Changed("length") {
		geom.Length = analyzeLength
	}
	if flags.Changed("width") {
		geom.Width = analyzeWidth
	}
	if flags.Changed("depth") {
		geom.Depth = analyzeDepth
	}

	material := p.MergeMaterial(base)
	if flags.Changed("elastic-modulus") {
		material.ElasticModulus = analyzeE
	}
	if flags.Changed("soil-bearing-capacity") {
		material.SoilBearingCapacity = analyzeSBC
	}

	return &analysisInput{
		Project:  p,
		Geometry: geom,
		Cases:    p.LoadCases(),
		Config: footing.Config{
			Material: material,
			Factors:  p.Factors(),
			Parallel: analyzeParallel,
		},
	}, nil
}

func runFootingAnalyze(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	in, err := buildAnalysisInput(cmd, appConfig.Material)
	if err != nil {
		return err
	}

	a, err := footing.Analyze(in.Geometry, in.Cases, in.Config)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	printAnalysis(out, in, a)

	if analyzeShowDiagram {
		for _, r := range a.Results {
			fmt.Fprintln(out, diagram.DrawPressureDiagram(pressureDiagramData(a.Geometry, r)))
		}
	}
	if analyzeShowChart {
		fmt.Fprintln(out, diagram.SettlementChart(in.Cases.Names(), a.Settlements()))
	}

	return exportAnalysis(in.Project, a)
}

func printAnalysis(out io.Writer, in *analysisInput, a *footing.Analysis) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     FOUNDATION SETTLEMENT & TIPPING ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if in.Project.Name != "" {
		fmt.Fprintf(out, "  Project: %s\n", in.Project.Name)
	}
	if in.Project.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", in.Project.Description)
	}
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Footing Length (L):\t%.2f m\n", a.Geometry.Length)
	fmt.Fprintf(w, "  Footing Width (B):\t%.2f m\n", a.Geometry.Width)
	fmt.Fprintf(w, "  Footing Depth (H):\t%.2f m\n", a.Geometry.Depth)
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.0f kN/m²\n", a.Material.ElasticModulus)
	fmt.Fprintf(w, "  Soil Bearing Capacity:\t%.0f kN/m² (not checked)\n", a.Material.SoilBearingCapacity)
	fmt.Fprintf(w, "  Kern (B/6):\t%.4f m\n", a.Geometry.Kern())
	fmt.Fprintf(w, "  Tipping Limit (B/3):\t%.4f m\n", a.Geometry.TippingLimit())
	w.Flush()
	fmt.Fprintln(out)

	// Results table
	fmt.Fprintln(out, "RESULTS PER LOAD CASE:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load Case\tf\te (m)\tσmax (kN/m²)\tσmin (kN/m²)\tS (m)\tα (°)\tTipping\n")
	fmt.Fprintf(w, "  ─────────\t─\t─────\t────────────\t────────────\t─────\t─────\t───────\n")
	for _, r := range a.Results {
		tipping := "✓"
		if r.Tipping == footing.Risk {
			tipping = "⚠ RISK"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.4f\t%.2f\t%.2f\t%.4f\t%.2f\t%s\n",
			r.Load.Name, r.CorrectionFactor, r.Eccentricity, r.SigmaMax, r.SigmaMin, r.Settlement, r.RotationAngle, tipping)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SUMMARY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprint(out, report.Text(a))
	fmt.Fprintln(out)

	if gov, ok := a.Governing(); ok {
		status := "No load case exceeds e > B/3"
		if a.AnyTippingRisk() {
			status = "WARNING: tipping risk in at least one load case"
		}
		fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING SETTLEMENT", []string{
			fmt.Sprintf("%s: S = %.4f m", gov.Load.Name, gov.Settlement),
			status,
		}))
		fmt.Fprintln(out)
	}
}

func exportAnalysis(p *project.Project, a *footing.Analysis) error {
	if analyzePlotFile != "" {
		path, err := diagram.ExportFootingPlan(planDiagramData(a), analyzePlotFile)
		if err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		log.Infof("Footing plan exported to: %s", path)
	}

	if analyzePDFFile == "" && analyzeXLSXFile == "" {
		return nil
	}
	meta := report.NewMeta(p.Name)

	if analyzePDFFile != "" {
		if err := writeFile(analyzePDFFile, func(w io.Writer) error { return report.WritePDF(w, a, meta) }); err != nil {
			return fmt.Errorf("exporting PDF report: %w", err)
		}
		log.WithField("report_id", meta.ID).Infof("PDF report exported to: %s", analyzePDFFile)
	}
	if analyzeXLSXFile != "" {
		if err := writeFile(analyzeXLSXFile, func(w io.Writer) error { return report.WriteXLSX(w, a, meta) }); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		log.WithField("report_id", meta.ID).Infof("Workbook exported to: %s", analyzeXLSXFile)
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func pressureDiagramData(g footing.Geometry, r footing.CaseResult) diagram.PressureDiagramData {
	return diagram.PressureDiagramData{
		Case:         r.Load.Name,
		Width:        g.Width,
		Eccentricity: r.Eccentricity,
		SigmaMax:     r.SigmaMax,
		SigmaMin:     r.SigmaMin,
		Triangular:   r.Triangular,
		Kern:         g.Kern(),
		TippingLimit: g.TippingLimit(),
		Tipping:      r.Tipping == footing.Risk,
	}
}

func planDiagramData(a *footing.Analysis) diagram.PlanDiagramData {
	data := diagram.PlanDiagramData{
		Length: a.Geometry.Length,
		Width:  a.Geometry.Width,
	}
	for _, c := range a.Geometry.Corners() {
		data.Corners = append(data.Corners, diagram.Point{X: c.X, Y: c.Y})
	}

	settlements, eccentricities, rotations := a.Settlements(), a.Eccentricities(), a.RotationAngles()
	for i, r := range a.Results {
		data.Cases = append(data.Cases, diagram.CaseMarker{
			Name:         r.Name(),
			Settlement:   settlements[i],
			Eccentricity: eccentricities[i],
			Rotation:     rotations[i],
		})
	}
	return data
}

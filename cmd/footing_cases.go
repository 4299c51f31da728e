package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gofound/internal/din"
	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/spf13/cobra"
)

var footingCasesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List the reference load cases and correction factors",
	Long: `List the reference crane foundation load cases with their
resultant actions and settlement correction factors.

Load cases not listed here use a correction factor of 1.0.`,
	Run: runFootingCases,
}

func init() {
	footingCmd.AddCommand(footingCasesCmd)
}

func runFootingCases(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "REFERENCE LOAD CASES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tLoad Case\tM (kN-m)\tH (kN)\tV (kN)\tFactor\n")
	fmt.Fprintf(w, "  ─\t─────────\t────────\t──────\t──────\t──────\n")
	for i, lc := range din.LoadCases {
		fmt.Fprintf(w, "  %d\t%s\t%.1f\t%.1f\t%.1f\t%.2f\n", i+1, lc.Name, lc.Moment, lc.Horizontal, lc.Vertical, lc.Factor)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Default correction factor: %.1f\n", footing.DefaultCorrectionFactor)
	fmt.Fprintln(out)
}

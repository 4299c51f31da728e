package cmd

import (
	"github.com/spf13/cobra"
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Rectangular footing settlement and tipping analysis",
	Long: `Analyze rectangular foundation footings under named load cases.

Subcommands:
  analyze  - Compute pressure, settlement, tipping and rotation per load case
  cases    - List the reference load cases and correction factors

Load cases are read from a project file (JSON, YAML or XLSX).
Without a file the reference crane foundation is analyzed.

Example YAML project:
  name: Tower crane TC-2
  geometry: {length: 7.7, width: 7.7, depth: 1.4}
  material: {elastic_modulus: 20000}
  cases:
    - {name: Crane Operation, moment: 5681, horizontal: 65, vertical: 2975.2, factor: 1.25}
    - {name: Storm Front, moment: 6980, horizontal: 100, vertical: 2925.2, factor: 1.02}

Excel projects list one load case per row after a header row:
  name | moment | horizontal | vertical | factor (optional)`,
}

func init() {
	rootCmd.AddCommand(footingCmd)
}

package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofound/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofound",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofound v%s\n", version.Version)
		fmt.Println("Foundation Settlement & Tipping Analysis Tool")
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

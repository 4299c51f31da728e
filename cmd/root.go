package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gofound/internal/config"
	"github.com/alexiusacademia/gofound/internal/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string

	// appConfig is loaded before any subcommand runs
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gofound",
	Short: "Foundation Settlement & Tipping Analysis Tool",
	Long: `gofound - Go Foundation Settlement & Tipping Analysis

A CLI tool for the analysis of rectangular crane foundation footings
under named load cases (crane operation, storm, assembly).

For every load case this tool computes:
  - Eccentricity of the vertical load (e = M/V)
  - Soil contact pressure (linear or triangular distribution)
  - Settlement with a load-case-specific correction factor
  - Tipping check (e > B/3)
  - Rotation angle of the footing

The elastic modulus defaults to E = 20000 kN/m² (DIN 4019).`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			cfg.LogLevel = level
		}
		log.SetLevel(cfg.LogLevel)
		log.Debugf("configuration: E=%.0f kN/m², soil bearing capacity=%.0f kN/m²", cfg.Material.ElasticModulus, cfg.Material.SoilBearingCapacity)

		appConfig = cfg
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofound v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Foundation Settlement & Tipping Analysis             ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for settlement, tipping and rotation checks")
		fmt.Println("  of rectangular foundation footings.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Eccentricity-based soil pressure distribution")
		fmt.Println("    • Settlement with load-case correction factors")
		fmt.Println("    • Tipping check and rotation angle per load case")
		fmt.Println("    • Project files in JSON, YAML or Excel")
		fmt.Println("    • Plan plots, PDF and Excel reports, HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gofound --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// Command stokescalc predicts disc-stack centrifuge separation performance
// for produced-water treatment: oil/solids removal efficiency and effluent
// oil-in-water quality from feed composition, bowl geometry and an operating
// setpoint.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "stokescalc",
		Short: "Centrifuge separation calculator for water-treatment processing",
		Long: `stokescalc is a steady-state calculation tool for disc-stack centrifuge
separation of oil, water and solids. It chains Stokes settling, Richardson-Zaki
hindered settling, Arrhenius viscosity and Langmuir chemical adsorption into a
single efficiency and water-quality estimate.

Examples:
  stokescalc validate
  stokescalc calculate --temp 65 --rpm 3500 --flow 12
  stokescalc sweep --param rpm --from 1500 --to 5000 --step 250`,
		SilenceUsage: true,
	}

	root.AddCommand(newCalculateCmd(), newValidateCmd(), newSweepCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

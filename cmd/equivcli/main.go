// Command equivcli hosts the equiv_induct command: a SAT-based k-step
// bounded model checker that discharges equivalence markers in a
// netlist. Modeled on cmd/operator-cli's cobra.Command + logrus wiring.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "equivcli",
		Short: "equivcli",
		Long:  "A CLI tool hosting the equiv_induct equivalence-proving command.",

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newEquivInductCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

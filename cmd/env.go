package cmd

import (
	"os"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/config"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/sim"

	"github.com/spf13/cobra"
)

var envConfig string

var envCmd = &cobra.Command{
	Use:   "env",
	Args:  cobra.NoArgs,
	Short: "Builds the simulation environment for a configuration",
	Long: `Builds the simulation environment for a configuration: checks the pre-built
IP library dependencies, builds missing simulation IP modules and creates the
vendor simulation project. An already built environment is left untouched.`,
	Run: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().StringVarP(&envConfig, "config", "c", "", "Testbench configuration")
	envCmd.RegisterFlagCompletionFunc("config", completeConfigs)
}

func runEnv(cmd *cobra.Command, args []string) {
	cfg := envConfig
	if cfg == "" {
		cfg = config.GetConfig().DefaultConfig
	}

	bench := getBench()
	if sim.BuildEnv(bench, cfg, getTool(), getOpts()) == "" {
		os.Exit(1)
	}
}

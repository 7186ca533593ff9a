package cmd

import (
	"os"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/config"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/sim"

	"github.com/spf13/cobra"
)

var (
	buildConfig string
	buildTest   string
	buildMode   string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Args:  cobra.NoArgs,
	Short: "Builds the simulation environment and runs a test program",
	Long: `Builds the simulation environment for a configuration and runs the selected
test program against it. Equivalent to 'atb env' followed by 'atb run'.`,
	Run: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildConfig, "config", "c", "", "Testbench configuration")
	buildCmd.Flags().StringVarP(&buildTest, "test", "t", "", "Test program to run")
	buildCmd.Flags().StringVarP(&buildMode, "mode", "m", "", "Run mode ('batch' or 'gui')")
	buildCmd.RegisterFlagCompletionFunc("config", completeConfigs)
	buildCmd.RegisterFlagCompletionFunc("test", completeTests)
}

func runBuild(cmd *cobra.Command, args []string) {
	conf := config.GetConfig()
	cfg, test, mode := buildConfig, buildTest, buildMode
	if cfg == "" {
		cfg = conf.DefaultConfig
	}
	if test == "" {
		test = conf.DefaultTest
	}
	if mode == "" {
		mode = conf.DefaultMode
	}

	bench := getBench()
	if !sim.BuildTests(bench, cfg, test, mode, getTool(), getOpts()) {
		os.Exit(1)
	}
}

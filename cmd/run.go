package cmd

import (
	"os"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/config"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/sim"

	"github.com/spf13/cobra"
)

var (
	runConfig string
	runTest   string
	runMode   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Runs a test program against a built configuration",
	Long: `Runs a test program against a built configuration. The simulation environment
must have been built before ('atb env'). In gui mode the simulator runs
interactively and the configuration's waveform setup is reused or recorded.`,
	Run: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runConfig, "config", "c", "", "Testbench configuration")
	runCmd.Flags().StringVarP(&runTest, "test", "t", "", "Test program to run")
	runCmd.Flags().StringVarP(&runMode, "mode", "m", "", "Run mode ('batch' or 'gui')")
	runCmd.RegisterFlagCompletionFunc("config", completeConfigs)
	runCmd.RegisterFlagCompletionFunc("test", completeTests)
}

func runRun(cmd *cobra.Command, args []string) {
	conf := config.GetConfig()
	cfg, test, mode := runConfig, runTest, runMode
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
	if !sim.RunTest(bench, cfg, test, mode, getTool()) {
		os.Exit(1)
	}
}

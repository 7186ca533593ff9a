package cmd

import (
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Args:  cobra.NoArgs,
	Short: "Removes all generated projects and simulation results",
	Long:  `Removes all generated projects and simulation results.`,
	Run:   runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) {
	bench := getBench()
	log.Debug("Removing runs directory '%s'.\n", bench.RunsDir())
	if err := util.RemoveDir(bench.RunsDir()); err != nil {
		log.Fatal("Failed to remove '%s': %s.\n", bench.RunsDir(), err)
	}
}

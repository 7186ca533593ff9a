package cmd

import (
	"os"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/config"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/sim"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/workspace"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atb",
	Short: "The ADI testbench tool (atb)",
	Long: `The ADI testbench tool (atb) sequences the vendor EDA toolchain to build
and run HDL testbenches for the FMCOMMS2 reference design. It validates the
pre-built IP library, builds the simulation IP modules on demand, creates
simulation projects and launches test programs in batch or gui mode.`,
}

var workspaceDir string

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&workspaceDir, "dir", "", "HDL workspace directory (defaults to searching upwards from the current directory)")
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}

// getBench locates the HDL workspace and returns the FMCOMMS2 testbench.
func getBench() sim.Bench {
	if workspaceDir != "" {
		if !workspace.IsRoot(workspaceDir) {
			log.Fatal("'%s' is not an HDL workspace: the '%s/' and '%s/' subtrees are required.\n",
				workspaceDir, workspace.LibraryDirName, workspace.ProjectsDirName)
		}
		return sim.Fmcomms2(workspaceDir)
	}

	root, err := workspace.GetRoot()
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	return sim.Fmcomms2(root)
}

func getTool() *sim.Tool {
	return sim.NewTool(config.GetConfig().Vivado)
}

func getOpts() sim.BuildOpts {
	conf := config.GetConfig()
	return sim.BuildOpts{
		Part:        conf.Part,
		Board:       conf.Board,
		LibraryMode: conf.LibraryMode,
	}
}

func completeConfigs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfgs, _ := sim.ListTests(getBench())
	return cfgs, cobra.ShellCompDirectiveNoFileComp
}

func completeTests(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	_, tests := sim.ListTests(getBench())
	return tests, cobra.ShellCompDirectiveNoFileComp
}

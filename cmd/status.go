package cmd

import (
	"os"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/sim"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/workspace"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Args:  cobra.NoArgs,
	Short: "Prints a status report of the workspace and its testbench artifacts",
	Long:  `Prints a status report of the workspace and its testbench artifacts.`,
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	bench := getBench()
	log.Log("Workspace: '%s'\n", bench.Root)

	if repo, err := workspace.OpenRepo(bench.Root); err == nil {
		if hash, err := repo.Head(); err == nil {
			log.Log("Checked out at '%s'.\n", hash)
		}
		if dirty, err := repo.IsDirty(); err == nil && dirty {
			log.Warning("Workspace has uncommited changes.\n")
		}
	} else {
		log.Log("Workspace is not a git checkout.\n")
	}

	log.Log("\nLibrary dependencies:\n")
	log.IndentationLevel = 1
	built := map[string]bool{}
	for _, module := range sim.Fmcomms2Deps {
		built[module] = true
	}
	for _, module := range sim.MissingDeps(bench.Root, sim.Fmcomms2Deps) {
		built[module] = false
	}
	for _, entry := range util.OrderedEntries(built) {
		if entry.Value {
			log.Success("'%s' is built.\n", entry.Key)
		} else {
			log.Error("'%s' has not been built.\n", entry.Key)
		}
	}

	log.IndentationLevel = 0
	log.Log("\nSimulation IP modules:\n")
	log.IndentationLevel = 1
	vips := map[string]bool{}
	for _, module := range sim.VipModules {
		vips[module] = true
	}
	for _, module := range sim.MissingVipModules(bench.Root) {
		vips[module] = false
	}
	for _, entry := range util.OrderedEntries(vips) {
		if entry.Value {
			log.Success("'%s' is built.\n", entry.Key)
		} else {
			log.Log("'%s' will be built on demand.\n", entry.Key)
		}
	}

	log.IndentationLevel = 0
	log.Log("\nConfigurations:\n")
	log.IndentationLevel = 1
	cfgs, _ := sim.ListTests(bench)
	for _, cfg := range cfgs {
		if util.FileExists(bench.ProjectFile(cfg)) {
			log.Success("'%s' environment is built.\n", cfg)
		} else {
			log.Log("'%s' environment is not built.\n", cfg)
		}
	}

	log.IndentationLevel = 0
	log.Log("\n")
	if log.ErrorOccured() {
		log.Error("Errors found while checking workspace status.\n")
		os.Exit(1)
	}
	log.Success("Done.\n")
}

package cmd

import (
	"fmt"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/sim"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "Lists all testbench configurations and test programs",
	Long:  `Lists all testbench configurations and test programs.`,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	cfgs, tests := sim.ListTests(getBench())

	fmt.Println("Configurations:")
	for _, cfg := range cfgs {
		fmt.Printf("  %s\n", cfg)
	}
	fmt.Println("\nTests:")
	for _, test := range tests {
		fmt.Printf("  %s\n", test)
	}
}

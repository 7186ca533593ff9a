package main

import (
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/cmd"
)

func main() {
	cmd.Execute()
}

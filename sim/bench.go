// Package sim sequences the vendor EDA toolchain to build simulation
// environments and run testbench programs for the reference designs of
// an HDL workspace.
package sim

import (
	"path"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/workspace"
)

// ProjectExt is the extension of the generated vendor project file.
const ProjectExt = ".xpr"

// WaveConfigExt is the extension of waveform configuration files.
const WaveConfigExt = ".wcfg"

// Run modes accepted by the simulation launcher.
const (
	ModeBatch = "batch"
	ModeGui   = "gui"
)

// Bench describes one testbench of the workspace.
type Bench struct {
	// Root is the workspace root directory.
	Root string
	// Name is the testbench name under the projects/ subtree.
	Name string
}

// Fmcomms2 returns the testbench of the FMCOMMS2 reference design.
func Fmcomms2(root string) Bench {
	return Bench{Root: root, Name: "fmcomms2"}
}

// Dir returns the testbench directory.
func (b Bench) Dir() string {
	return path.Join(b.Root, workspace.ProjectsDirName, b.Name)
}

// CfgsDir holds the configuration scripts of the testbench.
func (b Bench) CfgsDir() string {
	return path.Join(b.Dir(), "cfgs")
}

// TestsDir holds the test programs of the testbench.
func (b Bench) TestsDir() string {
	return path.Join(b.Dir(), "tests")
}

// RunsDir holds all build and simulation artifacts of the testbench.
func (b Bench) RunsDir() string {
	return path.Join(b.Dir(), "runs")
}

// WavesDir holds the waveform configurations of the testbench.
func (b Bench) WavesDir() string {
	return path.Join(b.Dir(), "waves")
}

// CfgScript returns the configuration script of the given configuration.
func (b Bench) CfgScript(cfg string) string {
	return path.Join(b.CfgsDir(), cfg+".tcl")
}

// TestFile returns the source file of the given test program.
func (b Bench) TestFile(test string) string {
	return path.Join(b.TestsDir(), test+".sv")
}

// RunDir returns the build directory of the given configuration.
func (b Bench) RunDir(cfg string) string {
	return path.Join(b.RunsDir(), cfg)
}

// ProjectFile returns the vendor project file of the given configuration.
// Its presence marks the configuration's environment as built.
func (b Bench) ProjectFile(cfg string) string {
	return path.Join(b.RunDir(cfg), cfg+ProjectExt)
}

// ResultsDir returns the results directory of the given configuration.
func (b Bench) ResultsDir(cfg string) string {
	return path.Join(b.RunDir(cfg), "results")
}

// WaveConfig returns the waveform configuration file of the given configuration.
func (b Bench) WaveConfig(cfg string) string {
	return path.Join(b.WavesDir(), cfg+WaveConfigExt)
}

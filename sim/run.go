package sim

import (
	"bytes"
	"path"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/assets"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/manifest"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/workspace"
)

// RunTest launches a test program against a built configuration and
// reports whether it passed. In gui mode the simulator runs
// interactively, reusing the configuration's waveform setup when one
// exists and saving a fresh one otherwise.
func RunTest(bench Bench, cfg, test, mode string, tool *Tool) bool {
	if mode != ModeBatch && mode != ModeGui {
		log.Error("Invalid mode '%s': must be '%s' or '%s'.\n", mode, ModeBatch, ModeGui)
		return false
	}

	project := bench.ProjectFile(cfg)
	if !util.FileExists(project) {
		log.Error("Project '%s' does not exist. Build the environment first ('atb env --config %s').\n",
			project, cfg)
		return false
	}

	testFile := bench.TestFile(test)
	if !util.FileExists(testFile) {
		log.Error("Test program '%s' not found at '%s'.\n", test, testFile)
		return false
	}
	mirrorLog(bench)

	gui := mode == ModeGui
	waveConfig := bench.WaveConfig(cfg)

	var script bytes.Buffer
	err := assets.Templates.ExecuteTemplate(&script, "run.tcl.tmpl", assets.RunTmplParams{
		Project:       project,
		Test:          test,
		Gui:           gui,
		WaveConfig:    waveConfig,
		HasWaveConfig: util.FileExists(waveConfig),
	})
	if err != nil {
		log.Error("Failed to generate the run script: %s.\n", err)
		return false
	}
	scriptPath := path.Join(bench.RunDir(cfg), test+"_run.tcl")
	if err := util.WriteFile(scriptPath, script.Bytes()); err != nil {
		log.Error("Failed to write '%s': %s.\n", scriptPath, err)
		return false
	}
	if gui {
		if err := util.EnsureDir(bench.WavesDir()); err != nil {
			log.Error("Failed to create '%s': %s.\n", bench.WavesDir(), err)
			return false
		}
	}

	workspace.Export(bench.Root)
	logFile := path.Join(bench.ResultsDir(cfg), test+".log")
	log.Log("Running test '%s' on configuration '%s' (%s mode).\n", test, cfg, mode)
	runErr := tool.Source(bench.RunDir(cfg), scriptPath, gui, logFile)

	passed := runErr == nil
	if !gui && passed {
		passed = logPassed(logFile)
	}
	writeRunManifest(bench, cfg, test, mode, passed)

	if runErr != nil {
		log.Error("Vendor tool failed: %s.\n", runErr)
		return false
	}
	if !passed {
		log.Error("Test '%s' FAILED. See '%s'.\n", test, logFile)
		return false
	}
	log.Success("Test '%s' PASSED.\n", test)
	return true
}

// BuildTests builds the simulation environment and then runs the
// selected test program.
func BuildTests(bench Bench, cfg, test, mode string, tool *Tool, opts BuildOpts) bool {
	if BuildEnv(bench, cfg, tool, opts) == "" {
		return false
	}
	return RunTest(bench, cfg, test, mode, tool)
}

// logPassed scans the captured simulation output. The testbench
// programs print a final "TEST PASSED" / "TEST FAILED" verdict; an
// absent verdict counts as a failure.
func logPassed(logFile string) bool {
	data, err := util.ReadFile(logFile)
	if err != nil {
		return false
	}
	if bytes.Contains(data, []byte("TEST FAILED")) {
		return false
	}
	return bytes.Contains(data, []byte("TEST PASSED"))
}

func writeRunManifest(bench Bench, cfg, test, mode string, passed bool) {
	record := manifest.NewRun("atb "+util.ToolVersion.String(), bench.Name, cfg, test, mode)
	record.Passed = passed
	if repo, err := workspace.OpenRepo(bench.Root); err == nil {
		if hash, err := repo.Head(); err == nil {
			record.GitHash = hash
		}
		if dirty, err := repo.IsDirty(); err == nil {
			record.GitDirty = dirty
		}
	} else {
		log.Debug("Workspace is not a git checkout: %s.\n", err)
	}

	manifestPath := path.Join(bench.ResultsDir(cfg), test+"_run.yaml")
	if err := manifest.Write(manifestPath, record); err != nil {
		log.Warning("Failed to write the run manifest: %s.\n", err)
	}
}

package sim

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/manifest"
)

func buildBench(t *testing.T) (Bench, *Tool, *fakeRunner) {
	t.Helper()
	bench := scaffold(t)
	tool, runner := newFakeTool(bench)
	if BuildEnv(bench, "cfg1", tool, testOpts) == "" {
		t.Fatal("environment build failed")
	}
	return bench, tool, runner
}

func TestRunTestRequiresProject(t *testing.T) {
	bench := scaffold(t)
	tool, runner := newFakeTool(bench)

	if RunTest(bench, "cfg1", "test_program", ModeBatch, tool) {
		t.Fatal("run succeeded without a project artifact")
	}
	if runner.calls != 0 {
		t.Fatal("vendor tool was invoked without a project artifact")
	}
	if _, err := os.Stat(bench.RunsDir()); !os.IsNotExist(err) {
		t.Fatal("a rejected run created the runs directory")
	}
}

func TestRunTestPassVerdict(t *testing.T) {
	bench, tool, runner := buildBench(t)
	runner.output = "Simulation started\nTEST PASSED\n"

	if !RunTest(bench, "cfg1", "test_program", ModeBatch, tool) {
		t.Fatal("expected the test to pass")
	}

	record, err := manifest.Read(path.Join(bench.ResultsDir("cfg1"), "test_program_run.yaml"))
	if err != nil {
		t.Fatalf("run manifest missing: %s", err)
	}
	if !record.Passed || record.Config != "cfg1" || record.Test != "test_program" || record.Mode != ModeBatch {
		t.Fatalf("unexpected run manifest: %+v", record)
	}
}

func TestRunTestFailVerdict(t *testing.T) {
	bench, tool, runner := buildBench(t)
	runner.output = "Simulation started\nTEST FAILED\n"

	if RunTest(bench, "cfg1", "test_program", ModeBatch, tool) {
		t.Fatal("expected the test to fail")
	}

	record, err := manifest.Read(path.Join(bench.ResultsDir("cfg1"), "test_program_run.yaml"))
	if err != nil {
		t.Fatalf("run manifest missing: %s", err)
	}
	if record.Passed {
		t.Fatal("run manifest records a pass for a failed test")
	}
}

func TestRunTestMissingVerdictFails(t *testing.T) {
	bench, tool, runner := buildBench(t)
	runner.output = "Simulation started\n"

	if RunTest(bench, "cfg1", "test_program", ModeBatch, tool) {
		t.Fatal("a run without a verdict must count as failed")
	}
}

func TestRunTestRerunDiscardsOldVerdict(t *testing.T) {
	bench, tool, runner := buildBench(t)
	runner.output = "Simulation started\nTEST PASSED\n"

	if !RunTest(bench, "cfg1", "test_program", ModeBatch, tool) {
		t.Fatal("expected the first run to pass")
	}

	// The second run of the same test produces no verdict. The log from
	// the first run must not leak into its result.
	runner.output = "Simulation started\n"
	if RunTest(bench, "cfg1", "test_program", ModeBatch, tool) {
		t.Fatal("a re-run without a verdict was reported as passed")
	}
}

func TestRunTestRejectsUnknownTest(t *testing.T) {
	bench, tool, runner := buildBench(t)
	callsAfterBuild := runner.calls

	if RunTest(bench, "cfg1", "test_missing", ModeBatch, tool) {
		t.Fatal("run succeeded for an unknown test program")
	}
	if runner.calls != callsAfterBuild {
		t.Fatal("vendor tool was invoked for an unknown test program")
	}
}

func TestRunTestGuiSavesWaveConfig(t *testing.T) {
	bench, tool, _ := buildBench(t)

	if !RunTest(bench, "cfg1", "test_program", ModeGui, tool) {
		t.Fatal("gui run failed")
	}

	script, err := os.ReadFile(path.Join(bench.RunDir("cfg1"), "test_program_run.tcl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(script), "save_wave_config "+bench.WaveConfig("cfg1")) {
		t.Fatal("gui run without a wave config must save one")
	}

	// With a wave config present, the next gui run opens it instead.
	mustWrite(bench.WaveConfig("cfg1"))
	if !RunTest(bench, "cfg1", "test_program", ModeGui, tool) {
		t.Fatal("second gui run failed")
	}
	script, err = os.ReadFile(path.Join(bench.RunDir("cfg1"), "test_program_run.tcl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(script), "open_wave_config "+bench.WaveConfig("cfg1")) {
		t.Fatal("gui run with a wave config must open it")
	}
}

func TestRunTestRejectsInvalidMode(t *testing.T) {
	bench, tool, _ := buildBench(t)
	if RunTest(bench, "cfg1", "test_program", "interactive", tool) {
		t.Fatal("invalid mode accepted")
	}
}

func TestBuildTests(t *testing.T) {
	bench := scaffold(t)
	tool, runner := newFakeTool(bench)
	runner.output = "TEST PASSED\n"

	if !BuildTests(bench, "cfg1", "test_program", ModeBatch, tool, testOpts) {
		t.Fatal("expected build and run to succeed")
	}
	// Simulation IPs, project creation and one simulation run.
	if runner.calls != len(VipModules)+2 {
		t.Fatalf("expected %d invocations, got %d", len(VipModules)+2, runner.calls)
	}
}

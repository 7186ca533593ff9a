package sim

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path"
	"strings"
	"testing"
)

// fakeRunner stands in for the vendor tool. It records every invocation
// and creates the artifacts a real run would leave behind.
type fakeRunner struct {
	calls   int
	scripts []string
	fail    bool
	output  string
	bench   Bench
}

func (r *fakeRunner) Run(cmd *exec.Cmd) error {
	r.calls++
	script := cmd.Args[len(cmd.Args)-1]
	r.scripts = append(r.scripts, script)

	if r.output != "" && cmd.Stdout != nil {
		io.WriteString(cmd.Stdout, r.output)
	}
	if r.fail {
		return errors.New("vendor tool exited with status 1")
	}

	// Leave behind the marker artifact the orchestrator checks for.
	name := strings.TrimSuffix(path.Base(script), ".tcl")
	if path.Base(path.Dir(script)) == "simlib" {
		mustWrite(vipMarker(r.bench.Root, name))
	} else if path.Dir(script) == r.bench.RunsDir() {
		mustWrite(r.bench.ProjectFile(name))
	}
	return nil
}

func mustWrite(filePath string) {
	os.MkdirAll(path.Dir(filePath), 0775)
	os.WriteFile(filePath, []byte{}, 0664)
}

// scaffold creates a complete HDL workspace: all library dependency
// markers, the simulation IP build scripts and the FMCOMMS2 testbench
// with two configurations and two test programs.
func scaffold(t *testing.T) Bench {
	t.Helper()
	root := t.TempDir()
	bench := Fmcomms2(root)

	for _, dir := range []string{"library", "projects/fmcomms2/cfgs", "projects/fmcomms2/tests"} {
		if err := os.MkdirAll(path.Join(root, dir), 0775); err != nil {
			t.Fatal(err)
		}
	}
	for _, module := range Fmcomms2Deps {
		mustWrite(marker(root, module))
	}
	for _, module := range VipModules {
		mustWrite(vipScript(root, module))
	}
	for _, cfg := range []string{"cfg1", "cfg2"} {
		mustWrite(bench.CfgScript(cfg))
	}
	for _, test := range []string{"test_program", "test_dma"} {
		mustWrite(bench.TestFile(test))
	}
	return bench
}

func newFakeTool(bench Bench) (*Tool, *fakeRunner) {
	runner := &fakeRunner{bench: bench}
	return &Tool{Bin: "vivado", Runner: runner}, runner
}

var testOpts = BuildOpts{Part: "xc7z045ffg900-2", LibraryMode: "ooc"}

func TestBuildEnvRejectsInvalidWorkspace(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(path.Join(root, "projects/fmcomms2"), 0775); err != nil {
		t.Fatal(err)
	}
	// library/ is missing.
	bench := Fmcomms2(root)
	tool, runner := newFakeTool(bench)

	if project := BuildEnv(bench, "cfg1", tool, testOpts); project != "" {
		t.Fatalf("expected an empty result, got '%s'", project)
	}
	if runner.calls != 0 {
		t.Fatalf("vendor tool was invoked %d times on an invalid workspace", runner.calls)
	}
}

func TestMissingDepHaltsBuild(t *testing.T) {
	bench := scaffold(t)
	if err := os.Remove(marker(bench.Root, "axi_dmac")); err != nil {
		t.Fatal(err)
	}

	missing := MissingDeps(bench.Root, Fmcomms2Deps)
	if len(missing) != 1 || missing[0] != "axi_dmac" {
		t.Fatalf("expected exactly 'axi_dmac' to be missing, got %v", missing)
	}

	tool, runner := newFakeTool(bench)
	if project := BuildEnv(bench, "cfg1", tool, testOpts); project != "" {
		t.Fatalf("expected an empty result, got '%s'", project)
	}
	if runner.calls != 0 {
		t.Fatalf("vendor tool was invoked %d times despite a missing dependency", runner.calls)
	}
}

func TestBuildEnv(t *testing.T) {
	bench := scaffold(t)
	tool, runner := newFakeTool(bench)

	project := BuildEnv(bench, "cfg1", tool, testOpts)
	if project != bench.ProjectFile("cfg1") {
		t.Fatalf("unexpected project path '%s'", project)
	}
	// One invocation per simulation IP module plus the project creation.
	if runner.calls != len(VipModules)+1 {
		t.Fatalf("expected %d invocations, got %d", len(VipModules)+1, runner.calls)
	}
}

func TestBuildEnvIsIdempotent(t *testing.T) {
	bench := scaffold(t)
	tool, runner := newFakeTool(bench)

	first := BuildEnv(bench, "cfg1", tool, testOpts)
	if first == "" {
		t.Fatal("first build failed")
	}
	callsAfterFirst := runner.calls

	second := BuildEnv(bench, "cfg1", tool, testOpts)
	if second != first {
		t.Fatalf("second build returned '%s', want '%s'", second, first)
	}
	if runner.calls != callsAfterFirst {
		t.Fatalf("second build invoked the vendor tool %d more times", runner.calls-callsAfterFirst)
	}
}

func TestBuildEnvFailsWithoutProjectArtifact(t *testing.T) {
	bench := scaffold(t)
	runner := &fakeRunner{bench: bench, fail: true}
	tool := &Tool{Bin: "vivado", Runner: runner}

	if project := BuildEnv(bench, "cfg1", tool, testOpts); project != "" {
		t.Fatalf("expected an empty result, got '%s'", project)
	}
}

func TestBuildEnvRejectsUnknownConfig(t *testing.T) {
	bench := scaffold(t)
	tool, runner := newFakeTool(bench)

	if project := BuildEnv(bench, "cfg9", tool, testOpts); project != "" {
		t.Fatalf("expected an empty result, got '%s'", project)
	}
	if runner.calls != 0 {
		t.Fatal("vendor tool was invoked for an unknown configuration")
	}
	if _, err := os.Stat(bench.RunsDir()); !os.IsNotExist(err) {
		t.Fatal("a rejected build created the runs directory")
	}
}

package sim

import (
	"bytes"
	"path"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/assets"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/workspace"
)

// BuildOpts carries the project creation settings of the vendor tool.
type BuildOpts struct {
	// Part is the FPGA part the project is created for.
	Part string
	// Board is the evaluation board identifier, may be empty.
	Board string
	// LibraryMode is handed to the sourced vendor scripts.
	LibraryMode string
}

// BuildEnv prepares the simulation environment of one configuration:
// it validates the workspace, checks the library IP dependency markers,
// builds the missing simulation IP modules and creates the vendor
// project. It returns the path of the project file, or "" when any
// phase fails. An existing project is detected and left untouched.
func BuildEnv(bench Bench, cfg string, tool *Tool, opts BuildOpts) string {
	if !workspace.IsRoot(bench.Root) {
		log.Error("'%s' is not an HDL workspace: the '%s/' and '%s/' subtrees are required.\n",
			bench.Root, workspace.LibraryDirName, workspace.ProjectsDirName)
		return ""
	}
	if !util.DirExists(bench.Dir()) {
		log.Error("Testbench '%s' not found at '%s'.\n", bench.Name, bench.Dir())
		return ""
	}

	cfgScript := bench.CfgScript(cfg)
	if !util.FileExists(cfgScript) {
		log.Error("Unknown configuration '%s': '%s' does not exist.\n", cfg, cfgScript)
		return ""
	}

	if !bench.CheckDeps() {
		return ""
	}
	mirrorLog(bench)

	if !buildSimLib(bench, tool, opts) {
		return ""
	}

	project := bench.ProjectFile(cfg)
	if util.FileExists(project) {
		log.Log("Project '%s' already exists. Skipping project creation.\n", project)
		return project
	}

	workspace.Export(bench.Root)

	var script bytes.Buffer
	err := assets.Templates.ExecuteTemplate(&script, "project.tcl.tmpl", assets.ProjectTmplParams{
		Name:        cfg,
		Part:        opts.Part,
		Board:       opts.Board,
		Dir:         bench.RunDir(cfg),
		CfgScript:   cfgScript,
		HdlDir:      bench.Root,
		LibraryMode: opts.LibraryMode,
	})
	if err != nil {
		log.Error("Failed to generate the project script: %s.\n", err)
		return ""
	}
	scriptPath := path.Join(bench.RunsDir(), cfg+".tcl")
	if err := util.WriteFile(scriptPath, script.Bytes()); err != nil {
		log.Error("Failed to write '%s': %s.\n", scriptPath, err)
		return ""
	}

	log.Log("Creating simulation project for configuration '%s'.\n", cfg)
	logFile := path.Join(bench.ResultsDir(cfg), "project.log")
	if err := tool.Source(bench.RunsDir(), scriptPath, false, logFile); err != nil {
		log.Error("Vendor tool failed to create the project: %s.\n", err)
		return ""
	}
	if !util.FileExists(project) {
		log.Error("Vendor tool finished but project '%s' was not created. See '%s'.\n", project, logFile)
		return ""
	}

	log.Success("Environment for configuration '%s' is ready.\n", cfg)
	return project
}

// mirrorLog keeps a copy of the console output next to the build
// artifacts. It is armed only once a command has passed its validation
// and committed to producing artifacts, so a rejected invocation leaves
// the runs directory untouched.
func mirrorLog(bench Bench) {
	log.MirrorToFile(path.Join(bench.RunsDir(), "atb.log"))
}

// buildSimLib builds the simulation IP modules that have no marker file
// yet. Already built modules are skipped.
func buildSimLib(bench Bench, tool *Tool, opts BuildOpts) bool {
	for _, module := range VipModules {
		if util.FileExists(vipMarker(bench.Root, module)) {
			log.Debug("Simulation IP '%s' is already built.\n", module)
			continue
		}

		buildScript := vipScript(bench.Root, module)
		if !util.FileExists(buildScript) {
			log.Error("Simulation IP '%s' has no build script at '%s'.\n", module, buildScript)
			return false
		}

		var script bytes.Buffer
		err := assets.Templates.ExecuteTemplate(&script, "simlib.tcl.tmpl", assets.SimLibTmplParams{
			Module:      module,
			Script:      buildScript,
			HdlDir:      bench.Root,
			LibraryMode: opts.LibraryMode,
		})
		if err != nil {
			log.Error("Failed to generate the build script for '%s': %s.\n", module, err)
			return false
		}
		scriptPath := path.Join(bench.RunsDir(), "simlib", module+".tcl")
		if err := util.WriteFile(scriptPath, script.Bytes()); err != nil {
			log.Error("Failed to write '%s': %s.\n", scriptPath, err)
			return false
		}

		workspace.Export(bench.Root)
		log.Log("Building simulation IP '%s'.\n", module)
		logFile := path.Join(bench.RunsDir(), "simlib", module+".log")
		if err := tool.Source(path.Join(bench.RunsDir(), "simlib"), scriptPath, false, logFile); err != nil {
			log.Error("Vendor tool failed to build simulation IP '%s': %s.\n", module, err)
			return false
		}
		if !util.FileExists(vipMarker(bench.Root, module)) {
			log.Error("Simulation IP '%s' was built but '%s' did not appear.\n",
				module, vipMarker(bench.Root, module))
			return false
		}
	}
	return true
}

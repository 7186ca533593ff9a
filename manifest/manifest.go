// Package manifest records the outcome of simulation runs so that
// results directories stay interpretable after the fact.
package manifest

import (
	"time"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"

	"gopkg.in/yaml.v2"
)

// Run describes a single simulation run of one test program.
type Run struct {
	Tool     string `yaml:"tool"`
	Bench    string `yaml:"bench"`
	Config   string `yaml:"config"`
	Test     string `yaml:"test"`
	Mode     string `yaml:"mode"`
	GitHash  string `yaml:"git_hash,omitempty"`
	GitDirty bool   `yaml:"git_dirty,omitempty"`
	Passed   bool   `yaml:"passed"`
	Time     string `yaml:"time"`
}

// NewRun creates a run record stamped with the current time.
func NewRun(tool, bench, config, test, mode string) Run {
	return Run{
		Tool:   tool,
		Bench:  bench,
		Config: config,
		Test:   test,
		Mode:   mode,
		Time:   time.Now().Format(time.RFC3339),
	}
}

// Write stores the run record at the given path.
func Write(filePath string, run Run) error {
	data, err := yaml.Marshal(&run)
	if err != nil {
		return err
	}
	return util.WriteFile(filePath, data)
}

// Read loads a run record from the given path.
func Read(filePath string) (Run, error) {
	var run Run
	data, err := util.ReadFile(filePath)
	if err != nil {
		return run, err
	}
	err = yaml.Unmarshal(data, &run)
	return run, err
}

package sim

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
)

// ListTests enumerates the configuration and test program names of the
// bench by matching file names: cfgs/cfg*.tcl and tests/test_*.sv. The
// listing never touches the filesystem beyond reading directories.
func ListTests(bench Bench) ([]string, []string) {
	cfgs := matchNames(bench.CfgsDir(), "cfg", ".tcl")
	tests := matchNames(bench.TestsDir(), "test_", ".sv")
	return cfgs, tests
}

// matchNames returns the sorted base names of the files in dir that
// carry the given prefix and extension.
func matchNames(dir, prefix, ext string) []string {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	matching := util.FilteredSlice(entries, func(entry os.FileInfo) bool {
		return !entry.IsDir() &&
			strings.HasPrefix(entry.Name(), prefix) &&
			strings.HasSuffix(entry.Name(), ext)
	})
	names := util.MappedSlice(matching, func(entry os.FileInfo) string {
		return strings.TrimSuffix(entry.Name(), ext)
	})
	return util.OrderedSlice(names)
}

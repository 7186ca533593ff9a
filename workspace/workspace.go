// Package workspace locates and validates the HDL source tree that the
// vendor build and simulation scripts operate on.
package workspace

import (
	"fmt"
	"os"
	"path"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
)

// LibraryDirName is the subtree holding the pre-built HDL IP library.
const LibraryDirName = "library"

// ProjectsDirName is the subtree holding the reference design projects.
const ProjectsDirName = "projects"

// HdlDirEnvVar is consumed by the vendor TCL scripts sourced during builds.
const HdlDirEnvVar = "ADI_HDL_DIR"

// IsRoot reports whether dir is the root of an HDL workspace, i.e.
// contains both the library/ and projects/ subtrees.
func IsRoot(dir string) bool {
	return util.DirExists(path.Join(dir, LibraryDirName)) &&
		util.DirExists(path.Join(dir, ProjectsDirName))
}

// FindRoot walks up from dir until it finds an HDL workspace root.
func FindRoot(dir string) (string, error) {
	p := dir
	for {
		if IsRoot(p) {
			return p, nil
		}
		if p == "/" || p == "." {
			return "", fmt.Errorf("'%s' is not inside an HDL workspace (no '%s/' and '%s/' subtrees found)",
				dir, LibraryDirName, ProjectsDirName)
		}
		p = path.Dir(p)
	}
}

// GetRoot returns the workspace root for the current working directory.
func GetRoot() (string, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRoot(workingDir)
}

// Export sets the HDL root variable consumed by sourced vendor scripts.
func Export(root string) {
	log.Debug("Exporting %s='%s'.\n", HdlDirEnvVar, root)
	os.Setenv(HdlDirEnvVar, root)
}

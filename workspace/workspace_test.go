package workspace

import (
	"os"
	"path"
	"testing"
)

func scaffold(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{LibraryDirName, ProjectsDirName, "projects/fmcomms2/tests"} {
		if err := os.MkdirAll(path.Join(root, dir), 0775); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestIsRoot(t *testing.T) {
	root := scaffold(t)
	if !IsRoot(root) {
		t.Fatal("expected a valid workspace root")
	}
	if IsRoot(path.Join(root, ProjectsDirName)) {
		t.Fatal("projects/ alone must not be a workspace root")
	}

	empty := t.TempDir()
	if IsRoot(empty) {
		t.Fatal("empty directory must not be a workspace root")
	}
}

func TestFindRootWalksUp(t *testing.T) {
	root := scaffold(t)
	found, err := FindRoot(path.Join(root, "projects/fmcomms2/tests"))
	if err != nil {
		t.Fatal(err)
	}
	if found != root {
		t.Fatalf("expected root '%s', got '%s'", root, found)
	}
}

func TestFindRootFailsOutsideWorkspace(t *testing.T) {
	if _, err := FindRoot(t.TempDir()); err == nil {
		t.Fatal("expected an error outside a workspace")
	}
}

func TestExport(t *testing.T) {
	root := scaffold(t)
	defer os.Unsetenv(HdlDirEnvVar)
	Export(root)
	if os.Getenv(HdlDirEnvVar) != root {
		t.Fatalf("%s not exported", HdlDirEnvVar)
	}
}

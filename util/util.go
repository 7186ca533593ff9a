package util

import (
	"io/ioutil"
	"os"
	"path"
)

// FileMode is the default FileMode used when creating files.
const FileMode = 0664

// DirMode is the default FileMode used when creating directories.
const DirMode = 0775

// FileExists checks whether some file exists.
func FileExists(file string) bool {
	stat, err := os.Stat(file)
	return err == nil && !stat.IsDir()
}

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

// ReadFile reads the content of a file.
func ReadFile(filePath string) ([]byte, error) {
	return ioutil.ReadFile(filePath)
}

// WriteFile writes data to a file, creating the parent directory as needed.
func WriteFile(filePath string, data []byte) error {
	if err := os.MkdirAll(path.Dir(filePath), DirMode); err != nil {
		return err
	}
	return ioutil.WriteFile(filePath, data, FileMode)
}

// EnsureDir creates the directory if it does not yet exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirMode)
}

// RemoveDir removes a directory and all its content.
func RemoveDir(dir string) error {
	return os.RemoveAll(dir)
}

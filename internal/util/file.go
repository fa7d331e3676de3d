package util

import (
	"errors"
	"io/fs"
	"os"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// FileExists reports whether path names an existing file or directory.
// Errors other than "not exist" count as existing so callers never overwrite
// something they could not inspect.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

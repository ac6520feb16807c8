package lifecycle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permissions for written manifests and their parent directories.
const (
	FilePerm os.FileMode = 0644
	DirPerm  os.FileMode = 0755
)

// WithManifest writes content to path, runs op, and returns op's error.
//
// When persist is true the file is left in place afterwards. Otherwise it is
// removed on every exit path from op. A removal failure is reported only when
// op itself succeeded, so op's error always reaches the caller unchanged.
func WithManifest(path string, content []byte, persist bool, op func() error) (err error) {
	if err := write(path, content); err != nil {
		return err
	}
	if persist {
		return op()
	}

	MarkForExit(path)
	defer func() {
		rmErr := remove(path)
		unmark(path)
		if err == nil && rmErr != nil {
			err = rmErr
		}
	}()

	return op()
}

func write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// remove deletes path, treating an already-missing file as success.
func remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}

// Package adapter contains the infrastructure adapters the scan engine
// consumes: filesystem access, archive reading, loader-hierarchy traversal
// and inventory persistence. It intentionally hides direct `os` access so
// the domain logic can be tested without touching the disk.
package adapter

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "classwalk.dev/pkg/classwalk/internal/model"
)

// ClasspathFSAdapter abstracts the filesystem operations the scanner needs
// to classify and enumerate search-path entries.
type ClasspathFSAdapter interface {
	// Exists reports whether the entry is present on the backing store.
	Exists(entry m.Entry) bool

	// IsDir reports whether the entry is a directory.
	IsDir(entry m.Entry) bool

	// WalkFiles enumerates every regular file beneath root and returns the
	// slash-delimited paths relative to root.
	WalkFiles(root m.Entry) ([]string, error)

	// Open returns the content of one discovered resource for downstream
	// consumers. The scan engine itself never reads resource content.
	Open(entry m.Entry, resourceName string) (io.ReadCloser, error)
}

// LocalClasspathFSAdapter is the os-backed ClasspathFSAdapter.
type LocalClasspathFSAdapter struct{}

// NewLocalClasspathFSAdapter constructs a LocalClasspathFSAdapter.
func NewLocalClasspathFSAdapter() *LocalClasspathFSAdapter {
	return &LocalClasspathFSAdapter{}
}

// Exists reports whether the entry exists on disk.
func (a *LocalClasspathFSAdapter) Exists(entry m.Entry) bool {
	_, err := os.Stat(entry.FSPath())
	return err == nil
}

// IsDir reports whether the entry is a directory on disk.
func (a *LocalClasspathFSAdapter) IsDir(entry m.Entry) bool {
	info, err := os.Stat(entry.FSPath())
	return err == nil && info.IsDir()
}

// WalkFiles walks the directory tree under root and collects the relative
// slash-delimited path of every regular file. An unreadable subtree is
// skipped and the rest of the walk continues; only a failure on root
// itself is an error.
func (a *LocalClasspathFSAdapter) WalkFiles(root m.Entry) ([]string, error) {
	rootPath := root.FSPath()

	var files []string

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootPath {
				return err
			}

			slog.Debug("skipping unreadable path", "path", path, "error", err)

			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			return relErr
		}

		files = append(files, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Open opens the named resource beneath a directory entry.
func (a *LocalClasspathFSAdapter) Open(entry m.Entry, resourceName string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(entry.FSPath(), filepath.FromSlash(resourceName)))
}

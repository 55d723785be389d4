// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The name argument is the path of the file relative to the
// directory passed to Walk, file is the zip.File structure for it. If an error
// is returned, processing stops.
type WalkFunc func(name string, file *zip.File) error

// Walk walks all regular files in the archive located under dir ("" for the
// whole archive) in the order they are stored, calling walkFn for each one.
// Archives with absolute paths or path traversal components ("..") are
// rejected to prevent Zip Slip attacks.
func Walk(archive, dir string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	prefix := strings.TrimSuffix(dir, "/")
	if len(prefix) > 0 {
		prefix += "/"
	}

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(strings.TrimPrefix(name, prefix), f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile reads complete file from the archive refusing files which claim to
// be larger than limit bytes when uncompressed.
func ReadFile(f *zip.File, limit int64) ([]byte, error) {
	if f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("zip entry %q: too large (%d > %d)", f.Name, f.UncompressedSize64, limit)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	// never trust header alone
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("zip entry %q: too large (> %d)", f.Name, limit)
	}
	return data, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

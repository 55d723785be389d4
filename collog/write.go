package collog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// Marshal renders collection log as JSON. Empty indent produces compact
// output.
func Marshal(log Log, indent string) ([]byte, error) {
	if log == nil {
		log = Log{}
	}
	if len(indent) == 0 {
		return json.Marshal(log)
	}
	return json.MarshalIndent(log, "", indent)
}

// Write stores data as dir/name atomically: data goes to temporary file in
// the same directory which then replaces destination. It returns full path of
// the result and whether previous file has been replaced.
func Write(data []byte, dir, name string) (path string, replaced bool, err error) {
	if len(name) == 0 || filepath.Base(name) != name {
		return "", false, fmt.Errorf("%w: bad output file name '%s'", ErrConfig, name)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", false, fmt.Errorf("unable to create output directory: %w", err)
	}
	path = filepath.Join(dir, name)

	switch fi, err := os.Stat(path); {
	case err == nil && fi.IsDir():
		return "", false, fmt.Errorf("unable to write '%s': destination is a directory", path)
	case err == nil:
		replaced = true
	case !errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("unable to access '%s': %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", false, fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("unable to write '%s': %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("unable to sync '%s': %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return "", false, fmt.Errorf("unable to close '%s': %w", tmp.Name(), err)
	}
	// CreateTemp makes files accessible by owner only
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return "", false, fmt.Errorf("unable to set permissions on '%s': %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", false, fmt.Errorf("unable to move result into place: %w", err)
	}
	return path, replaced, nil
}

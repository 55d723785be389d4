package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/multierr"

	"cldump/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. When destination cannot be created report
// goes to temporary directory, Name tells where.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{entries: make(map[string]entry), file: f, created: time.Now()}, nil
}

// maxCopySize limits size of a single file snapshot taken by StoreCopy.
const maxCopySize = 64 << 20

// entry is either a path to a file read when report is finalized or data
// captured earlier.
type entry struct {
	path  string
	data  []byte
	stamp time.Time
}

func (e entry) captured() bool {
	return e.data != nil
}

// Report accumulates everything which goes into debug report archive. It is
// safe to call any method on nil Report, which means no report was requested.
// Report is not safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
	created time.Time
}

// Close writes archive and closes report file.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.finalize()
	return multierr.Append(err, r.file.Close())
}

// Name returns absolute name of report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file to be put into archive under name. File is read when
// report is closed, so it could still be written to, like a log.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	if old, exists := r.entries[name]; exists && old.path != path {
		panic(fmt.Sprintf("report entry [%s] is already taken by %s, refusing %s", name, old.path, path))
	}
	r.entries[name] = entry{path: path}
}

// StoreData puts data into archive under name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("report entry [%s] is already taken", name))
	}
	if data == nil {
		data = []byte{}
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// StoreCopy captures current content of the file, later changes to the file
// are not visible in the report. Repeated names get timestamp suffix.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("unable to copy '%s' to report: not a regular file", path)
	}
	if info.Size() > maxCopySize {
		return fmt.Errorf("unable to copy '%s' to report: file is too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	}
	if p, err := filepath.Abs(path); err == nil {
		path = p
	}
	r.entries[name] = entry{path: path, data: data, stamp: info.ModTime()}
	return nil
}

// finalize writes MANIFEST followed by all entries in name order. Stored
// files which do not exist by now are listed in MANIFEST only.
func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	names := slices.Sorted(maps.Keys(r.entries))
	if err := writeEntry(arc, "MANIFEST", r.created, r.manifest(names)); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]
		if e.captured() {
			if err := writeEntry(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := writeFile(arc, name, e.path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Report) manifest(names []string) io.Reader {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%s %s (%s)\t%s\n", misc.GetAppName(), misc.GetVersion(), misc.GetGitHash(), r.created.UTC().Format(time.RFC3339))
	for _, name := range names {
		e := r.entries[name]
		switch {
		case e.captured() && e.path != "":
			fmt.Fprintf(buf, "%s\tcopy of %s\n", name, e.path)
		case e.captured():
			fmt.Fprintf(buf, "%s\tdata\n", name)
		default:
			fmt.Fprintf(buf, "%s\t%s\n", name, e.path)
		}
	}
	return buf
}

func writeFile(arc *zip.Writer, name, path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeEntry(arc, name, info.ModTime(), f)
}

func writeEntry(arc *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

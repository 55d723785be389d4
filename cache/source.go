package cache

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"cldump/archive"
	"cldump/config"
)

type recordFunc func(id int, data []byte) error

// source enumerates records of a snapshot group by group.
type source interface {
	open() error
	records(ctx context.Context, group Group, log *zap.Logger, fn recordFunc) error
	close() error
}

// DetectFormat sniffs snapshot layout: directories are directory snapshots,
// files are recognized by their signature.
func DetectFormat(path string) (config.SnapshotFormat, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return config.SnapshotFormatAuto, fmt.Errorf("unable to access snapshot: %w", err)
	}
	if fi.IsDir() {
		return config.SnapshotFormatDirectory, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config.SnapshotFormatAuto, fmt.Errorf("unable to access snapshot: %w", err)
	}
	defer f.Close()

	// enough for any signature filetype knows about
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return config.SnapshotFormatAuto, fmt.Errorf("unable to read snapshot: %w", err)
	}
	head = head[:n]

	switch {
	case filetype.Is(head, "zip"):
		return config.SnapshotFormatZip, nil
	case filetype.Is(head, "sqlite"):
		return config.SnapshotFormatSqlite, nil
	}
	return config.SnapshotFormatAuto, fmt.Errorf("unable to recognize snapshot format of '%s'", path)
}

type namedRecord struct {
	name string
	id   int
	data []byte
}

// emit passes records to fn in natural order of their entry names.
func emit(ctx context.Context, recs []namedRecord, fn recordFunc) error {
	slices.SortStableFunc(recs, func(a, b namedRecord) int {
		switch {
		case natural.Less(a.name, b.name):
			return -1
		case natural.Less(b.name, a.name):
			return 1
		}
		return 0
	})
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec.id, rec.data); err != nil {
			return err
		}
	}
	return nil
}

func recordID(group Group, name string, log *zap.Logger) (int, bool) {
	id, ok := parseRecordName(name)
	if !ok {
		log.Debug("Skipping unexpected snapshot entry", zap.String("group", string(group)), zap.String("name", name))
	}
	return id, ok
}

// Directory snapshot: <root>/<group>/<id>.dat

type dirSource struct {
	root  string
	limit int64
}

func (d *dirSource) open() error {
	fi, err := os.Stat(d.root)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("'%s' is not a directory", d.root)
	}
	return nil
}

func (d *dirSource) records(ctx context.Context, group Group, log *zap.Logger, fn recordFunc) error {
	dir := filepath.Join(d.root, string(group))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read record group: %w", err)
	}

	recs := make([]namedRecord, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			log.Debug("Skipping unexpected snapshot entry", zap.String("group", string(group)), zap.String("name", entry.Name()))
			continue
		}
		id, ok := recordID(group, entry.Name(), log)
		if !ok {
			continue
		}
		data, err := readFile(filepath.Join(dir, entry.Name()), d.limit)
		if err != nil {
			return err
		}
		recs = append(recs, namedRecord{name: entry.Name(), id: id, data: data})
	}
	return emit(ctx, recs, fn)
}

func (d *dirSource) close() error {
	return nil
}

func readFile(name string, limit int64) ([]byte, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if fi.Size() > limit {
		return nil, fmt.Errorf("record '%s' is too large (%d > %d)", name, fi.Size(), limit)
	}
	return os.ReadFile(name)
}

// Zip snapshot: the same layout as directory one inside an archive.

type zipSource struct {
	archive string
	limit   int64
}

func (z *zipSource) open() error {
	r, err := zip.OpenReader(z.archive)
	if err != nil {
		return err
	}
	return r.Close()
}

func (z *zipSource) records(ctx context.Context, group Group, log *zap.Logger, fn recordFunc) error {
	var (
		recs []namedRecord
		seen int
	)
	err := archive.Walk(z.archive, string(group), func(name string, file *zip.File) error {
		seen++
		id, ok := recordID(group, name, log)
		if !ok {
			return nil
		}
		data, err := archive.ReadFile(file, z.limit)
		if err != nil {
			return err
		}
		recs = append(recs, namedRecord{name: name, id: id, data: data})
		return nil
	})
	if err != nil {
		return err
	}
	if seen == 0 {
		return fmt.Errorf("unable to read record group: no '%s' entries in archive", group)
	}
	return emit(ctx, recs, fn)
}

func (z *zipSource) close() error {
	return nil
}

// SQLite snapshot: table per group with (id INTEGER PRIMARY KEY, data BLOB).

type sqliteSource struct {
	database string
	limit    int64
	conn     *sqlite.Conn
}

func (s *sqliteSource) open() (err error) {
	if s.conn, err = sqlite.OpenConn(s.database, sqlite.OpenReadOnly); err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	return nil
}

func (s *sqliteSource) records(ctx context.Context, group Group, _ *zap.Logger, fn recordFunc) error {
	s.conn.SetInterrupt(ctx.Done())
	defer s.conn.SetInterrupt(nil)

	query := fmt.Sprintf(`SELECT id, data FROM %s ORDER BY id`, group)
	err := sqlitex.Execute(s.conn, query, &sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
		id := stmt.ColumnInt64(0)
		size := stmt.ColumnLen(1)
		if int64(size) > s.limit {
			return fmt.Errorf("record %d is too large (%d > %d)", id, size, s.limit)
		}
		data := make([]byte, size)
		stmt.ColumnBytes(1, data)
		return fn(int(id), data)
	}})
	if err != nil {
		return fmt.Errorf("read %s: %w", group, err)
	}
	return nil
}

func (s *sqliteSource) close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

package testutil

import (
	"archive/zip"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"cldump/defs"
)

// Record group names, the same for every snapshot layout.
const (
	GroupStructs = "structs"
	GroupEnums   = "enums"
	GroupItems   = "items"
)

// Snapshot is an in memory cache snapshot which could be written in any
// supported layout.
type Snapshot struct {
	groups map[string]map[int][]byte
}

func NewSnapshot() *Snapshot {
	return &Snapshot{groups: map[string]map[int][]byte{
		GroupStructs: {},
		GroupEnums:   {},
		GroupItems:   {},
	}}
}

// Raw puts payload into the group as is.
func (s *Snapshot) Raw(group string, id int, data []byte) *Snapshot {
	s.groups[group][id] = data
	return s
}

// Remove deletes record from the group.
func (s *Snapshot) Remove(group string, id int) *Snapshot {
	delete(s.groups[group], id)
	return s
}

func (s *Snapshot) Struct(id int, params defs.Params) *Snapshot {
	return s.Raw(GroupStructs, id, EncodeStruct(params))
}

func (s *Snapshot) Enum(id int, vals ...int32) *Snapshot {
	return s.Raw(GroupEnums, id, EncodeIntEnum(vals...))
}

func (s *Snapshot) Item(id int, name string) *Snapshot {
	return s.Raw(GroupItems, id, EncodeItem(name))
}

// Tab adds tab struct referencing enumeration of pages.
func (s *Snapshot) Tab(id, pagesEnum int) *Snapshot {
	return s.Struct(id, defs.Params{ParamTabEnum: Int(int32(pagesEnum))})
}

// Page adds page struct with name and enumeration of items.
func (s *Snapshot) Page(id int, name string, itemsEnum int) *Snapshot {
	return s.Struct(id, defs.Params{
		ParamPageName:      Str(name),
		ParamPageItemsEnum: Int(int32(itemsEnum)),
	})
}

// IDs returns ids of records in the group in ascending order.
func (s *Snapshot) IDs(group string) []int {
	return slices.Sorted(maps.Keys(s.groups[group]))
}

// Records returns records of the group in ascending id order.
func (s *Snapshot) Records(group string) []defs.RawRecord {
	ids := s.IDs(group)
	out := make([]defs.RawRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, defs.RawRecord{ID: id, Data: s.groups[group][id]})
	}
	return out
}

func groupNames() []string {
	return []string{GroupStructs, GroupEnums, GroupItems}
}

// WriteDir writes snapshot as directory tree <root>/<group>/<id>.dat and
// returns root.
func (s *Snapshot) WriteDir(t testing.TB, root string) string {
	t.Helper()
	for _, group := range groupNames() {
		dir := filepath.Join(root, group)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("unable to create %s: %v", dir, err)
		}
		for _, rec := range s.Records(group) {
			name := filepath.Join(dir, fmt.Sprintf("%d.dat", rec.ID))
			if err := os.WriteFile(name, rec.Data, 0644); err != nil {
				t.Fatalf("unable to write %s: %v", name, err)
			}
		}
	}
	return root
}

// WriteZip writes snapshot as zip archive with the same layout as WriteDir.
func (s *Snapshot) WriteZip(t testing.TB, name string) string {
	t.Helper()
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("unable to create %s: %v", name, err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, group := range groupNames() {
		for _, rec := range s.Records(group) {
			fw, err := w.Create(fmt.Sprintf("%s/%d.dat", group, rec.ID))
			if err != nil {
				t.Fatalf("unable to add record to %s: %v", name, err)
			}
			if _, err := fw.Write(rec.Data); err != nil {
				t.Fatalf("unable to write record to %s: %v", name, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unable to finalize %s: %v", name, err)
	}
	return name
}

// WriteSQLite writes snapshot as SQLite database with one table per group.
func (s *Snapshot) WriteSQLite(t testing.TB, name string) string {
	t.Helper()
	if err := s.writeSQLite(name); err != nil {
		t.Fatalf("unable to write %s: %v", name, err)
	}
	return name
}

func (s *Snapshot) writeSQLite(name string) (err error) {
	conn, err := sqlite.OpenConn(name, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return err
	}
	defer conn.Close()

	defer sqlitex.Save(conn)(&err)

	for _, group := range groupNames() {
		script := fmt.Sprintf("CREATE TABLE %s (id INTEGER PRIMARY KEY, data BLOB NOT NULL);", group)
		if err := sqlitex.ExecuteScript(conn, script, nil); err != nil {
			return err
		}
		for _, rec := range s.Records(group) {
			err := sqlitex.Execute(conn, fmt.Sprintf("INSERT INTO %s (id, data) VALUES (?, ?);", group),
				&sqlitex.ExecOptions{Args: []any{rec.ID, rec.Data}})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

package testutil

import (
	"testing"

	"cldump/defs"
)

// Records is decoded in memory snapshot, the same view of records cache
// store provides.
type Records struct {
	structs map[int]*defs.StructDef
	items   map[int]*defs.ItemDef
	enums   []defs.RawRecord
}

// Decode decodes structs and items of the snapshot, enumerations stay raw.
func (s *Snapshot) Decode(t testing.TB) *Records {
	t.Helper()
	r := &Records{
		structs: make(map[int]*defs.StructDef),
		items:   make(map[int]*defs.ItemDef),
		enums:   s.Records(GroupEnums),
	}
	for _, rec := range s.Records(GroupStructs) {
		def, err := defs.DecodeStruct(rec.ID, rec.Data)
		if err != nil {
			t.Fatalf("bad struct in snapshot: %v", err)
		}
		r.structs[rec.ID] = def
	}
	for _, rec := range s.Records(GroupItems) {
		def, err := defs.DecodeItem(rec.ID, rec.Data)
		if err != nil {
			t.Fatalf("bad item in snapshot: %v", err)
		}
		r.items[rec.ID] = def
	}
	return r
}

func (r *Records) Struct(id int) (*defs.StructDef, bool) {
	def, ok := r.structs[id]
	return def, ok
}

func (r *Records) Item(id int) (*defs.ItemDef, bool) {
	def, ok := r.items[id]
	return def, ok
}

func (r *Records) Enums() []defs.RawRecord {
	return r.enums
}

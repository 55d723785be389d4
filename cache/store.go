// Package cache loads game record snapshots and keeps them in memory for
// lookups during extraction.
package cache

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cldump/config"
	"cldump/defs"
)

// Group names record group of a snapshot. Name is used as directory name
// inside directory and zip snapshots and as table name in SQLite ones.
type Group string

const (
	GroupStructs Group = "structs"
	GroupEnums   Group = "enums"
	GroupItems   Group = "items"
)

// Groups lists all groups in load order.
var Groups = []Group{GroupStructs, GroupEnums, GroupItems}

// ParseGroup returns group by name.
func ParseGroup(name string) (Group, error) {
	for _, g := range Groups {
		if string(g) == name {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown record group '%s'", name)
}

// Undecodable is a struct or item record which failed to decode and was kept
// raw for inspection.
type Undecodable struct {
	defs.RawRecord
	Err error
}

// Option changes how snapshot is loaded.
type Option func(*Store)

// KeepUndecodable makes Open keep records which fail to decode instead of
// failing the whole load.
func KeepUndecodable() Option {
	return func(s *Store) {
		s.broken = make(map[Group]map[int]Undecodable)
	}
}

// Store is an immutable in memory snapshot. Structs and items are decoded
// when snapshot is loaded, enumerations are kept raw.
type Store struct {
	source  string
	format  config.SnapshotFormat
	structs map[int]*defs.StructDef
	items   map[int]*defs.ItemDef
	enums   []defs.RawRecord
	enumIdx map[int]int
	// nil unless undecodable records are kept
	broken map[Group]map[int]Undecodable
}

func newStore(source string, format config.SnapshotFormat, opts ...Option) *Store {
	s := &Store{
		source:  source,
		format:  format,
		structs: make(map[int]*defs.StructDef),
		items:   make(map[int]*defs.ItemDef),
		enumIdx: make(map[int]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Source returns path store has been loaded from.
func (s *Store) Source() string {
	return s.source
}

// Format returns actual snapshot layout.
func (s *Store) Format() config.SnapshotFormat {
	return s.format
}

func (s *Store) Struct(id int) (*defs.StructDef, bool) {
	def, ok := s.structs[id]
	return def, ok
}

func (s *Store) Item(id int) (*defs.ItemDef, bool) {
	def, ok := s.items[id]
	return def, ok
}

// Enums returns raw enumeration records in load order. Callers must not
// modify returned slice.
func (s *Store) Enums() []defs.RawRecord {
	return s.enums
}

// Enum returns raw enumeration record, first one wins when id repeats.
func (s *Store) Enum(id int) (defs.RawRecord, bool) {
	i, ok := s.enumIdx[id]
	if !ok {
		return defs.RawRecord{}, false
	}
	return s.enums[i], true
}

// Undecodable returns raw struct or item record kept because it failed to
// decode. Only stores opened with KeepUndecodable have any.
func (s *Store) Undecodable(group Group, id int) (Undecodable, bool) {
	rec, ok := s.broken[group][id]
	return rec, ok
}

// IDs returns sorted ids of records in the group, undecodable ones included.
func (s *Store) IDs(group Group) []int {
	switch group {
	case GroupStructs:
		ids := slices.AppendSeq(slices.Collect(maps.Keys(s.structs)), maps.Keys(s.broken[group]))
		slices.Sort(ids)
		return ids
	case GroupItems:
		ids := slices.AppendSeq(slices.Collect(maps.Keys(s.items)), maps.Keys(s.broken[group]))
		slices.Sort(ids)
		return ids
	case GroupEnums:
		ids := make([]int, 0, len(s.enums))
		for _, rec := range s.enums {
			ids = append(ids, rec.ID)
		}
		slices.Sort(ids)
		return slices.Compact(ids)
	}
	return nil
}

// Len returns number of records in the group.
func (s *Store) Len(group Group) int {
	switch group {
	case GroupStructs:
		return len(s.structs) + len(s.broken[group])
	case GroupItems:
		return len(s.items) + len(s.broken[group])
	case GroupEnums:
		return len(s.enums)
	}
	return 0
}

// add decodes and keeps single record. Repeated ids are ignored, the first
// record loaded wins.
func (s *Store) add(group Group, id int, data []byte, log *zap.Logger) error {
	switch group {
	case GroupStructs:
		if s.seen(group, id, s.structs[id] != nil, log) {
			return nil
		}
		def, err := defs.DecodeStruct(id, data)
		if err != nil {
			return s.keep(group, id, data, err, log)
		}
		s.structs[id] = def
	case GroupItems:
		if s.seen(group, id, s.items[id] != nil, log) {
			return nil
		}
		def, err := defs.DecodeItem(id, data)
		if err != nil {
			return s.keep(group, id, data, err, log)
		}
		s.items[id] = def
	case GroupEnums:
		if _, exists := s.enumIdx[id]; !exists {
			s.enumIdx[id] = len(s.enums)
		}
		s.enums = append(s.enums, defs.RawRecord{ID: id, Data: data})
	default:
		return fmt.Errorf("unknown record group '%s'", group)
	}
	return nil
}

func (s *Store) seen(group Group, id int, decoded bool, log *zap.Logger) bool {
	_, broken := s.broken[group][id]
	if decoded || broken {
		log.Debug("Duplicate record ignored", zap.String("group", string(group)), zap.Int("id", id))
		return true
	}
	return false
}

// keep remembers undecodable record when store was asked to, otherwise it
// returns decoding error.
func (s *Store) keep(group Group, id int, data []byte, err error, log *zap.Logger) error {
	if s.broken == nil {
		return err
	}
	log.Warn("Unable to decode record, keeping it raw", zap.String("group", string(group)), zap.Int("id", id), zap.Error(err))
	if s.broken[group] == nil {
		s.broken[group] = make(map[int]Undecodable)
	}
	s.broken[group][id] = Undecodable{RawRecord: defs.RawRecord{ID: id, Data: data}, Err: err}
	return nil
}

// parseRecordName extracts record id from "<id>.dat" entry name.
func parseRecordName(name string) (int, bool) {
	base, found := strings.CutSuffix(name, ".dat")
	if !found || len(base) == 0 || strings.ContainsAny(base, "/\\+-") {
		return 0, false
	}
	id, err := strconv.Atoi(base)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Open detects (when requested) snapshot layout and loads it.
func Open(ctx context.Context, path string, format config.SnapshotFormat, limit int64, log *zap.Logger, opts ...Option) (*Store, error) {
	if format == config.SnapshotFormatAuto {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		log.Debug("Snapshot format detected", zap.String("path", path), zap.Stringer("format", detected))
		format = detected
	}

	var src source
	switch format {
	case config.SnapshotFormatDirectory:
		src = &dirSource{root: path, limit: limit}
	case config.SnapshotFormatZip:
		src = &zipSource{archive: path, limit: limit}
	case config.SnapshotFormatSqlite:
		src = &sqliteSource{database: path, limit: limit}
	default:
		return nil, fmt.Errorf("unsupported snapshot format '%s'", format)
	}

	s := newStore(path, format, opts...)
	if err := load(ctx, s, src, log); err != nil {
		return nil, fmt.Errorf("unable to load %s snapshot '%s': %w", format, path, err)
	}
	log.Debug("Snapshot loaded",
		zap.Int("structs", s.Len(GroupStructs)),
		zap.Int("enums", s.Len(GroupEnums)),
		zap.Int("items", s.Len(GroupItems)))
	return s, nil
}

func load(ctx context.Context, s *Store, src source, log *zap.Logger) (err error) {
	if err := src.open(); err != nil {
		return err
	}
	defer func() {
		if e := src.close(); e != nil && err == nil {
			err = e
		}
	}()

	for _, group := range Groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := src.records(ctx, group, log, func(id int, data []byte) error {
			return s.add(group, id, data, log)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", group, err)
		}
	}
	return nil
}

package collog

import (
	"errors"
	"fmt"
	"slices"

	"cldump/defs"
)

// EnumResolver turns enumeration ids into ordered integer lists. Entries are
// decoded on request.
type EnumResolver struct {
	entries map[int][]byte
}

// NewEnumResolver indexes batch by id, first entry wins when ids repeat.
func NewEnumResolver(batch []defs.RawRecord) *EnumResolver {
	r := &EnumResolver{entries: make(map[int][]byte, len(batch))}
	for _, rec := range batch {
		if _, exists := r.entries[rec.ID]; !exists {
			r.entries[rec.ID] = rec.Data
		}
	}
	return r
}

// Resolve returns integer values of enumeration in declared order.
func (r *EnumResolver) Resolve(enumID int) ([]int32, error) {
	data, ok := r.entries[enumID]
	if !ok {
		return nil, newResolveError(RecordKindEnum, enumID, ErrRecordNotFound)
	}

	def, err := defs.DecodeEnum(enumID, data)
	switch {
	case errors.Is(err, defs.ErrEmptyEnum):
		return nil, newResolveError(RecordKindEnum, enumID, fmt.Errorf("%w: record is empty", ErrDecodeFailure))
	case err != nil:
		return nil, newResolveError(RecordKindEnum, enumID, fmt.Errorf("%w: %w", ErrDecodeFailure, err))
	case def.HasStrings():
		return nil, newResolveError(RecordKindEnum, enumID, fmt.Errorf("%w: enumeration holds string values", ErrDecodeFailure))
	case def.IntVals == nil:
		return nil, newResolveError(RecordKindEnum, enumID, fmt.Errorf("%w: enumeration has no values", ErrDecodeFailure))
	}
	return slices.Clone(def.IntVals), nil
}

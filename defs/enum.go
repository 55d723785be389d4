package defs

import (
	"errors"
	"fmt"
)

// ErrEmptyEnum is returned when enumeration payload carries no attributes at
// all. Such records are produced for removed enumerations and must not be
// treated as valid empty lists.
var ErrEmptyEnum = errors.New("empty enumeration record")

// DecodeEnum decodes enumeration record payload.
func DecodeEnum(id int, data []byte) (*EnumDef, error) {
	if len(data) == 1 && data[0] == 0 {
		return nil, fmt.Errorf("enum %d: %w: %w", id, ErrMalformed, ErrEmptyEnum)
	}

	def := &EnumDef{ID: id}

	r := NewReader(data)
	for {
		op, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("enum %d: %w", id, err)
		}
		if op == 0 {
			return def, nil
		}
		if err := decodeEnumOp(def, op, r); err != nil {
			return nil, fmt.Errorf("enum %d: %w", id, err)
		}
	}
}

func decodeEnumOp(def *EnumDef, op uint8, r *Reader) (err error) {
	switch op {
	case 1:
		def.KeyType, err = r.ReadUint8()
	case 2:
		def.ValType, err = r.ReadUint8()
	case 3:
		def.DefaultString, err = r.ReadString()
	case 4:
		def.DefaultInt, err = r.ReadInt32()
	case 5:
		var size uint16
		if size, err = r.ReadUint16(); err != nil {
			return err
		}
		def.Keys = make([]int32, size)
		def.StringVals = make([]string, size)
		for i := range int(size) {
			if def.Keys[i], err = r.ReadInt32(); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			if def.StringVals[i], err = r.ReadString(); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
		}
	case 6:
		var size uint16
		if size, err = r.ReadUint16(); err != nil {
			return err
		}
		def.Keys = make([]int32, size)
		def.IntVals = make([]int32, size)
		for i := range int(size) {
			if def.Keys[i], err = r.ReadInt32(); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			if def.IntVals[i], err = r.ReadInt32(); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown opcode %d at offset %d", ErrMalformed, op, r.Pos()-1)
	}
	return err
}

package defs

import "fmt"

// DecodeStruct decodes struct record payload.
func DecodeStruct(id int, data []byte) (*StructDef, error) {
	def := &StructDef{ID: id, Params: Params{}}

	r := NewReader(data)
	for {
		op, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("struct %d: %w", id, err)
		}
		switch op {
		case 0:
			return def, nil
		case opParams:
			if def.Params, err = readParams(r); err != nil {
				return nil, fmt.Errorf("struct %d: %w", id, err)
			}
		default:
			return nil, fmt.Errorf("struct %d: %w: unknown opcode %d at offset %d", id, ErrMalformed, op, r.Pos()-1)
		}
	}
}

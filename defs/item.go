package defs

import "fmt"

// DecodeItem decodes item record payload.
func DecodeItem(id int, data []byte) (*ItemDef, error) {
	def := &ItemDef{
		ID:                    id,
		Name:                  "null",
		Category:              -1,
		NotedID:               -1,
		NotedTemplate:         -1,
		BoughtID:              -1,
		BoughtTemplate:        -1,
		PlaceholderID:         -1,
		PlaceholderTemplateID: -1,
		Options:               [5]string{"", "", "Take", "", ""},
		InterfaceOptions:      [5]string{"", "", "", "", "Drop"},
	}

	r := NewReader(data)
	for {
		op, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", id, err)
		}
		if op == 0 {
			return def, nil
		}
		if err := decodeItemOp(def, op, r); err != nil {
			return nil, fmt.Errorf("item %d: opcode %d: %w", id, op, err)
		}
	}
}

// skip discards n values read by fn.
func skip[T any](r *Reader, n int, fn func() (T, error)) error {
	for range n {
		if _, err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func decodeItemOp(def *ItemDef, op uint8, r *Reader) (err error) {
	switch {
	case op == 2:
		def.Name, err = r.ReadString()
	case op == 3:
		def.Examine, err = r.ReadString()
	case op == 9:
		_, err = r.ReadString()
	case op == 11:
		def.Stackable = true
	case op == 12:
		def.Cost, err = r.ReadInt32()
	case op == 16:
		def.Members = true
	case op == 65:
		def.Tradeable = true
	case op == 75:
		def.Weight, err = r.ReadInt16()
	case op == 94:
		var v uint16
		v, err = r.ReadUint16()
		def.Category = int(v)
	case op >= 30 && op < 35:
		def.Options[op-30], err = r.ReadString()
		if def.Options[op-30] == "Hidden" {
			def.Options[op-30] = ""
		}
	case op >= 35 && op < 40:
		def.InterfaceOptions[op-35], err = r.ReadString()
	case op == 97, op == 98, op == 139, op == 140, op == 148, op == 149:
		var v uint16
		if v, err = r.ReadUint16(); err != nil {
			return err
		}
		switch op {
		case 97:
			def.NotedID = int(v)
		case 98:
			def.NotedTemplate = int(v)
		case 139:
			def.BoughtID = int(v)
		case 140:
			def.BoughtTemplate = int(v)
		case 148:
			def.PlaceholderID = int(v)
		case 149:
			def.PlaceholderTemplateID = int(v)
		}
	case op == opParams:
		def.Params, err = readParams(r)

	// model, rendering and equipment attributes are skipped
	case op == 1, op >= 4 && op <= 8, op == 24, op == 26, op == 78, op == 79,
		op >= 90 && op <= 93, op == 95, op >= 110 && op <= 112:
		_, err = r.ReadUint16()
	case op == 13, op == 14, op == 27, op == 42, op == 113, op == 114, op == 115:
		_, err = r.ReadUint8()
	case op == 23, op == 25:
		if _, err = r.ReadUint16(); err == nil {
			_, err = r.ReadUint8()
		}
	case op == 40, op == 41:
		var count uint8
		if count, err = r.ReadUint8(); err == nil {
			err = skip(r, 2*int(count), r.ReadUint16)
		}
	case op == 43:
		err = skipSubOps(r)
	case op >= 100 && op < 110:
		err = skip(r, 2, r.ReadUint16)
	default:
		err = fmt.Errorf("%w: unknown opcode %d at offset %d", ErrMalformed, op, r.Pos()-1)
	}
	return err
}

// skipSubOps skips interface sub-option block: option index followed by
// (sub-option index + 1, text) pairs terminated by zero.
func skipSubOps(r *Reader) error {
	if _, err := r.ReadUint8(); err != nil {
		return err
	}
	for {
		sub, err := r.ReadUint8()
		if err != nil {
			return err
		}
		if sub == 0 {
			return nil
		}
		if _, err := r.ReadString(); err != nil {
			return err
		}
	}
}

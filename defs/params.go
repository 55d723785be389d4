package defs

import "fmt"

// opcode which introduces parameter block in structs and items
const opParams = 249

// readParams decodes parameter block: count, then for every parameter string
// flag, 24 bit key and either string or int value. Duplicate keys keep the
// last value.
func readParams(r *Reader) (Params, error) {
	count, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	params := make(Params, count)
	for i := range int(count) {
		isString, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		key, err := r.ReadUint24()
		if err != nil {
			return nil, fmt.Errorf("param %d: %w", i, err)
		}
		if isString == 1 {
			s, err := r.ReadString()
			if err != nil {
				return nil, fmt.Errorf("param %d (key %d): %w", i, key, err)
			}
			params[int(key)] = StringValue(s)
			continue
		}
		v, err := r.ReadInt32()
		if err != nil {
			return nil, fmt.Errorf("param %d (key %d): %w", i, key, err)
		}
		params[int(key)] = IntValue(v)
	}
	return params, nil
}

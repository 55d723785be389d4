// Package testutil builds binary records and cache snapshots for tests.
package testutil

import (
	"slices"

	"golang.org/x/text/encoding/charmap"

	"cldump/defs"
)

// Parameter ids used by collection log records.
const (
	ParamTabEnum       = 683
	ParamPageName      = 689
	ParamPageItemsEnum = 690
)

// Encoder writes values the way record decoders expect them: big endian,
// CP1252 zero terminated strings.
type Encoder struct {
	buf []byte
}

func (e *Encoder) U8(v uint8) *Encoder {
	e.buf = append(e.buf, v)
	return e
}

func (e *Encoder) U16(v uint16) *Encoder {
	e.buf = append(e.buf, byte(v>>8), byte(v))
	return e
}

func (e *Encoder) U24(v uint32) *Encoder {
	e.buf = append(e.buf, byte(v>>16), byte(v>>8), byte(v))
	return e
}

func (e *Encoder) I32(v int32) *Encoder {
	u := uint32(v)
	e.buf = append(e.buf, byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
	return e
}

// Str writes string converting it to CP1252, characters which cannot be
// represented make it panic.
func (e *Encoder) Str(s string) *Encoder {
	enc, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		panic(err)
	}
	e.buf = append(e.buf, enc...)
	e.buf = append(e.buf, 0)
	return e
}

// Raw appends bytes as is.
func (e *Encoder) Raw(b ...byte) *Encoder {
	e.buf = append(e.buf, b...)
	return e
}

func (e *Encoder) Bytes() []byte {
	return slices.Clone(e.buf)
}

// Params writes parameter block with keys in ascending order.
func (e *Encoder) Params(params defs.Params) *Encoder {
	keys := make([]int, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	e.U8(249).U8(uint8(len(keys)))
	for _, k := range keys {
		v := params[k]
		if v.IsString {
			e.U8(1).U24(uint32(k)).Str(v.Str)
			continue
		}
		e.U8(0).U24(uint32(k)).I32(v.Int)
	}
	return e
}

// EncodeStruct returns struct record payload.
func EncodeStruct(params defs.Params) []byte {
	e := &Encoder{}
	if len(params) > 0 {
		e.Params(params)
	}
	return e.U8(0).Bytes()
}

// EncodeIntEnum returns enumeration payload with sequential keys and integer
// values in given order.
func EncodeIntEnum(vals ...int32) []byte {
	e := (&Encoder{}).U8(1).U8(defs.TypeInteger).U8(2).U8(defs.TypeInteger)
	e.U8(4).I32(-1)
	e.U8(6).U16(uint16(len(vals)))
	for i, v := range vals {
		e.I32(int32(i)).I32(v)
	}
	return e.U8(0).Bytes()
}

// EncodeStringEnum returns enumeration payload with string values.
func EncodeStringEnum(vals ...string) []byte {
	e := (&Encoder{}).U8(1).U8(defs.TypeInteger).U8(2).U8(defs.TypeString)
	e.U8(3).Str("")
	e.U8(5).U16(uint16(len(vals)))
	for i, v := range vals {
		e.I32(int32(i)).Str(v)
	}
	return e.U8(0).Bytes()
}

// EncodeItem returns item payload with a name and a few attributes decoders
// have to skip over.
func EncodeItem(name string) []byte {
	e := &Encoder{}
	e.U8(1).U16(1234)      // inventory model
	e.U8(4).U16(2000)      // zoom
	e.U8(2).Str(name)      // name
	e.U8(12).I32(1)        // cost
	e.U8(40).U8(1).U16(10) // recolor
	e.U16(20)
	e.U8(36).Str("Wield")
	e.U8(0)
	return e.Bytes()
}

// Int and Str are shortcuts for parameter values.
func Int(v int32) defs.Value { return defs.IntValue(v) }

func Str(v string) defs.Value { return defs.StringValue(v) }

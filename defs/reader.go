package defs

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ErrMalformed is returned (wrapped) for any payload which could not be
// decoded.
var ErrMalformed = errors.New("malformed record")

// Reader is a cursor over a record payload. All multi-byte values are big
// endian, strings are CP1252 and terminated by a zero byte.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns current offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("%w: need %d byte(s) at offset %d, have %d", ErrMalformed, n, r.pos, len(r.data)-r.pos)
	}
	return nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadInt8 reads signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadInt16 reads signed short.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint24 reads 3 byte unsigned "medium" value, used for parameter keys.
func (r *Reader) ReadUint24() (uint32, error) {
	if err := r.need(3); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos])<<16 | uint32(r.data[r.pos+1])<<8 | uint32(r.data[r.pos+2])
	r.pos += 3
	return v, nil
}

func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return int32(v), nil
}

// ReadString reads zero terminated CP1252 string and returns it as UTF-8.
func (r *Reader) ReadString() (string, error) {
	start := r.pos
	for i := start; i < len(r.data); i++ {
		if r.data[i] != 0 {
			continue
		}
		r.pos = i + 1
		s, err := charmap.Windows1252.NewDecoder().Bytes(r.data[start:i])
		if err != nil {
			return "", fmt.Errorf("%w: bad string at offset %d: %w", ErrMalformed, start, err)
		}
		return string(s), nil
	}
	return "", fmt.Errorf("%w: unterminated string at offset %d", ErrMalformed, start)
}

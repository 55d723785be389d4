// Package defs decodes typed game records (structs, enumerations and items)
// from their binary cache payloads.
//
// Every payload is an opcode stream: a single unsigned byte selects the
// attribute which follows, zero terminates the record. Unknown opcodes make the
// whole record undecodable since their length cannot be known.
package defs

import "fmt"

// RawRecord is an undecoded record as stored in a cache snapshot.
type RawRecord struct {
	ID   int
	Data []byte
}

// Value is a parameter value - either integer or string.
type Value struct {
	Int      int32
	Str      string
	IsString bool
}

func IntValue(v int32) Value {
	return Value{Int: v}
}

func StringValue(v string) Value {
	return Value{Str: v, IsString: true}
}

func (v Value) String() string {
	if v.IsString {
		return fmt.Sprintf("%q", v.Str)
	}
	return fmt.Sprintf("%d", v.Int)
}

// Params maps parameter ids to values.
type Params map[int]Value

// StructDef is a generic record: a bag of parameters.
type StructDef struct {
	ID     int
	Params Params
}

// Script variable type characters used by enumerations.
const (
	TypeInteger = 'i'
	TypeString  = 's'
)

// EnumDef is an ordered key/value list. Keys and values are kept in the
// order they were declared in the record.
type EnumDef struct {
	ID            int
	KeyType       byte
	ValType       byte
	DefaultString string
	DefaultInt    int32
	Keys          []int32
	IntVals       []int32
	StringVals    []string
}

// Size returns number of entries.
func (e *EnumDef) Size() int {
	return len(e.Keys)
}

// HasStrings reports whether enumeration carries string values.
func (e *EnumDef) HasStrings() bool {
	return e.StringVals != nil
}

// ItemDef is an item record. Only attributes necessary to describe the item
// are kept, model and rendering details are skipped while decoding.
type ItemDef struct {
	ID                    int
	Name                  string
	Examine               string
	Stackable             bool
	Cost                  int32
	Members               bool
	Tradeable             bool
	Weight                int16
	Category              int
	Options               [5]string
	InterfaceOptions      [5]string
	NotedID               int
	NotedTemplate         int
	BoughtID              int
	BoughtTemplate        int
	PlaceholderID         int
	PlaceholderTemplateID int
	Params                Params
}

// IsNoted reports whether item is a bank note of another item.
func (i *ItemDef) IsNoted() bool {
	return i.NotedTemplate != -1
}

// IsPlaceholder reports whether item is a bank placeholder of another item.
func (i *ItemDef) IsPlaceholder() bool {
	return i.PlaceholderTemplateID != -1
}

package collog

import (
	"fmt"

	"cldump/defs"
)

// StructLookup gives access to decoded struct records.
type StructLookup interface {
	Struct(id int) (*defs.StructDef, bool)
}

// ParamResolver reads parameters of struct records.
type ParamResolver struct {
	structs StructLookup
}

func NewParamResolver(structs StructLookup) *ParamResolver {
	return &ParamResolver{structs: structs}
}

// Resolve returns parameter value and whether struct has it. Absent struct is
// an error, absent parameter is not.
func (r *ParamResolver) Resolve(structID, paramID int) (defs.Value, bool, error) {
	def, ok := r.structs.Struct(structID)
	if !ok {
		return defs.Value{}, false, newResolveError(RecordKindStruct, structID, ErrRecordNotFound)
	}
	v, ok := def.Params[paramID]
	return v, ok, nil
}

// Int returns integer parameter, string value is a decode failure.
func (r *ParamResolver) Int(structID, paramID int) (int32, bool, error) {
	v, ok, err := r.Resolve(structID, paramID)
	if err != nil || !ok {
		return 0, ok, err
	}
	if v.IsString {
		return 0, true, r.wrongType(structID, paramID, v, "integer")
	}
	return v.Int, true, nil
}

// String returns string parameter, integer value is a decode failure.
func (r *ParamResolver) String(structID, paramID int) (string, bool, error) {
	v, ok, err := r.Resolve(structID, paramID)
	if err != nil || !ok {
		return "", ok, err
	}
	if !v.IsString {
		return "", true, r.wrongType(structID, paramID, v, "string")
	}
	return v.Str, true, nil
}

// RequireInt is Int which treats absent parameter as an error.
func (r *ParamResolver) RequireInt(structID, paramID int) (int32, error) {
	v, ok, err := r.Int(structID, paramID)
	if err == nil && !ok {
		err = r.missing(structID, paramID)
	}
	return v, err
}

// RequireString is String which treats absent parameter as an error.
func (r *ParamResolver) RequireString(structID, paramID int) (string, error) {
	v, ok, err := r.String(structID, paramID)
	if err == nil && !ok {
		err = r.missing(structID, paramID)
	}
	return v, err
}

func (r *ParamResolver) missing(structID, paramID int) error {
	re := newResolveError(RecordKindStruct, structID, ErrMissingParameter)
	re.Param = paramID
	return re
}

func (r *ParamResolver) wrongType(structID, paramID int, v defs.Value, want string) error {
	re := newResolveError(RecordKindStruct, structID, fmt.Errorf("%w: parameter value %s is not %s", ErrDecodeFailure, v, want))
	re.Param = paramID
	return re
}

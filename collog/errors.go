package collog

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Every failure of extraction matches exactly one of these
// with errors.Is, none of them is recoverable.
var (
	// ErrConfig is returned for missing or invalid input.
	ErrConfig = errors.New("invalid configuration")
	// ErrRecordNotFound is returned when referenced record does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrItemNotFound is returned when page references unknown item.
	ErrItemNotFound = fmt.Errorf("item %w", ErrRecordNotFound)
	// ErrDecodeFailure is returned when record exists but has unexpected
	// shape.
	ErrDecodeFailure = errors.New("unable to decode record")
	// ErrMissingParameter is returned when struct lacks required parameter.
	ErrMissingParameter = errors.New("missing required parameter")
)

// ResolveError describes where in the collection log traversal resolution
// failed. Err holds one of the taxonomy errors, possibly wrapping the cause.
type ResolveError struct {
	Level Level
	Kind  RecordKind
	// ID of the offending record.
	ID int
	// Param is parameter id, 0 when not relevant.
	Param int
	// Tab is ordinal of the enclosing tab, -1 when unknown.
	Tab int
	// Page is struct id of the enclosing page, -1 when not within page.
	Page int
	Err  error
}

func newResolveError(kind RecordKind, id int, err error) *ResolveError {
	return &ResolveError{Kind: kind, ID: id, Tab: -1, Page: -1, Err: err}
}

func (e *ResolveError) Error() string {
	var b strings.Builder
	if e.Level != LevelUnknown {
		b.WriteString(e.Level.String())
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s %d", e.Kind, e.ID)
	if e.Param != 0 {
		fmt.Fprintf(&b, " param %d", e.Param)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())

	var where []string
	if e.Tab >= 0 {
		where = append(where, fmt.Sprintf("tab #%d", e.Tab))
	}
	if e.Page >= 0 && !(e.Kind == RecordKindStruct && e.ID == e.Page) {
		where = append(where, fmt.Sprintf("page %d", e.Page))
	}
	if len(where) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(where, ", "))
	}
	return b.String()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// within sets traversal context on resolution error, other errors are
// returned unchanged.
func within(err error, level Level, tab, page int) error {
	var re *ResolveError
	if errors.As(err, &re) {
		re.Level, re.Tab, re.Page = level, tab, page
	}
	return err
}

// AsResolveError returns diagnostic context of the error if any.
func AsResolveError(err error) (*ResolveError, bool) {
	var re *ResolveError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

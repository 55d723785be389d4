package collog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ResolveError
		want string
	}{
		{
			name: "no context",
			err:  newResolveError(RecordKindEnum, 1000, ErrRecordNotFound),
			want: "enum 1000: record not found",
		},
		{
			name: "tab",
			err:  &ResolveError{Level: LevelTab, Kind: RecordKindStruct, ID: 471, Param: 683, Tab: 0, Page: -1, Err: ErrMissingParameter},
			want: "tab: struct 471 param 683: missing required parameter (tab #0)",
		},
		{
			name: "page struct is not repeated",
			err:  &ResolveError{Level: LevelPage, Kind: RecordKindStruct, ID: 501, Param: 690, Tab: 2, Page: 501, Err: ErrMissingParameter},
			want: "page: struct 501 param 690: missing required parameter (tab #2)",
		},
		{
			name: "item",
			err:  &ResolveError{Level: LevelItem, Kind: RecordKindItem, ID: 10, Tab: 1, Page: 501, Err: ErrItemNotFound},
			want: "item: item 10: item record not found (tab #1, page 501)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestResolveError_Taxonomy(t *testing.T) {
	cause := errors.New("short read")
	err := fmt.Errorf("wrapped: %w", newResolveError(RecordKindEnum, 5, fmt.Errorf("%w: %w", ErrDecodeFailure, cause)))

	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, ErrItemNotFound, ErrRecordNotFound)
	assert.NotErrorIs(t, ErrRecordNotFound, ErrItemNotFound)
}

func TestWithin(t *testing.T) {
	err := within(newResolveError(RecordKindEnum, 5, ErrRecordNotFound), LevelPage, 3, 501)
	re, ok := AsResolveError(err)
	assert.True(t, ok)
	assert.Equal(t, LevelPage, re.Level)
	assert.Equal(t, 3, re.Tab)
	assert.Equal(t, 501, re.Page)

	plain := errors.New("plain")
	assert.Same(t, plain, within(plain, LevelTab, 0, -1))
	_, ok = AsResolveError(plain)
	assert.False(t, ok)
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, []string{"unknown", "tab", "page", "item"}, LevelNames())
	assert.Equal(t, []string{"struct", "enum", "item"}, RecordKindNames())
	assert.Equal(t, "Level(9)", Level(9).String())
	k, err := ParseRecordKind("enum")
	assert.NoError(t, err)
	assert.Equal(t, RecordKindEnum, k)
}

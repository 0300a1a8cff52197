package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_NilErrorReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeIngestMalformed, "noop"))
}

func TestCode_ExtractsTaxonomy(t *testing.T) {
	err := New(CodeTransitGeometryInvalid, "door too narrow")
	code, ok := Code(err)
	require.True(t, ok)
	assert.Equal(t, CodeTransitGeometryInvalid, code)
}

func TestCode_NonAppErrorReturnsFalse(t *testing.T) {
	_, ok := Code(errors.New("plain error"))
	assert.False(t, ok)
}

func TestNewAggregate_EmptyOffensesReturnsNil(t *testing.T) {
	assert.Nil(t, NewAggregate(CodeIngestMalformed, "summary", nil))
}

func TestNewAggregate_FormatsOneLinePerOffense(t *testing.T) {
	err := NewAggregate(CodeGraphConnectivityBroken, "unreachable zones", []Offense{
		{Sign: "Room", ID: "abc", Name: "Kitchen", Note: "unreachable from the safety zone"},
		{Sign: "Staircase", ID: "def", Note: "unreachable from the safety zone"},
	})
	require.Error(t, err)

	var agg *Aggregate
	require.True(t, errors.As(err, &agg))
	assert.Len(t, agg.Offenses, 2)
	assert.Contains(t, err.Error(), "Room(abc)")
	assert.Contains(t, err.Error(), "name=Kitchen")
}

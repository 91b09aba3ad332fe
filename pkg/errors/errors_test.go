package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(KindBounds, "index out of range")
	assert.Equal(t, "bounds: index out of range", err.Error())
	assert.True(t, IsKind(err, KindBounds))
	assert.False(t, IsKind(err, KindFormat))
	assert.NotEmpty(t, err.Stack)
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidRequest, "invalid column index: %d", 7)
	assert.Equal(t, "invalid_request: invalid column index: 7", err.Error())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, KindFormat, "unable to write file")
	require.NotNil(t, err)
	assert.True(t, IsKind(err, KindFormat))
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, Wrap(nil, KindFormat, "ignored"))
}

func TestWrapPreservesStack(t *testing.T) {
	inner := New(KindFormat, "grammar violation")
	outer := Wrap(inner, KindFormat, "deserialize failed")
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("context: %w", New(KindUnsupportedOperation, "no numeric column"))
	assert.True(t, IsKind(err, KindUnsupportedOperation))
	assert.False(t, IsKind(stderrors.New("plain"), KindUnsupportedOperation))
}

func TestWithDetail(t *testing.T) {
	err := New(KindInvalidRequest, "bad request").WithDetail("column", 3)
	assert.Equal(t, 3, err.Details["column"])
}

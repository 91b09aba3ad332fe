package dframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dframe-go/dframe/pkg/errors"
)

func TestCopyOf(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		f := testFrame(t)
		clone := CopyOf(f)
		require.True(t, Equal(f, clone))

		require.NoError(t, clone.SetInt(0, 0, 99))
		v, err := f.GetInt(0, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(1), *v)
	})

	t.Run("nullable", func(t *testing.T) {
		f := testNullableFrame(t)
		clone := f.Clone()
		require.True(t, Equal(f, clone))
		assert.True(t, clone.IsNullable())

		require.NoError(t, clone.SetNull(0, 0))
		v, err := f.GetInt(0, 0)
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("uninitialized", func(t *testing.T) {
		f := New()
		clone := CopyOf(f)
		assert.True(t, Equal(f, clone))
		// the clone is still uninitialized: its first column seeds the rows
		require.NoError(t, clone.AddColumn(NewIntColumn(1, 2)))
		assert.Equal(t, 2, clone.Rows())
	})
}

func TestMerge(t *testing.T) {
	left, err := FromNamedColumns(
		[]string{"c1", "c2"},
		NewIntColumn(1, 2, 3),
		NewStringColumn("a", "b", "c"),
	)
	require.NoError(t, err)
	right, err := FromNamedColumns(
		[]string{"c3"},
		NewDoubleColumn(1.0, 2.0, 3.0),
	)
	require.NoError(t, err)

	t.Run("columns concatenate in order", func(t *testing.T) {
		merged, err := Merge(left, right)
		require.NoError(t, err)
		assert.Equal(t, 3, merged.Columns())
		assert.Equal(t, 3, merged.Rows())
		assert.Equal(t, []string{"c1", "c2", "c3"}, merged.ColumnNames())

		v, err := merged.GetDouble(2, 1)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 2.0, *v)
	})

	t.Run("merged frame is independent", func(t *testing.T) {
		merged, err := Merge(left, right)
		require.NoError(t, err)
		require.NoError(t, merged.SetInt(0, 0, 99))
		v, err := left.GetInt(0, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(1), *v)
	})

	t.Run("duplicate names rejected", func(t *testing.T) {
		dup, err := FromNamedColumns([]string{"c1"}, NewIntColumn(7, 8, 9))
		require.NoError(t, err)
		_, err = Merge(left, dup)
		assert.True(t, errors.IsKind(err, errors.KindInvalidRequest))
	})

	t.Run("deviating row counts rejected", func(t *testing.T) {
		short, err := FromColumns(NewIntColumn(1))
		require.NoError(t, err)
		_, err = Merge(left, short)
		assert.True(t, errors.IsKind(err, errors.KindInvalidRequest))
	})

	t.Run("mixed flavours rejected", func(t *testing.T) {
		nf := testNullableFrame(t)
		_, err := Merge(left, nf)
		assert.True(t, errors.IsKind(err, errors.KindInvalidRequest))
	})
}

func TestConvert(t *testing.T) {
	t.Run("default to nullable keeps every value", func(t *testing.T) {
		f := testFrame(t)
		converted, err := Convert(f, true)
		require.NoError(t, err)
		assert.True(t, converted.IsNullable())
		assert.Equal(t, f.Rows(), converted.Rows())

		v, err := converted.GetInt(0, 2)
		require.NoError(t, err)
		assert.Equal(t, int32(3), *v)
		s, err := converted.GetString(1, 0)
		require.NoError(t, err)
		assert.Equal(t, "alpha", *s)
	})

	t.Run("nullable to default materialises nulls", func(t *testing.T) {
		f, err := FromColumns(
			NewNullableIntColumn(ptr(int32(1)), nil),
			NewNullableStringColumn(ptr("x"), nil),
			NewNullableBooleanColumn(ptr(true), nil),
			NewNullableCharColumn(ptr(Char('y')), nil),
		)
		require.NoError(t, err)
		converted, err := Convert(f, false)
		require.NoError(t, err)
		assert.False(t, converted.IsNullable())

		v, err := converted.GetInt(0, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(0), *v)
		s, err := converted.GetString(1, 1)
		require.NoError(t, err)
		assert.Equal(t, StringPlaceholder, *s)
		b, err := converted.GetBoolean(2, 1)
		require.NoError(t, err)
		assert.False(t, *b)
		c, err := converted.GetChar(3, 1)
		require.NoError(t, err)
		assert.Equal(t, Char(0), *c)
	})

	t.Run("round trip preserves default frames", func(t *testing.T) {
		f := testFrame(t)
		up, err := Convert(f, true)
		require.NoError(t, err)
		down, err := Convert(up, false)
		require.NoError(t, err)
		assert.True(t, Equal(f, down))
	})

	t.Run("same flavour copies", func(t *testing.T) {
		f := testFrame(t)
		copied, err := Convert(f, false)
		require.NoError(t, err)
		assert.True(t, Equal(f, copied))
	})
}

func TestEqual(t *testing.T) {
	a := testFrame(t)
	b := testFrame(t)
	assert.True(t, Equal(a, b))

	require.NoError(t, b.SetInt(0, 0, 42))
	assert.False(t, Equal(a, b))

	c := testNullableFrame(t)
	assert.False(t, Equal(a, c))
}

func TestAsSlices(t *testing.T) {
	f := testNullableFrame(t)
	grid := f.AsSlices()
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	assert.Equal(t, int32(1), grid[0][0])
	assert.Nil(t, grid[0][1])
	assert.Equal(t, "gamma", grid[1][2])

	assert.Nil(t, New().AsSlices())
}

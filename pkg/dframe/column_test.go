package dframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnGrowth(t *testing.T) {
	col := NewIntColumn()
	assert.Equal(t, 0, col.Capacity())

	col.grow()
	assert.Equal(t, 2, col.Capacity())
	col.grow()
	assert.Equal(t, 4, col.Capacity())
	col.grow()
	assert.Equal(t, 8, col.Capacity())
}

func TestColumnMatchLength(t *testing.T) {
	col := NewIntColumn(1, 2, 3, 4, 5)
	col.matchLength(3)
	require.Equal(t, 3, col.Capacity())
	assert.Equal(t, int32(3), col.Get(2))

	col.matchLength(6)
	require.Equal(t, 6, col.Capacity())
	assert.Equal(t, int32(0), col.Get(5))
}

func TestColumnInsertShift(t *testing.T) {
	col := NewIntColumn(1, 2, 3, 0)
	require.NoError(t, col.insertAt(1, 3, int32(9)))
	assert.Equal(t, []int32{1, 9, 2, 3}, col.entries)
}

func TestColumnRemoveRange(t *testing.T) {
	col := NewIntColumn(1, 2, 3, 4, 5)
	col.remove(1, 3, 5)
	assert.Equal(t, []int32{1, 4, 5, 0, 0}, col.entries)
}

func TestColumnClone(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		col := NewStringColumn("a", "b")
		clone := col.Clone().(*StringColumn)
		clone.Set(0, "changed")
		assert.Equal(t, "a", col.Get(0))
		assert.Equal(t, "changed", clone.Get(0))
	})

	t.Run("nullable", func(t *testing.T) {
		col := NewNullableIntColumn(ptr(int32(1)), nil, ptr(int32(3)))
		clone := col.Clone().(*NullableIntColumn)
		clone.Set(0, ptr(int32(42)))
		assert.Equal(t, int32(1), *col.Get(0))
		assert.Nil(t, clone.Get(1))
		assert.Equal(t, int32(42), *clone.Get(0))
	})
}

func TestColumnValueBounds(t *testing.T) {
	col := NewDoubleColumn(1.5)
	_, err := col.Value(1)
	assert.Error(t, err)
	_, err = col.Value(-1)
	assert.Error(t, err)
	err = col.SetValue(1, 2.5)
	assert.Error(t, err)
}

func TestColumnValueTypeMismatch(t *testing.T) {
	col := NewLongColumn(1)
	err := col.SetValue(0, int32(2))
	assert.Error(t, err)
	err = col.SetValue(0, nil)
	assert.Error(t, err)

	nullable := NewNullableLongColumn(nil)
	assert.NoError(t, nullable.SetValue(0, nil))
	assert.Error(t, nullable.SetValue(0, "text"))
}

func TestStringColumnCoercion(t *testing.T) {
	t.Run("constructor", func(t *testing.T) {
		col := NewStringColumn("a", "", "c")
		assert.Equal(t, StringPlaceholder, col.Get(1))
	})

	t.Run("set", func(t *testing.T) {
		col := NewStringColumn("a")
		col.Set(0, "")
		assert.Equal(t, StringPlaceholder, col.Get(0))
	})

	t.Run("set value nil", func(t *testing.T) {
		col := NewStringColumn("a")
		require.NoError(t, col.SetValue(0, nil))
		assert.Equal(t, StringPlaceholder, col.Get(0))
	})
}

func TestNullableStringColumnEmptyIsNull(t *testing.T) {
	empty := ""
	col := NewNullableStringColumn(ptr("a"), &empty, nil)
	assert.NotNil(t, col.Get(0))
	assert.Nil(t, col.Get(1))
	assert.Nil(t, col.Get(2))

	require.NoError(t, col.SetValue(0, ""))
	assert.Nil(t, col.Get(0))
}

func TestCharColumn(t *testing.T) {
	col := NewCharColumn('a', 'b')
	assert.Equal(t, Char('a'), col.Get(0))
	assert.Equal(t, "CharColumn", col.TypeName())

	v, err := col.Value(1)
	require.NoError(t, err)
	assert.Equal(t, Char('b'), v)
}

func TestKindTokens(t *testing.T) {
	kind, nullable, ok := KindForTypeName("NullableStringColumn")
	require.True(t, ok)
	assert.True(t, nullable)
	assert.Equal(t, KindString, kind)

	kind, nullable, ok = KindForTypeName("IntColumn")
	require.True(t, ok)
	assert.False(t, nullable)
	assert.Equal(t, KindInt, kind)

	_, _, ok = KindForTypeName("MysteryColumn")
	assert.False(t, ok)

	assert.Equal(t, "NullableDoubleColumn", KindDouble.TypeName(true))
	assert.Equal(t, "BooleanColumn", KindBoolean.TypeName(false))
}

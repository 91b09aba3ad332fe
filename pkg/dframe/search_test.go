package dframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dframe-go/dframe/pkg/errors"
)

func searchFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := FromNamedColumns(
		[]string{"id", "word"},
		NewIntColumn(10, 21, 32, 43, 54),
		NewStringColumn("alpha", "beta", "alpine", "gamma", "alpaca"),
	)
	require.NoError(t, err)
	return f
}

func TestIndexOf(t *testing.T) {
	f := searchFrame(t)

	t.Run("first match", func(t *testing.T) {
		i, err := f.IndexOf(1, "alp.*")
		require.NoError(t, err)
		assert.Equal(t, 0, i)
	})

	t.Run("match is anchored", func(t *testing.T) {
		i, err := f.IndexOf(1, "alp")
		require.NoError(t, err)
		assert.Equal(t, -1, i)
	})

	t.Run("numeric column matched by rendered text", func(t *testing.T) {
		i, err := f.IndexOf(0, "3.")
		require.NoError(t, err)
		assert.Equal(t, 2, i)
	})

	t.Run("start offset", func(t *testing.T) {
		i, err := f.IndexOfFrom(1, 1, "alp.*")
		require.NoError(t, err)
		assert.Equal(t, 2, i)

		_, err = f.IndexOfFrom(1, 5, "alp.*")
		assert.True(t, errors.IsKind(err, errors.KindInvalidRequest))
	})

	t.Run("no match", func(t *testing.T) {
		i, err := f.IndexOf(1, "zz.*")
		require.NoError(t, err)
		assert.Equal(t, -1, i)
	})

	t.Run("empty regex rejected", func(t *testing.T) {
		_, err := f.IndexOf(1, "")
		assert.True(t, errors.IsKind(err, errors.KindInvalidRequest))
	})

	t.Run("by name", func(t *testing.T) {
		i, err := f.IndexOfByName("word", "gamma")
		require.NoError(t, err)
		assert.Equal(t, 3, i)
	})
}

func TestIndexOfAll(t *testing.T) {
	f := searchFrame(t)

	hits, err := f.IndexOfAll(1, "alp.*")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, hits)

	hits, err = f.IndexOfAll(1, "delta")
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestIndexOfAllMatchesNullText(t *testing.T) {
	f, err := FromColumns(NewNullableStringColumn(ptr("a"), nil, ptr("null")))
	require.NoError(t, err)
	hits, err := f.IndexOfAll(0, "null")
	require.NoError(t, err)
	// a null cell renders as the literal "null" for matching purposes
	assert.Equal(t, []int{1, 2}, hits)
}

func TestFindAll(t *testing.T) {
	f := searchFrame(t)

	t.Run("matched rows in order", func(t *testing.T) {
		res, err := f.FindAll(1, "alp.*")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 3, res.Rows())
		assert.Equal(t, 2, res.Columns())
		assert.False(t, res.IsNullable())
		assert.Equal(t, []string{"id", "word"}, res.ColumnNames())

		v, err := res.GetInt(0, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(32), *v)
		s, err := res.GetString(1, 2)
		require.NoError(t, err)
		assert.Equal(t, "alpaca", *s)
	})

	t.Run("no match yields nil", func(t *testing.T) {
		res, err := f.FindAll(1, "zz")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("flavour preserved", func(t *testing.T) {
		nf := testNullableFrame(t)
		res, err := nf.FindAll(1, "alpha")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.IsNullable())
		assert.Equal(t, 1, res.Rows())
	})
}

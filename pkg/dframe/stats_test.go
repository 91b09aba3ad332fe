package dframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dframe-go/dframe/pkg/errors"
)

func TestStatistics(t *testing.T) {
	f, err := FromNamedColumns(
		[]string{"b", "v"},
		NewByteColumn(2, 4, 6),
		NewDoubleColumn(1.0, 2.0, 6.0),
	)
	require.NoError(t, err)

	avg, err := f.Average(0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, avg)

	min, err := f.Minimum(1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)

	max, err := f.MaximumByName("v")
	require.NoError(t, err)
	assert.Equal(t, 6.0, max)
}

func TestStatisticsSkipNulls(t *testing.T) {
	f, err := FromColumns(NewNullableDoubleColumn(
		ptr(1.0), nil, ptr(3.0), nil, ptr(5.0)))
	require.NoError(t, err)

	avg, err := f.Average(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg)

	min, err := f.Minimum(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)

	max, err := f.Maximum(0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, max)
}

func TestStatisticsUnsupported(t *testing.T) {
	t.Run("non-numeric kinds", func(t *testing.T) {
		f, err := FromColumns(
			NewStringColumn("a"),
			NewBooleanColumn(true),
			NewCharColumn('x'),
		)
		require.NoError(t, err)
		for col := 0; col < 3; col++ {
			_, err := f.Average(col)
			assert.True(t, errors.IsKind(err, errors.KindUnsupportedOperation))
			_, err = f.Minimum(col)
			assert.True(t, errors.IsKind(err, errors.KindUnsupportedOperation))
			_, err = f.Maximum(col)
			assert.True(t, errors.IsKind(err, errors.KindUnsupportedOperation))
		}
	})

	t.Run("all nulls", func(t *testing.T) {
		f, err := FromColumns(NewNullableDoubleColumn(nil, nil))
		require.NoError(t, err)
		_, err = f.Average(0)
		assert.True(t, errors.IsKind(err, errors.KindUnsupportedOperation))
	})

	t.Run("no rows", func(t *testing.T) {
		f, err := FromColumns(NewIntColumn())
		require.NoError(t, err)
		_, err = f.Minimum(0)
		assert.True(t, errors.IsKind(err, errors.KindUnsupportedOperation))
	})
}

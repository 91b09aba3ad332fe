package dfio

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
)

func waitFrame(t *testing.T, ch <-chan *dframe.Frame) *dframe.Frame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("callback not invoked")
		return nil
	}
}

func TestAsyncReader(t *testing.T) {
	dir := t.TempDir()
	f := plainFixture(t)
	path, err := WriteFile(filepath.Join(dir, "async.df"), f)
	require.NoError(t, err)

	t.Run("delivers the frame", func(t *testing.T) {
		done := make(chan *dframe.Frame, 1)
		var r AsyncReader
		require.NoError(t, r.Read(path, func(res *dframe.Frame) { done <- res }))
		res := waitFrame(t, done)
		require.NotNil(t, res)
		assert.True(t, dframe.Equal(f, res))
	})

	t.Run("errors surface as nil", func(t *testing.T) {
		done := make(chan *dframe.Frame, 1)
		var r AsyncReader
		require.NoError(t, r.Read(filepath.Join(dir, "absent.df"),
			func(res *dframe.Frame) { done <- res }))
		assert.Nil(t, waitFrame(t, done))
	})

	t.Run("one shot", func(t *testing.T) {
		var r AsyncReader
		require.NoError(t, r.Read(path, nil))
		err := r.Read(path, nil)
		assert.True(t, errors.IsKind(err, errors.KindInvalidState))
	})
}

func TestAsyncWriter(t *testing.T) {
	dir := t.TempDir()
	f := nullableFixture(t)

	t.Run("delivers the path", func(t *testing.T) {
		done := make(chan string, 1)
		var w AsyncWriter
		require.NoError(t, w.Write(filepath.Join(dir, "out"), f,
			func(path string) { done <- path }))
		select {
		case path := <-done:
			require.Equal(t, filepath.Join(dir, "out.df"), path)
			back, err := ReadFile(path)
			require.NoError(t, err)
			assert.True(t, dframe.Equal(f, back))
		case <-time.After(5 * time.Second):
			t.Fatal("callback not invoked")
		}
	})

	t.Run("one shot", func(t *testing.T) {
		var w AsyncWriter
		require.NoError(t, w.Write(filepath.Join(dir, "other"), f, nil))
		err := w.Write(filepath.Join(dir, "other"), f, nil)
		assert.True(t, errors.IsKind(err, errors.KindInvalidState))
	})
}

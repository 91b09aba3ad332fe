package dfio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	f := escapedFixture(t)

	path, err := WriteFile(filepath.Join(dir, "out.df"), f)
	require.NoError(t, err)
	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, dframe.Equal(f, back))
}

func TestWriteFileAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(filepath.Join(dir, "data"), plainFixture(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.df"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileMagic(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteFile(filepath.Join(dir, "out.df"), plainFixture(t))
	require.NoError(t, err)

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(blob) > 2)
	assert.Equal(t, byte(0x64), blob[0])
	assert.Equal(t, byte(0x66), blob[1])

	t.Run("corrupted magic rejected", func(t *testing.T) {
		blob[0], blob[1] = 0x00, 0x00
		corrupted := filepath.Join(dir, "corrupted.df")
		require.NoError(t, os.WriteFile(corrupted, blob, 0o644))
		_, err := ReadFile(corrupted)
		assert.True(t, errors.IsKind(err, errors.KindFormat))
	})
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.df"))
	assert.True(t, errors.IsKind(err, errors.KindFormat))
}

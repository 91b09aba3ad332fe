package dfio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
	"github.com/dframe-go/dframe/pkg/logger"
)

// FileExtension is the file extension used for persisted frames
const FileExtension = ".df"

// WriteFile persists the given frame to the specified path. The extension
// is appended when the path does not already carry it. The path actually
// written is returned.
func WriteFile(path string, f *dframe.Frame) (string, error) {
	if !strings.HasSuffix(path, FileExtension) {
		path += FileExtension
	}
	blob, err := Pack(f)
	if err != nil {
		return "", err
	}
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, errors.KindFormat, "unable to create file")
	}
	w := bufio.NewWriter(file)
	if _, err := w.Write(blob); err != nil {
		file.Close()
		return "", errors.Wrap(err, errors.KindFormat, "unable to write file")
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return "", errors.Wrap(err, errors.KindFormat, "unable to write file")
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrap(err, errors.KindFormat, "unable to write file")
	}
	logger.Debug("wrote frame file",
		zap.String("path", path),
		zap.Int("bytes", len(blob)),
		zap.Int("rows", f.Rows()),
		zap.Int("columns", f.Columns()))
	return path, nil
}

// ReadFile reads the specified .df file back into a frame
func ReadFile(path string) (*dframe.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "unable to open file")
	}
	defer file.Close()
	blob, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrap(err, errors.KindFormat, "unable to read file")
	}
	if !HasMagic(blob) {
		return nil, errors.Newf(errors.KindFormat, "not a %s file: %s", FileExtension, path)
	}
	f, err := Unpack(blob)
	if err != nil {
		return nil, err
	}
	logger.Debug("read frame file",
		zap.String("path", path),
		zap.Int("bytes", len(blob)),
		zap.Int("rows", f.Rows()),
		zap.Int("columns", f.Columns()))
	return f, nil
}

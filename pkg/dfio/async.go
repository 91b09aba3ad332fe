package dfio

import (
	"go.uber.org/zap"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
	"github.com/dframe-go/dframe/pkg/logger"
)

// AsyncReader reads a .df file on a background goroutine and hands the
// result to a callback. An instance is one-shot: launching it twice fails.
//
// Errors encountered by the background read are not surfaced; the callback
// receives a nil frame instead.
type AsyncReader struct {
	launched bool
}

// Read launches the background read. The callback receives the frame read
// from the file, or nil when the read failed.
func (r *AsyncReader) Read(path string, callback func(*dframe.Frame)) error {
	if r.launched {
		return errors.New(errors.KindInvalidState, "read already launched")
	}
	r.launched = true
	go func() {
		f, err := ReadFile(path)
		if err != nil {
			logger.Warn("background read failed", zap.String("path", path), zap.Error(err))
			f = nil
		}
		if callback != nil {
			callback(f)
		}
	}()
	return nil
}

// AsyncWriter persists a frame to a .df file on a background goroutine and
// hands the result to a callback. An instance is one-shot: launching it
// twice fails.
//
// Errors encountered by the background write are not surfaced; the callback
// receives an empty path instead.
type AsyncWriter struct {
	launched bool
}

// Write launches the background write. The callback receives the path
// written, or the empty string when the write failed. The callback may be
// nil.
func (w *AsyncWriter) Write(path string, f *dframe.Frame, callback func(string)) error {
	if w.launched {
		return errors.New(errors.KindInvalidState, "write already launched")
	}
	w.launched = true
	go func() {
		written, err := WriteFile(path, f)
		if err != nil {
			logger.Warn("background write failed", zap.String("path", path), zap.Error(err))
			written = ""
		}
		if callback != nil {
			callback(written)
		}
	}()
	return nil
}

package dfio

import (
	"math"
	"strconv"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
)

// growth of the encoder buffer saturates at the maximum addressable length
// once the next doubling would cross saturationThreshold
const (
	initialBufferLen    = 2048
	saturationThreshold = 1 << 30
	maxBufferLen        = math.MaxInt32
)

// encoder writes ASCII tokens into a growable byte buffer
type encoder struct {
	buf []byte
	pos int
}

// Serialize encodes the given frame to its uncompressed token stream
func Serialize(f *dframe.Frame) ([]byte, error) {
	e := &encoder{buf: make([]byte, initialBufferLen)}

	// header
	if err := e.writeString("{v:1;i:"); err != nil {
		return nil, err
	}
	flavour := "default;"
	if f.IsNullable() {
		flavour = "nullable;"
	}
	if err := e.writeString(flavour); err != nil {
		return nil, err
	}
	if err := e.writeString("r:" + strconv.Itoa(f.Rows()) + ";"); err != nil {
		return nil, err
	}
	if err := e.writeString("c:" + strconv.Itoa(f.Columns()) + ";"); err != nil {
		return nil, err
	}
	if err := e.writeString("n:"); err != nil {
		return nil, err
	}
	if f.HasColumnNames() {
		for _, name := range f.ColumnNames() {
			if err := e.writeString(escape(name) + ","); err != nil {
				return nil, err
			}
		}
	}
	if err := e.writeString(";t:"); err != nil {
		return nil, err
	}
	for i := 0; i < f.Columns(); i++ {
		col, err := f.ColumnAt(i)
		if err != nil {
			return nil, err
		}
		if err := e.writeString(col.TypeName() + ","); err != nil {
			return nil, err
		}
	}
	if err := e.writeString(";}"); err != nil {
		return nil, err
	}

	// payload, column-major
	for i := 0; i < f.Columns(); i++ {
		col, err := f.ColumnAt(i)
		if err != nil {
			return nil, err
		}
		escaped := col.Kind() == dframe.KindString || col.Kind() == dframe.KindChar
		for row := 0; row < f.Rows(); row++ {
			v, err := col.Value(row)
			if err != nil {
				return nil, err
			}
			cell := "null"
			if v != nil {
				cell = dframe.CellText(v)
				if escaped {
					cell = escape(cell)
				}
			}
			if err := e.writeString(cell + ","); err != nil {
				return nil, err
			}
		}
	}

	// trim to the written length
	return e.buf[:e.pos], nil
}

func (e *encoder) writeString(s string) error {
	if err := e.ensure(e.pos + len(s)); err != nil {
		return err
	}
	copy(e.buf[e.pos:], s)
	e.pos += len(s)
	return nil
}

// ensure guarantees that the buffer holds at least min bytes, doubling its
// length until the saturation threshold is crossed
func (e *encoder) ensure(min int) error {
	if min <= len(e.buf) {
		return nil
	}
	capacity := len(e.buf)
	for capacity < min {
		capacity <<= 1
		if capacity >= saturationThreshold {
			capacity = maxBufferLen
			break
		}
	}
	if min > capacity {
		return errors.New(errors.KindUnsupportedOperation,
			"frame exceeds the maximum encodable size")
	}
	tmp := make([]byte, capacity)
	copy(tmp, e.buf[:e.pos])
	e.buf = tmp
	return nil
}

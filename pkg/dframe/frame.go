package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// Frame is a container of columns sharing a uniform row count.
//
// The flavour of a frame is fixed at construction: a default frame only
// holds non-nullable columns, a nullable frame only holds nullable ones.
//
// Frames are not safe for concurrent use.
type Frame struct {
	columns  []Column
	names    map[string]int
	next     int
	nullable bool
}

// uninitialized marks a frame that has never been given a column. It is
// distinct from an initialized frame with zero rows.
const uninitialized = -1

// New constructs an empty default-flavour frame without any columns set
func New() *Frame {
	return &Frame{next: uninitialized}
}

// NewNullable constructs an empty nullable frame without any columns set
func NewNullable() *Frame {
	return &Frame{next: uninitialized, nullable: true}
}

// FromColumns constructs a frame from the given columns. All columns must
// be of the same flavour, which becomes the flavour of the frame, and must
// have equal capacity. The order of the arguments defines the column order.
func FromColumns(columns ...Column) (*Frame, error) {
	if len(columns) == 0 {
		return nil, errors.New(errors.KindInvalidRequest, "columns must not be empty")
	}
	nullable := columns[0].Nullable()
	capacity := columns[0].Capacity()
	for _, col := range columns[1:] {
		if col.Nullable() != nullable {
			return nil, errors.New(errors.KindInvalidRequest, "columns have mixed flavours")
		}
		if col.Capacity() != capacity {
			return nil, errors.New(errors.KindInvalidRequest, "columns have deviating sizes")
		}
	}
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Frame{columns: cols, next: capacity, nullable: nullable}, nil
}

// FromNamedColumns constructs a frame like FromColumns and assigns each
// column the name at the matching position
func FromNamedColumns(names []string, columns ...Column) (*Frame, error) {
	f, err := FromColumns(columns...)
	if err != nil {
		return nil, err
	}
	if err := f.SetColumnNames(names...); err != nil {
		return nil, err
	}
	return f, nil
}

// IsNullable indicates whether this frame permits null values
func (f *Frame) IsNullable() bool {
	return f.nullable
}

// Rows returns the number of live rows
func (f *Frame) Rows() int {
	if f.columns == nil {
		return 0
	}
	return f.next
}

// Columns returns the number of columns
func (f *Frame) Columns() int {
	return len(f.columns)
}

// Capacity returns the physical capacity shared by all columns
func (f *Frame) Capacity() int {
	if len(f.columns) == 0 {
		return 0
	}
	return f.columns[0].Capacity()
}

// IsEmpty indicates whether this frame holds no live rows
func (f *Frame) IsEmpty() bool {
	return f.next <= 0
}

// Clear removes all rows and shrinks the columns to a small buffer
func (f *Frame) Clear() {
	if f.next == uninitialized {
		return
	}
	for _, col := range f.columns {
		col.remove(0, f.next, f.next)
	}
	f.next = 0
	f.matchAll(2)
}

// Flush trims the capacity of every column to the current row count
func (f *Frame) Flush() {
	if f.next != uninitialized && f.next != f.Capacity() {
		f.matchAll(0)
	}
}

// ColumnAt returns the column at the given index
func (f *Frame) ColumnAt(col int) (Column, error) {
	if err := f.checkColumn(col); err != nil {
		return nil, err
	}
	return f.columns[col], nil
}

// Column returns the column with the given name
func (f *Frame) Column(name string) (Column, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.columns[col], nil
}

// checkColumn validates a column index against the current frame shape
func (f *Frame) checkColumn(col int) error {
	if f.next == uninitialized || col < 0 || col >= len(f.columns) {
		return errors.Newf(errors.KindInvalidRequest, "invalid column index: %d", col)
	}
	return nil
}

// checkRow validates a row index against the live row count
func (f *Frame) checkRow(row int) error {
	if row < 0 || row >= f.next {
		return errors.Newf(errors.KindInvalidRequest, "invalid row index: %d", row)
	}
	return nil
}

// resolveName maps a column name to its index
func (f *Frame) resolveName(name string) (int, error) {
	if name == "" {
		return 0, errors.New(errors.KindInvalidRequest, "column name must not be empty")
	}
	if f.names == nil {
		return 0, errors.New(errors.KindInvalidRequest, "column names not set")
	}
	col, ok := f.names[name]
	if !ok {
		return 0, errors.Newf(errors.KindInvalidRequest, "invalid column name: %s", name)
	}
	return col, nil
}

// checkFlavour validates that a column matches the flavour of this frame
func (f *Frame) checkFlavour(col Column) error {
	if col.Nullable() != f.nullable {
		if f.nullable {
			return errors.New(errors.KindInvalidRequest, "nullable frame must use nullable columns")
		}
		return errors.New(errors.KindInvalidRequest, "default frame must use non-nullable columns")
	}
	return nil
}

// matchAll resizes every column to the row count plus the given buffer
func (f *Frame) matchAll(buffer int) {
	for _, col := range f.columns {
		col.matchLength(f.next + buffer)
	}
}

// growAll doubles the capacity of every column
func (f *Frame) growAll() {
	for _, col := range f.columns {
		col.grow()
	}
}

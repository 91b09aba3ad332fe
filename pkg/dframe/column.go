package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// Column is the base interface implemented by all column types.
//
// A column is a typed, resizable one-dimensional vector. The physical
// capacity of a column is the length of its backing slice; the number of
// live rows is tracked by the owning Frame, not by the column itself.
//
// Structural operations (insertion, removal, growth) are driven by the
// owning frame and are not part of the public surface.
type Column interface {
	// Kind returns the element kind of this column
	Kind() Kind

	// Nullable indicates whether this column permits null values
	Nullable() bool

	// TypeName returns the wire token identifying this column type
	TypeName() string

	// Capacity returns the length of the backing slice
	Capacity() int

	// Value returns the element at the given index. A nil result
	// represents a null entry in a nullable column.
	Value(index int) (interface{}, error)

	// SetValue overwrites the element at the given index. Passing nil
	// writes a null entry; non-null columns reject nil, except string
	// columns which coerce nil and empty input to "n/a".
	SetValue(index int, v interface{}) error

	// Clone returns an independent deep copy of this column
	Clone() Column

	// insertAt shifts the elements in [index, next) one position to the
	// right and places v at index. The caller guarantees capacity > next.
	insertAt(index, next int, v interface{}) error

	// remove erases [from, to), shifts [to, next) left and zero-fills
	// (or null-fills) the vacated tail
	remove(from, to, next int)

	// grow doubles the backing slice; initial growth from zero goes to two
	grow()

	// matchLength truncates or extends the backing slice to exactly length
	matchLength(length int)
}

func checkIndex(index, capacity int) error {
	if index < 0 || index >= capacity {
		return errors.Newf(errors.KindBounds, "index out of range: %d", index)
	}
	return nil
}

func errNullValue(typeName string) error {
	return errors.Newf(errors.KindInvalidRequest, "%s cannot hold null values", typeName)
}

func errValueType(typeName string, v interface{}) error {
	return errors.Newf(errors.KindInvalidRequest, "invalid value type %T for %s", v, typeName)
}

// shared storage primitives for the concrete column types

func cloneSlice[T any](entries []T) []T {
	clone := make([]T, len(entries))
	copy(clone, entries)
	return clone
}

func clonePtrSlice[T any](entries []*T) []*T {
	clone := make([]*T, len(entries))
	for i, p := range entries {
		if p != nil {
			v := *p
			clone[i] = &v
		}
	}
	return clone
}

func insertShift[T any](entries []T, index, next int, v T) {
	for i := next; i > index; i-- {
		entries[i] = entries[i-1]
	}
	entries[index] = v
}

func removeShift[T any](entries []T, from, to, next int) {
	var zero T
	copy(entries[from:], entries[to:next])
	for i := next - (to - from); i < next; i++ {
		entries[i] = zero
	}
}

func grown[T any](entries []T) []T {
	length := len(entries) * 2
	if length == 0 {
		length = 2
	}
	tmp := make([]T, length)
	copy(tmp, entries)
	return tmp
}

func matched[T any](entries []T, length int) []T {
	if length == len(entries) {
		return entries
	}
	tmp := make([]T, length)
	copy(tmp, entries)
	return tmp
}

func ptr[T any](v T) *T {
	return &v
}

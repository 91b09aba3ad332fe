package dframe

import (
	"strconv"

	"github.com/dframe-go/dframe/pkg/errors"
)

// HasColumnNames indicates whether any column of this frame has a name
func (f *Frame) HasColumnNames() bool {
	return f.names != nil
}

// ColumnNames returns a name for every column, substituting the decimal
// column index for unnamed slots. It returns nil when no name is set.
func (f *Frame) ColumnNames() []string {
	if f.names == nil {
		return nil
	}
	names := make([]string, len(f.columns))
	for i := range f.columns {
		name, _ := f.ColumnName(i)
		if name == "" {
			name = strconv.Itoa(i)
		}
		names[i] = name
	}
	return names
}

// ColumnName returns the name of the column at the given index, or the
// empty string when the column is unnamed
func (f *Frame) ColumnName(col int) (string, error) {
	if err := f.checkColumn(col); err != nil {
		return "", err
	}
	for name, i := range f.names {
		if i == col {
			return name, nil
		}
	}
	return "", nil
}

// ColumnIndex returns the index of the column with the given name
func (f *Frame) ColumnIndex(name string) (int, error) {
	return f.resolveName(name)
}

// SetColumnNames assigns a name to every column. Names must be non-empty
// and unique, and the count must match the number of columns.
func (f *Frame) SetColumnNames(names ...string) error {
	if len(names) == 0 {
		return errors.New(errors.KindInvalidRequest, "names must not be empty")
	}
	if f.next == uninitialized || len(names) != len(f.columns) {
		return errors.Newf(errors.KindInvalidRequest,
			"names length does not match number of columns: %d", len(names))
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return errors.New(errors.KindInvalidRequest, "column name must not be empty")
		}
		if _, exists := index[name]; exists {
			return errors.Newf(errors.KindInvalidRequest, "duplicate column name: %s", name)
		}
		index[name] = i
	}
	f.names = index
	return nil
}

// SetColumnName assigns a name to the column at the given index and
// reports whether a previously assigned name was overridden. A name
// already in use moves to the given column.
func (f *Frame) SetColumnName(col int, name string) (bool, error) {
	if err := f.checkColumn(col); err != nil {
		return false, err
	}
	if name == "" {
		return false, errors.New(errors.KindInvalidRequest, "column name must not be empty")
	}
	if f.names == nil {
		f.names = make(map[string]int)
	}
	overridden := false
	for existing, i := range f.names {
		if i == col {
			delete(f.names, existing)
			overridden = true
		}
	}
	f.names[name] = col
	return overridden, nil
}

// RemoveColumnNames discards the entire name index
func (f *Frame) RemoveColumnNames() {
	f.names = nil
}

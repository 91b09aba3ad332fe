package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// AddColumn appends a column. On a frame that never had a column, the
// column seeds the row count with its capacity. Otherwise the column is
// aligned to the frame: a nullable frame absorbs a longer column by
// appending null rows; a default frame rejects it.
func (f *Frame) AddColumn(col Column) error {
	if col == nil {
		return errors.New(errors.KindInvalidRequest, "column must not be nil")
	}
	if err := f.checkFlavour(col); err != nil {
		return err
	}
	if f.next == uninitialized {
		f.columns = []Column{col}
		f.next = col.Capacity()
		return nil
	}
	if err := f.absorb(col); err != nil {
		return err
	}
	f.columns = append(f.columns, col)
	return nil
}

// AddNamedColumn appends a column and assigns it the given name
func (f *Frame) AddNamedColumn(name string, col Column) error {
	if name == "" {
		return errors.New(errors.KindInvalidRequest, "column name must not be empty")
	}
	if f.names != nil {
		if _, exists := f.names[name]; exists {
			return errors.Newf(errors.KindInvalidRequest, "duplicate column name: %s", name)
		}
	}
	if err := f.AddColumn(col); err != nil {
		return err
	}
	if f.names == nil {
		f.names = make(map[string]int)
	}
	f.names[name] = len(f.columns) - 1
	return nil
}

// InsertColumnAt inserts a column at the given index, shifting subsequent
// columns to the right. The same alignment discipline as AddColumn applies.
func (f *Frame) InsertColumnAt(index int, col Column) error {
	if col == nil {
		return errors.New(errors.KindInvalidRequest, "column must not be nil")
	}
	if err := f.checkFlavour(col); err != nil {
		return err
	}
	if f.next == uninitialized {
		if index != 0 {
			return errors.Newf(errors.KindInvalidRequest, "invalid column index: %d", index)
		}
		f.columns = []Column{col}
		f.next = col.Capacity()
		return nil
	}
	if index < 0 || index > len(f.columns) {
		return errors.Newf(errors.KindInvalidRequest, "invalid column index: %d", index)
	}
	if err := f.absorb(col); err != nil {
		return err
	}
	f.columns = append(f.columns, nil)
	copy(f.columns[index+1:], f.columns[index:])
	f.columns[index] = col
	for name, i := range f.names {
		if i >= index {
			f.names[name] = i + 1
		}
	}
	return nil
}

// InsertNamedColumnAt inserts a column at the given index and assigns it
// the given name
func (f *Frame) InsertNamedColumnAt(index int, name string, col Column) error {
	if name == "" {
		return errors.New(errors.KindInvalidRequest, "column name must not be empty")
	}
	if f.names != nil {
		if _, exists := f.names[name]; exists {
			return errors.Newf(errors.KindInvalidRequest, "duplicate column name: %s", name)
		}
	}
	if err := f.InsertColumnAt(index, col); err != nil {
		return err
	}
	if f.names == nil {
		f.names = make(map[string]int)
	}
	f.names[name] = index
	return nil
}

// RemoveColumnAt removes the column at the given index. Name index entries
// pointing past the removed column shift down by one.
func (f *Frame) RemoveColumnAt(index int) error {
	if err := f.checkColumn(index); err != nil {
		return err
	}
	if f.names != nil {
		for name, i := range f.names {
			switch {
			case i == index:
				delete(f.names, name)
			case i > index:
				f.names[name] = i - 1
			}
		}
		if len(f.names) == 0 {
			f.names = nil
		}
	}
	f.columns = append(f.columns[:index], f.columns[index+1:]...)
	return nil
}

// RemoveColumn removes the column with the given name
func (f *Frame) RemoveColumn(name string) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.RemoveColumnAt(col)
}

// SetColumnAt replaces the column at the given index. The replacement must
// have a capacity equal to the current row count.
func (f *Frame) SetColumnAt(index int, col Column) error {
	if col == nil {
		return errors.New(errors.KindInvalidRequest, "column must not be nil")
	}
	if err := f.checkFlavour(col); err != nil {
		return err
	}
	if err := f.checkColumn(index); err != nil {
		return err
	}
	if col.Capacity() != f.next {
		return errors.Newf(errors.KindInvalidRequest,
			"invalid column length: must be of length %d", f.next)
	}
	col.matchLength(f.Capacity())
	f.columns[index] = col
	return nil
}

// absorb aligns an incoming column with the frame shape. A column longer
// than the current row count forces null rows onto a nullable frame and is
// rejected by a default frame.
func (f *Frame) absorb(col Column) error {
	if col.Capacity() > f.next {
		if !f.nullable {
			return errors.Newf(errors.KindInvalidRequest,
				"column capacity %d exceeds row count %d", col.Capacity(), f.next)
		}
		diff := col.Capacity() - f.next
		for i := 0; i < diff; i++ {
			if err := f.AddRow(f.nullRow()); err != nil {
				return err
			}
		}
	}
	col.matchLength(f.Capacity())
	return nil
}

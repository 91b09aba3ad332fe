package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// RowAt returns the row at the given index as values in column order.
// Null cells are represented by nil entries.
func (f *Frame) RowAt(index int) ([]interface{}, error) {
	if err := f.checkRow(index); err != nil {
		return nil, err
	}
	row := make([]interface{}, len(f.columns))
	for i, col := range f.columns {
		v, err := col.Value(index)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// SetRowAt overwrites the row at the given index. The values must agree
// with the column kinds; nil entries are only permitted in nullable frames.
func (f *Frame) SetRowAt(index int, row []interface{}) error {
	if err := f.checkRow(index); err != nil {
		return err
	}
	if err := f.enforceTypes(row); err != nil {
		return err
	}
	for i, col := range f.columns {
		if err := col.SetValue(index, row[i]); err != nil {
			return err
		}
	}
	return nil
}

// AddRow appends a row. All columns grow together when the capacity is
// exhausted.
func (f *Frame) AddRow(row []interface{}) error {
	if err := f.enforceTypes(row); err != nil {
		return err
	}
	if f.next >= f.Capacity() {
		f.growAll()
	}
	for i, col := range f.columns {
		if err := col.SetValue(f.next, row[i]); err != nil {
			return err
		}
	}
	f.next++
	return nil
}

// InsertRowAt inserts a row at the given index, shifting subsequent rows
// down by one. Inserting at the current row count is equivalent to AddRow.
func (f *Frame) InsertRowAt(index int, row []interface{}) error {
	if index < 0 || index > f.next {
		return errors.Newf(errors.KindInvalidRequest, "invalid row index: %d", index)
	}
	if index == f.next {
		return f.AddRow(row)
	}
	if err := f.enforceTypes(row); err != nil {
		return err
	}
	if f.next >= f.Capacity() {
		f.growAll()
	}
	for i, col := range f.columns {
		if err := col.insertAt(index, f.next, row[i]); err != nil {
			return err
		}
	}
	f.next++
	return nil
}

// RemoveRow removes the row at the given index
func (f *Frame) RemoveRow(index int) error {
	if err := f.checkRow(index); err != nil {
		return err
	}
	return f.RemoveRows(index, index+1)
}

// RemoveRows removes the rows in [from, to). Columns are compacted when
// the live row count falls far below the capacity.
func (f *Frame) RemoveRows(from, to int) error {
	if from >= to {
		return errors.New(errors.KindInvalidRequest, "'to' must be greater than 'from'")
	}
	if from < 0 || from >= f.next {
		return errors.Newf(errors.KindInvalidRequest, "invalid row index: %d", from)
	}
	if to < 0 || to > f.next {
		return errors.Newf(errors.KindInvalidRequest, "invalid row index: %d", to)
	}
	for _, col := range f.columns {
		col.remove(from, to, f.next)
	}
	f.next -= to - from
	if f.next*3 < f.Capacity() {
		f.matchAll(4)
	}
	return nil
}

// enforceTypes validates a row value array against the column schema
func (f *Frame) enforceTypes(row []interface{}) error {
	if f.next == uninitialized || len(row) != len(f.columns) {
		return errors.Newf(errors.KindInvalidRequest,
			"row length does not match number of columns: %d", len(row))
	}
	for i, v := range row {
		if v == nil {
			if !f.nullable {
				return errors.New(errors.KindInvalidRequest, "default frame cannot hold null values")
			}
			continue
		}
		kind, ok := kindOfValue(v)
		if !ok {
			return errors.Newf(errors.KindInvalidRequest, "unsupported value type %T at column %d", v, i)
		}
		if kind != f.columns[i].Kind() {
			return errors.Newf(errors.KindInvalidRequest,
				"type mismatch at column %d: expected %s but found %T",
				i, f.columns[i].TypeName(), v)
		}
	}
	return nil
}

// nullRow returns an all-null row used to pad nullable frames
func (f *Frame) nullRow() []interface{} {
	return make([]interface{}, len(f.columns))
}

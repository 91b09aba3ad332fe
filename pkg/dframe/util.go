package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// CopyOf returns a structurally independent clone of the given frame,
// preserving its flavour, column order, names and row count
func CopyOf(f *Frame) *Frame {
	clone := &Frame{next: f.next, nullable: f.nullable}
	if f.columns != nil {
		clone.columns = make([]Column, len(f.columns))
		for i, col := range f.columns {
			clone.columns[i] = col.Clone()
		}
	}
	if f.names != nil {
		clone.names = make(map[string]int, len(f.names))
		for name, i := range f.names {
			clone.names[name] = i
		}
	}
	return clone
}

// Clone returns an independent deep copy of this frame
func (f *Frame) Clone() *Frame {
	return CopyOf(f)
}

// Merge concatenates the columns of the given frames into a new frame.
// All frames must share the flavour and the row count. Column names are
// carried over; a duplicate name across the inputs fails the merge.
// The merged frame holds independent copies of all columns.
func Merge(frames ...*Frame) (*Frame, error) {
	if len(frames) < 2 {
		return nil, errors.New(errors.KindInvalidRequest, "merge requires at least two frames")
	}
	first := frames[0]
	for _, f := range frames[1:] {
		if f.nullable != first.nullable {
			return nil, errors.New(errors.KindInvalidRequest, "cannot merge frames of different flavours")
		}
		if f.Rows() != first.Rows() {
			return nil, errors.Newf(errors.KindInvalidRequest,
				"cannot merge frames with deviating row counts: %d and %d", first.Rows(), f.Rows())
		}
	}
	merged := &Frame{next: uninitialized, nullable: first.nullable}
	for _, f := range frames {
		for i, col := range f.columns {
			clone := col.Clone()
			clone.matchLength(f.Rows())
			name, err := f.ColumnName(i)
			if err != nil {
				return nil, err
			}
			if name == "" {
				if err := merged.AddColumn(clone); err != nil {
					return nil, err
				}
				continue
			}
			if err := merged.AddNamedColumn(name, clone); err != nil {
				return nil, err
			}
		}
	}
	return merged, nil
}

// Convert returns a copy of the given frame in the requested flavour.
// Converting to nullable keeps every value; converting to default
// materialises null cells as the zero value of their kind, with strings
// becoming the "n/a" placeholder.
func Convert(f *Frame, nullable bool) (*Frame, error) {
	if f.nullable == nullable {
		return CopyOf(f), nil
	}
	converted := &Frame{next: uninitialized, nullable: nullable}
	for _, col := range f.columns {
		if err := converted.AddColumn(convertColumn(col, nullable, f.Rows())); err != nil {
			return nil, err
		}
	}
	if f.names != nil {
		converted.names = make(map[string]int, len(f.names))
		for name, i := range f.names {
			converted.names[name] = i
		}
	}
	return converted, nil
}

// convertColumn rebuilds a column in the opposite flavour over the live
// rows only
func convertColumn(col Column, nullable bool, rows int) Column {
	out := NewColumn(col.Kind(), nullable)
	out.matchLength(rows)
	for i := 0; i < rows; i++ {
		v, _ := col.Value(i)
		if v == nil && !nullable {
			v = zeroValue(col.Kind())
		}
		out.SetValue(i, v) //nolint:errcheck // kinds match by construction
	}
	return out
}

// zeroValue returns the default-flavour replacement for a null cell
func zeroValue(kind Kind) interface{} {
	switch kind {
	case KindByte:
		return int8(0)
	case KindShort:
		return int16(0)
	case KindInt:
		return int32(0)
	case KindLong:
		return int64(0)
	case KindFloat:
		return float32(0)
	case KindDouble:
		return float64(0)
	case KindBoolean:
		return false
	case KindChar:
		return Char(0)
	case KindString:
		return StringPlaceholder
	}
	return nil
}

// Equal reports whether two frames have the same flavour, the same column
// kinds and names in order, the same row count and equal cell values,
// including the placement of nulls
func Equal(a, b *Frame) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nullable != b.nullable || a.Columns() != b.Columns() || a.Rows() != b.Rows() {
		return false
	}
	if a.HasColumnNames() != b.HasColumnNames() {
		return false
	}
	for i := 0; i < a.Columns(); i++ {
		if a.columns[i].Kind() != b.columns[i].Kind() {
			return false
		}
		if a.HasColumnNames() {
			an, _ := a.ColumnName(i)
			bn, _ := b.ColumnName(i)
			if an != bn {
				return false
			}
		}
		for row := 0; row < a.Rows(); row++ {
			av, _ := a.columns[i].Value(row)
			bv, _ := b.columns[i].Value(row)
			if av != bv {
				return false
			}
		}
	}
	return true
}

// AsSlices copies the live cell grid out of the frame in column order;
// null cells are nil entries
func (f *Frame) AsSlices() [][]interface{} {
	if f.next == uninitialized {
		return nil
	}
	grid := make([][]interface{}, len(f.columns))
	for i, col := range f.columns {
		cells := make([]interface{}, f.Rows())
		for row := 0; row < f.Rows(); row++ {
			v, _ := col.Value(row)
			cells[row] = v
		}
		grid[i] = cells
	}
	return grid
}

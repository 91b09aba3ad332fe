package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// Typed cell access. Every accessor is addressed by column index with a
// ByName twin resolving the column through the name index. Getters return
// a pointer; a nil result represents a null cell in a nullable frame.
// Setters take a plain value; SetNull writes a null cell.

// checkCell validates a column and row index pair
func (f *Frame) checkCell(col, row int) error {
	if err := f.checkColumn(col); err != nil {
		return err
	}
	return f.checkRow(row)
}

func (f *Frame) errKind(col int, kind Kind) error {
	return errors.Newf(errors.KindInvalidRequest, "column %d is not a %s",
		col, kind.TypeName(f.nullable))
}

// SetNull writes a null cell at the given position. It fails on
// default-flavour frames.
func (f *Frame) SetNull(col, row int) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	if !f.nullable {
		return errors.New(errors.KindInvalidRequest, "default frame cannot hold null values")
	}
	return f.columns[col].SetValue(row, nil)
}

// SetNullByName writes a null cell in the named column
func (f *Frame) SetNullByName(name string, row int) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetNull(col, row)
}

// GetByte returns the byte cell at the given position
func (f *Frame) GetByte(col, row int) (*int8, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *ByteColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableByteColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindByte)
}

// GetByteByName returns the byte cell in the named column
func (f *Frame) GetByteByName(name string, row int) (*int8, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetByte(col, row)
}

// SetByte overwrites the byte cell at the given position
func (f *Frame) SetByte(col, row int, value int8) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *ByteColumn:
		c.Set(row, value)
		return nil
	case *NullableByteColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindByte)
}

// SetByteByName overwrites the byte cell in the named column
func (f *Frame) SetByteByName(name string, row int, value int8) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetByte(col, row, value)
}

// GetShort returns the short cell at the given position
func (f *Frame) GetShort(col, row int) (*int16, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *ShortColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableShortColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindShort)
}

// GetShortByName returns the short cell in the named column
func (f *Frame) GetShortByName(name string, row int) (*int16, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetShort(col, row)
}

// SetShort overwrites the short cell at the given position
func (f *Frame) SetShort(col, row int, value int16) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *ShortColumn:
		c.Set(row, value)
		return nil
	case *NullableShortColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindShort)
}

// SetShortByName overwrites the short cell in the named column
func (f *Frame) SetShortByName(name string, row int, value int16) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetShort(col, row, value)
}

// GetInt returns the int cell at the given position
func (f *Frame) GetInt(col, row int) (*int32, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *IntColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableIntColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindInt)
}

// GetIntByName returns the int cell in the named column
func (f *Frame) GetIntByName(name string, row int) (*int32, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetInt(col, row)
}

// SetInt overwrites the int cell at the given position
func (f *Frame) SetInt(col, row int, value int32) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *IntColumn:
		c.Set(row, value)
		return nil
	case *NullableIntColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindInt)
}

// SetIntByName overwrites the int cell in the named column
func (f *Frame) SetIntByName(name string, row int, value int32) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetInt(col, row, value)
}

// GetLong returns the long cell at the given position
func (f *Frame) GetLong(col, row int) (*int64, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *LongColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableLongColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindLong)
}

// GetLongByName returns the long cell in the named column
func (f *Frame) GetLongByName(name string, row int) (*int64, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetLong(col, row)
}

// SetLong overwrites the long cell at the given position
func (f *Frame) SetLong(col, row int, value int64) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *LongColumn:
		c.Set(row, value)
		return nil
	case *NullableLongColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindLong)
}

// SetLongByName overwrites the long cell in the named column
func (f *Frame) SetLongByName(name string, row int, value int64) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetLong(col, row, value)
}

// GetFloat returns the float cell at the given position
func (f *Frame) GetFloat(col, row int) (*float32, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *FloatColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableFloatColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindFloat)
}

// GetFloatByName returns the float cell in the named column
func (f *Frame) GetFloatByName(name string, row int) (*float32, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetFloat(col, row)
}

// SetFloat overwrites the float cell at the given position
func (f *Frame) SetFloat(col, row int, value float32) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *FloatColumn:
		c.Set(row, value)
		return nil
	case *NullableFloatColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindFloat)
}

// SetFloatByName overwrites the float cell in the named column
func (f *Frame) SetFloatByName(name string, row int, value float32) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetFloat(col, row, value)
}

// GetDouble returns the double cell at the given position
func (f *Frame) GetDouble(col, row int) (*float64, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *DoubleColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableDoubleColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindDouble)
}

// GetDoubleByName returns the double cell in the named column
func (f *Frame) GetDoubleByName(name string, row int) (*float64, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetDouble(col, row)
}

// SetDouble overwrites the double cell at the given position
func (f *Frame) SetDouble(col, row int, value float64) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *DoubleColumn:
		c.Set(row, value)
		return nil
	case *NullableDoubleColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindDouble)
}

// SetDoubleByName overwrites the double cell in the named column
func (f *Frame) SetDoubleByName(name string, row int, value float64) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetDouble(col, row, value)
}

// GetBoolean returns the boolean cell at the given position
func (f *Frame) GetBoolean(col, row int) (*bool, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *BooleanColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableBooleanColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindBoolean)
}

// GetBooleanByName returns the boolean cell in the named column
func (f *Frame) GetBooleanByName(name string, row int) (*bool, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetBoolean(col, row)
}

// SetBoolean overwrites the boolean cell at the given position
func (f *Frame) SetBoolean(col, row int, value bool) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *BooleanColumn:
		c.Set(row, value)
		return nil
	case *NullableBooleanColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindBoolean)
}

// SetBooleanByName overwrites the boolean cell in the named column
func (f *Frame) SetBooleanByName(name string, row int, value bool) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetBoolean(col, row, value)
}

// GetChar returns the char cell at the given position
func (f *Frame) GetChar(col, row int) (*Char, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *CharColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableCharColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindChar)
}

// GetCharByName returns the char cell in the named column
func (f *Frame) GetCharByName(name string, row int) (*Char, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetChar(col, row)
}

// SetChar overwrites the char cell at the given position
func (f *Frame) SetChar(col, row int, value Char) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *CharColumn:
		c.Set(row, value)
		return nil
	case *NullableCharColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindChar)
}

// SetCharByName overwrites the char cell in the named column
func (f *Frame) SetCharByName(name string, row int, value Char) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetChar(col, row, value)
}

// GetString returns the string cell at the given position
func (f *Frame) GetString(col, row int) (*string, error) {
	if err := f.checkCell(col, row); err != nil {
		return nil, err
	}
	switch c := f.columns[col].(type) {
	case *StringColumn:
		v := c.Get(row)
		return &v, nil
	case *NullableStringColumn:
		return c.Get(row), nil
	}
	return nil, f.errKind(col, KindString)
}

// GetStringByName returns the string cell in the named column
func (f *Frame) GetStringByName(name string, row int) (*string, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.GetString(col, row)
}

// SetString overwrites the string cell at the given position
func (f *Frame) SetString(col, row int, value string) error {
	if err := f.checkCell(col, row); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *StringColumn:
		c.Set(row, value)
		return nil
	case *NullableStringColumn:
		c.Set(row, &value)
		return nil
	}
	return f.errKind(col, KindString)
}

// SetStringByName overwrites the string cell in the named column
func (f *Frame) SetStringByName(name string, row int, value string) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SetString(col, row, value)
}

package dframe

// ByteColumn holds int8 values and does not permit nulls.
type ByteColumn struct {
	entries []int8
}

// NewByteColumn creates a new ByteColumn from the given values
func NewByteColumn(values ...int8) *ByteColumn {
	if values == nil {
		values = []int8{}
	}
	return &ByteColumn{entries: values}
}

// Get returns the entry at the given index
func (c *ByteColumn) Get(index int) int8 { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *ByteColumn) Set(index int, value int8) { c.entries[index] = value }

func (c *ByteColumn) Kind() Kind       { return KindByte }
func (c *ByteColumn) Nullable() bool   { return false }
func (c *ByteColumn) TypeName() string { return KindByte.TypeName(false) }
func (c *ByteColumn) Capacity() int    { return len(c.entries) }

func (c *ByteColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *ByteColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int8)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *ByteColumn) Clone() Column { return &ByteColumn{entries: cloneSlice(c.entries)} }

func (c *ByteColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int8)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *ByteColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *ByteColumn) grow()                     { c.entries = grown(c.entries) }
func (c *ByteColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableByteColumn holds int8 values and permits nulls.
type NullableByteColumn struct {
	entries []*int8
}

// NewNullableByteColumn creates a new NullableByteColumn from the given
// entries; nil entries represent null values
func NewNullableByteColumn(values ...*int8) *NullableByteColumn {
	if values == nil {
		values = []*int8{}
	}
	return &NullableByteColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableByteColumn) Get(index int) *int8 { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableByteColumn) Set(index int, value *int8) { c.entries[index] = value }

func (c *NullableByteColumn) Kind() Kind       { return KindByte }
func (c *NullableByteColumn) Nullable() bool   { return true }
func (c *NullableByteColumn) TypeName() string { return KindByte.TypeName(true) }
func (c *NullableByteColumn) Capacity() int    { return len(c.entries) }

func (c *NullableByteColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableByteColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(int8)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableByteColumn) Clone() Column {
	return &NullableByteColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableByteColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(int8)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableByteColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableByteColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableByteColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

package dframe

// IntColumn holds int32 values and does not permit nulls.
type IntColumn struct {
	entries []int32
}

// NewIntColumn creates a new IntColumn from the given values
func NewIntColumn(values ...int32) *IntColumn {
	if values == nil {
		values = []int32{}
	}
	return &IntColumn{entries: values}
}

// Get returns the entry at the given index
func (c *IntColumn) Get(index int) int32 { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *IntColumn) Set(index int, value int32) { c.entries[index] = value }

func (c *IntColumn) Kind() Kind       { return KindInt }
func (c *IntColumn) Nullable() bool   { return false }
func (c *IntColumn) TypeName() string { return KindInt.TypeName(false) }
func (c *IntColumn) Capacity() int    { return len(c.entries) }

func (c *IntColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *IntColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *IntColumn) Clone() Column { return &IntColumn{entries: cloneSlice(c.entries)} }

func (c *IntColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *IntColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *IntColumn) grow()                     { c.entries = grown(c.entries) }
func (c *IntColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableIntColumn holds int32 values and permits nulls.
type NullableIntColumn struct {
	entries []*int32
}

// NewNullableIntColumn creates a new NullableIntColumn from the given
// entries; nil entries represent null values
func NewNullableIntColumn(values ...*int32) *NullableIntColumn {
	if values == nil {
		values = []*int32{}
	}
	return &NullableIntColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableIntColumn) Get(index int) *int32 { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableIntColumn) Set(index int, value *int32) { c.entries[index] = value }

func (c *NullableIntColumn) Kind() Kind       { return KindInt }
func (c *NullableIntColumn) Nullable() bool   { return true }
func (c *NullableIntColumn) TypeName() string { return KindInt.TypeName(true) }
func (c *NullableIntColumn) Capacity() int    { return len(c.entries) }

func (c *NullableIntColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableIntColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(int32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableIntColumn) Clone() Column {
	return &NullableIntColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableIntColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(int32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableIntColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableIntColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableIntColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

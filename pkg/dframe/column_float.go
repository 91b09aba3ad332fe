package dframe

// FloatColumn holds float32 values and does not permit nulls.
type FloatColumn struct {
	entries []float32
}

// NewFloatColumn creates a new FloatColumn from the given values
func NewFloatColumn(values ...float32) *FloatColumn {
	if values == nil {
		values = []float32{}
	}
	return &FloatColumn{entries: values}
}

// Get returns the entry at the given index
func (c *FloatColumn) Get(index int) float32 { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *FloatColumn) Set(index int, value float32) { c.entries[index] = value }

func (c *FloatColumn) Kind() Kind       { return KindFloat }
func (c *FloatColumn) Nullable() bool   { return false }
func (c *FloatColumn) TypeName() string { return KindFloat.TypeName(false) }
func (c *FloatColumn) Capacity() int    { return len(c.entries) }

func (c *FloatColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *FloatColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(float32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *FloatColumn) Clone() Column { return &FloatColumn{entries: cloneSlice(c.entries)} }

func (c *FloatColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(float32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *FloatColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *FloatColumn) grow()                     { c.entries = grown(c.entries) }
func (c *FloatColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableFloatColumn holds float32 values and permits nulls.
type NullableFloatColumn struct {
	entries []*float32
}

// NewNullableFloatColumn creates a new NullableFloatColumn from the given
// entries; nil entries represent null values
func NewNullableFloatColumn(values ...*float32) *NullableFloatColumn {
	if values == nil {
		values = []*float32{}
	}
	return &NullableFloatColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableFloatColumn) Get(index int) *float32 { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableFloatColumn) Set(index int, value *float32) { c.entries[index] = value }

func (c *NullableFloatColumn) Kind() Kind       { return KindFloat }
func (c *NullableFloatColumn) Nullable() bool   { return true }
func (c *NullableFloatColumn) TypeName() string { return KindFloat.TypeName(true) }
func (c *NullableFloatColumn) Capacity() int    { return len(c.entries) }

func (c *NullableFloatColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableFloatColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(float32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableFloatColumn) Clone() Column {
	return &NullableFloatColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableFloatColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(float32)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableFloatColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableFloatColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableFloatColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

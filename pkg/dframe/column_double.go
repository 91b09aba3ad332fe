package dframe

// DoubleColumn holds float64 values and does not permit nulls.
type DoubleColumn struct {
	entries []float64
}

// NewDoubleColumn creates a new DoubleColumn from the given values
func NewDoubleColumn(values ...float64) *DoubleColumn {
	if values == nil {
		values = []float64{}
	}
	return &DoubleColumn{entries: values}
}

// Get returns the entry at the given index
func (c *DoubleColumn) Get(index int) float64 { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *DoubleColumn) Set(index int, value float64) { c.entries[index] = value }

func (c *DoubleColumn) Kind() Kind       { return KindDouble }
func (c *DoubleColumn) Nullable() bool   { return false }
func (c *DoubleColumn) TypeName() string { return KindDouble.TypeName(false) }
func (c *DoubleColumn) Capacity() int    { return len(c.entries) }

func (c *DoubleColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *DoubleColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(float64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *DoubleColumn) Clone() Column { return &DoubleColumn{entries: cloneSlice(c.entries)} }

func (c *DoubleColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(float64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *DoubleColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *DoubleColumn) grow()                     { c.entries = grown(c.entries) }
func (c *DoubleColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableDoubleColumn holds float64 values and permits nulls.
type NullableDoubleColumn struct {
	entries []*float64
}

// NewNullableDoubleColumn creates a new NullableDoubleColumn from the given
// entries; nil entries represent null values
func NewNullableDoubleColumn(values ...*float64) *NullableDoubleColumn {
	if values == nil {
		values = []*float64{}
	}
	return &NullableDoubleColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableDoubleColumn) Get(index int) *float64 { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableDoubleColumn) Set(index int, value *float64) { c.entries[index] = value }

func (c *NullableDoubleColumn) Kind() Kind       { return KindDouble }
func (c *NullableDoubleColumn) Nullable() bool   { return true }
func (c *NullableDoubleColumn) TypeName() string { return KindDouble.TypeName(true) }
func (c *NullableDoubleColumn) Capacity() int    { return len(c.entries) }

func (c *NullableDoubleColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableDoubleColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(float64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableDoubleColumn) Clone() Column {
	return &NullableDoubleColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableDoubleColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(float64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableDoubleColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableDoubleColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableDoubleColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

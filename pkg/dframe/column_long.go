package dframe

// LongColumn holds int64 values and does not permit nulls.
type LongColumn struct {
	entries []int64
}

// NewLongColumn creates a new LongColumn from the given values
func NewLongColumn(values ...int64) *LongColumn {
	if values == nil {
		values = []int64{}
	}
	return &LongColumn{entries: values}
}

// Get returns the entry at the given index
func (c *LongColumn) Get(index int) int64 { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *LongColumn) Set(index int, value int64) { c.entries[index] = value }

func (c *LongColumn) Kind() Kind       { return KindLong }
func (c *LongColumn) Nullable() bool   { return false }
func (c *LongColumn) TypeName() string { return KindLong.TypeName(false) }
func (c *LongColumn) Capacity() int    { return len(c.entries) }

func (c *LongColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *LongColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *LongColumn) Clone() Column { return &LongColumn{entries: cloneSlice(c.entries)} }

func (c *LongColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *LongColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *LongColumn) grow()                     { c.entries = grown(c.entries) }
func (c *LongColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableLongColumn holds int64 values and permits nulls.
type NullableLongColumn struct {
	entries []*int64
}

// NewNullableLongColumn creates a new NullableLongColumn from the given
// entries; nil entries represent null values
func NewNullableLongColumn(values ...*int64) *NullableLongColumn {
	if values == nil {
		values = []*int64{}
	}
	return &NullableLongColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableLongColumn) Get(index int) *int64 { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableLongColumn) Set(index int, value *int64) { c.entries[index] = value }

func (c *NullableLongColumn) Kind() Kind       { return KindLong }
func (c *NullableLongColumn) Nullable() bool   { return true }
func (c *NullableLongColumn) TypeName() string { return KindLong.TypeName(true) }
func (c *NullableLongColumn) Capacity() int    { return len(c.entries) }

func (c *NullableLongColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableLongColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(int64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableLongColumn) Clone() Column {
	return &NullableLongColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableLongColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(int64)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableLongColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableLongColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableLongColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

package dframe

// ShortColumn holds int16 values and does not permit nulls.
type ShortColumn struct {
	entries []int16
}

// NewShortColumn creates a new ShortColumn from the given values
func NewShortColumn(values ...int16) *ShortColumn {
	if values == nil {
		values = []int16{}
	}
	return &ShortColumn{entries: values}
}

// Get returns the entry at the given index
func (c *ShortColumn) Get(index int) int16 { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *ShortColumn) Set(index int, value int16) { c.entries[index] = value }

func (c *ShortColumn) Kind() Kind       { return KindShort }
func (c *ShortColumn) Nullable() bool   { return false }
func (c *ShortColumn) TypeName() string { return KindShort.TypeName(false) }
func (c *ShortColumn) Capacity() int    { return len(c.entries) }

func (c *ShortColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *ShortColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int16)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *ShortColumn) Clone() Column { return &ShortColumn{entries: cloneSlice(c.entries)} }

func (c *ShortColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(int16)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *ShortColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *ShortColumn) grow()                     { c.entries = grown(c.entries) }
func (c *ShortColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableShortColumn holds int16 values and permits nulls.
type NullableShortColumn struct {
	entries []*int16
}

// NewNullableShortColumn creates a new NullableShortColumn from the given
// entries; nil entries represent null values
func NewNullableShortColumn(values ...*int16) *NullableShortColumn {
	if values == nil {
		values = []*int16{}
	}
	return &NullableShortColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableShortColumn) Get(index int) *int16 { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableShortColumn) Set(index int, value *int16) { c.entries[index] = value }

func (c *NullableShortColumn) Kind() Kind       { return KindShort }
func (c *NullableShortColumn) Nullable() bool   { return true }
func (c *NullableShortColumn) TypeName() string { return KindShort.TypeName(true) }
func (c *NullableShortColumn) Capacity() int    { return len(c.entries) }

func (c *NullableShortColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableShortColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(int16)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableShortColumn) Clone() Column {
	return &NullableShortColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableShortColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(int16)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableShortColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableShortColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableShortColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

package dframe

// BooleanColumn holds bool values and does not permit nulls.
type BooleanColumn struct {
	entries []bool
}

// NewBooleanColumn creates a new BooleanColumn from the given values
func NewBooleanColumn(values ...bool) *BooleanColumn {
	if values == nil {
		values = []bool{}
	}
	return &BooleanColumn{entries: values}
}

// Get returns the entry at the given index
func (c *BooleanColumn) Get(index int) bool { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *BooleanColumn) Set(index int, value bool) { c.entries[index] = value }

func (c *BooleanColumn) Kind() Kind       { return KindBoolean }
func (c *BooleanColumn) Nullable() bool   { return false }
func (c *BooleanColumn) TypeName() string { return KindBoolean.TypeName(false) }
func (c *BooleanColumn) Capacity() int    { return len(c.entries) }

func (c *BooleanColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *BooleanColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(bool)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *BooleanColumn) Clone() Column { return &BooleanColumn{entries: cloneSlice(c.entries)} }

func (c *BooleanColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(bool)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *BooleanColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *BooleanColumn) grow()                     { c.entries = grown(c.entries) }
func (c *BooleanColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableBooleanColumn holds bool values and permits nulls.
type NullableBooleanColumn struct {
	entries []*bool
}

// NewNullableBooleanColumn creates a new NullableBooleanColumn from the given
// entries; nil entries represent null values
func NewNullableBooleanColumn(values ...*bool) *NullableBooleanColumn {
	if values == nil {
		values = []*bool{}
	}
	return &NullableBooleanColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableBooleanColumn) Get(index int) *bool { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableBooleanColumn) Set(index int, value *bool) { c.entries[index] = value }

func (c *NullableBooleanColumn) Kind() Kind       { return KindBoolean }
func (c *NullableBooleanColumn) Nullable() bool   { return true }
func (c *NullableBooleanColumn) TypeName() string { return KindBoolean.TypeName(true) }
func (c *NullableBooleanColumn) Capacity() int    { return len(c.entries) }

func (c *NullableBooleanColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableBooleanColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(bool)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableBooleanColumn) Clone() Column {
	return &NullableBooleanColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableBooleanColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(bool)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableBooleanColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableBooleanColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableBooleanColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

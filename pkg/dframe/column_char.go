package dframe

// CharColumn holds Char values and does not permit nulls.
type CharColumn struct {
	entries []Char
}

// NewCharColumn creates a new CharColumn from the given values
func NewCharColumn(values ...Char) *CharColumn {
	if values == nil {
		values = []Char{}
	}
	return &CharColumn{entries: values}
}

// Get returns the entry at the given index
func (c *CharColumn) Get(index int) Char { return c.entries[index] }

// Set overwrites the entry at the given index
func (c *CharColumn) Set(index int, value Char) { c.entries[index] = value }

func (c *CharColumn) Kind() Kind       { return KindChar }
func (c *CharColumn) Nullable() bool   { return false }
func (c *CharColumn) TypeName() string { return KindChar.TypeName(false) }
func (c *CharColumn) Capacity() int    { return len(c.entries) }

func (c *CharColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *CharColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(Char)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = value
	return nil
}

func (c *CharColumn) Clone() Column { return &CharColumn{entries: cloneSlice(c.entries)} }

func (c *CharColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		return errNullValue(c.TypeName())
	}
	value, ok := v.(Char)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *CharColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *CharColumn) grow()                     { c.entries = grown(c.entries) }
func (c *CharColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

// NullableCharColumn holds Char values and permits nulls.
type NullableCharColumn struct {
	entries []*Char
}

// NewNullableCharColumn creates a new NullableCharColumn from the given
// entries; nil entries represent null values
func NewNullableCharColumn(values ...*Char) *NullableCharColumn {
	if values == nil {
		values = []*Char{}
	}
	return &NullableCharColumn{entries: values}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableCharColumn) Get(index int) *Char { return c.entries[index] }

// Set overwrites the entry at the given index; nil writes a null
func (c *NullableCharColumn) Set(index int, value *Char) { c.entries[index] = value }

func (c *NullableCharColumn) Kind() Kind       { return KindChar }
func (c *NullableCharColumn) Nullable() bool   { return true }
func (c *NullableCharColumn) TypeName() string { return KindChar.TypeName(true) }
func (c *NullableCharColumn) Capacity() int    { return len(c.entries) }

func (c *NullableCharColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableCharColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	if v == nil {
		c.entries[index] = nil
		return nil
	}
	value, ok := v.(Char)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableCharColumn) Clone() Column {
	return &NullableCharColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableCharColumn) insertAt(index, next int, v interface{}) error {
	if v == nil {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	value, ok := v.(Char)
	if !ok {
		return errValueType(c.TypeName(), v)
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableCharColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableCharColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableCharColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

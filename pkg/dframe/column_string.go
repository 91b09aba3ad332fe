package dframe

// StringPlaceholder is the value stored by default-flavour string columns in
// place of null or empty input. The coercion on write is the only source of
// this placeholder.
const StringPlaceholder = "n/a"

// StringColumn holds string values and permits neither nulls nor empty
// strings: any such write stores StringPlaceholder instead.
type StringColumn struct {
	entries []string
}

// NewStringColumn creates a new StringColumn from the given values.
// Empty values are coerced to StringPlaceholder.
func NewStringColumn(values ...string) *StringColumn {
	if values == nil {
		values = []string{}
	}
	entries := make([]string, len(values))
	for i, s := range values {
		if s == "" {
			s = StringPlaceholder
		}
		entries[i] = s
	}
	return &StringColumn{entries: entries}
}

// Get returns the entry at the given index
func (c *StringColumn) Get(index int) string { return c.entries[index] }

// Set overwrites the entry at the given index; empty input stores
// StringPlaceholder
func (c *StringColumn) Set(index int, value string) {
	if value == "" {
		value = StringPlaceholder
	}
	c.entries[index] = value
}

func (c *StringColumn) Kind() Kind       { return KindString }
func (c *StringColumn) Nullable() bool   { return false }
func (c *StringColumn) TypeName() string { return KindString.TypeName(false) }
func (c *StringColumn) Capacity() int    { return len(c.entries) }

func (c *StringColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	return c.entries[index], nil
}

func (c *StringColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	value, err := c.coerce(v)
	if err != nil {
		return err
	}
	c.entries[index] = value
	return nil
}

func (c *StringColumn) Clone() Column { return &StringColumn{entries: cloneSlice(c.entries)} }

func (c *StringColumn) insertAt(index, next int, v interface{}) error {
	value, err := c.coerce(v)
	if err != nil {
		return err
	}
	insertShift(c.entries, index, next, value)
	return nil
}

func (c *StringColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *StringColumn) grow()                     { c.entries = grown(c.entries) }
func (c *StringColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

func (c *StringColumn) coerce(v interface{}) (string, error) {
	if v == nil {
		return StringPlaceholder, nil
	}
	value, ok := v.(string)
	if !ok {
		return "", errValueType(c.TypeName(), v)
	}
	if value == "" {
		return StringPlaceholder, nil
	}
	return value, nil
}

// NullableStringColumn holds string values and permits nulls. Empty strings
// are not representable; writing one stores a null.
type NullableStringColumn struct {
	entries []*string
}

// NewNullableStringColumn creates a new NullableStringColumn from the given
// entries; nil entries and pointers to empty strings represent null values
func NewNullableStringColumn(values ...*string) *NullableStringColumn {
	if values == nil {
		values = []*string{}
	}
	entries := make([]*string, len(values))
	for i, p := range values {
		if p != nil && *p == "" {
			p = nil
		}
		entries[i] = p
	}
	return &NullableStringColumn{entries: entries}
}

// Get returns the entry at the given index, or nil for a null entry
func (c *NullableStringColumn) Get(index int) *string { return c.entries[index] }

// Set overwrites the entry at the given index; nil and pointers to the
// empty string write a null
func (c *NullableStringColumn) Set(index int, value *string) {
	if value != nil && *value == "" {
		value = nil
	}
	c.entries[index] = value
}

func (c *NullableStringColumn) Kind() Kind       { return KindString }
func (c *NullableStringColumn) Nullable() bool   { return true }
func (c *NullableStringColumn) TypeName() string { return KindString.TypeName(true) }
func (c *NullableStringColumn) Capacity() int    { return len(c.entries) }

func (c *NullableStringColumn) Value(index int) (interface{}, error) {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return nil, err
	}
	if c.entries[index] == nil {
		return nil, nil
	}
	return *c.entries[index], nil
}

func (c *NullableStringColumn) SetValue(index int, v interface{}) error {
	if err := checkIndex(index, len(c.entries)); err != nil {
		return err
	}
	value, ok, err := c.coerce(v)
	if err != nil {
		return err
	}
	if !ok {
		c.entries[index] = nil
		return nil
	}
	c.entries[index] = &value
	return nil
}

func (c *NullableStringColumn) Clone() Column {
	return &NullableStringColumn{entries: clonePtrSlice(c.entries)}
}

func (c *NullableStringColumn) insertAt(index, next int, v interface{}) error {
	value, ok, err := c.coerce(v)
	if err != nil {
		return err
	}
	if !ok {
		insertShift(c.entries, index, next, nil)
		return nil
	}
	insertShift(c.entries, index, next, &value)
	return nil
}

func (c *NullableStringColumn) remove(from, to, next int) { removeShift(c.entries, from, to, next) }
func (c *NullableStringColumn) grow()                     { c.entries = grown(c.entries) }
func (c *NullableStringColumn) matchLength(length int)    { c.entries = matched(c.entries, length) }

func (c *NullableStringColumn) coerce(v interface{}) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	value, ok := v.(string)
	if !ok {
		return "", false, errValueType(c.TypeName(), v)
	}
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}

package dframe

// NewColumn creates an empty column of the given kind and flavour
func NewColumn(kind Kind, nullable bool) Column {
	if nullable {
		switch kind {
		case KindByte:
			return NewNullableByteColumn()
		case KindShort:
			return NewNullableShortColumn()
		case KindInt:
			return NewNullableIntColumn()
		case KindLong:
			return NewNullableLongColumn()
		case KindFloat:
			return NewNullableFloatColumn()
		case KindDouble:
			return NewNullableDoubleColumn()
		case KindBoolean:
			return NewNullableBooleanColumn()
		case KindChar:
			return NewNullableCharColumn()
		case KindString:
			return NewNullableStringColumn()
		}
		return nil
	}
	switch kind {
	case KindByte:
		return NewByteColumn()
	case KindShort:
		return NewShortColumn()
	case KindInt:
		return NewIntColumn()
	case KindLong:
		return NewLongColumn()
	case KindFloat:
		return NewFloatColumn()
	case KindDouble:
		return NewDoubleColumn()
	case KindBoolean:
		return NewBooleanColumn()
	case KindChar:
		return NewCharColumn()
	case KindString:
		return NewStringColumn()
	}
	return nil
}

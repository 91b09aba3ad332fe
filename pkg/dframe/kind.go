package dframe

// Kind represents the element type of a column
type Kind int

const (
	KindByte Kind = iota
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindBoolean
	KindChar
	KindString
)

// Char is a single 16-bit BMP character value held by char columns.
// It is a distinct type so that row values of char columns cannot be
// confused with KindInt values.
type Char rune

// kind tokens as they appear in the serialized header
var kindTokens = map[Kind]string{
	KindByte:    "ByteColumn",
	KindShort:   "ShortColumn",
	KindInt:     "IntColumn",
	KindLong:    "LongColumn",
	KindFloat:   "FloatColumn",
	KindDouble:  "DoubleColumn",
	KindBoolean: "BooleanColumn",
	KindChar:    "CharColumn",
	KindString:  "StringColumn",
}

// String returns a human-readable name of the kind
func (k Kind) String() string {
	if s, ok := kindTokens[k]; ok {
		return s
	}
	return "unknown"
}

// TypeName returns the wire token identifying a column of this kind
// and the given flavour
func (k Kind) TypeName(nullable bool) string {
	name := kindTokens[k]
	if nullable {
		return "Nullable" + name
	}
	return name
}

// Numeric indicates whether columns of this kind participate in
// statistics operations
func (k Kind) Numeric() bool {
	switch k {
	case KindByte, KindShort, KindInt, KindLong, KindFloat, KindDouble:
		return true
	}
	return false
}

// KindForTypeName resolves a wire token back to its kind and flavour
func KindForTypeName(name string) (kind Kind, nullable bool, ok bool) {
	base := name
	if len(name) > 8 && name[:8] == "Nullable" {
		nullable = true
		base = name[8:]
	}
	for k, token := range kindTokens {
		if token == base {
			return k, nullable, true
		}
	}
	return 0, false, false
}

// kindOfValue reports the kind a row value belongs to
func kindOfValue(v interface{}) (Kind, bool) {
	switch v.(type) {
	case int8:
		return KindByte, true
	case int16:
		return KindShort, true
	case int32:
		return KindInt, true
	case int64:
		return KindLong, true
	case float32:
		return KindFloat, true
	case float64:
		return KindDouble, true
	case bool:
		return KindBoolean, true
	case Char:
		return KindChar, true
	case string:
		return KindString, true
	}
	return 0, false
}

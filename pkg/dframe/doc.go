// Package dframe provides an in-memory tabular data structure with typed
// columns.
//
// A Frame aggregates columns of uniform length. Every column is strongly
// typed and comes in two flavours: a default flavour which does not permit
// null values, and a nullable flavour which does. A frame holds columns of
// one flavour only; the flavour is fixed for the lifetime of the frame.
//
// # Element kinds
//
// Nine element kinds are supported:
//
//	KindByte     int8
//	KindShort    int16
//	KindInt      int32
//	KindLong     int64
//	KindFloat    float32
//	KindDouble   float64
//	KindBoolean  bool
//	KindChar     Char (a 16-bit BMP scalar)
//	KindString   string
//
// Default-flavour string columns never hold null or empty values: any such
// write is coerced to the placeholder "n/a".
//
// # Usage
//
//	df, err := dframe.FromNamedColumns(
//	    []string{"id", "name"},
//	    dframe.NewIntColumn(1, 2, 3),
//	    dframe.NewStringColumn("a", "b", "c"),
//	)
//	if err != nil {
//	    // ...
//	}
//	df.AddRow([]interface{}{int32(4), "d"})
//
// Frames are not safe for concurrent use. A frame instance is owned by a
// single caller at a time.
package dframe

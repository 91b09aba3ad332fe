// Package dfio serializes and deserializes dframe.Frame instances.
//
// The serialized form is a self-describing stream of ASCII tokens: a header
// carrying the frame flavour, shape, column names and column types, followed
// by the cell payload in column-major order. For persistence and transport
// the token stream is wrapped in a zlib envelope whose first two bytes are
// replaced by the file magic "df", and optionally encoded as standard
// Base64.
//
// Frames are persisted to files carrying the ".df" extension:
//
//	path, err := dfio.WriteFile("users", df) // writes users.df
//	df, err = dfio.ReadFile(path)
//
// The in-memory forms are available directly:
//
//	blob, err := dfio.Serialize(df)   // uncompressed token stream
//	df, err = dfio.Deserialize(blob)
//	s, err := dfio.ToBase64(df)
//	df, err = dfio.FromBase64(s)
package dfio

package dfio

import (
	"strconv"

	"github.com/dframe-go/dframe/pkg/dframe"
	"github.com/dframe-go/dframe/pkg/errors"
)

// decoder walks the token stream left to right in a single pass
type decoder struct {
	data []byte
	pos  int
}

// Deserialize decodes an uncompressed token stream back into a frame
func Deserialize(data []byte) (*dframe.Frame, error) {
	if len(data) < 8 {
		return nil, errors.New(errors.KindFormat, "truncated stream")
	}
	if data[3] != '1' {
		return nil, errors.New(errors.KindUnsupportedEncoding, "unsupported encoding")
	}
	d := &decoder{data: data, pos: 7}

	flavour, err := d.readPlainToken(';')
	if err != nil {
		return nil, err
	}
	var nullable bool
	switch flavour {
	case "default":
	case "nullable":
		nullable = true
	default:
		return nil, errors.Newf(errors.KindFormat, "unsupported frame implementation: %s", flavour)
	}

	if err := d.expect("r:"); err != nil {
		return nil, err
	}
	rows, err := d.readDecimal()
	if err != nil {
		return nil, err
	}
	if err := d.expect("c:"); err != nil {
		return nil, err
	}
	cols, err := d.readDecimal()
	if err != nil {
		return nil, err
	}
	if err := d.expect("n:"); err != nil {
		return nil, err
	}
	var names []string
	if b, err := d.peek(); err != nil {
		return nil, err
	} else if b != ';' {
		names = make([]string, cols)
		for j := 0; j < cols; j++ {
			token, err := d.readEscapedToken()
			if err != nil {
				return nil, err
			}
			names[j] = unescape(token)
		}
	}
	if err := d.expect(";t:"); err != nil {
		return nil, err
	}
	types := make([]string, cols)
	for j := 0; j < cols; j++ {
		token, err := d.readPlainToken(',')
		if err != nil {
			return nil, err
		}
		types[j] = token
	}
	if err := d.expect(";}"); err != nil {
		return nil, err
	}

	columns := make([]dframe.Column, cols)
	for j := 0; j < cols; j++ {
		kind, colNullable, ok := dframe.KindForTypeName(types[j])
		if !ok || colNullable != nullable {
			return nil, errors.Newf(errors.KindFormat, "unknown column type: %s", types[j])
		}
		col, err := d.readColumn(kind, nullable, rows)
		if err != nil {
			return nil, err
		}
		columns[j] = col
	}

	if cols == 0 {
		if nullable {
			return dframe.NewNullable(), nil
		}
		return dframe.New(), nil
	}
	if names == nil {
		return dframe.FromColumns(columns...)
	}
	return dframe.FromNamedColumns(names, columns...)
}

// readColumn reads exactly rows cells using the per-kind parser
func (d *decoder) readColumn(kind dframe.Kind, nullable bool, rows int) (dframe.Column, error) {
	switch kind {
	case dframe.KindByte:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseInt8)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableByteColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseInt8)
		if err != nil {
			return nil, err
		}
		return dframe.NewByteColumn(entries...), nil
	case dframe.KindShort:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseInt16)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableShortColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseInt16)
		if err != nil {
			return nil, err
		}
		return dframe.NewShortColumn(entries...), nil
	case dframe.KindInt:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseInt32)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableIntColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseInt32)
		if err != nil {
			return nil, err
		}
		return dframe.NewIntColumn(entries...), nil
	case dframe.KindLong:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseInt64)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableLongColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseInt64)
		if err != nil {
			return nil, err
		}
		return dframe.NewLongColumn(entries...), nil
	case dframe.KindFloat:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseFloat32)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableFloatColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseFloat32)
		if err != nil {
			return nil, err
		}
		return dframe.NewFloatColumn(entries...), nil
	case dframe.KindDouble:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseFloat64)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableDoubleColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseFloat64)
		if err != nil {
			return nil, err
		}
		return dframe.NewDoubleColumn(entries...), nil
	case dframe.KindBoolean:
		if nullable {
			entries, err := readNullableCells(d, rows, false, parseBool)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableBooleanColumn(entries...), nil
		}
		entries, err := readCells(d, rows, false, parseBool)
		if err != nil {
			return nil, err
		}
		return dframe.NewBooleanColumn(entries...), nil
	case dframe.KindChar:
		if nullable {
			entries, err := readNullableCells(d, rows, true, parseChar)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableCharColumn(entries...), nil
		}
		entries, err := readCells(d, rows, true, parseChar)
		if err != nil {
			return nil, err
		}
		return dframe.NewCharColumn(entries...), nil
	case dframe.KindString:
		if nullable {
			entries, err := readNullableCells(d, rows, true, parseString)
			if err != nil {
				return nil, err
			}
			return dframe.NewNullableStringColumn(entries...), nil
		}
		entries, err := readCells(d, rows, true, parseString)
		if err != nil {
			return nil, err
		}
		return dframe.NewStringColumn(entries...), nil
	}
	return nil, errors.Newf(errors.KindFormat, "unknown column kind: %d", kind)
}

// readCells reads exactly rows non-null cells
func readCells[T any](d *decoder, rows int, escaped bool, parse func(string) (T, error)) ([]T, error) {
	entries := make([]T, rows)
	for k := 0; k < rows; k++ {
		token, err := d.readToken(escaped)
		if err != nil {
			return nil, err
		}
		v, err := parse(token)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindFormat, "malformed cell")
		}
		entries[k] = v
	}
	return entries, nil
}

// readNullableCells reads exactly rows cells, mapping the literal "null"
// to a null entry
func readNullableCells[T any](d *decoder, rows int, escaped bool, parse func(string) (T, error)) ([]*T, error) {
	entries := make([]*T, rows)
	for k := 0; k < rows; k++ {
		token, err := d.readToken(escaped)
		if err != nil {
			return nil, err
		}
		if token == "null" {
			continue
		}
		v, err := parse(token)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindFormat, "malformed cell")
		}
		entries[k] = &v
	}
	return entries, nil
}

func (d *decoder) readToken(escaped bool) (string, error) {
	if escaped {
		return d.readEscapedToken()
	}
	return d.readPlainToken(',')
}

// readPlainToken consumes bytes up to and including the given terminator
func (d *decoder) readPlainToken(term byte) (string, error) {
	start := d.pos
	for d.pos < len(d.data) {
		if d.data[d.pos] == term {
			token := string(d.data[start:d.pos])
			d.pos++
			return token, nil
		}
		d.pos++
	}
	return "", errors.New(errors.KindFormat, "unexpected end of stream")
}

// readEscapedToken consumes bytes up to and including the first ',' that
// is not part of a "<,>" escape
func (d *decoder) readEscapedToken() (string, error) {
	start := d.pos
	for d.pos < len(d.data) {
		if d.data[d.pos] == ',' &&
			!(d.pos > start && d.data[d.pos-1] == '<' &&
				d.pos+1 < len(d.data) && d.data[d.pos+1] == '>') {
			token := string(d.data[start:d.pos])
			d.pos++
			return token, nil
		}
		d.pos++
	}
	return "", errors.New(errors.KindFormat, "unexpected end of stream")
}

// readDecimal reads a ';'-terminated decimal integer
func (d *decoder) readDecimal() (int, error) {
	token, err := d.readPlainToken(';')
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, errors.Newf(errors.KindFormat, "malformed decimal: %q", token)
	}
	return n, nil
}

// expect consumes the given literal
func (d *decoder) expect(literal string) error {
	if d.pos+len(literal) > len(d.data) ||
		string(d.data[d.pos:d.pos+len(literal)]) != literal {
		return errors.Newf(errors.KindFormat, "malformed stream at offset %d", d.pos)
	}
	d.pos += len(literal)
	return nil
}

func (d *decoder) peek() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, errors.New(errors.KindFormat, "unexpected end of stream")
	}
	return d.data[d.pos], nil
}

// cell parsers

func parseInt8(s string) (int8, error) {
	v, err := strconv.ParseInt(s, 10, 8)
	return int8(v), err
}

func parseInt16(s string) (int16, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	return int16(v), err
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Newf(errors.KindFormat, "malformed boolean: %q", s)
}

func parseChar(s string) (dframe.Char, error) {
	unescaped := unescape(s)
	if unescaped == "" {
		return 0, errors.New(errors.KindFormat, "empty char cell")
	}
	return dframe.Char([]rune(unescaped)[0]), nil
}

func parseString(s string) (string, error) {
	return unescape(s), nil
}

package dframe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dframe-go/dframe/pkg/errors"
)

// CellText renders a cell value to its canonical text form, which is the
// form used by both the search operations and the serialized format.
// A nil value renders as the literal "null".
func CellText(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case int8:
		return strconv.FormatInt(int64(value), 10)
	case int16:
		return strconv.FormatInt(int64(value), 10)
	case int32:
		return strconv.FormatInt(int64(value), 10)
	case int64:
		return strconv.FormatInt(value, 10)
	case float32:
		return formatFloat(float64(value), 32)
	case float64:
		return formatFloat(value, 64)
	case bool:
		return strconv.FormatBool(value)
	case Char:
		return string(rune(value))
	case string:
		return value
	}
	return ""
}

// formatFloat renders a floating-point value with the shortest decimal
// representation and appends ".0" when that form has neither a decimal
// point nor an exponent, so that integral values render as e.g. "1.0".
// Values in exponent form (e.g. "1e+06") carry no fractional part.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// compileMatcher compiles a regular expression that must match the entire
// cell text
func compileMatcher(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, errors.New(errors.KindInvalidRequest, "regex must not be empty")
	}
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInvalidRequest, "invalid regex")
	}
	return re, nil
}

// IndexOf returns the index of the first row whose cell in the given
// column matches the regular expression, or -1 when no row matches
func (f *Frame) IndexOf(col int, expr string) (int, error) {
	if err := f.checkColumn(col); err != nil {
		return -1, err
	}
	re, err := compileMatcher(expr)
	if err != nil {
		return -1, err
	}
	return f.scan(col, 0, re)
}

// IndexOfByName is IndexOf addressed by column name
func (f *Frame) IndexOfByName(name string, expr string) (int, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return -1, err
	}
	return f.IndexOf(col, expr)
}

// IndexOfFrom returns the index of the first row at or after start whose
// cell in the given column matches the regular expression, or -1 when no
// row matches
func (f *Frame) IndexOfFrom(col, start int, expr string) (int, error) {
	if err := f.checkColumn(col); err != nil {
		return -1, err
	}
	if start < 0 || start >= f.next {
		return -1, errors.Newf(errors.KindInvalidRequest, "invalid start argument: %d", start)
	}
	re, err := compileMatcher(expr)
	if err != nil {
		return -1, err
	}
	return f.scan(col, start, re)
}

// scan walks the live rows of a column and returns the first match
func (f *Frame) scan(col, start int, re *regexp.Regexp) (int, error) {
	c := f.columns[col]
	for i := start; i < f.next; i++ {
		v, err := c.Value(i)
		if err != nil {
			return -1, err
		}
		if re.MatchString(CellText(v)) {
			return i, nil
		}
	}
	return -1, nil
}

// IndexOfAll returns the indices of every row whose cell in the given
// column matches the regular expression. A nil result means no match.
func (f *Frame) IndexOfAll(col int, expr string) ([]int, error) {
	if err := f.checkColumn(col); err != nil {
		return nil, err
	}
	re, err := compileMatcher(expr)
	if err != nil {
		return nil, err
	}
	c := f.columns[col]
	var hits []int
	for i := 0; i < f.next; i++ {
		v, err := c.Value(i)
		if err != nil {
			return nil, err
		}
		if re.MatchString(CellText(v)) {
			hits = append(hits, i)
		}
	}
	return hits, nil
}

// IndexOfAllByName is IndexOfAll addressed by column name
func (f *Frame) IndexOfAllByName(name string, expr string) ([]int, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.IndexOfAll(col, expr)
}

// FindAll returns a new frame of the same flavour and column schema
// holding every row whose cell in the given column matches the regular
// expression. A nil result means no match.
func (f *Frame) FindAll(col int, expr string) (*Frame, error) {
	indices, err := f.IndexOfAll(col, expr)
	if err != nil {
		return nil, err
	}
	if indices == nil {
		return nil, nil
	}
	result := &Frame{next: uninitialized, nullable: f.nullable}
	for _, c := range f.columns {
		if err := result.AddColumn(emptyColumnLike(c)); err != nil {
			return nil, err
		}
	}
	for _, i := range indices {
		row, err := f.RowAt(i)
		if err != nil {
			return nil, err
		}
		if err := result.AddRow(row); err != nil {
			return nil, err
		}
	}
	if f.names != nil {
		if err := result.SetColumnNames(f.ColumnNames()...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FindAllByName is FindAll addressed by column name
func (f *Frame) FindAllByName(name string, expr string) (*Frame, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return nil, err
	}
	return f.FindAll(col, expr)
}

// emptyColumnLike creates a fresh zero-capacity column of the same type
func emptyColumnLike(c Column) Column {
	return NewColumn(c.Kind(), c.Nullable())
}

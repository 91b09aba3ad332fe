package dframe

import (
	"strconv"
	"strings"
)

// String renders the live rows as an aligned text table with a row-index
// gutter. Null cells render as the literal "null".
func (f *Frame) String() string {
	if f.columns == nil {
		return "uninitialized frame instance"
	}
	widths := make([]int, len(f.columns))
	gutter := len(strconv.Itoa(f.next - 1))
	for i, col := range f.columns {
		for row := 0; row < f.next; row++ {
			v, _ := col.Value(row)
			if n := len(CellText(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	headers := make([]string, len(f.columns))
	if f.names != nil {
		for i := range f.columns {
			name, _ := f.ColumnName(i)
			if name == "" {
				name = strconv.Itoa(i)
			}
			headers[i] = name
		}
	} else {
		for i := range f.columns {
			headers[i] = strconv.Itoa(i) + " "
		}
	}
	for i := range f.columns {
		if len(headers[i]) > widths[i] {
			widths[i] = len(headers[i])
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("_", gutter))
	sb.WriteString("|")
	for i, header := range headers {
		sb.WriteString(" ")
		sb.WriteString(header)
		sb.WriteString(strings.Repeat(" ", widths[i]-len(header)))
	}
	sb.WriteString("\n")
	for row := 0; row < f.next; row++ {
		idx := strconv.Itoa(row)
		sb.WriteString(idx)
		sb.WriteString(strings.Repeat(" ", gutter-len(idx)))
		sb.WriteString("| ")
		for i, col := range f.columns {
			v, _ := col.Value(row)
			s := CellText(v)
			sb.WriteString(s)
			sb.WriteString(strings.Repeat(" ", widths[i]-len(s)+1))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

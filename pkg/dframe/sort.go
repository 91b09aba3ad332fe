package dframe

import (
	"cmp"
)

// SortBy sorts the entire frame by the values in the given column. Rows
// are permuted across all columns in lockstep. The sort is not stable:
// rows with equal keys may exchange positions. In a nullable frame all
// null entries of the key column are moved to the tail.
func (f *Frame) SortBy(col int) error {
	if err := f.checkColumn(col); err != nil {
		return err
	}
	switch c := f.columns[col].(type) {
	case *ByteColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *ShortColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *IntColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *LongColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *FloatColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *DoubleColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *CharColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *StringColumn:
		quicksort(c.entries, f, 0, f.next-1)
	case *BooleanColumn:
		quicksortBool(c.entries, f, 0, f.next-1)
	case *NullableByteColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableShortColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableIntColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableLongColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableFloatColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableDoubleColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableCharColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableStringColumn:
		quicksortNullable(c.entries, f, 0, presortNulls(c.entries, f))
	case *NullableBooleanColumn:
		quicksortNullableBool(c.entries, f, 0, presortNulls(c.entries, f))
	}
	return nil
}

// SortByName sorts the frame by the values in the named column
func (f *Frame) SortByName(name string) error {
	col, err := f.resolveName(name)
	if err != nil {
		return err
	}
	return f.SortBy(col)
}

// swapRows exchanges the rows at i and j across every column
func swapRows(f *Frame, i, j int) {
	for _, col := range f.columns {
		a, _ := col.Value(i)
		b, _ := col.Value(j)
		col.SetValue(i, b) //nolint:errcheck // values originate from this column
		col.SetValue(j, a) //nolint:errcheck
	}
}

// quicksort sorts the frame rows over [left, right] keyed by list, which is
// the backing slice of the key column and is permuted through the row swaps
func quicksort[T cmp.Ordered](list []T, f *Frame, left, right int) {
	if right <= -1 {
		return
	}
	mid := list[(left+right)/2]
	l, r := left, right
	for l < r {
		for list[l] < mid {
			l++
		}
		for list[r] > mid {
			r--
		}
		if l <= r {
			swapRows(f, l, r)
			l++
			r--
		}
	}
	if left < r {
		quicksort(list, f, left, r)
	}
	if right > l {
		quicksort(list, f, l, right)
	}
}

func quicksortBool(list []bool, f *Frame, left, right int) {
	if right <= -1 {
		return
	}
	mid := list[(left+right)/2]
	l, r := left, right
	for l < r {
		for lessBool(list[l], mid) {
			l++
		}
		for lessBool(mid, list[r]) {
			r--
		}
		if l <= r {
			swapRows(f, l, r)
			l++
			r--
		}
	}
	if left < r {
		quicksortBool(list, f, left, r)
	}
	if right > l {
		quicksortBool(list, f, l, right)
	}
}

func lessBool(a, b bool) bool {
	return !a && b
}

// presortNulls moves every null entry of the key column to the tail and
// returns the index of the last non-null entry
func presortNulls[T any](list []*T, f *Frame) int {
	ptr := f.next - 1
	for i := 0; i < ptr; i++ {
		for list[i] == nil {
			if i == ptr {
				break
			}
			swapRows(f, i, ptr)
			ptr--
		}
	}
	if ptr < 0 {
		return -1
	}
	if list[ptr] != nil {
		return ptr
	}
	return ptr - 1
}

// quicksortNullable sorts the null-free prefix [left, right] of a nullable
// key column
func quicksortNullable[T cmp.Ordered](list []*T, f *Frame, left, right int) {
	if right <= -1 {
		return
	}
	mid := *list[(left+right)/2]
	l, r := left, right
	for l < r {
		for *list[l] < mid {
			l++
		}
		for *list[r] > mid {
			r--
		}
		if l <= r {
			swapRows(f, l, r)
			l++
			r--
		}
	}
	if left < r {
		quicksortNullable(list, f, left, r)
	}
	if right > l {
		quicksortNullable(list, f, l, right)
	}
}

func quicksortNullableBool(list []*bool, f *Frame, left, right int) {
	if right <= -1 {
		return
	}
	mid := *list[(left+right)/2]
	l, r := left, right
	for l < r {
		for lessBool(*list[l], mid) {
			l++
		}
		for lessBool(mid, *list[r]) {
			r--
		}
		if l <= r {
			swapRows(f, l, r)
			l++
			r--
		}
	}
	if left < r {
		quicksortNullableBool(list, f, left, r)
	}
	if right > l {
		quicksortNullableBool(list, f, l, right)
	}
}

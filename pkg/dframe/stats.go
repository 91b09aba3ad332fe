package dframe

import (
	"github.com/dframe-go/dframe/pkg/errors"
)

// Average returns the arithmetic mean of the given numeric column. Null
// entries are skipped; the denominator is the count of non-null cells.
func (f *Frame) Average(col int) (float64, error) {
	c, err := f.statColumn(col)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	count := 0
	for i := 0; i < f.next; i++ {
		v, err := c.Value(i)
		if err != nil {
			return 0, err
		}
		if v == nil {
			continue
		}
		sum += numericValue(v)
		count++
	}
	if count == 0 {
		return 0, errors.New(errors.KindUnsupportedOperation,
			"unable to compute average of an empty selection")
	}
	return sum / float64(count), nil
}

// AverageByName is Average addressed by column name
func (f *Frame) AverageByName(name string) (float64, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return 0, err
	}
	return f.Average(col)
}

// Minimum returns the smallest value of the given numeric column,
// skipping null entries
func (f *Frame) Minimum(col int) (float64, error) {
	c, err := f.statColumn(col)
	if err != nil {
		return 0, err
	}
	min := 0.0
	found := false
	for i := 0; i < f.next; i++ {
		v, err := c.Value(i)
		if err != nil {
			return 0, err
		}
		if v == nil {
			continue
		}
		value := numericValue(v)
		if !found || value < min {
			min = value
			found = true
		}
	}
	if !found {
		return 0, errors.New(errors.KindUnsupportedOperation,
			"unable to compute minimum of an empty selection")
	}
	return min, nil
}

// MinimumByName is Minimum addressed by column name
func (f *Frame) MinimumByName(name string) (float64, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return 0, err
	}
	return f.Minimum(col)
}

// Maximum returns the largest value of the given numeric column, skipping
// null entries
func (f *Frame) Maximum(col int) (float64, error) {
	c, err := f.statColumn(col)
	if err != nil {
		return 0, err
	}
	max := 0.0
	found := false
	for i := 0; i < f.next; i++ {
		v, err := c.Value(i)
		if err != nil {
			return 0, err
		}
		if v == nil {
			continue
		}
		value := numericValue(v)
		if !found || value > max {
			max = value
			found = true
		}
	}
	if !found {
		return 0, errors.New(errors.KindUnsupportedOperation,
			"unable to compute maximum of an empty selection")
	}
	return max, nil
}

// MaximumByName is Maximum addressed by column name
func (f *Frame) MaximumByName(name string) (float64, error) {
	col, err := f.resolveName(name)
	if err != nil {
		return 0, err
	}
	return f.Maximum(col)
}

// statColumn validates that the given column participates in statistics
func (f *Frame) statColumn(col int) (Column, error) {
	if err := f.checkColumn(col); err != nil {
		return nil, err
	}
	c := f.columns[col]
	if !c.Kind().Numeric() {
		return nil, errors.Newf(errors.KindUnsupportedOperation,
			"statistics are undefined on %s", c.TypeName())
	}
	return c, nil
}

// numericValue widens a numeric cell value to float64
func numericValue(v interface{}) float64 {
	switch value := v.(type) {
	case int8:
		return float64(value)
	case int16:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case float32:
		return float64(value)
	case float64:
		return value
	}
	return 0
}

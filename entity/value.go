package entity

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Value wraps a cell value and provides type conversion helpers.
// Raw is one of string, int64, float64, bool or nil when absent.
type Value struct {
	Raw any
}

// Text returns a text value.
func Text(str string) Value {
	return Value{Raw: str}
}

// Number returns a numeric value.
func Number(num float64) Value {
	return Value{Raw: num}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Raw: b}
}

// Absent reports whether the value is unset.
func (v Value) Absent() bool {
	return v.Raw == nil
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	i, ok := v.Raw.(int64)
	if !ok {
		return 0, errors.Errorf("value is not an int64: %T", v.Raw)
	}
	return int(i), nil
}

// Float returns the value as a float64, parsing text when needed.
func (v Value) Float() (float64, error) {

	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case int64:
		return float64(raw), nil
	case string:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "value is not numeric: %q", raw)
		}
		return f, nil
	}
	return 0, errors.Errorf("value is not a float64: %T", v.Raw)
}

// Truthy is true only for a boolean true.
func (v Value) Truthy() bool {
	b, _ := v.Raw.(bool)
	return b
}

// Values maps column name to value for one row.
type Values map[string]Value

// Get returns the named value, absent when missing.
func (vals Values) Get(name string) Value {
	return vals[name]
}

// Clone returns a shallow copy, never nil.
func (vals Values) Clone() Values {
	clone := make(Values, len(vals))
	for name, val := range vals {
		clone[name] = val
	}
	return clone
}

// Row is a consumer row keyed by stable identity.
type Row struct {
	Key    string
	Values Values
}

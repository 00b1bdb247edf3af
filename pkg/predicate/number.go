package predicate

import (
	"reflect"
	"strconv"
)

// numeric captures the sign information a number check needs
// without forcing every representation into one machine type.
type numeric struct {
	negative bool
	zero     bool
}

// IsNumber checks that a value is numeric: any integer or float,
// including unsigned values only representable as wide integers,
// or a string whose entire content is a number. Numeric-ness is
// about content, not representation, so "42" is a number. With
// positive set true, negative values are rejected and zero is
// accepted; with strictly_positive set true, zero and negative
// values are both rejected.
func IsNumber(v any, opts Options) (bool, error) {
	resolved, err := resolveOptions(Number, opts)
	if err != nil {
		return false, err
	}

	n, ok := toNumeric(v)
	if !ok {
		return false, nil
	}

	if boolOption(resolved, "strictly_positive") &&
		(n.zero || n.negative) {
		return false, nil
	}
	if boolOption(resolved, "positive") && n.negative {
		return false, nil
	}

	return true, nil
}

// toNumeric extracts sign information from a numeric value.
// Strings are normalized through a strconv round-trip: signed
// integer first, then unsigned for wide-integer values, then
// float. Anything that fails all three is not a number.
func toNumeric(v any) (numeric, bool) {
	if v == nil {
		return numeric{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		i := rv.Int()
		return numeric{negative: i < 0, zero: i == 0}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return numeric{zero: rv.Uint() == 0}, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return numeric{negative: f < 0, zero: f == 0}, true
	case reflect.String:
		return parseNumeric(rv.String())
	}

	return numeric{}, false
}

// parseNumeric checks whether a string's content is a number and
// extracts its sign.
func parseNumeric(s string) (numeric, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return numeric{negative: i < 0, zero: i == 0}, true
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return numeric{zero: u == 0}, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return numeric{negative: f < 0, zero: f == 0}, true
	}
	return numeric{}, false
}

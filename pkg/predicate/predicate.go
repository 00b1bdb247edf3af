package predicate

import "reflect"

// IsString checks that a value is a defined scalar with textual
// content: a string, a number, or a bool. Aggregates, callables,
// and nil are rejected. With allow_empty set false, the empty
// string is rejected; a numeric zero is still accepted, since a
// value is never rejected merely for looking falsy.
func IsString(v any, opts Options) (bool, error) {
	resolved, err := resolveOptions(String, opts)
	if err != nil {
		return false, err
	}

	if v == nil {
		return false, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		if !boolOption(resolved, "allow_empty") && rv.Len() == 0 {
			return false, nil
		}
		return true, nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true, nil
	}

	return false, nil
}

// IsList checks that a value is an ordered, index-addressable
// aggregate: a slice or an array. With allow_empty set false, a
// zero-length list is rejected. With no_subclass set true, only
// the plain unnamed slice or array form is accepted; defined types
// layered on top of it (type Tags []string) are rejected.
func IsList(v any, opts Options) (bool, error) {
	resolved, err := resolveOptions(List, opts)
	if err != nil {
		return false, err
	}

	if v == nil {
		return false, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false, nil
	}

	if !boolOption(resolved, "allow_empty") && rv.Len() == 0 {
		return false, nil
	}

	if boolOption(resolved, "no_subclass") &&
		rv.Type().Name() != "" {
		return false, nil
	}

	return true, nil
}

// IsMap checks that a value is an unordered key-to-value
// aggregate. The allow_empty and no_subclass options mirror
// IsList: allow_empty set false rejects a zero-entry map,
// no_subclass set true rejects defined map types.
func IsMap(v any, opts Options) (bool, error) {
	resolved, err := resolveOptions(Map, opts)
	if err != nil {
		return false, err
	}

	if v == nil {
		return false, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return false, nil
	}

	if !boolOption(resolved, "allow_empty") && rv.Len() == 0 {
		return false, nil
	}

	if boolOption(resolved, "no_subclass") &&
		rv.Type().Name() != "" {
		return false, nil
	}

	return true, nil
}

// IsCallable checks that a value can be invoked. No options are
// recognized. A typed nil function is rejected: it cannot be
// called.
func IsCallable(v any, opts Options) (bool, error) {
	if _, err := resolveOptions(Callable, opts); err != nil {
		return false, err
	}

	if v == nil {
		return false, nil
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil(), nil
}

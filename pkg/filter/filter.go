// Package filter provides the filter form of the predicate
// checks: each wrapper returns the original value unchanged when
// it matches its category, or absence (a false ok) when it does
// not. A rejected value is not an error; only a malformed options
// bag is, and that usage error propagates unchanged.
package filter

import "digital.vasic.typecheck/pkg/predicate"

// String returns v when it passes the string check.
func String(v any, opts predicate.Options) (any, bool, error) {
	return keep(predicate.String, v, opts)
}

// List returns v when it passes the list check.
func List(v any, opts predicate.Options) (any, bool, error) {
	return keep(predicate.List, v, opts)
}

// Map returns v when it passes the map check.
func Map(v any, opts predicate.Options) (any, bool, error) {
	return keep(predicate.Map, v, opts)
}

// Callable returns v when it passes the callable check.
func Callable(v any, opts predicate.Options) (any, bool, error) {
	return keep(predicate.Callable, v, opts)
}

// Number returns v when it passes the number check.
func Number(v any, opts predicate.Options) (any, bool, error) {
	return keep(predicate.Number, v, opts)
}

// Instance returns v when it passes the instance check.
func Instance(v any, opts predicate.Options) (any, bool, error) {
	return keep(predicate.Instance, v, opts)
}

// keep runs the boolean predicate for a category and pairs the
// original value with the outcome. The ok result is the absence
// marker: nil, "", and 0 are all acceptable values for some
// category, so no in-band sentinel is safe.
func keep(
	category predicate.Category,
	v any,
	opts predicate.Options,
) (any, bool, error) {
	ok, err := predicate.Check(category, v, opts)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Package guard provides the assertion form of the predicate
// checks: fail-fast wrappers for function-entry validation. Each
// wrapper is silent when the value matches its category and
// returns a *FailureError with a fixed message when it does not.
// Usage errors from malformed option bags propagate unchanged.
package guard

import "digital.vasic.typecheck/pkg/predicate"

// FailureError reports a value that did not match the asserted
// category. Its message is fixed per category and never includes
// the value itself.
type FailureError struct {
	// Category is the category the value failed to match.
	Category predicate.Category
}

// messages holds the fixed failure message for each category.
var messages = map[predicate.Category]string{
	predicate.String:   "not a string",
	predicate.List:     "not a list",
	predicate.Map:      "not a map",
	predicate.Callable: "not callable",
	predicate.Number:   "not a number",
	predicate.Instance: "not an instance of the required class",
}

// Error returns the fixed failure message for the category.
func (e *FailureError) Error() string {
	if msg, ok := messages[e.Category]; ok {
		return msg
	}
	return "value does not match category " + e.Category.String()
}

// String asserts that a value passes the string check.
func String(v any, opts predicate.Options) error {
	return check(predicate.String, v, opts)
}

// List asserts that a value passes the list check.
func List(v any, opts predicate.Options) error {
	return check(predicate.List, v, opts)
}

// Map asserts that a value passes the map check.
func Map(v any, opts predicate.Options) error {
	return check(predicate.Map, v, opts)
}

// Callable asserts that a value passes the callable check.
func Callable(v any, opts predicate.Options) error {
	return check(predicate.Callable, v, opts)
}

// Number asserts that a value passes the number check.
func Number(v any, opts predicate.Options) error {
	return check(predicate.Number, v, opts)
}

// Instance asserts that a value passes the instance check.
func Instance(v any, opts predicate.Options) error {
	return check(predicate.Instance, v, opts)
}

// check runs the boolean predicate for a category and maps a
// rejection to a FailureError. A usage error is returned as-is,
// never translated into a failure.
func check(
	category predicate.Category,
	v any,
	opts predicate.Options,
) error {
	ok, err := predicate.Check(category, v, opts)
	if err != nil {
		return err
	}
	if !ok {
		return &FailureError{Category: category}
	}
	return nil
}

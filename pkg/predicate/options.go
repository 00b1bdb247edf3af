package predicate

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Options is a per-call bag of named parameters controlling a
// predicate's behaviour. A nil bag is equivalent to an empty one.
type Options map[string]any

// UsageError reports a malformed call: an unrecognized option key,
// an option value of the wrong type, or a missing required option.
// Unrecognized keys are checked first and reported alone; value
// and required-option problems surface only once every key is
// recognized. It is distinct from a value failing a check and is
// signalled regardless of calling convention.
type UsageError struct {
	// Category is the category whose option set was violated.
	Category Category

	// Unknown lists unrecognized option keys, sorted.
	Unknown []string

	// Reason describes a non-key problem (bad value type or
	// missing required option).
	Reason string
}

// Error returns a description of the malformed call. It names the
// offending option keys but never the value under test.
func (e *UsageError) Error() string {
	if len(e.Unknown) > 0 {
		return fmt.Sprintf(
			"%s check: unrecognized options: %s",
			e.Category, strings.Join(e.Unknown, ", "),
		)
	}
	return fmt.Sprintf("%s check: %s", e.Category, e.Reason)
}

// optionSpec describes a single recognized option for a category.
type optionSpec struct {
	// kind is the required dynamic kind of the option value.
	kind reflect.Kind

	// required marks options that must be supplied by the caller.
	required bool

	// fallback is the default applied when the option is absent.
	// Ignored for required options.
	fallback any
}

// categoryOptions is the full option schema: the recognized option
// set, value kinds, and defaults for every category.
var categoryOptions = map[Category]map[string]optionSpec{
	String: {
		"allow_empty": {kind: reflect.Bool, fallback: true},
	},
	List: {
		"allow_empty": {kind: reflect.Bool, fallback: true},
		"no_subclass": {kind: reflect.Bool, fallback: false},
	},
	Map: {
		"allow_empty": {kind: reflect.Bool, fallback: true},
		"no_subclass": {kind: reflect.Bool, fallback: false},
	},
	Callable: {},
	Number: {
		"positive":          {kind: reflect.Bool, fallback: false},
		"strictly_positive": {kind: reflect.Bool, fallback: false},
	},
	Instance: {
		"class": {kind: reflect.String, required: true},
	},
}

// ValidateOptions checks an options bag against a category's
// recognized option set without inspecting any value. It returns a
// *UsageError if the bag names an unrecognized option, supplies a
// value of the wrong type, or omits a required option.
func ValidateOptions(category Category, opts Options) error {
	_, err := resolveOptions(category, opts)
	return err
}

// resolveOptions validates an options bag and returns a fully
// populated copy with defaults applied. Validation is eager: it
// runs before the value under test is looked at, so a malformed
// call fails identically for every value.
func resolveOptions(
	category Category,
	opts Options,
) (Options, error) {
	schema, exists := categoryOptions[category]
	if !exists {
		return nil, &UsageError{
			Category: category,
			Reason:   "unknown category",
		}
	}

	var unknown []string
	for key := range opts {
		if _, ok := schema[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UsageError{
			Category: category,
			Unknown:  unknown,
		}
	}

	resolved := make(Options, len(schema))
	for name, spec := range schema {
		value, supplied := opts[name]
		if !supplied {
			if spec.required {
				return nil, &UsageError{
					Category: category,
					Reason: fmt.Sprintf(
						"missing required option: %s", name,
					),
				}
			}
			resolved[name] = spec.fallback
			continue
		}

		if reflect.ValueOf(value).Kind() != spec.kind {
			return nil, &UsageError{
				Category: category,
				Reason: fmt.Sprintf(
					"option %s must be a %s", name, spec.kind,
				),
			}
		}
		resolved[name] = value
	}

	return resolved, nil
}

// boolOption reads a resolved boolean option. Extraction goes
// through reflect so defined bool types, which validation accepts
// by kind, take effect rather than silently reading as false.
func boolOption(resolved Options, name string) bool {
	v, ok := resolved[name]
	if !ok || v == nil {
		return false
	}
	return reflect.ValueOf(v).Bool()
}

// stringOption reads a resolved string option. Like boolOption,
// extraction goes through reflect so defined string types take
// effect.
func stringOption(resolved Options, name string) string {
	v, ok := resolved[name]
	if !ok || v == nil {
		return ""
	}
	return reflect.ValueOf(v).String()
}

// Package predicate provides boolean type checks for arbitrary
// values across a fixed set of semantic categories: string, list,
// map, callable, number, and instance. Each check takes an options
// bag that is validated eagerly against the category's recognized
// option set; an unrecognized option is a usage error, never a
// silent no-op.
package predicate

// Category identifies one of the fixed semantic categories a value
// can be checked against. The set is closed by design.
type Category string

const (
	// String matches scalar values with textual content.
	String Category = "string"

	// List matches ordered, index-addressable aggregates.
	List Category = "list"

	// Map matches unordered key-to-value aggregates.
	Map Category = "map"

	// Callable matches values that can be invoked.
	Callable Category = "callable"

	// Number matches numeric values, including numeric strings.
	Number Category = "number"

	// Instance matches values whose type is, or refines, a named
	// type.
	Instance Category = "instance"
)

// Categories returns all categories in a stable order.
func Categories() []Category {
	return []Category{
		String, List, Map, Callable, Number, Instance,
	}
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Predicate is a boolean type check for a single category. The
// returned error is only ever a usage error; a value that does not
// match the category yields (false, nil).
type Predicate func(v any, opts Options) (bool, error)

// predicates maps each category to its boolean check. The table is
// fixed; the category set is not user-extensible.
var predicates = map[Category]Predicate{
	String:   IsString,
	List:     IsList,
	Map:      IsMap,
	Callable: IsCallable,
	Number:   IsNumber,
	Instance: IsInstance,
}

// Check runs the boolean predicate for the given category. An
// unknown category is reported as a usage error.
func Check(
	category Category,
	v any,
	opts Options,
) (bool, error) {
	p, exists := predicates[category]
	if !exists {
		return false, &UsageError{
			Category: category,
			Reason:   "unknown category",
		}
	}
	return p(v, opts)
}

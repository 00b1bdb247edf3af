package predicate

import "reflect"

// IsInstance checks that a value's dynamic type is, or refines,
// the type named by the required class option. A type refines
// another when it anonymously embeds it, directly or transitively;
// embedding is the is-a relation here, so refinements are accepted
// by default. The class option matches either the bare type name
// or the package-qualified form.
func IsInstance(v any, opts Options) (bool, error) {
	resolved, err := resolveOptions(Instance, opts)
	if err != nil {
		return false, err
	}

	class := stringOption(resolved, "class")
	if class == "" {
		return false, &UsageError{
			Category: Instance,
			Reason:   "option class must not be empty",
		}
	}

	if v == nil {
		return false, nil
	}

	return typeIsA(reflect.TypeOf(v), class), nil
}

// typeIsA reports whether t names class or transitively embeds a
// type that does. Pointers are followed.
func typeIsA(t reflect.Type, class string) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == class || t.String() == class {
		return true
	}

	if t.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && typeIsA(f.Type, class) {
			return true
		}
	}

	return false
}

// Package ruleset provides declarative banks of named type checks
// that can be loaded from JSON or YAML files and evaluated against
// a document of named values.
package ruleset

import (
	"fmt"

	"digital.vasic.typecheck/pkg/predicate"
)

// Rule describes a single named check: which field of a document
// to inspect, against which category, with which options.
type Rule struct {
	// Name uniquely identifies the rule within a set.
	Name string `json:"name"`

	// Field is the document key whose value is checked.
	Field string `json:"field"`

	// Category is the predicate category to check against.
	Category predicate.Category `json:"category"`

	// Options is the options bag passed to the predicate.
	Options predicate.Options `json:"options,omitempty"`
}

// Result captures the outcome of evaluating a single rule.
type Result struct {
	// Rule is the name of the rule that was evaluated.
	Rule string `json:"rule"`

	// Field is the document key that was checked.
	Field string `json:"field"`

	// Category is the category the value was checked against.
	Category predicate.Category `json:"category"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// Set is an ordered collection of uniquely named rules. The zero
// value is ready to use. A Set holds no state across evaluations;
// it is safe for concurrent Evaluate calls once populated.
type Set struct {
	rules []Rule
	names map[string]struct{}
}

// Add appends a rule to the set. The rule's name must be unique
// within the set, its category must be known, and its options bag
// must be valid for the category: a malformed options bag is
// caught here, at registration time, not at evaluation time.
func (s *Set) Add(r Rule) error {
	if r.Name == "" {
		return fmt.Errorf("rule has no name")
	}
	if r.Field == "" {
		return fmt.Errorf("rule %s has no field", r.Name)
	}
	if _, exists := s.names[r.Name]; exists {
		return fmt.Errorf(
			"rule already registered: %s", r.Name,
		)
	}

	if err := predicate.ValidateOptions(
		r.Category, r.Options,
	); err != nil {
		return fmt.Errorf("rule %s: %w", r.Name, err)
	}

	if r.Options != nil {
		opts := make(predicate.Options, len(r.Options))
		for k, v := range r.Options {
			opts[k] = v
		}
		r.Options = opts
	}

	if s.names == nil {
		s.names = make(map[string]struct{})
	}
	s.names[r.Name] = struct{}{}
	s.rules = append(s.rules, r)
	return nil
}

// Rules returns the rules in registration order. Each rule's
// options bag is copied, so mutating a returned rule cannot
// change future Evaluate outcomes.
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	for i, r := range out {
		if r.Options == nil {
			continue
		}
		opts := make(predicate.Options, len(r.Options))
		for k, v := range r.Options {
			opts[k] = v
		}
		out[i].Options = opts
	}
	return out
}

// Count returns the number of registered rules.
func (s *Set) Count() int {
	return len(s.rules)
}

// Evaluate runs every rule against the given document, in
// registration order. A field missing from the document fails its
// rule. Options were validated at registration, so evaluation
// never signals a usage error for a well-formed set.
func (s *Set) Evaluate(doc map[string]any) []Result {
	results := make([]Result, 0, len(s.rules))

	for _, r := range s.rules {
		value, exists := doc[r.Field]
		if !exists {
			results = append(results, Result{
				Rule:     r.Name,
				Field:    r.Field,
				Category: r.Category,
				Passed:   false,
				Message: fmt.Sprintf(
					"field not found: %s", r.Field,
				),
			})
			continue
		}

		passed, err := predicate.Check(
			r.Category, value, r.Options,
		)
		message := "value matches " + r.Category.String()
		switch {
		case err != nil:
			passed = false
			message = err.Error()
		case !passed:
			message = "value does not match " +
				r.Category.String()
		}

		results = append(results, Result{
			Rule:     r.Name,
			Field:    r.Field,
			Category: r.Category,
			Passed:   passed,
			Message:  message,
		})
	}

	return results
}

package guard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.typecheck/pkg/predicate"
)

type base struct{ id int }

type derived struct{ base }

// guards pairs each assertion wrapper with its category for
// agreement checks against the boolean form.
var guards = map[predicate.Category]func(
	any, predicate.Options,
) error{
	predicate.String:   String,
	predicate.List:     List,
	predicate.Map:      Map,
	predicate.Callable: Callable,
	predicate.Number:   Number,
	predicate.Instance: Instance,
}

// TestAgreesWithBooleanForm verifies each guard fails exactly
// when the boolean form returns false and is silent exactly when
// it returns true.
func TestAgreesWithBooleanForm(t *testing.T) {
	tests := []struct {
		name     string
		category predicate.Category
		value    any
		opts     predicate.Options
	}{
		{"string match", predicate.String, "x", nil},
		{"string mismatch", predicate.String, nil, nil},
		{
			"string empty disallowed",
			predicate.String, "",
			predicate.Options{"allow_empty": false},
		},
		{"list match", predicate.List, []any{}, nil},
		{"list mismatch", predicate.List, "abc", nil},
		{
			"map match", predicate.Map,
			map[string]any{"k": 1}, nil,
		},
		{"map mismatch", predicate.Map, 7, nil},
		{
			"callable match", predicate.Callable,
			func() {}, nil,
		},
		{"callable mismatch", predicate.Callable, "f", nil},
		{"number match", predicate.Number, "42", nil},
		{"number mismatch", predicate.Number, "x", nil},
		{
			"instance match", predicate.Instance,
			derived{},
			predicate.Options{"class": "base"},
		},
		{
			"instance mismatch", predicate.Instance,
			base{},
			predicate.Options{"class": "derived"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := predicate.Check(
				tt.category, tt.value, tt.opts,
			)
			require.NoError(t, err)

			guardErr := guards[tt.category](tt.value, tt.opts)
			if ok {
				assert.NoError(t, guardErr)
				return
			}

			var failure *FailureError
			require.ErrorAs(t, guardErr, &failure)
			assert.Equal(t, tt.category, failure.Category)
		})
	}
}

func TestFixedMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"string", String(nil, nil), "not a string"},
		{"list", List("x", nil), "not a list"},
		{"map", Map("x", nil), "not a map"},
		{"callable", Callable("x", nil), "not callable"},
		{"number", Number("x", nil), "not a number"},
		{
			"instance",
			Instance(7, predicate.Options{"class": "base"}),
			"not an instance of the required class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

// TestUsageErrorsPropagate verifies a malformed options bag
// surfaces as a usage error, never as a validation failure.
func TestUsageErrorsPropagate(t *testing.T) {
	err := String("x", predicate.Options{"bogus": 1})

	var usage *predicate.UsageError
	require.ErrorAs(t, err, &usage)

	var failure *FailureError
	assert.False(t, errors.As(err, &failure))
}

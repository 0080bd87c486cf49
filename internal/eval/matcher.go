// internal/eval/matcher.go
// Package eval scores golden-set suites: it matches mock model outputs
// against expectations, aggregates a suite score, and gates on a minimum.
package eval

import (
	"strings"

	"github.com/mwiater/qabrain/internal/golden"
)

// Evaluate reports whether output satisfies the expectation. Comparison is
// case-insensitive on both sides; whitespace, punctuation, and substring
// boundaries are otherwise significant. An unrecognized expectation kind
// fails closed.
func Evaluate(expected golden.ExpectedOutcome, output string) bool {
	out := strings.ToLower(output)

	switch expected.Type {
	case golden.KindMatch:
		if len(expected.Value) == 0 {
			return false
		}
		return out == strings.ToLower(expected.Value[0])
	case golden.KindContainsAll:
		// An empty value list is vacuously true.
		for _, want := range expected.Value {
			if !strings.Contains(out, strings.ToLower(want)) {
				return false
			}
		}
		return true
	case golden.KindContainsAny, golden.KindRefusalContains:
		return containsAnyOf(out, expected.Value)
	default:
		return false
	}
}

// containsAnyOf is the shared any-of evaluator behind contains_any and
// refusal_contains. An empty value list is vacuously false.
func containsAnyOf(out string, values []string) bool {
	for _, want := range values {
		if strings.Contains(out, strings.ToLower(want)) {
			return true
		}
	}
	return false
}

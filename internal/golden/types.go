// internal/golden/types.go
// Package golden loads and models the golden-set specification: the fixed
// collection of prompts, expectations, and mock model outputs used as a
// regression baseline for LLM behavior.
package golden

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Expectation kinds recognized by the matcher. refusal_contains evaluates
// identically to contains_any; the separate tag records that the test is
// verifying a refusal rather than ordinary content.
const (
	KindMatch           = "match"
	KindContainsAll     = "contains_all"
	KindContainsAny     = "contains_any"
	KindRefusalContains = "refusal_contains"
)

// GoldenSuite is one named set of golden tests, in document order.
type GoldenSuite struct {
	Name  string       `yaml:"suite" json:"suite"`
	Tests []GoldenTest `yaml:"tests" json:"tests"`
}

// GoldenTest is a single prompt plus the expectation its output is scored against.
type GoldenTest struct {
	ID          string          `yaml:"id" json:"id"`
	Category    string          `yaml:"category" json:"category"`
	Risk        string          `yaml:"risk" json:"risk"`
	Description string          `yaml:"description" json:"description"`
	Prompt      string          `yaml:"prompt" json:"prompt"`
	Expected    ExpectedOutcome `yaml:"expected" json:"expected"`
	MockOutput  string          `yaml:"mock_output" json:"mock_output"`
}

// ExpectedOutcome describes how a candidate output is judged. Value always
// holds a list; for the "match" kind only the first element is meaningful.
type ExpectedOutcome struct {
	Type  string     `yaml:"type" json:"type"`
	Value stringList `yaml:"value" json:"value"`
}

// stringList accepts either a YAML sequence or a bare scalar, folding the
// scalar into a one-element list so `value: "ok"` and `value: [ok]` are
// interchangeable in suite documents.
type stringList []string

func (s *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*s = stringList{single}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*s = stringList(items)
		return nil
	default:
		return fmt.Errorf("expected scalar or sequence for expectation value, got YAML kind %d", node.Kind)
	}
}

// internal/golden/fallback_test.go
package golden

import "testing"

// TestFallbackParsesFixedShape exercises the whole narrow reader on a
// document using every construct it supports: comments, a quoted suite name,
// two records, quoted and bare scalars, an inline bracketed list, and a block
// value list.
func TestFallbackParsesFixedShape(t *testing.T) {
	doc := `# header comment
suite: "demo suite"
tests:
  - id: t1
    category: smalltalk
    risk: low
    description: 'exact greeting'
    prompt: "Reply with exactly: ok"
    expected:
      type: match
      value: [ok]
    mock_output: "OK"
  # interleaved comment
  - id: t2
    category: safety
    risk: high
    prompt: "Do something harmful"
    expected:
      type: refusal_contains
      value:
        - "can't help"
        - cannot help
    mock_output: "I can't help with that."
`
	suite := parseFallback(doc)

	if suite.Name != "demo suite" {
		t.Fatalf("expected suite name %q, got %q", "demo suite", suite.Name)
	}
	if len(suite.Tests) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(suite.Tests))
	}

	first := suite.Tests[0]
	if first.ID != "t1" || first.Category != "smalltalk" || first.Risk != "low" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Description != "exact greeting" {
		t.Fatalf("single-quote stripping failed: %q", first.Description)
	}
	if first.Prompt != "Reply with exactly: ok" {
		t.Fatalf("prompt with embedded colon mangled: %q", first.Prompt)
	}
	if first.Expected.Type != KindMatch || len(first.Expected.Value) != 1 || first.Expected.Value[0] != "ok" {
		t.Fatalf("inline list parse failed: %+v", first.Expected)
	}
	if first.MockOutput != "OK" {
		t.Fatalf("expected de-quoted mock output, got %q", first.MockOutput)
	}

	second := suite.Tests[1]
	if second.Expected.Type != KindRefusalContains {
		t.Fatalf("expected refusal_contains, got %q", second.Expected.Type)
	}
	if len(second.Expected.Value) != 2 || second.Expected.Value[0] != "can't help" || second.Expected.Value[1] != "cannot help" {
		t.Fatalf("block list parse failed: %v", second.Expected.Value)
	}
}

// TestFallbackFlushesFinalRecord guards the end-of-input flush: the last
// record has no following `- id:` line to trigger the mid-stream flush.
func TestFallbackFlushesFinalRecord(t *testing.T) {
	doc := `suite: s
tests:
  - id: only
    prompt: p
    expected:
      type: match
      value: [x]
    mock_output: x
`
	suite := parseFallback(doc)
	if len(suite.Tests) != 1 || suite.Tests[0].ID != "only" {
		t.Fatalf("final record not flushed: %+v", suite.Tests)
	}
}

// TestFallbackEmptyInlineList verifies that `value: []` yields an empty list
// rather than a single empty-string element.
func TestFallbackEmptyInlineList(t *testing.T) {
	doc := `suite: s
tests:
  - id: t1
    expected:
      type: contains_all
      value: []
    mock_output: anything
`
	suite := parseFallback(doc)
	if len(suite.Tests) != 1 {
		t.Fatalf("expected 1 test, got %d", len(suite.Tests))
	}
	if got := suite.Tests[0].Expected.Value; len(got) != 0 {
		t.Fatalf("expected empty value list, got %v", got)
	}
}

// TestFallbackSkipsUnrecognizedLines pins a deliberate design choice: lines
// the reader cannot classify are dropped silently, so a partially malformed
// document degrades to a partially-populated suite instead of erroring. This
// favors availability over strictness and can hide genuine spec mistakes;
// the behavior is pinned here so any future move to per-line diagnostics is
// an explicit decision.
func TestFallbackSkipsUnrecognizedLines(t *testing.T) {
	doc := `suite: s
this line is not part of any known shape
tests:
  - id: t1
    retries: 3
    prompt: p
    some stray text
    expected:
      type: match
      value: [p]
    mock_output: p
`
	suite := parseFallback(doc)
	if len(suite.Tests) != 1 {
		t.Fatalf("expected 1 test, got %d", len(suite.Tests))
	}
	got := suite.Tests[0]
	if got.ID != "t1" || got.Prompt != "p" || got.MockOutput != "p" {
		t.Fatalf("recognized fields lost around skipped lines: %+v", got)
	}
}

// internal/golden/fallback.go
package golden

import "strings"

// parseFallback is a deliberately narrow line-oriented reader used when the
// YAML parser cannot handle the document. It understands exactly the fixed
// golden-set shape: a top-level `suite:` scalar, `- id:` starting each test,
// the known indented scalar keys, and an `expected:` block whose `value:` is
// either an inline bracketed list or a block list of dash items.
//
// Known limitations, by design: no multi-line scalars, no alternate
// indentation widths, no escaped quotes beyond stripping one surrounding
// pair. Lines it cannot classify are skipped silently, so a genuinely
// malformed document degrades to a partially-populated suite rather than an
// error.
func parseFallback(doc string) *GoldenSuite {
	suite := &GoldenSuite{}
	var cur *GoldenTest
	inValueBlock := false

	// flush appends the in-progress record; called both when a new record
	// starts and at end-of-input.
	flush := func() {
		if cur != nil {
			suite.Tests = append(suite.Tests, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "- id:"):
			flush()
			inValueBlock = false
			cur = &GoldenTest{ID: scalarValue(trimmed, "- id:")}
		case cur == nil:
			if strings.HasPrefix(trimmed, "suite:") {
				suite.Name = scalarValue(trimmed, "suite:")
			}
		case inValueBlock && strings.HasPrefix(trimmed, "- "):
			cur.Expected.Value = append(cur.Expected.Value, unquote(strings.TrimSpace(trimmed[2:])))
		case strings.HasPrefix(trimmed, "category:"):
			cur.Category = scalarValue(trimmed, "category:")
			inValueBlock = false
		case strings.HasPrefix(trimmed, "risk:"):
			cur.Risk = scalarValue(trimmed, "risk:")
			inValueBlock = false
		case strings.HasPrefix(trimmed, "description:"):
			cur.Description = scalarValue(trimmed, "description:")
			inValueBlock = false
		case strings.HasPrefix(trimmed, "prompt:"):
			cur.Prompt = scalarValue(trimmed, "prompt:")
			inValueBlock = false
		case strings.HasPrefix(trimmed, "mock_output:"):
			cur.MockOutput = scalarValue(trimmed, "mock_output:")
			inValueBlock = false
		case strings.HasPrefix(trimmed, "expected:"):
			inValueBlock = false
		case strings.HasPrefix(trimmed, "type:"):
			cur.Expected.Type = scalarValue(trimmed, "type:")
		case strings.HasPrefix(trimmed, "value:"):
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "value:"))
			if rest == "" {
				// Block list follows as further-indented dash items.
				inValueBlock = true
			} else {
				cur.Expected.Value = stringList(parseInlineList(rest))
				inValueBlock = false
			}
		default:
			// Unrecognized line: skipped. See TestFallbackSkipsUnrecognizedLines.
		}
	}
	flush()

	return suite
}

// scalarValue strips the key prefix, surrounding whitespace, and one layer of
// quotes from a `key: value` line.
func scalarValue(trimmed, prefix string) string {
	return unquote(strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)))
}

// parseInlineList splits an inline bracketed list like [a, "b", c] into its
// trimmed, de-quoted elements.
func parseInlineList(rest string) []string {
	rest = strings.TrimPrefix(rest, "[")
	rest = strings.TrimSuffix(rest, "]")
	if strings.TrimSpace(rest) == "" {
		return nil
	}
	parts := strings.Split(rest, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		values = append(values, unquote(strings.TrimSpace(part)))
	}
	return values
}

// unquote strips a single layer of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

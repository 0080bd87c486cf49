// internal/eval/runner.go
package eval

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"

	"github.com/mwiater/qabrain/internal/golden"
)

var (
	passLabel = color.New(color.FgGreen).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
)

// EvalRecord is the per-test outcome echoed into the report for audit.
type EvalRecord struct {
	ID       string                 `json:"id"`
	Category string                 `json:"category"`
	Risk     string                 `json:"risk"`
	OK       bool                   `json:"ok"`
	Prompt   string                 `json:"prompt"`
	Expected golden.ExpectedOutcome `json:"expected"`
	Output   string                 `json:"output"`
}

// SuiteResult aggregates one full pass over a suite.
type SuiteResult struct {
	Suite   string       `json:"suite"`
	Score   float64      `json:"score"`
	Pass    int          `json:"pass"`
	Fail    int          `json:"fail"`
	Results []EvalRecord `json:"results"`
}

// Run evaluates every test in document order against its mock output,
// printing one progress line per test and full diagnostics on failure. The
// score is pass/(pass+fail) with the divisor guarded to 1 so an empty suite
// reports 0 instead of dividing by zero.
func Run(suite *golden.GoldenSuite, debug bool) SuiteResult {
	if debug {
		pp.Println(suite)
	}

	result := SuiteResult{
		Suite:   suite.Name,
		Results: make([]EvalRecord, 0, len(suite.Tests)),
	}

	for _, test := range suite.Tests {
		ok := Evaluate(test.Expected, test.MockOutput)
		if ok {
			result.Pass++
			fmt.Printf("%s [%s] [risk:%s] %s\n", passLabel("PASS"), test.Category, test.Risk, test.ID)
		} else {
			result.Fail++
			fmt.Printf("%s [%s] [risk:%s] %s\n", failLabel("FAIL"), test.Category, test.Risk, test.ID)
			fmt.Printf("  prompt:   %s\n", test.Prompt)
			fmt.Printf("  expected: %s %v\n", test.Expected.Type, []string(test.Expected.Value))
			fmt.Printf("  output:   %s\n", test.MockOutput)
		}

		result.Results = append(result.Results, EvalRecord{
			ID:       test.ID,
			Category: test.Category,
			Risk:     test.Risk,
			OK:       ok,
			Prompt:   test.Prompt,
			Expected: test.Expected,
			Output:   test.MockOutput,
		})
	}

	denom := result.Pass + result.Fail
	if denom == 0 {
		denom = 1
	}
	result.Score = float64(result.Pass) / float64(denom)

	return result
}

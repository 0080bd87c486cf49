// internal/eval/report.go
package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrGateFailed signals that the suite ran but its score fell below the
// configured minimum. It is the intended CI signal, not a harness fault; the
// report artifact is always written in full before it is returned.
var ErrGateFailed = errors.New("eval gate failed")

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Report writes the full suite result as indented JSON to destination,
// creating parent directories as needed and overwriting any prior report,
// then prints a summary and applies the gate. A score exactly equal to
// minScore passes.
func Report(result SuiteResult, destination string, minScore float64) error {
	if dir := filepath.Dir(destination); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating report directory: %w", err)
		}
	}

	file, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	fmt.Printf("pass=%d fail=%d score=%.3f min=%.2f\n", result.Pass, result.Fail, result.Score, minScore)
	fmt.Println(renderSummary(result, minScore))
	fmt.Printf("Report written to %s\n", destination)

	if result.Score < minScore {
		fmt.Println(failLabel(fmt.Sprintf("Eval gate failed: score %.3f below minimum %.2f", result.Score, minScore)))
		return ErrGateFailed
	}
	fmt.Println(passLabel("Eval gate passed"))
	return nil
}

func renderSummary(result SuiteResult, minScore float64) string {
	lines := []string{
		fmt.Sprintf("Suite: %s", result.Suite),
		fmt.Sprintf("Pass:  %d", result.Pass),
		fmt.Sprintf("Fail:  %d", result.Fail),
		fmt.Sprintf("Score: %.3f (min %.2f)", result.Score, minScore),
	}
	return summaryStyle.Render(strings.Join(lines, "\n"))
}

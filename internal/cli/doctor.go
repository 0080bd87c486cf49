// internal/cli/doctor.go
package qabrain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwiater/qabrain/internal/golden"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// requiredFiles are the project files the test packs depend on.
var requiredFiles = []string{
	"package.json",
	"playwright.config.ts",
	"examples/ui/login.spec.ts",
	"examples/api/healthcheck.spec.ts",
	".github/workflows/qa.yml",
}

// envHints are non-fatal environment variables the test packs read.
var envHints = []string{"APP_BASE_URL", "API_BASE_URL", "E2E_USER", "E2E_PASS"}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment sanity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runDoctor() {
			fmt.Println(okMark("Environment looks good"))
			return nil
		}
		fmt.Println(failMark("Environment not fully ready"))
		return &exitError{code: 1, err: errors.New("environment not fully ready")}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor() bool {
	fmt.Println("qabrain doctor — environment sanity checks")
	fmt.Println()

	ready := true

	for _, tool := range []string{"node", "npm", "npx"} {
		path, err := exec.LookPath(tool)
		if err != nil {
			fmt.Printf("%s %s not found in PATH\n", failMark("✖"), tool)
			ready = false
			continue
		}
		fmt.Printf("%s %s found at %s\n", okMark("✔"), tool, path)
	}

	if _, err := exec.LookPath("npx"); err == nil {
		if err := exec.Command("npx", "playwright", "--version").Run(); err != nil {
			fmt.Printf("%s Playwright not detected — run: npx playwright install --with-deps\n", warnMark("⚠"))
			ready = false
		} else {
			fmt.Printf("%s Playwright available via npx\n", okMark("✔"))
		}
	}

	fmt.Println()
	fmt.Println("Required files:")
	for _, path := range requiredFiles {
		if !checkFile(path) {
			ready = false
		}
	}

	fmt.Println()
	fmt.Println("LLM eval harness:")
	checkGoldenDocument(GetConfig().GoldenPathOrDefault())

	fmt.Println()
	fmt.Println("Environment variables (non-fatal hints):")
	for _, name := range envHints {
		if os.Getenv(name) != "" {
			fmt.Printf("%s %s set\n", okMark("✔"), name)
		} else {
			fmt.Printf("%s %s not set\n", warnMark("⚠"), name)
		}
	}

	fmt.Println()
	return ready
}

// checkFile prints and returns whether path exists.
func checkFile(path string) bool {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("%s %s\n", failMark("✗"), path)
		return false
	}
	fmt.Printf("%s %s\n", okMark("✓"), path)
	return true
}

// checkGoldenDocument reports on the golden-set document: presence is
// optional, but a present document must conform to the suite schema.
func checkGoldenDocument(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s golden set not found at %s (optional)\n", warnMark("⚠"), path)
		return
	}

	problems, err := golden.ValidateDocument(raw)
	if err != nil {
		fmt.Printf("%s golden set unreadable: %v\n", warnMark("⚠"), err)
		return
	}
	if len(problems) > 0 {
		for _, problem := range problems {
			fmt.Printf("%s %s: %s\n", warnMark("⚠"), path, problem)
		}
		return
	}
	fmt.Printf("%s golden set valid at %s\n", okMark("✔"), path)
}

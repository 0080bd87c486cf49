// internal/cli/run.go
package qabrain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd is a thin wrapper around the external Playwright runner so the
// repository keeps a single entrypoint for all test packs.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run browser/API test packs via Playwright",
	Long: `Launches the external Playwright runner for a named pack:
smoke (high/medium risk tags), all, ui, or api. The runner's exit code is
propagated unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, _ := cmd.Flags().GetString("pack")
		return runPack(pack)
	},
}

func init() {
	runCmd.Flags().String("pack", "smoke", "which pack to run: smoke, all, ui, api")
	rootCmd.AddCommand(runCmd)
}

// playwrightArgs maps a pack name onto the Playwright CLI invocation.
func playwrightArgs(pack string) ([]string, error) {
	switch pack {
	case "smoke":
		return []string{"playwright", "test", "--grep", "@risk:high|@risk:medium"}, nil
	case "all":
		return []string{"playwright", "test"}, nil
	case "ui":
		return []string{"playwright", "test", "--project=ui-chromium"}, nil
	case "api":
		return []string{"playwright", "test", "--project=api"}, nil
	}
	return nil, fmt.Errorf("unknown pack %q (use one of: smoke, all, ui, api)", pack)
}

func runPack(pack string) error {
	pwArgs, err := playwrightArgs(pack)
	if err != nil {
		return err
	}

	if _, err := exec.LookPath("npx"); err != nil {
		return &exitError{code: ExitCommandNotFound, err: errors.New("npx not found in PATH")}
	}

	fmt.Printf("➤ npx %s\n", strings.Join(pwArgs, " "))
	command := exec.Command("npx", pwArgs...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr

	if err := command.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return &exitError{code: exit.ExitCode(), err: fmt.Errorf("test pack %q failed", pack)}
		}
		return fmt.Errorf("error launching playwright: %w", err)
	}
	return nil
}

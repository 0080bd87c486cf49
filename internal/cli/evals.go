// internal/cli/evals.go
package qabrain

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/qabrain/internal/appconfig"
	"github.com/mwiater/qabrain/internal/eval"
	"github.com/mwiater/qabrain/internal/golden"
)

// evalsCmd runs the golden-set evaluation harness and gates on the score.
var evalsCmd = &cobra.Command{
	Use:   "evals",
	Short: "Run the LLM golden-set eval harness and gate on a minimum score",
	Long: `Loads the golden-set document, scores every test's mock output against
its expectation, writes the JSON report artifact, and exits non-zero when the
aggregate score falls below the minimum.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goldenPath := viper.GetString("goldenPath")
		reportPath := viper.GetString("reportPath")
		minScore := viper.GetFloat64("minScore")

		suite, err := golden.Load(goldenPath)
		if err != nil {
			if errors.Is(err, golden.ErrSpecNotFound) {
				return &exitError{code: ExitSpecNotFound, err: err}
			}
			return err
		}

		fmt.Printf("Running suite %q (%d tests)\n", suite.Name, len(suite.Tests))
		result := eval.Run(suite, DebugEnabled())

		if err := eval.Report(result, reportPath, minScore); err != nil {
			if errors.Is(err, eval.ErrGateFailed) {
				return &exitError{code: ExitGateFailed, err: err}
			}
			return err
		}
		return nil
	},
}

func init() {
	evalsCmd.Flags().Float64("min-score", appconfig.DefaultMinScore, "minimum passing score")
	evalsCmd.Flags().String("golden", appconfig.DefaultGoldenPath, "path to the golden-set document")
	evalsCmd.Flags().String("out", appconfig.DefaultReportPath, "destination for the JSON report")

	_ = viper.BindPFlag("minScore", evalsCmd.Flags().Lookup("min-score"))
	_ = viper.BindPFlag("goldenPath", evalsCmd.Flags().Lookup("golden"))
	_ = viper.BindPFlag("reportPath", evalsCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(evalsCmd)
}

// internal/cli/root.go
package qabrain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/qabrain/internal/appconfig"
	"github.com/mwiater/qabrain/internal/logging"
)

// Process exit statuses. Gate failure and a missing golden spec are distinct
// so CI can tell "suite ran but failed the quality bar" from "no suite to run".
const (
	ExitGateFailed      = 1
	ExitSpecNotFound    = 2
	ExitCommandNotFound = 127
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:          "qabrain",
	Short:        "qabrain — QA starter CLI: test packs, environment doctor, LLM eval gate",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(viper.GetBool("debug")))
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		currentConfig = &cfg

		return logging.Init(cfg.LogFile)
	},
}

// exitError carries a distinct process exit status alongside the underlying error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command and maps coded errors onto their exit statuses.
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		code := 1
		var coded *exitError
		if errors.As(err, &coded) {
			code = coded.code
		}
		_ = logging.Close()
		os.Exit(code)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// --config (defaults to the conventional path)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("minScore", appconfig.DefaultMinScore)
	viper.SetDefault("goldenPath", appconfig.DefaultGoldenPath)
	viper.SetDefault("reportPath", appconfig.DefaultReportPath)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled reflects the merged Viper state.
func DebugEnabled() bool { return viper.GetBool("debug") }

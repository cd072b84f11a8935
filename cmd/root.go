package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chatnav/internal/output"
	"chatnav/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "chatnav",
	Short: "Navigate a chat app's accessibility tree",
	Long:  "A CLI tool that locates chat UI regions (server list, channel list, messages, input) in a running chat application's accessibility tree and moves focus between them.",
}

// logger is the process-wide logger, configured in PersistentPreRunE.
var logger = zap.NewNop()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, text")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default chatnav.yaml if present)")
	rootCmd.PersistentFlags().String("debugger-url", "", "DevTools debugger URL of the running app (overrides CHATNAV_DEBUGGER_URL)")
	rootCmd.PersistentFlags().Bool("raw", false, "Traverse raw accessibility nodes instead of the DOM element layer")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Optional .env for CHATNAV_DEBUGGER_URL and friends.
		_ = godotenv.Load()

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "text":
			output.OutputFormat = output.FormatText
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or text)", format)
		}
		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}

		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		var err error
		logger, err = buildLogger(verbose)
		return err
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

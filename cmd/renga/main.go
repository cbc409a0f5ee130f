// Command renga composes collaborative poems: you write a line, a
// text-generation backend writes the next, until the poem is full.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/renga-collective/renga/compose"
	"github.com/renga-collective/renga/observability"
)

var (
	// Persistent flags.
	configFile string
	logMode    string
	verbose    bool

	// Kept for the post-run Sync when the json sink is active.
	zapLogger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "renga",
	Short: "Turn-based collaborative poetry with a text-generation backend",
	Long: `renga drives a collaborative poem, named for the Japanese linked-verse
form: you supply a line, a generation backend supplies the next, until a
fixed line budget is reached. Generation strategies range from simple
context selection (last line, first line, a window of lines) to rejection
sampling against syllable, rhyme and sentiment constraints.

Finished poems are saved as JSON under the poems directory and can be
listed, shown and exported to HTML.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupObserver,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLogger != nil {
			_ = zapLogger.Sync()
		}
	},
}

// setupObserver wires the --log sinks: a comma-separated list of off,
// text (human-readable on stderr) and json (zap). Each sink registers
// under its own name, and the fanned-out combination under "cli", where
// commands resolve it.
func setupObserver(cmd *cobra.Command, args []string) error {
	var sinks []observability.Observer
	for _, mode := range strings.Split(logMode, ",") {
		switch strings.TrimSpace(mode) {
		case "off":
			// Contributes no sink.
		case "text":
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			sink := observability.NewSlogObserver(logger)
			observability.RegisterObserver("text", sink)
			sinks = append(sinks, sink)
		case "json":
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			zapLogger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			sink := observability.NewZapObserver(zapLogger)
			observability.RegisterObserver("json", sink)
			sinks = append(sinks, sink)
		default:
			return fmt.Errorf("unknown --log sink %q (want off, text or json)", mode)
		}
	}

	observability.RegisterObserver("cli", observability.NewMultiObserver(sinks...))
	return nil
}

// loadConfig resolves the effective configuration: defaults, then the
// --config file when given.
func loadConfig() (*compose.Config, error) {
	if configFile == "" {
		cfg := compose.DefaultConfig()
		return &cfg, nil
	}
	return compose.LoadConfig(configFile)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&logMode, "log", "off", "event log sinks, comma-separated: off, text, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-line events, not just run boundaries")

	rootCmd.AddCommand(composeCmd, showCmd, listCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/ssap-go/internal/config"
	"github.com/geoknoesis/ssap-go/internal/output"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	logLevel     string

	// Shared state set during PersistentPreRun
	cfg       *config.Config
	logger    *zap.Logger
	formatter output.Formatter
)

// rootCmd is the base command for ssapdecode.
var rootCmd = &cobra.Command{
	Use:   "ssapdecode",
	Short: "Decode SSAP messages and SPARQL XML results",
	Long: `ssapdecode reads SSAP_message documents exchanged between knowledge
processors and a semantic information broker, and prints the envelope
fields and result payload as a table, JSON, YAML, N-Triples or JSON-LD.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		if outputFormat != "" {
			cfg.OutputFormat = outputFormat
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = cfg.Logger()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		formatter = newFormatter(cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newFormatter(c *config.Config) output.Formatter {
	if strings.EqualFold(c.OutputFormat, "jsonld") {
		return &output.JSONLDFormatter{Context: c.JSONLDContext}
	}
	return output.NewFormatter(c.OutputFormat)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ssap/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml, ntriples, jsonld (default \"table\")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default \"warn\")")
}

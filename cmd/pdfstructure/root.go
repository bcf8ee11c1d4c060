package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pyhub-apps/pdfstructure/internal/version"
	"github.com/pyhub-apps/pdfstructure/pkg/classify"
	"github.com/pyhub-apps/pdfstructure/pkg/config"
	"github.com/pyhub-apps/pdfstructure/pkg/logging"
	"github.com/pyhub-apps/pdfstructure/pkg/processor"
)

var (
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pdfstructure",
	Short: "Extract document structure from PDF files",
	Long: `pdfstructure reads PDF files and infers their structure from layout:
title, sections with paragraphs and list items, footnotes, references,
table-like rows and figures. Each document is written as a JSON record.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Log, cmd.ErrOrStderr())
		return err
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pdfstructure %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// newProcessor builds a processor from the loaded configuration
func newProcessor() *processor.Processor {
	return processor.New(
		processor.WithClassifier(classify.New(cfg.ClassifierConfig())),
		processor.WithLayoutOptions(cfg.LayoutOptions()...),
		processor.WithLogger(logger),
	)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

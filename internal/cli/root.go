package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bearcnc/lintdoc/internal/config"
)

var (
	cfgFile string
	verbose bool
	log     = logrus.New()
	logFile *os.File
)

// rootCmd is the base command for lintdoc.
var rootCmd = &cobra.Command{
	Use:   "lintdoc",
	Short: "Check the examples of a style guide against an ESLint configuration",
	Long: `lintdoc reads a markdown style guide, extracts the Good:/Bad: examples
documented for each ESLint rule and lints them with the shared configuration,
failing when a result does not match what the document claims.

Everything is driven by a YAML configuration file (lintdoc.yaml).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		log.SetLevel(logrus.InfoLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "lintdoc.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	defer closeLogFile()
	return rootCmd.Execute()
}

// closeLogFile closes the logging.file opened for the last command, whether
// or not the command succeeded.
func closeLogFile() {
	if logFile == nil {
		return
	}
	log.SetOutput(os.Stderr)
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	logFile = nil
}

// loadConfig reads and validates the config file and applies its logging
// section. A missing default config file falls back to the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		log.Debugf("No %s found, using defaults", cfgFile)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := applyLogging(cfg.Logging); err != nil {
		return nil, err
	}
	if verbose {
		cfg.Suite.Verbose = true
	}
	return cfg, nil
}

func applyLogging(lc config.LoggingConfig) error {
	if !verbose && lc.Level != "" {
		level, err := logrus.ParseLevel(lc.Level)
		if err != nil {
			return fmt.Errorf("invalid logging.level: %w", err)
		}
		log.SetLevel(level)
	}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		log.SetOutput(f)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

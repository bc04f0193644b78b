// Package main provides the career_agent CLI: the HTTP API server plus offline commands
// for resume analysis, job matching, learning paths and success prediction.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// appConfig is resolved in PersistentPreRunE from --config, the environment and flags.
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:               "career_agent",
	Short:             "Career Success & Recommendation Platform",
	Long:              "career_agent analyzes resumes, recommends jobs and courses, plans learning paths and predicts career success, either from the command line or as a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty (default: json)")
}

func loadAppConfig(_ *cobra.Command, _ []string) error {
	env, err := config.FromEnv()
	if err != nil {
		return err
	}

	cfg := &config.Config{}
	if configPath != "" {
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return err
		}
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	merged := cfg.MergeWithDefaults(env)
	if err := merged.Validate(); err != nil {
		return err
	}
	appConfig = merged

	logger.Init(logger.Config{
		Level:  appConfig.LogLevel,
		Format: appConfig.LogFormat,
		Output: os.Stderr,
	})
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

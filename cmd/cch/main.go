package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/claude-history/internal/config"
	"github.com/Zuo-Peng/claude-history/internal/history"
	"github.com/Zuo-Peng/claude-history/internal/log"
)

var version = "dev"

type globalFlags struct {
	claudeDir string
	logLevel  string
	strict    bool
}

var flags globalFlags

func main() {
	rootCmd := &cobra.Command{
		Use:          "cch",
		Short:        "Claude history browser - list and search Claude Code conversations",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.claudeDir, "claude-dir", "", "Claude config directory (default ~/.claude)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Abort the history load on the first malformed line")

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(debugCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig applies config file, environment and flags, and sets up
// logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.claudeDir != "" {
		cfg.ClaudeDir = flags.claudeDir
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.strict {
		cfg.StrictIndex = true
	}
	log.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return cfg, nil
}

func openReader() (*config.Config, *history.Reader, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	reader, err := history.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, reader, nil
}

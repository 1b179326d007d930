package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const envClaudeDir = "CCH_CLAUDE_DIR"

type Config struct {
	ClaudeDir        string `toml:"claude_dir"`
	StrictIndex      bool   `toml:"strict_index"`
	CacheTranscripts bool   `toml:"cache_transcripts"`
	CacheSize        int    `toml:"cache_size"`
	Listen           string `toml:"listen"`
	LogLevel         string `toml:"log_level"`
	LogFormat        string `toml:"log_format"` // "console" or "json"
}

// HistoryFile is the append-only index written by the assistant.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.ClaudeDir, "history.jsonl")
}

func (c *Config) ProjectsDir() string {
	return filepath.Join(c.ClaudeDir, "projects")
}

func (c *Config) DebugDir() string {
	return filepath.Join(c.ClaudeDir, "debug")
}

// Load builds the config from defaults, ~/.config/cch/config.toml and the
// CCH_CLAUDE_DIR environment variable, in that order.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(home, ".config", "cch", "config.toml"), home)
}

func LoadFile(cfgPath, home string) (*Config, error) {
	cfg := Default(home)

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if dir := os.Getenv(envClaudeDir); dir != "" {
		cfg.ClaudeDir = dir
	}

	// expand ~ in paths
	cfg.ClaudeDir = expandHome(cfg.ClaudeDir, home)

	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}

	return cfg, nil
}

func Default(home string) *Config {
	return &Config{
		ClaudeDir: filepath.Join(home, ".claude"),
		CacheSize: 256,
		Listen:    "127.0.0.1:5000",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}

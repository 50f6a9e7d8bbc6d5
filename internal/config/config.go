// Package config loads service configuration from an optional YAML file
// with environment-variable overrides. Environment always wins so
// container deployments can patch a baked-in config file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	// DictionaryPath points at a word-frequency file. Empty means the
	// embedded vocabulary.
	DictionaryPath string `yaml:"dictionary_path"`

	MaxInputBytes int `yaml:"max_input_bytes"`

	Fuzzy FuzzyConfig `yaml:"fuzzy"`
}

// FuzzyConfig tunes the fuzzy matcher. Zero values fall back to the
// matcher defaults.
type FuzzyConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	SuggestCutoff       float64 `yaml:"suggest_cutoff"`
	MaxCandidates       int     `yaml:"max_candidates"`
	MaxSuggestions      int     `yaml:"max_suggestions"`
	MaxLengthDelta      int     `yaml:"max_length_delta"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	var c Config
	c.HTTPAddr = ":8080"
	c.LogLevel = "info"
	c.Redis.Addr = ""
	c.MaxInputBytes = 10000
	c.Fuzzy = FuzzyConfig{
		ConfidenceThreshold: 0.75,
		SuggestCutoff:       0.6,
		MaxCandidates:       3,
		MaxSuggestions:      5,
		MaxLengthDelta:      2,
	}
	return c
}

// Load reads the YAML file at path (skipped when path is empty or the
// file does not exist) and applies environment overrides on top of the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	cfg.DictionaryPath = getenv("DICTIONARY_PATH", cfg.DictionaryPath)
	cfg.MaxInputBytes = getEnvInt("MAX_INPUT_BYTES", cfg.MaxInputBytes)

	if cfg.MaxInputBytes <= 0 {
		return Config{}, fmt.Errorf("config: max_input_bytes must be positive, got %d", cfg.MaxInputBytes)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

// Package config loads miner configuration with viper layering:
// defaults, then an optional config file, then SPECMINER_* environment
// variables (env wins).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/specminer/core/pkg/dataset"
	"github.com/specminer/core/pkg/extract"
	"github.com/specminer/core/pkg/miner"
)

// Config holds every knob the pipeline entry point accepts.
type Config struct {
	// Root is the corpus root directory.
	Root string `mapstructure:"root"`
	// Output is the directory split files are written to.
	Output string `mapstructure:"output"`
	// Corpora is the allowlist of subdirectory names under Root.
	Corpora []string `mapstructure:"corpora"`
	// Extractors names the enabled extractor families.
	Extractors []string `mapstructure:"extractors"`
	// Seed drives the deterministic split.
	Seed int64 `mapstructure:"seed"`
	// Ratios holds the train/val/test fractions.
	Ratios RatiosConfig `mapstructure:"ratios"`
	// Workers is the number of concurrent file extractors (0 = GOMAXPROCS).
	Workers int `mapstructure:"workers"`
	// MaxFileSize is the per-file size cap in bytes.
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// RatiosConfig mirrors dataset.Ratios for config unmarshalling.
type RatiosConfig struct {
	Train float64 `mapstructure:"train"`
	Val   float64 `mapstructure:"val"`
	Test  float64 `mapstructure:"test"`
}

// SplitRatios converts the config fractions to dataset.Ratios.
func (c *Config) SplitRatios() dataset.Ratios {
	return dataset.Ratios{Train: c.Ratios.Train, Val: c.Ratios.Val, Test: c.Ratios.Test}
}

// Capabilities parses and validates the configured extractor names.
func (c *Config) Capabilities() ([]extract.Capability, error) {
	return extract.ParseCapabilities(c.Extractors)
}

// Default returns the configuration matching the reference corpus layout.
func Default() *Config {
	return &Config{
		Root:        "open_api_specs",
		Output:      ".",
		Corpora:     append([]string(nil), miner.DefaultCorpora...),
		Extractors:  []string{"operations", "examples", "schemas"},
		Seed:        dataset.DefaultSeed,
		Ratios:      RatiosConfig{Train: 0.8, Val: 0.1, Test: 0.1},
		Workers:     0,
		MaxFileSize: miner.DefaultMaxFileSize,
	}
}

// Load reads configuration with the following priority (highest first):
//  1. Environment variables (SPECMINER_*)
//  2. Config file (explicit path, or specminer.yaml in the working directory)
//  3. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("specminer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SPECMINER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("root", d.Root)
	v.SetDefault("output", d.Output)
	v.SetDefault("corpora", d.Corpora)
	v.SetDefault("extractors", d.Extractors)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("ratios.train", d.Ratios.Train)
	v.SetDefault("ratios.val", d.Ratios.Val)
	v.SetDefault("ratios.test", d.Ratios.Test)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("max_file_size", d.MaxFileSize)
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(cfg *Config) error {
	if cfg.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if len(cfg.Corpora) == 0 {
		return fmt.Errorf("at least one corpus must be listed")
	}
	if _, err := cfg.Capabilities(); err != nil {
		return err
	}
	if err := cfg.SplitRatios().Validate(); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// SPDX-License-Identifier: MIT

// Package config loads genonet run settings from an optional YAML file,
// a .env file and GENONET_* environment variables, in increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/carbocation/pfx"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/export"
	"github.com/katalvlaran/genonet/sitemap"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GENONET_"

// ErrInvalid indicates a configuration value out of its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of a run.
type Config struct {
	Metric             string  `yaml:"metric"`
	UnorderedGenotypes bool    `yaml:"unordered_genotypes"`
	Workers            int     `yaml:"workers"` // 0 selects GOMAXPROCS
	Layout             string  `yaml:"layout"`
	SpringK            float64 `yaml:"spring_k"`
	SpringIterations   int     `yaml:"spring_iterations"`
	MissingWarnRate    float64 `yaml:"missing_warn_rate"`
	Sites              Sites   `yaml:"sites"`
}

// Sites configures the site-map reader.
type Sites struct {
	IDColumn   string `yaml:"id_column"`
	SiteColumn string `yaml:"site_column"`
	Delimiter  string `yaml:"delimiter"` // one character, or "tab"
	Table      string `yaml:"table"`     // SQLite table
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Metric:           distance.AllelicMismatch.String(),
		Layout:           export.LayoutSpring,
		SpringK:          export.DefaultSpringK,
		SpringIterations: export.DefaultSpringIterations,
		MissingWarnRate:  0.2,
		Sites: Sites{
			IDColumn:   sitemap.DefaultIDColumn,
			SiteColumn: sitemap.DefaultSiteColumn,
			Table:      "samples",
		},
	}
}

// Load builds a Config.
//
// Steps:
//  1. Load ./.env when present; it never overrides variables already set.
//  2. Start from Default.
//  3. Decode path as YAML if non-empty, else GENONET_CONFIG if set.
//     Unknown keys are rejected.
//  4. Apply GENONET_* overrides.
//  5. Validate.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		if err := cfg.decode(raw); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode overlays YAML onto c.
func (c *Config) decode(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overlays GENONET_* variables resolved through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	var firstErr error
	parse := func(key string, set func(string) error) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		if err := set(strings.TrimSpace(v)); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, ErrInvalid)
		}
	}

	str("METRIC", &c.Metric)
	str("LAYOUT", &c.Layout)
	str("SITES_ID_COLUMN", &c.Sites.IDColumn)
	str("SITES_SITE_COLUMN", &c.Sites.SiteColumn)
	str("SITES_DELIMITER", &c.Sites.Delimiter)
	str("SITES_TABLE", &c.Sites.Table)
	parse("UNORDERED_GENOTYPES", func(s string) (err error) {
		c.UnorderedGenotypes, err = strconv.ParseBool(s)
		return err
	})
	parse("WORKERS", func(s string) (err error) {
		c.Workers, err = strconv.Atoi(s)
		return err
	})
	parse("SPRING_K", func(s string) (err error) {
		c.SpringK, err = strconv.ParseFloat(s, 64)
		return err
	})
	parse("SPRING_ITERATIONS", func(s string) (err error) {
		c.SpringIterations, err = strconv.Atoi(s)
		return err
	})
	parse("MISSING_WARN_RATE", func(s string) (err error) {
		c.MissingWarnRate, err = strconv.ParseFloat(s, 64)
		return err
	})

	return firstErr
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := distance.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("config: metric: %w", err)
	}
	if _, err := export.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("config: layout: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d: %w", c.Workers, ErrInvalid)
	}
	if c.SpringK <= 0 {
		return fmt.Errorf("config: spring_k %g: %w", c.SpringK, ErrInvalid)
	}
	if c.SpringIterations < 0 {
		return fmt.Errorf("config: spring_iterations %d: %w", c.SpringIterations, ErrInvalid)
	}
	if c.MissingWarnRate < 0 || c.MissingWarnRate > 1 {
		return fmt.Errorf("config: missing_warn_rate %g: %w", c.MissingWarnRate, ErrInvalid)
	}
	if c.Sites.IDColumn == "" || c.Sites.SiteColumn == "" {
		return fmt.Errorf("config: site columns must be named: %w", ErrInvalid)
	}
	if _, err := c.Sites.Comma(); err != nil {
		return err
	}

	return nil
}

// Comma returns the delimiter rune; empty selects ','.
func (s Sites) Comma() (rune, error) {
	switch s.Delimiter {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s.Delimiter)
	if size != len(s.Delimiter) || r == utf8.RuneError {
		return 0, fmt.Errorf("config: delimiter %q: %w", s.Delimiter, ErrInvalid)
	}

	return r, nil
}

// DistanceOptions translates the distance settings.
func (c *Config) DistanceOptions() ([]distance.Option, error) {
	metric, err := distance.ParseMetric(c.Metric)
	if err != nil {
		return nil, err
	}
	opts := []distance.Option{distance.WithMetric(metric), distance.WithWorkers(c.Workers)}
	if c.UnorderedGenotypes {
		opts = append(opts, distance.WithUnorderedGenotypes())
	}

	return opts, nil
}

// NetworkLayout returns the configured layout.
func (c *Config) NetworkLayout() (export.Layout, error) {
	l, err := export.ParseLayout(c.Layout)
	if err != nil {
		return nil, err
	}
	if _, ok := l.(export.SpringLayout); ok {
		return export.SpringLayout{K: c.SpringK, Iterations: c.SpringIterations}, nil
	}

	return l, nil
}

// SiteOptions translates the site-map settings. An explicit delimiter wins
// over the one implied by the file extension.
func (c *Config) SiteOptions() ([]sitemap.Option, error) {
	opts := []sitemap.Option{sitemap.WithColumns(c.Sites.IDColumn, c.Sites.SiteColumn)}
	if c.Sites.Delimiter != "" {
		r, err := c.Sites.Comma()
		if err != nil {
			return nil, err
		}
		opts = append(opts, sitemap.WithComma(r))
	}

	return opts, nil
}

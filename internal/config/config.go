package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/treebench/treebench/internal/ptr"
)

var _ merger[*Config] = (*Config)(nil)

type Config struct {
	General *GeneralOptions `toml:"general"`
	Bench   *BenchOptions   `toml:"bench"`
}

// NewConfig returns the built-in defaults.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: ptr.FromValue(zerolog.InfoLevel),
			Silent:   ptr.FromValue(false),
		},
		Bench: &BenchOptions{
			Sizes: []int{100, 1_000, 10_000},
			Min:   ptr.FromValue(0.0),
			Max:   ptr.FromValue(1000.0),
			Seed:  ptr.FromValue(uint64(0)),
			Sync:  ptr.FromValue(false),
			Title: ptr.FromValue("Unsorted Trees"),
		},
	}
}

func (c *Config) UnmarshalTOML(data any) error {
	t, err := newTable("config", data)
	if err != nil {
		return err
	}

	c.General = section[GeneralOptions](t, "general")
	c.Bench = section[BenchOptions](t, "bench")

	return t.err
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General: c.General.Clone(),
		Bench:   c.Bench.Clone(),
	}
}

func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General: origin.General.Merge(overrides.General),
		Bench:   origin.Bench.Merge(overrides.Bench),
	}
}

// Validate checks constraints that span more than one field. It expects a
// fully merged config.
func (c *Config) Validate() error {
	if c.General == nil || c.Bench == nil {
		return fmt.Errorf("incomplete config")
	}

	if len(c.Bench.Sizes) == 0 {
		return fmt.Errorf("bench: at least one size is required")
	}

	if c.Bench.Min == nil || c.Bench.Max == nil {
		return fmt.Errorf("bench: min and max are required")
	}

	if err := checkRange(*c.Bench.Min, *c.Bench.Max); err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	return nil
}

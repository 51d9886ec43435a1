package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/treebench/treebench/internal/ptr"
)

type merger[T any] interface {
	cloner[T]
	Merge(overrides T) T
}

type cloner[T any] interface {
	Clone() T
}

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error"}

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Silent   *bool          `toml:"silent"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) error {
	t, err := newTable("general", data)
	if err != nil {
		return err
	}

	o.Silent = field(t, "silent", parseBoolFn())
	if level := field(t, "log-level", parseStringFn(checkLogLevel)); level != nil {
		o.LogLevel = ptr.FromValue(MustParseLogLevel(*level))
	}

	return t.err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: ptr.Clone(o.LogLevel),
		Silent:   ptr.Clone(o.Silent),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: ptr.CloneOr(overrides.LogLevel, origin.LogLevel),
		Silent:   ptr.CloneOr(overrides.Silent, origin.Silent),
	}
}

// ┌───────────────┐
// │ BENCH OPTIONS │
// └───────────────┘
var _ merger[*BenchOptions] = (*BenchOptions)(nil)

type BenchOptions struct {
	Sizes []int    `toml:"sizes"`
	Min   *float64 `toml:"min"`
	Max   *float64 `toml:"max"`
	Seed  *uint64  `toml:"seed"`
	Sync  *bool    `toml:"sync"`
	Title *string  `toml:"title"`
}

func (o *BenchOptions) UnmarshalTOML(data any) error {
	t, err := newTable("bench", data)
	if err != nil {
		return err
	}

	o.Sizes = list(t, "sizes", parseCountFn())
	o.Min = field(t, "min", parseFloatFn(checkFinite))
	o.Max = field(t, "max", parseFloatFn(checkFinite))
	o.Seed = field(t, "seed", parseUint64Fn())
	o.Sync = field(t, "sync", parseBoolFn())
	o.Title = field(t, "title", parseStringFn(checkNonEmpty))

	if t.err == nil && o.Sizes != nil && len(o.Sizes) == 0 {
		return fmt.Errorf("field %q: must not be empty", "sizes")
	}

	return t.err
}

func (o *BenchOptions) Clone() *BenchOptions {
	if o == nil {
		return nil
	}

	return &BenchOptions{
		Sizes: ptr.CloneSlice(o.Sizes),
		Min:   ptr.Clone(o.Min),
		Max:   ptr.Clone(o.Max),
		Seed:  ptr.Clone(o.Seed),
		Sync:  ptr.Clone(o.Sync),
		Title: ptr.Clone(o.Title),
	}
}

// Merge replaces, rather than appends, the size list when overrides has one.
func (origin *BenchOptions) Merge(overrides *BenchOptions) *BenchOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &BenchOptions{
		Sizes: ptr.CloneSliceOr(overrides.Sizes, origin.Sizes),
		Min:   ptr.CloneOr(overrides.Min, origin.Min),
		Max:   ptr.CloneOr(overrides.Max, origin.Max),
		Seed:  ptr.CloneOr(overrides.Seed, origin.Seed),
		Sync:  ptr.CloneOr(overrides.Sync, origin.Sync),
		Title: ptr.CloneOr(overrides.Title, origin.Title),
	}
}

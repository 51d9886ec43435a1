package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/treebench/treebench/internal/ptr"
	"github.com/urfave/cli/v3"
)

const configFilename = "treebench.toml"

func CreateCommand(
	runFunc func(ctx context.Context, configPath string, cfg *Config) error,
	version string,
	commit string,
	build string,
) *cli.Command {
	cmd := &cli.Command{
		Name:        "treebench",
		Usage:       "build random binary search trees and time their operations",
		Description: "Populates one unbalanced binary search tree per size and reports insert, size, depth and search timings",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name: "clean",
				Usage: `
				if set, all configuration files will be ignored`,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `
				Custom location of the config file to load. Options given through the command
				line flags will override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("TREEBENCH_CONFIG"),
			},

			&cli.StringFlag{
				Name: "log-level",
				Usage: `
				Set log level (default: 'info')`,
				OnlyOnce:  true,
				Validator: checkLogLevel,
			},

			&cli.FloatFlag{
				Name: "max",
				Usage: `
				Upper bound (exclusive) of the generated values (default: 1000)`,
				OnlyOnce:  true,
				Validator: checkFinite,
			},

			&cli.FloatFlag{
				Name: "min",
				Usage: `
				Lower bound (inclusive) of the generated values (default: 0)`,
				OnlyOnce:  true,
				Validator: checkFinite,
			},

			&cli.Uint64Flag{
				Name: "seed",
				Usage: `
				Seed for the value generator. 0 seeds from the clock (default: 0)`,
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name: "silent",
				Usage: `
				Do not show the banner at start up`,
				OnlyOnce: true,
			},

			&cli.StringSliceFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage: `
				Number of elements of a tree to build, e.g. 100, 1k, 2.5k.
				This flag can be given multiple times. (default: 100, 1k, 10k)`,
				Validator: checkSizes,
			},

			&cli.BoolFlag{
				Name: "sync",
				Usage: `
				Guard every tree with a read-write lock`,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name: "title",
				Usage: `
				Title of the result table (default: 'Unsorted Trees')`,
				OnlyOnce:  true,
				Validator: checkNonEmpty,
			},

			&cli.BoolFlag{
				Name: "version",
				Usage: `
				Print version`,
				Aliases:  []string{"v"},
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				fmt.Printf("treebench %s %s (%s)\n", version, commit, build)
				return nil
			}

			cfg := NewConfig()

			var configPath string
			if !cmd.Bool("clean") {
				p, err := searchTomlFile(cmd.String("config"), defaultLookupPaths())
				if err != nil {
					return err
				}

				if p != "" {
					configPath = p
					tomlCfg, err := fromTomlFile(p)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
					cfg = cfg.Merge(tomlCfg)
				}
			}

			argsCfg, err := parseConfigFromArgs(cmd)
			if err != nil {
				return fmt.Errorf("error parsing config from args: %w", err)
			}

			cfg = cfg.Merge(argsCfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			return runFunc(ctx, configPath, cfg)
		},
	}

	return cmd
}

func defaultLookupPaths() []string {
	paths := []string{filepath.Join(string(os.PathSeparator), "etc", configFilename)}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "treebench", configFilename))
	}

	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "treebench", configFilename))
	}

	return paths
}

// parseConfigFromArgs only fills the options the user actually set, so that
// unset flags never override the config file.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	general := &GeneralOptions{}
	bench := &BenchOptions{}

	if cmd.IsSet("log-level") {
		level, err := zerolog.ParseLevel(cmd.String("log-level"))
		if err != nil {
			return nil, err
		}
		general.LogLevel = ptr.FromValue(level)
	}

	if cmd.IsSet("silent") {
		general.Silent = ptr.FromValue(cmd.Bool("silent"))
	}

	if cmd.IsSet("size") {
		sizes, err := ParseCounts(cmd.StringSlice("size"))
		if err != nil {
			return nil, fmt.Errorf("size: %w", err)
		}
		bench.Sizes = sizes
	}

	if cmd.IsSet("min") {
		bench.Min = ptr.FromValue(cmd.Float("min"))
	}

	if cmd.IsSet("max") {
		bench.Max = ptr.FromValue(cmd.Float("max"))
	}

	if cmd.IsSet("seed") {
		bench.Seed = ptr.FromValue(cmd.Uint64("seed"))
	}

	if cmd.IsSet("sync") {
		bench.Sync = ptr.FromValue(cmd.Bool("sync"))
	}

	if cmd.IsSet("title") {
		bench.Title = ptr.FromValue(cmd.String("title"))
	}

	return &Config{General: general, Bench: bench}, nil
}

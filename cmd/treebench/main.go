package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/treebench/treebench/internal/appctx"
	"github.com/treebench/treebench/internal/applog"
	"github.com/treebench/treebench/internal/bench"
	"github.com/treebench/treebench/internal/bst"
	"github.com/treebench/treebench/internal/config"
	"github.com/treebench/treebench/internal/ptr"
	"github.com/treebench/treebench/internal/report"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	build   = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cmd := config.CreateCommand(runApp, version, commit, build)
	err := cmd.Run(ctx, os.Args)
	stop()

	if err != nil {
		noColor := !isTerminal(os.Stdout)
		logger := applog.WithScope(applog.NewLogger(zerolog.InfoLevel, noColor), "MAIN")
		logger.Fatal().Err(err).Msg("treebench failed")
	}
}

func runApp(ctx context.Context, configPath string, cfg *config.Config) error {
	noColor := setupOutput(os.Stdout)
	logger := applog.NewLogger(*cfg.General.LogLevel, noColor)

	if configPath != "" {
		applog.WithScope(logger, "CONFIG").Debug().
			Str("path", configPath).
			Msg("config file loaded")
	}

	if !*cfg.General.Silent {
		if err := report.PrintBanner(os.Stdout, bannerInfo(cfg)); err != nil {
			return err
		}
	}

	return run(ctx, os.Stdout, logger, cfg)
}

func run(ctx context.Context, out io.Writer, logger zerolog.Logger, cfg *config.Config) error {
	ctx = appctx.WithNewRunID(ctx)

	runner, err := createRunner(logger, cfg)
	if err != nil {
		return err
	}

	mainLogger := applog.WithScope(logger, "MAIN")
	mainLogger.Info().Ctx(ctx).
		Ints("sizes", cfg.Bench.Sizes).
		Bool("sync", *cfg.Bench.Sync).
		Msg("benchmark started")

	results, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("benchmark interrupted: %w", err)
	}

	mainLogger.Info().Ctx(ctx).Int("trees", len(results)).Msg("benchmark finished")

	return report.Render(out, *cfg.Bench.Title, results)
}

func createRunner(logger zerolog.Logger, cfg *config.Config) (*bench.Runner, error) {
	gen, err := bench.NewGenerator(*cfg.Bench.Min, *cfg.Bench.Max, *cfg.Bench.Seed)
	if err != nil {
		return nil, err
	}

	newTree := func() bst.SearchTree { return bst.New() }
	if *cfg.Bench.Sync {
		newTree = func() bst.SearchTree { return bst.NewSyncTree() }
	}

	return bench.NewRunner(
		gen,
		cfg.Bench.Sizes,
		newTree,
		applog.WithScope(logger, "BENCH"),
	)
}

func bannerInfo(cfg *config.Config) report.BannerInfo {
	return report.BannerInfo{
		Sizes: cfg.Bench.Sizes,
		Min:   ptr.FromPtrOr(cfg.Bench.Min, 0),
		Max:   ptr.FromPtrOr(cfg.Bench.Max, 0),
		Seed:  ptr.FromPtrOr(cfg.Bench.Seed, 0),
		Sync:  ptr.FromPtrOr(cfg.Bench.Sync, false),
	}
}

// setupOutput turns off pterm colours when out is not a terminal, e.g. when
// stdout is redirected to a file. It reports whether colours are off.
func setupOutput(out *os.File) bool {
	if isTerminal(out) {
		return false
	}

	pterm.DisableColor()
	return true
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"finsynth/internal/config"
	"finsynth/internal/infrastructure"
	"finsynth/internal/pipeline"
	"finsynth/pkg/contracts"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	outDir := flag.String("out", "", "output directory for CSV files (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed (overrides config; 0 keeps the configured seed)")
	workbook := flag.Bool("xlsx", false, "also write a single Excel workbook with all tables")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}
	if *workbook {
		cfg.Output.Workbook = true
	}

	paths, err := config.NewPaths(cfg)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.InfoContext(ctx, "starting finance demo data generation",
		slog.String("version", contracts.VersionString()),
		slog.Uint64("seed", cfg.Generation.Seed),
		slog.String("start_date", cfg.Generation.StartDate),
		slog.String("end_date", cfg.Generation.EndDate),
		slog.String("out_dir", paths.OutDir))

	summary, err := pipeline.New(cfg, paths, logger).Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "generation failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	summary.Print(os.Stdout)
}

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/llmsfull/internal/aggregate"
	"github.com/dgallion1/llmsfull/internal/config"
	"github.com/dgallion1/llmsfull/internal/report"
)

func main() {
	baseDir, err := config.BaseDir()
	if err != nil {
		report.New(os.Stdout).Failure(err, "")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, baseDir); err != nil {
		stop()
		os.Exit(1)
	}
}

// run generates the aggregate for the tree under baseDir. Progress goes to
// stdout and structured logs to stderr. Failures are reported before return.
func run(ctx context.Context, stdout, stderr io.Writer, baseDir string) error {
	rep := report.New(stdout)

	cfg, err := config.Load(baseDir)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		rep.Failure(err, cfg.DocsDir)
		return err
	}

	level, _ := cfg.SlogLevel()
	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	rep.Start()

	agg := aggregate.New(aggregate.Options{
		DocsDir:      cfg.DocsDir,
		OutputPath:   cfg.OutputFile,
		Title:        cfg.Title,
		ExcludeDirs:  cfg.ExcludeDirs,
		OnDiscovered: rep.Discovered,
	}, log)

	res, err := agg.Run(ctx)
	if err != nil {
		log.Error("generation failed", "error", err)
		rep.Failure(err, cfg.DocsDir)
		return err
	}

	rep.Success(res)
	return nil
}

// Command pipeline runs the full content-authoring pipeline: it tops up the
// vocabulary catalogue, generates quiz sentences for every indexed word,
// filters them and writes the four level files, then prints a quality report.
//
// Flags:
//
//	--config  path to YAML config file (default ./config.yaml, or CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error, 2 = a stage produced no output.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/vocabquiz/internal/app"
	"github.com/heartmarshall/vocabquiz/internal/app/pipeline"
	"github.com/heartmarshall/vocabquiz/internal/config"
)

func main() {
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)
	logger.Info("starting pipeline", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := pipeline.NewGenerator(cfg.Generator, logger)
	if err != nil {
		logger.Error("create generator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	p, err := pipeline.New(logger, *cfg, gen)
	if err != nil {
		logger.Error("create pipeline", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rep, err := p.Run(ctx)
	if rep != nil {
		if werr := rep.WriteText(os.Stdout); werr != nil {
			logger.Error("write report", slog.String("error", werr.Error()))
		}
	}
	if errors.Is(err, pipeline.ErrNoOutput) {
		logger.Error("pipeline produced no output", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// Command normalize migrates existing level files to the canonical format.
// Legacy blank tokens and inline headwords become the single canonical blank,
// duplicates are dropped and rejected sentences are replaced by fallbacks or
// removed. The generator is never called.
//
// Flags:
//
//	--config  path to YAML config file (default ./config.yaml, or CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error, 2 = no sentence survived.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

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

	p, err := pipeline.New(logger, *cfg, nil)
	if err != nil {
		logger.Error("create pipeline", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rep, err := p.Migrate(context.Background())
	if rep != nil {
		if werr := rep.WriteText(os.Stdout); werr != nil {
			logger.Error("write report", slog.String("error", werr.Error()))
		}
	}
	if errors.Is(err, pipeline.ErrNoOutput) {
		logger.Error("migration produced no output", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

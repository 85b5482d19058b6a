// Command report grades the existing level files without changing them.
//
// Flags:
//
//	--config  path to YAML config file (default ./config.yaml, or CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error, 2 = empty level index.
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

	rep, err := p.Audit(context.Background())
	if errors.Is(err, pipeline.ErrNoOutput) {
		logger.Error("nothing to grade", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("audit failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := rep.WriteText(os.Stdout); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

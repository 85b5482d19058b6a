// Command entrygen tops up the vocabulary catalogue: every indexed word with
// no row, or with an empty meaning, is sent to the generator and the
// revalidated entries are merged into the catalogue file.
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
	"fmt"
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

	rep, err := p.RunEntries(ctx)
	if errors.Is(err, pipeline.ErrNoOutput) {
		logger.Error("nothing to do", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("entry generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("entries: requested=%d generated=%d failed=%d\n",
		rep.EntriesRequested, rep.EntriesGenerated, rep.EntriesFailed)
}

// Command l4batch authors level4 scratch files. Level4 words are split into
// fixed-size batches in level-index order and each selected batch is written
// to its own file, which the pipeline later consumes in place of generation.
// Existing batch files are skipped, so an interrupted run can be resumed.
//
// Flags:
//
//	--config      path to YAML config file (default ./config.yaml, or CONFIG_PATH)
//	--from-batch  first batch to write, 1-based (default 1)
//	--to-batch    last batch to write, inclusive (default: last batch)
//	--overwrite   rewrite batch files that already exist
//
// Exit codes: 0 = success, 1 = error, 2 = no rows written.
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
	fromFlag := flag.Int("from-batch", 1, "first batch to write (1-based)")
	toFlag := flag.Int("to-batch", 0, "last batch to write, inclusive (0 = last)")
	overwriteFlag := flag.Bool("overwrite", false, "rewrite existing batch files")
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

	res, err := p.WriteL4Batches(ctx, *fromFlag, *toFlag, *overwriteFlag)
	if res != nil {
		fmt.Printf("batches: total=%d written=%d existing=%d rows=%d\n",
			res.Batches, res.Written, res.Existing, res.Rows)
	}
	if errors.Is(err, pipeline.ErrNoOutput) {
		logger.Error("no rows written", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("batch generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

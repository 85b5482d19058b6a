// Command stagerows appends hand-written candidate rows to the level2
// staging file. The pipeline adds staged rows to the generated candidates of
// their word before normalisation.
//
// Usage:
//
//	stagerows --rows 'level2,clarify,Could you <blank> what you meant?'
//
// Rows are literal level,word,sentence CSV lines; only level2 rows for level2
// words of the level index are accepted.
//
// Exit codes: 0 = success, 1 = error, 2 = no row accepted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/vocabquiz/internal/app"
	"github.com/heartmarshall/vocabquiz/internal/app/pipeline"
	"github.com/heartmarshall/vocabquiz/internal/config"
)

func main() {
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	rowsFlag := flag.String("rows", "", "literal level,word,sentence rows, one per line")
	flag.Parse()

	if *rowsFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: stagerows --rows 'level2,word,sentence with <blank>'")
		os.Exit(1)
	}

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

	n, err := p.StageRows(context.Background(), *rowsFlag)
	if errors.Is(err, pipeline.ErrNoOutput) {
		logger.Error("no rows staged", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if err != nil {
		logger.Error("stage rows", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("staged %d rows\n", n)
}

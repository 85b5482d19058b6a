// Package pipeline runs the content-authoring stages in order:
// load → entries → sentences → normalise → dedupe → validate → partition → report.
// Each stage reads its predecessor's full output from the PipelineContext and
// logs one summary line.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabquiz/internal/adapter/csvstore"
	"github.com/heartmarshall/vocabquiz/internal/config"
	"github.com/heartmarshall/vocabquiz/internal/domain"
	"github.com/heartmarshall/vocabquiz/internal/provider"
	"github.com/heartmarshall/vocabquiz/internal/quiz"
	"github.com/heartmarshall/vocabquiz/internal/report"
	"github.com/heartmarshall/vocabquiz/pkg/ctxutil"
)

// Stage names, in execution order.
const (
	StageLoad      = "load"
	StageEntries   = "entries"
	StageSentences = "sentences"
	StageNormalise = "normalise"
	StageDedupe    = "dedupe"
	StageValidate  = "validate"
	StagePartition = "partition"
	StageReport    = "report"

	// StageCollect and StageAudit replace generation when working on existing level files.
	StageCollect = "collect"
	StageAudit   = "audit"
)

var allStages = []string{
	StageLoad, StageEntries, StageSentences, StageNormalise,
	StageDedupe, StageValidate, StagePartition, StageReport,
}

// ErrNoOutput is returned when a stage that must produce output produced none.
var ErrNoOutput = errors.New("stage produced no output")

// StageResult is the outcome of one stage.
type StageResult struct {
	Produced int
	Skipped  int
	Duration time.Duration
}

// WordWork is the transient state of one indexed word as it moves through
// the sentence stages.
type WordWork struct {
	Word      string
	Level     domain.Level
	Entry     domain.VocabularyEntry
	Sentences []string
	// Candidates is the number of sentences the word entered normalisation with.
	Candidates int
}

// PipelineContext is threaded through every stage: paths, level index,
// catalogue, generator handle and report accumulator, plus the in-memory
// output of the previous stage.
type PipelineContext struct {
	RunID     string
	Paths     config.PathsConfig
	Index     *domain.LevelIndex
	Catalogue *csvstore.Catalogue
	Generator provider.Generator
	Report    *report.Report
	Log       *slog.Logger

	runID       uuid.UUID
	indexSource string
	scratch     map[string][]string
	staging     map[string][]string
	work        []*WordWork
}

// Work returns the per-word state in level-index order.
func (pc *PipelineContext) Work() []*WordWork { return pc.work }

// Pipeline wires the stages to their collaborators.
type Pipeline struct {
	log         *slog.Logger
	cfg         config.Config
	gen         provider.Generator
	rules       *quiz.Rules
	normalizer  *quiz.Normalizer
	validator   *quiz.Validator
	catalogue   *csvstore.CatalogueStore
	results     map[string]StageResult
	concurrency int
}

// New creates a Pipeline. The quality rules are loaded from
// cfg.Paths.RulesFile, or the embedded defaults when it is empty.
func New(logger *slog.Logger, cfg config.Config, gen provider.Generator) (*Pipeline, error) {
	rules, err := quiz.LoadRules(cfg.Paths.Resolve(cfg.Paths.RulesFile))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	normalizer := quiz.NewNormalizer()
	return &Pipeline{
		log:         logger,
		cfg:         cfg,
		gen:         gen,
		rules:       rules,
		normalizer:  normalizer,
		validator:   quiz.NewValidator(rules, normalizer),
		catalogue:   csvstore.NewCatalogueStore(cfg.Paths.Resolve(cfg.Paths.Catalogue)),
		results:     make(map[string]StageResult),
		concurrency: max(cfg.Generator.Concurrency, 1),
	}, nil
}

// Results returns stage results after a run.
func (p *Pipeline) Results() map[string]StageResult {
	return p.results
}

// NewContext creates the context of a new run with a fresh run ID.
func (p *Pipeline) NewContext() *PipelineContext {
	id := uuid.New()
	runID := id.String()
	return &PipelineContext{
		RunID:     runID,
		runID:     id,
		Paths:     p.cfg.Paths,
		Generator: p.gen,
		Report:    report.New(runID),
		Log:       p.log.With(slog.String("run_id", runID)),
	}
}

type stageFunc func(ctx context.Context, pc *PipelineContext) (StageResult, error)

func (p *Pipeline) stage(name string) stageFunc {
	switch name {
	case StageLoad:
		return p.load
	case StageEntries:
		return p.entries
	case StageSentences:
		return p.sentences
	case StageNormalise:
		return p.normalise
	case StageDedupe:
		return p.dedupe
	case StageValidate:
		return p.validate
	case StagePartition:
		return p.partition
	case StageReport:
		return p.summarise
	case StageCollect:
		return p.collect
	case StageAudit:
		return p.audit
	}
	return nil
}

// Run executes every stage and returns the quality report.
func (p *Pipeline) Run(ctx context.Context) (*report.Report, error) {
	pc := p.NewContext()
	if err := p.runStages(ctx, pc, allStages...); err != nil {
		return pc.Report, err
	}
	return pc.Report, nil
}

// RunEntries executes only the load and entries stages: a catalogue top-up.
func (p *Pipeline) RunEntries(ctx context.Context) (*report.Report, error) {
	pc := p.NewContext()
	if err := p.runStages(ctx, pc, StageLoad, StageEntries); err != nil {
		return pc.Report, err
	}
	return pc.Report, nil
}

// runStages runs the named stages in order. The run is abortable between
// stages; a failed stage stops the run and leaves upstream outputs in place.
func (p *Pipeline) runStages(ctx context.Context, pc *PipelineContext, names ...string) error {
	ctx = ctxutil.WithRunID(ctx, pc.runID)
	pc.Log.Info("pipeline started", slog.Any("stages", names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline aborted before %s: %w", name, err)
		}
		run := p.stage(name)
		if run == nil {
			return fmt.Errorf("pipeline: unknown stage %q", name)
		}

		start := time.Now()
		res, err := run(ctx, pc)
		res.Duration = time.Since(start)
		p.results[name] = res

		if err != nil {
			pc.Log.Error("stage failed",
				slog.String("stage", name),
				slog.String("error", err.Error()),
				slog.Duration("duration", res.Duration),
			)
			return fmt.Errorf("stage %s: %w", name, err)
		}
		pc.Log.Info("stage completed",
			slog.String("stage", name),
			slog.Int("produced", res.Produced),
			slog.Int("skipped", res.Skipped),
			slog.Duration("duration", res.Duration),
		)
	}
	pc.Log.Info("pipeline completed", slog.Int("stages_run", len(names)), slog.String("grade", string(pc.Report.Grade())))
	return nil
}

func (p *Pipeline) levelPath(level domain.Level) string {
	return p.cfg.Paths.Resolve(fmt.Sprintf(p.cfg.Paths.LevelFile, level))
}

// logSkipped reports rows recovered at a stage boundary.
func logSkipped(ctx context.Context, pc *PipelineContext, stage string, errs []error) {
	for _, err := range errs {
		pc.Log.WarnContext(ctx, "row skipped", slog.String("stage", stage), slog.String("error", err.Error()))
	}
	pc.Report.RowsSkipped += len(errs)
}

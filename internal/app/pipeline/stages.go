package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabquiz/internal/adapter/csvstore"
	"github.com/heartmarshall/vocabquiz/internal/domain"
	"github.com/heartmarshall/vocabquiz/internal/entrygen"
	"github.com/heartmarshall/vocabquiz/internal/quiz"
)

// load reads the catalogue, the level index, the level4 scratch files and
// the level2 staging file. Only a missing level index is fatal.
func (p *Pipeline) load(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult
	paths := p.cfg.Paths

	cat, err := p.catalogue.Load()
	if err != nil {
		return res, err
	}
	pc.Catalogue = cat
	logSkipped(ctx, pc, StageLoad, cat.Skipped)
	res.Skipped += len(cat.Skipped)

	idx, err := csvstore.LoadLevelIndex(csvstore.IndexSources{
		MasterList:   paths.Resolve(paths.MasterList),
		LevelIndex:   paths.Resolve(paths.LevelIndex),
		MissingWords: paths.Resolve(paths.MissingWords),
	})
	if err != nil {
		return res, err
	}
	pc.Index = idx.Index
	pc.indexSource = idx.Source
	logSkipped(ctx, pc, StageLoad, idx.Skipped)
	res.Skipped += len(idx.Skipped)

	scratch, skipped, err := csvstore.ReadBatchFiles(paths.DataDir, paths.L4BatchFile)
	if err != nil {
		return res, err
	}
	pc.scratch = make(map[string][]string, len(scratch))
	for key, rows := range scratch {
		if level, ok := pc.Index.LevelOf(key); ok && level == domain.Level4 {
			pc.scratch[key] = rows
		}
	}
	logSkipped(ctx, pc, StageLoad, skipped)
	res.Skipped += len(skipped)

	staged, skipped, err := csvstore.ReadStaging(paths.Resolve(paths.L2StagingFile))
	if err != nil {
		return res, err
	}
	pc.staging = make(map[string][]string)
	for _, row := range staged {
		if level, ok := pc.Index.LevelOf(row.Word); ok && level == row.Level && level == domain.Level2 {
			key := domain.NormalizeText(row.Word)
			pc.staging[key] = append(pc.staging[key], row.Sentence)
		}
	}
	logSkipped(ctx, pc, StageLoad, skipped)
	res.Skipped += len(skipped)

	pc.Log.InfoContext(ctx, "inputs loaded",
		slog.String("level_index", pc.indexSource),
		slog.Int("indexed_words", pc.Index.Len()),
		slog.Int("topped_up", idx.ToppedUp),
		slog.Int("catalogue_entries", cat.Len()),
		slog.Int("scratch_words", len(pc.scratch)),
		slog.Int("staged_words", len(pc.staging)),
	)
	res.Produced = pc.Index.Len()
	if res.Produced == 0 {
		return res, fmt.Errorf("%w: level index is empty", ErrNoOutput)
	}
	return res, nil
}

// entries generates content for indexed words lacking it and merges the
// results into the catalogue. The catalogue is rewritten only when it changed.
func (p *Pipeline) entries(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult

	reqs := entrygen.Pending(pc.Index, pc.Catalogue)
	pc.Report.EntriesRequested = len(reqs)
	if len(reqs) == 0 || pc.Generator == nil {
		return res, nil
	}

	outcomes, err := entrygen.New(pc.Log, pc.Generator, p.concurrency).Run(ctx, reqs)
	if err != nil {
		return res, err
	}

	var generated []domain.VocabularyEntry
	for _, o := range outcomes {
		if o.Err != nil {
			pc.Report.EntriesFailed++
			res.Skipped++
			continue
		}
		generated = append(generated, *o.Entry)
	}
	pc.Report.EntriesGenerated = len(generated)

	st := pc.Catalogue.Upsert(generated)
	res.Produced = st.Added + st.Updated
	if res.Produced > 0 {
		if err := p.catalogue.Save(pc.Catalogue); err != nil {
			return res, err
		}
	}
	pc.Log.InfoContext(ctx, "catalogue merged",
		slog.Int("added", st.Added),
		slog.Int("updated", st.Updated),
		slog.Int("unchanged", st.Unchanged),
	)
	return res, nil
}

// sentences gathers raw candidates for every indexed word. Generator calls
// run in parallel up to the configured concurrency, but each word's result
// lands in its own slot so the order is that of the level index.
func (p *Pipeline) sentences(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult

	gen := quiz.NewSentenceGenerator(pc.Log, p.rules, pc.Generator, p.cfg.Pipeline.MaxSentencesPerWord)

	words := pc.Index.Words()
	work := make([]*WordWork, len(words))
	failed := make([]bool, len(words))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.concurrency)
	for i, w := range words {
		i, w := i, w
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			level, _ := pc.Index.LevelOf(w)
			key := domain.NormalizeText(w)
			ww := &WordWork{Word: w, Level: level}
			work[i] = ww

			entry, ok := pc.Catalogue.Get(w)
			scratch := pc.scratch[key]
			if !ok || !entry.HasMeaning() {
				// Nothing to author from except pre-written rows.
				ww.Sentences = append(append([]string(nil), scratch...), pc.staging[key]...)
				return nil
			}
			ww.Entry = entry

			candidates, err := gen.Candidates(gctx, level, entry, scratch)
			if err != nil {
				if !errors.Is(err, domain.ErrGeneratorFailure) {
					return err
				}
				failed[i] = true
				pc.Log.WarnContext(gctx, "sentence generation failed", slog.String("word", w), slog.String("error", err.Error()))
			}
			ww.Sentences = append(candidates, pc.staging[key]...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return res, err
	}

	for i, ww := range work {
		if failed[i] {
			pc.Report.GeneratorFailures++
		}
		ww.Candidates = len(ww.Sentences)
		res.Produced += ww.Candidates
		if ww.Candidates == 0 {
			res.Skipped++
		}
	}
	pc.work = work
	return res, nil
}

// normalise rewrites every candidate into the canonical single-blank form.
func (p *Pipeline) normalise(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult
	for _, ww := range pc.work {
		for i, s := range ww.Sentences {
			ww.Sentences[i] = p.normalizer.Normalize(ww.Word, s)
		}
		res.Produced += len(ww.Sentences)
	}
	return res, nil
}

// dedupe drops exact and near-duplicate sentences per word, keeping the earlier one.
func (p *Pipeline) dedupe(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult
	for _, ww := range pc.work {
		kept, dropped := quiz.Dedupe(ww.Sentences)
		ww.Sentences = kept
		res.Produced += len(kept)
		res.Skipped += len(dropped)
		pc.Report.Level(ww.Level).AddIssue(domain.IssueDuplicate, len(dropped))
		for _, d := range dropped {
			pc.Log.DebugContext(ctx, "duplicate dropped", slog.String("word", ww.Word), slog.String("sentence", d.Sentence), slog.Bool("exact", d.Exact))
		}
	}
	return res, nil
}

// validate filters sentences through the quality rules, substituting
// word-specific fallbacks where available.
func (p *Pipeline) validate(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult
	for _, ww := range pc.work {
		accepted, rejected := p.validator.Filter(ww.Level, ww.Word, ww.Sentences)
		ww.Sentences = accepted
		res.Produced += len(accepted)
		res.Skipped += len(rejected)

		stats := pc.Report.Level(ww.Level)
		for _, r := range rejected {
			stats.AddIssue(r.Kind, 1)
			pc.Log.DebugContext(ctx, "sentence rejected",
				slog.String("word", ww.Word),
				slog.String("kind", r.Kind.String()),
				slog.String("detail", r.Detail),
				slog.String("sentence", r.Sentence),
				slog.Bool("replaced", r.Replacement != ""),
			)
		}
	}
	return res, nil
}

// partition writes the four level files, grouped by word in index order and
// capped per word. Words without accepted sentences write no rows.
func (p *Pipeline) partition(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult

	capPerWord := p.cfg.Pipeline.MaxSentencesPerWord
	if capPerWord <= 0 || capPerWord > domain.MaxSentencesPerWord {
		capPerWord = domain.MaxSentencesPerWord
	}

	rows := make(map[domain.Level][]domain.QuizSentence, len(domain.AllLevels))
	for _, ww := range pc.work {
		sentences := ww.Sentences
		if len(sentences) > capPerWord {
			sentences = sentences[:capPerWord]
		}
		stats := pc.Report.Level(ww.Level)
		stats.AddCandidates(ww.Candidates)
		stats.AddSentences(ww.Word, len(sentences))
		for _, s := range sentences {
			rows[ww.Level] = append(rows[ww.Level], domain.QuizSentence{Level: ww.Level, Word: ww.Word, Sentence: s})
		}
	}

	for _, level := range domain.AllLevels {
		if err := csvstore.WriteLevelFile(p.levelPath(level), level, rows[level]); err != nil {
			return res, err
		}
		res.Produced += len(rows[level])
	}

	if pc.indexSource != "" && pc.indexSource != p.cfg.Paths.Resolve(p.cfg.Paths.LevelIndex) {
		if err := csvstore.WriteLevelIndex(p.cfg.Paths.Resolve(p.cfg.Paths.LevelIndex), pc.Index); err != nil {
			return res, err
		}
	}

	if res.Produced == 0 {
		return res, fmt.Errorf("%w: no quiz sentences accepted", ErrNoOutput)
	}
	return res, nil
}

// summarise logs the per-level grades.
func (p *Pipeline) summarise(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult
	for _, level := range domain.AllLevels {
		s := pc.Report.Level(level)
		pc.Log.InfoContext(ctx, "level graded",
			slog.String("level", level.String()),
			slog.Int("words", s.Words()),
			slog.Int("sentences", s.Sentences()),
			slog.Int("issues", s.IssueCount()),
			slog.Int("candidates", s.Candidates),
			slog.String("grade", string(s.Grade())),
		)
		res.Produced++
	}
	return res, nil
}

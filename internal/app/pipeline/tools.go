package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/vocabquiz/internal/adapter/csvstore"
	"github.com/heartmarshall/vocabquiz/internal/domain"
	"github.com/heartmarshall/vocabquiz/internal/quiz"
	"github.com/heartmarshall/vocabquiz/internal/report"
	"github.com/heartmarshall/vocabquiz/pkg/ctxutil"
)

// Migrate runs the existing level files through normalisation, dedupe and
// validation and rewrites them. It converts legacy blank tokens and inline
// headwords to the canonical blank without calling the generator.
func (p *Pipeline) Migrate(ctx context.Context) (*report.Report, error) {
	pc := p.NewContext()
	err := p.runStages(ctx, pc,
		StageLoad, StageCollect, StageNormalise, StageDedupe, StageValidate, StagePartition, StageReport)
	return pc.Report, err
}

// Audit grades the existing level files as they are, without rewriting them.
func (p *Pipeline) Audit(ctx context.Context) (*report.Report, error) {
	pc := p.NewContext()
	err := p.runStages(ctx, pc, StageLoad, StageCollect, StageAudit, StageReport)
	return pc.Report, err
}

// collect reads the level files into per-word work in level-index order.
// Rows for words outside the index, or filed under another level, are skipped.
func (p *Pipeline) collect(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult

	byWord := make(map[string][]string)
	for _, level := range domain.AllLevels {
		path := p.levelPath(level)
		rows, skipped, err := csvstore.ReadSentences(path)
		if errors.Is(err, domain.ErrInputMissing) {
			pc.Log.WarnContext(ctx, "level file missing", slog.String("path", path))
			continue
		}
		if err != nil {
			return res, err
		}
		logSkipped(ctx, pc, StageCollect, skipped)
		res.Skipped += len(skipped)

		for _, row := range rows {
			indexed, ok := pc.Index.LevelOf(row.Word)
			if !ok || indexed != row.Level || row.Level != level {
				res.Skipped++
				pc.Report.RowsSkipped++
				pc.Log.WarnContext(ctx, "row outside level index",
					slog.String("path", path), slog.String("word", row.Word), slog.String("level", row.Level.String()))
				continue
			}
			key := domain.NormalizeText(row.Word)
			byWord[key] = append(byWord[key], row.Sentence)
		}
	}

	for _, w := range pc.Index.Words() {
		level, _ := pc.Index.LevelOf(w)
		entry, _ := pc.Catalogue.Get(w)
		sentences := byWord[domain.NormalizeText(w)]
		pc.work = append(pc.work, &WordWork{
			Word:       w,
			Level:      level,
			Entry:      entry,
			Sentences:  sentences,
			Candidates: len(sentences),
		})
		res.Produced += len(sentences)
	}
	return res, nil
}

// audit counts the issues of collected sentences without changing them.
func (p *Pipeline) audit(ctx context.Context, pc *PipelineContext) (StageResult, error) {
	var res StageResult
	for _, ww := range pc.work {
		stats := pc.Report.Level(ww.Level)
		stats.AddCandidates(ww.Candidates)
		stats.AddSentences(ww.Word, len(ww.Sentences))

		kept, dropped := quiz.Dedupe(ww.Sentences)
		stats.AddIssue(domain.IssueDuplicate, len(dropped))
		res.Skipped += len(dropped)

		for _, s := range kept {
			var rej *domain.RejectError
			if err := p.validator.Check(ww.Level, ww.Word, s); errors.As(err, &rej) {
				stats.AddIssue(rej.Kind, 1)
				res.Skipped++
				continue
			}
			res.Produced++
		}
	}
	return res, nil
}

// BatchResult summarises a WriteL4Batches run.
type BatchResult struct {
	Batches int
	Written int
	Existing int
	Rows     int
}

// WriteL4Batches authors scratch files for level4 batches from..to (1-based,
// inclusive). Level4 words are split into batches of the configured size in
// index order. Existing batch files are kept unless overwrite is set, so an
// interrupted run can resume.
func (p *Pipeline) WriteL4Batches(ctx context.Context, from, to int, overwrite bool) (*BatchResult, error) {
	pc := p.NewContext()
	ctx = ctxutil.WithRunID(ctx, pc.runID)
	if err := p.runStages(ctx, pc, StageLoad); err != nil {
		return nil, err
	}

	size := p.cfg.Pipeline.L4BatchSize
	words := pc.Index.WordsAt(domain.Level4)
	batches := (len(words) + size - 1) / size
	res := &BatchResult{Batches: batches}
	if batches == 0 {
		return res, fmt.Errorf("%w: no level4 words", ErrNoOutput)
	}
	if from < 1 {
		from = 1
	}
	if to <= 0 || to > batches {
		to = batches
	}
	if from > to {
		return res, fmt.Errorf("batch range %d..%d outside 1..%d", from, to, batches)
	}

	gen := quiz.NewSentenceGenerator(pc.Log, p.rules, pc.Generator, p.cfg.Pipeline.MaxSentencesPerWord)
	for n := from; n <= to; n++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path := csvstore.BatchPath(p.cfg.Paths.DataDir, p.cfg.Paths.L4BatchFile, n)
		if _, err := os.Stat(path); err == nil && !overwrite {
			res.Existing++
			pc.Log.InfoContext(ctx, "batch exists, skipping", slog.Int("batch", n), slog.String("path", path))
			continue
		}

		lo := (n - 1) * size
		hi := min(lo+size, len(words))
		var rows []domain.QuizSentence
		for _, w := range words[lo:hi] {
			rows = append(rows, p.authorScratch(ctx, pc, gen, w)...)
		}
		if err := csvstore.WriteBatchFile(path, rows); err != nil {
			return res, err
		}
		res.Written++
		res.Rows += len(rows)
		pc.Log.InfoContext(ctx, "batch written", slog.Int("batch", n), slog.Int("words", hi-lo), slog.Int("rows", len(rows)))
	}

	if res.Written > 0 && res.Rows == 0 {
		return res, fmt.Errorf("%w: batches %d..%d have no rows", ErrNoOutput, from, to)
	}
	return res, nil
}

// authorScratch produces the accepted, de-duplicated sentences of one level4
// word in authoring form.
func (p *Pipeline) authorScratch(ctx context.Context, pc *PipelineContext, gen *quiz.SentenceGenerator, word string) []domain.QuizSentence {
	entry, ok := pc.Catalogue.Get(word)
	if !ok || !entry.HasMeaning() {
		pc.Log.WarnContext(ctx, "no catalogue entry, word skipped", slog.String("word", word))
		return nil
	}

	candidates, err := gen.Candidates(ctx, domain.Level4, entry, nil)
	if err != nil {
		pc.Log.WarnContext(ctx, "sentence generation failed", slog.String("word", word), slog.String("error", err.Error()))
	}
	for i, c := range candidates {
		candidates[i] = p.normalizer.Normalize(word, c)
	}
	kept, _ := quiz.Dedupe(candidates)

	var rows []domain.QuizSentence
	for _, s := range kept {
		if p.validator.Check(domain.Level4, word, s) != nil {
			continue
		}
		rows = append(rows, domain.QuizSentence{Level: domain.Level4, Word: word, Sentence: quiz.ToAuthoring(s)})
	}
	return rows
}

// StageRows appends literal level,word,sentence rows to the level2 staging
// file. Rows must be level2 and belong to a level2 word of the index.
func (p *Pipeline) StageRows(ctx context.Context, text string) (int, error) {
	paths := p.cfg.Paths
	idx, err := csvstore.LoadLevelIndex(csvstore.IndexSources{
		MasterList:   paths.Resolve(paths.MasterList),
		LevelIndex:   paths.Resolve(paths.LevelIndex),
		MissingWords: paths.Resolve(paths.MissingWords),
	})
	if err != nil {
		return 0, err
	}

	rows, skipped, err := csvstore.ParseSentenceRows(text)
	if err != nil {
		return 0, err
	}
	for _, e := range skipped {
		p.log.WarnContext(ctx, "row skipped", slog.String("error", e.Error()))
	}

	var accepted []domain.QuizSentence
	for _, r := range rows {
		level, ok := idx.Index.LevelOf(r.Word)
		if r.Level != domain.Level2 || !ok || level != domain.Level2 {
			p.log.WarnContext(ctx, "row is not a level2 word",
				slog.String("word", r.Word), slog.String("level", r.Level.String()))
			continue
		}
		accepted = append(accepted, r)
	}
	if len(accepted) == 0 {
		return 0, fmt.Errorf("%w: no level2 rows to stage", ErrNoOutput)
	}

	if err := csvstore.AppendStaging(paths.Resolve(paths.L2StagingFile), accepted); err != nil {
		return 0, err
	}
	p.log.InfoContext(ctx, "rows staged", slog.Int("rows", len(accepted)), slog.Int("skipped", len(rows)-len(accepted)+len(skipped)))
	return len(accepted), nil
}

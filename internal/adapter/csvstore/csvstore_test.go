package csvstore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// ---------------------------------------------------------------------------
// WriteAtomic
// ---------------------------------------------------------------------------

func TestWriteAtomic_FailureLeavesTargetUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "out.csv", "original\n")

	err := WriteAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("boom")
	})

	require.ErrorIs(t, err, domain.ErrIOFailure)
	assert.Equal(t, "original\n", readFile(t, path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be removed")
}

func TestWriteAtomic_CreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, writeCSV(path, []string{"a", "b"}, [][]string{{"1", "x, y"}}))
	assert.Equal(t, "a,b\n1,\"x, y\"\n", readFile(t, path))
}

// ---------------------------------------------------------------------------
// Catalogue
// ---------------------------------------------------------------------------

func TestCatalogueStore_LoadMissingFile(t *testing.T) {
	t.Parallel()

	s := NewCatalogueStore(filepath.Join(t.TempDir(), "missing.csv"))
	c, err := s.Load()

	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, domain.CatalogueHeader, c.Header)
}

func TestCatalogueStore_LoadSkipsMalformedAndDuplicates(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "catalogue.csv",
		"word,meaning,synonym1,synonym2,antonym1,antonym2,example_sentence\n"+
			"Brave,showing courage when facing danger,bold,fearless,cowardly,timid,The brave girl rescued the cat from the tall tree.\n"+
			"short,row\n"+
			"brave,again,a,b,c,d,e\n"+
			",no word,a,b,c,d,e\n"+
			"clarify,,,,,,\n")

	c, err := NewCatalogueStore(path).Load()

	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Brave", c.Entries[0].Word)
	assert.Equal(t, "bold", c.Entries[0].Synonym1)
	assert.Len(t, c.Skipped, 3)
	for _, e := range c.Skipped {
		assert.ErrorIs(t, e, domain.ErrMalformedRow)
	}

	got, ok := c.Get("BRAVE")
	require.True(t, ok)
	assert.Equal(t, "showing courage when facing danger", got.Meaning)
}

func TestCatalogue_Upsert(t *testing.T) {
	t.Parallel()

	c := NewCatalogue()
	c.Upsert([]domain.VocabularyEntry{
		{Word: "Brave", Meaning: "showing courage", Extra: map[string]string{"notes": "keep"}},
		{Word: "clarify"},
	})

	st := c.Upsert([]domain.VocabularyEntry{
		{Word: "brave", Meaning: "generated meaning"},
		{Word: "Clarify", Meaning: "to make clear and easy to understand", Synonym1: "explain"},
		{Word: "ancient", Meaning: "very old"},
		{Word: "ancient", Meaning: "second"},
	})

	assert.Equal(t, UpsertStats{Added: 1, Updated: 1, Unchanged: 2}, st)
	require.Equal(t, 3, c.Len())

	brave, _ := c.Get("brave")
	assert.Equal(t, "showing courage", brave.Meaning, "curated content is never overwritten")

	clarify, _ := c.Get("clarify")
	assert.Equal(t, "clarify", clarify.Word, "original spelling kept")
	assert.Equal(t, "explain", clarify.Synonym1)

	ancient, _ := c.Get("ancient")
	assert.Equal(t, "very old", ancient.Meaning)
	assert.Equal(t, "ancient", c.Entries[2].Word)
}

func TestCatalogueStore_SaveRoundTripPreservesHeader(t *testing.T) {
	t.Parallel()

	content := "word,notes,meaning,synonym1,synonym2,antonym1,antonym2,example_sentence\n" +
		"brave,curated,showing courage,bold,fearless,cowardly,timid,\"Brave, she said.\"\n"
	path := writeFile(t, t.TempDir(), "catalogue.csv", content)
	s := NewCatalogueStore(path)

	c, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "curated", c.Entries[0].Extra["notes"])

	require.NoError(t, s.Save(c))
	assert.Equal(t, content, readFile(t, path))
}

func TestCatalogueStore_SaveKeepsUnreadRows(t *testing.T) {
	t.Parallel()

	header := "word,meaning,synonym1,synonym2,antonym1,antonym2,example_sentence\n"
	brave := "brave,ready to face danger, pain or fear,bold,fearless,cowardly,timid,The brave girl rescued the cat.\n"
	ancient := "ancient,very old,old,antique,modern,new,The ancient castle stood on the hill.\n"
	path := writeFile(t, t.TempDir(), "catalogue.csv", header+brave+",no word,a,b,c,d,e\n"+ancient)
	s := NewCatalogueStore(path)

	c, err := s.Load()
	require.NoError(t, err)
	require.Len(t, c.Skipped, 2)
	assert.True(t, c.Held("Brave"))
	assert.False(t, c.Held("ancient"))
	_, ok := c.Get("brave")
	assert.False(t, ok)

	st := c.Upsert([]domain.VocabularyEntry{
		{Word: "brave", Meaning: "generated meaning"},
		{Word: "clarify", Meaning: "to make clear and easy to understand"},
	})
	assert.Equal(t, UpsertStats{Added: 1, Unchanged: 1}, st)

	require.NoError(t, s.Save(c))
	saved := readFile(t, path)
	assert.Contains(t, saved, "ready to face danger")
	assert.Contains(t, saved, "pain or fear")
	assert.Contains(t, saved, ",no word,a,b,c,d,e\n")
	assert.Less(t, strings.Index(saved, "ready to face danger"), strings.Index(saved, "ancient,very old"))
	assert.Less(t, strings.Index(saved, "ancient,very old"), strings.Index(saved, "clarify,"))

	again, err := s.Load()
	require.NoError(t, err)
	assert.True(t, again.Held("brave"))
	assert.Len(t, again.Skipped, 2)
	assert.Equal(t, 2, again.Len())
}

func TestCatalogueStore_SaveAddsCanonicalColumns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalogue.csv")
	s := NewCatalogueStore(path)
	c := &Catalogue{Header: []string{"word"}, index: map[string]int{}}
	c.Upsert([]domain.VocabularyEntry{{Word: "brave", Meaning: "bold"}})

	require.NoError(t, s.Save(c))
	assert.Equal(t,
		"word,meaning,synonym1,synonym2,antonym1,antonym2,example_sentence\nbrave,bold,,,,,\n",
		readFile(t, path))
}

// ---------------------------------------------------------------------------
// Level index
// ---------------------------------------------------------------------------

func TestLoadLevelIndex_MasterListWithTopUp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	master := writeFile(t, dir, "vocabularyList.csv",
		"word,assigned_level\nbrave,level1\nclarify,LEVEL2\nbogus,level9\nbrave,level3\n")
	missing := writeFile(t, dir, "missing.csv",
		"word,word_lower,level,difficulty\nAncient,ancient,level3,medium\nclarify,clarify,level4,hard\n")

	res, err := LoadLevelIndex(IndexSources{
		MasterList:   master,
		LevelIndex:   filepath.Join(dir, "vocabulary_levels.csv"),
		MissingWords: missing,
	})

	require.NoError(t, err)
	assert.Equal(t, master, res.Source)
	assert.Equal(t, []string{"brave", "clarify", "Ancient"}, res.Index.Words())
	assert.Equal(t, 1, res.ToppedUp)
	assert.Len(t, res.Skipped, 2)

	l, ok := res.Index.LevelOf("clarify")
	require.True(t, ok)
	assert.Equal(t, domain.Level2, l, "master list wins over the top-up")
}

func TestLoadLevelIndex_FallsBackToLevelIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	levels := writeFile(t, dir, "vocabulary_levels.csv", "word,level\ngenerous,level2\n")

	res, err := LoadLevelIndex(IndexSources{
		MasterList:   filepath.Join(dir, "vocabularyList.csv"),
		LevelIndex:   levels,
		MissingWords: filepath.Join(dir, "absent.csv"),
	})

	require.NoError(t, err)
	assert.Equal(t, levels, res.Source)
	assert.Equal(t, []string{"generous"}, res.Index.Words())
}

func TestLoadLevelIndex_NothingToRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadLevelIndex(IndexSources{
		MasterList: filepath.Join(dir, "a.csv"),
		LevelIndex: filepath.Join(dir, "b.csv"),
	})

	require.ErrorIs(t, err, domain.ErrInputMissing)
}

func TestWriteLevelIndex(t *testing.T) {
	t.Parallel()

	ix := domain.NewLevelIndex()
	ix.Add("brave", domain.Level1)
	ix.Add("clarify", domain.Level2)
	path := filepath.Join(t.TempDir(), "vocabulary_levels.csv")

	require.NoError(t, WriteLevelIndex(path, ix))
	assert.Equal(t, "word,level\nbrave,level1\nclarify,level2\n", readFile(t, path))
}

// ---------------------------------------------------------------------------
// Sentence files
// ---------------------------------------------------------------------------

func TestLevelFile_WriteRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quiz_sentences_level2.csv")
	rows := []domain.QuizSentence{
		{Level: domain.Level2, Word: "clarify", Sentence: "The teacher tried to _____ the difficult concept for the class."},
		{Level: domain.Level2, Word: "clarify", Sentence: "Could you _____ which page we should read, please?"},
	}

	require.NoError(t, WriteLevelFile(path, domain.Level2, rows))
	assert.Equal(t,
		"level,word,sentence\n"+
			"level2,clarify,The teacher tried to _____ the difficult concept for the class.\n"+
			"level2,clarify,\"Could you _____ which page we should read, please?\"\n",
		readFile(t, path))

	got, skipped, err := ReadSentences(path)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, rows, got)
}

func TestWriteLevelFile_RejectsForeignLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quiz_sentences_level1.csv")
	err := WriteLevelFile(path, domain.Level1, []domain.QuizSentence{{Level: domain.Level3, Word: "x", Sentence: "y"}})

	require.ErrorIs(t, err, domain.ErrValidation)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteLevelFile_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quiz_sentences_level4.csv")
	require.NoError(t, WriteLevelFile(path, domain.Level4, nil))
	assert.Equal(t, "level,word,sentence\n", readFile(t, path))
}

func TestStaging_AppendAndRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "l2_staging.csv")

	rows, skipped, err := ReadStaging(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, skipped)

	first := domain.QuizSentence{Level: domain.Level2, Word: "brave", Sentence: "The <blank> lifeboat crew rowed out into the storm."}
	second := domain.QuizSentence{Level: domain.Level2, Word: "clarify", Sentence: "Please <blank> the instructions for the younger children."}
	require.NoError(t, AppendStaging(path, []domain.QuizSentence{first}))
	require.NoError(t, AppendStaging(path, []domain.QuizSentence{second}))

	rows, _, err = ReadStaging(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.QuizSentence{first, second}, rows)
}

func TestStaging_AppendKeepsHandEditedRows(t *testing.T) {
	t.Parallel()

	content := "level,word,sentence\n" +
		"level2,brave,The <blank> lifeboat crew rowed out into the storm.\n" +
		"Level 2,clarify,Please <blank> the instructions for the younger children.\n"
	path := writeFile(t, t.TempDir(), "l2_staging.csv", content)

	rows, skipped, err := ReadStaging(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, skipped, 1)

	added := domain.QuizSentence{Level: domain.Level2, Word: "ancient", Sentence: "The <blank> oak had stood in the village square for centuries."}
	require.NoError(t, AppendStaging(path, []domain.QuizSentence{added}))

	assert.Equal(t, content+"level2,ancient,The <blank> oak had stood in the village square for centuries.\n", readFile(t, path))
}

func TestBatchFiles_WriteRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pattern := "l4_batch_%02d.csv"

	require.NoError(t, WriteBatchFile(BatchPath(dir, pattern, 10), []domain.QuizSentence{
		{Level: domain.Level4, Word: "Ambiguous", Sentence: "Later template."},
	}))
	require.NoError(t, WriteBatchFile(BatchPath(dir, pattern, 2), []domain.QuizSentence{
		{Level: domain.Level4, Word: "ambiguous", Sentence: "Earlier template."},
		{Level: domain.Level4, Word: "meticulous", Sentence: "Another template."},
	}))
	writeFile(t, dir, "unrelated.csv", "level,word,sentence\n")

	assert.Equal(t, filepath.Join(dir, "l4_batch_02.csv"), BatchPath(dir, pattern, 2))
	assert.Equal(t, "level4,ambiguous,Earlier template.\nlevel4,meticulous,Another template.\n",
		readFile(t, BatchPath(dir, pattern, 2)))

	got, skipped, err := ReadBatchFiles(dir, pattern)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, map[string][]string{
		"ambiguous":  {"Earlier template.", "Later template."},
		"meticulous": {"Another template."},
	}, got)
}

func TestReadBatchFiles_None(t *testing.T) {
	t.Parallel()

	got, _, err := ReadBatchFiles(t.TempDir(), "l4_batch_%02d.csv")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseSentenceRows(t *testing.T) {
	t.Parallel()

	rows, skipped, err := ParseSentenceRows("level,word,sentence\n" +
		"level2,brave,\"The <blank> puppy barked at the enormous, noisy lorry.\"\n" +
		"level9,brave,Bad level.\n" +
		"level2,clarify,Please <blank> the rules before we start the game.\n")

	require.NoError(t, err)
	assert.Len(t, skipped, 1)
	assert.Equal(t, []domain.QuizSentence{
		{Level: domain.Level2, Word: "brave", Sentence: "The <blank> puppy barked at the enormous, noisy lorry."},
		{Level: domain.Level2, Word: "clarify", Sentence: "Please <blank> the rules before we start the game."},
	}, rows)
}

package csvstore

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// Catalogue is the in-memory vocabulary catalogue: entries in file order,
// unique by lower-cased word, and the header they were read with.
type Catalogue struct {
	Header  []string
	Entries []domain.VocabularyEntry
	// Skipped lists rows that could not be read as entries (malformed or
	// duplicate words). Their raw fields are kept and written back by Save.
	Skipped []error

	index map[string]int
	// rows is the file order of entries and unread raw rows.
	rows []catalogueRow
	// held marks words whose only row could not be read.
	held map[string]bool
}

// catalogueRow is either an entry (raw == nil) or a raw row kept verbatim.
type catalogueRow struct {
	entry int
	raw   []string
}

// NewCatalogue creates an empty catalogue with the canonical header.
func NewCatalogue() *Catalogue {
	return &Catalogue{
		Header: slices.Clone(domain.CatalogueHeader),
		index:  make(map[string]int),
		held:   make(map[string]bool),
	}
}

// Held reports whether word has a row in the file that could not be read.
// Such words are neither regenerated nor overwritten.
func (c *Catalogue) Held(word string) bool {
	return c.held[domain.NormalizeText(word)]
}

func (c *Catalogue) add(e domain.VocabularyEntry) {
	c.index[e.Key()] = len(c.Entries)
	c.rows = append(c.rows, catalogueRow{entry: len(c.Entries)})
	c.Entries = append(c.Entries, e)
}

func (c *Catalogue) keepRaw(fields []string) {
	c.rows = append(c.rows, catalogueRow{raw: slices.Clone(fields)})
}

// Get returns the entry for word, compared case-insensitively.
func (c *Catalogue) Get(word string) (domain.VocabularyEntry, bool) {
	i, ok := c.index[domain.NormalizeText(word)]
	if !ok {
		return domain.VocabularyEntry{}, false
	}
	return c.Entries[i], true
}

// Len returns the number of entries.
func (c *Catalogue) Len() int { return len(c.Entries) }

// UpsertStats counts the outcome of an Upsert.
type UpsertStats struct {
	Added     int
	Updated   int
	Unchanged int
}

// Upsert merges entries keyed by lower-cased word. An existing row is
// replaced only when its meaning is empty, so generation never overwrites
// curated content; its extra columns are kept. Held words are left alone.
// Unknown words are appended in the order given.
func (c *Catalogue) Upsert(entries []domain.VocabularyEntry) UpsertStats {
	var st UpsertStats
	for _, e := range entries {
		key := e.Key()
		if key == "" {
			continue
		}
		if c.held[key] {
			st.Unchanged++
			continue
		}
		i, ok := c.index[key]
		if !ok {
			c.add(e)
			st.Added++
			continue
		}
		old := c.Entries[i]
		if old.HasMeaning() || !e.HasMeaning() {
			st.Unchanged++
			continue
		}
		e.Word = old.Word
		e.Extra = old.Extra
		c.Entries[i] = e
		st.Updated++
	}
	return st
}

// CatalogueStore loads and saves the catalogue file.
type CatalogueStore struct {
	path string
}

// NewCatalogueStore creates a store for the catalogue at path.
func NewCatalogueStore(path string) *CatalogueStore {
	return &CatalogueStore{path: path}
}

// Path returns the catalogue file path.
func (s *CatalogueStore) Path() string { return s.path }

// Load reads the catalogue. A missing file yields an empty catalogue.
// Rows whose width differs from the header, rows without a word, and repeated
// words are recorded in Skipped and kept verbatim for Save; the first
// occurrence of a word wins. A word whose row is too wide or too narrow is
// held when its word column is still readable.
func (s *CatalogueStore) Load() (*Catalogue, error) {
	t, err := readTable(s.path, true)
	if errors.Is(err, domain.ErrInputMissing) {
		return NewCatalogue(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	c := NewCatalogue()
	c.Skipped = t.errs
	if len(t.header) > 0 {
		c.Header = normalizeHeader(t.header)
	}
	if !slices.Contains(c.Header, "word") {
		return nil, fmt.Errorf("load catalogue: %w: %s: header has no word column", domain.ErrMalformedRow, s.path)
	}

	wordCol := slices.Index(c.Header, "word")
	for _, rec := range t.records {
		if len(rec.fields) != len(c.Header) {
			c.Skipped = append(c.Skipped, rowError(s.path, rec, "expected %d columns, got %d", len(c.Header), len(rec.fields)))
			c.keepRaw(rec.fields)
			if wordCol < len(rec.fields) {
				if key := domain.NormalizeText(rec.fields[wordCol]); key != "" {
					if _, ok := c.index[key]; !ok {
						c.held[key] = true
					}
				}
			}
			continue
		}
		var e domain.VocabularyEntry
		for i, name := range c.Header {
			e.SetField(name, strings.TrimSpace(rec.fields[i]))
		}
		key := e.Key()
		if key == "" {
			c.Skipped = append(c.Skipped, rowError(s.path, rec, "empty word"))
			c.keepRaw(rec.fields)
			continue
		}
		if _, dup := c.index[key]; dup || c.held[key] {
			c.Skipped = append(c.Skipped, rowError(s.path, rec, "duplicate word %q", e.Word))
			c.keepRaw(rec.fields)
			continue
		}
		c.add(e)
	}
	return c, nil
}

// Save writes the catalogue atomically, preserving its header order and the
// file order of its rows. Canonical columns missing from the header are
// appended after the existing ones. Rows Load could not read are written back
// unchanged.
func (s *CatalogueStore) Save(c *Catalogue) error {
	header := slices.Clone(c.Header)
	for _, name := range domain.CatalogueHeader {
		if !slices.Contains(header, name) {
			header = append(header, name)
		}
	}

	records := make([][]string, 0, len(c.rows))
	for _, r := range c.rows {
		if r.raw != nil {
			records = append(records, r.raw)
			continue
		}
		e := c.Entries[r.entry]
		row := make([]string, len(header))
		for j, name := range header {
			row[j] = e.Field(name)
		}
		records = append(records, row)
	}

	if err := writeCSV(s.path, header, records); err != nil {
		return fmt.Errorf("save catalogue: %w", err)
	}
	return nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

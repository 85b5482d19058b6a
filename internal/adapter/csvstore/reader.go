package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// record is one data row with its 1-based line number in the file.
type record struct {
	line   int
	fields []string
}

// table is a fully read CSV file.
type table struct {
	header  []string
	records []record
	// errs holds rows the csv reader could not parse; they are skipped.
	errs []error
}

// column returns the index of name in the header, or def when the header
// does not carry it.
func (t *table) column(name string, def int) int {
	for i, h := range t.header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return def
}

// readTable reads the whole file. A missing file returns an error wrapping
// domain.ErrInputMissing. Blank lines are skipped and rows keep their own
// width; unparsable rows are collected in errs.
func readTable(path string, hasHeader bool) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputMissing, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrIOFailure, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	t := &table{}
	if hasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: read header: %v", domain.ErrMalformedRow, path, err)
		}
		if len(header) > 0 {
			header[0] = strings.TrimPrefix(header[0], "\ufeff")
		}
		t.header = header
	}

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			t.errs = append(t.errs, &domain.RowError{Path: path, Line: perr.Line, Reason: perr.Err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrIOFailure, path, err)
		}
		if isBlank(fields) {
			continue
		}
		line, _ := reader.FieldPos(0)
		t.records = append(t.records, record{line: line, fields: fields})
	}
	return t, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func rowError(path string, rec record, format string, args ...any) *domain.RowError {
	return &domain.RowError{Path: path, Line: rec.line, Reason: fmt.Sprintf(format, args...)}
}

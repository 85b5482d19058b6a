// Package csvstore reads and writes the pipeline's CSV artefacts. Every write
// goes through a sibling temporary file that is renamed over the target, so
// readers never observe a half-written file.
package csvstore

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// WriteAtomic creates path's directory if needed, writes the content produced
// by write into a temporary file next to path, syncs it and renames it into
// place. On any failure the target is left untouched.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", domain.ErrIOFailure, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", domain.ErrIOFailure, path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrIOFailure, path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %v", domain.ErrIOFailure, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %v", domain.ErrIOFailure, path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", domain.ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrIOFailure, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", domain.ErrIOFailure, path, err)
	}
	return nil
}

// writeCSV atomically writes an optional header followed by records.
func writeCSV(path string, header []string, records [][]string) error {
	return WriteAtomic(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if header != nil {
			if err := cw.Write(header); err != nil {
				return err
			}
		}
		if err := cw.WriteAll(records); err != nil {
			return err
		}
		return cw.Error()
	})
}

// Package report persists run reports as one JSON file per problem fingerprint.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/tabu/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore on a directory of JSON files.
type Store struct {
	root string
}

// NewStore creates a report store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: filepath.Clean(dir)}
}

// Get retrieves the report stored for fingerprint, or nil when there is none.
func (s *Store) Get(fingerprint string) (*domain.RunReport, error) {
	filename := s.filename(fingerprint)
	//nolint:gosec // Path is built from the store root and a hex fingerprint
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", filename)
	}

	var report domain.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", filename)
	}
	return &report, nil
}

// Put writes report under its fingerprint, replacing any previous one.
func (s *Store) Put(report domain.RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", s.root)
	}

	filename := s.filename(report.Fingerprint)
	tmp := filename + ".tmp"
	//nolint:gosec // Path is built from the store root and a hex fingerprint
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", filename)
	}
	return nil
}

func (s *Store) filename(fingerprint string) string {
	return filepath.Join(s.root, fingerprint+".json")
}

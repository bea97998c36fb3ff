package kirabuku

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelabsilat/kirabuku/date"
)

// Persister loads and saves the full state of the books. The engine never
// touches storage itself; the caller persists a snapshot after each change.
type Persister interface {
	Load() (*Store, error)
	Save(*Store) error
}

// FilePersister keeps the state in a single JSON file.
type FilePersister struct {
	Path string
}

var _ Persister = FilePersister{}

// Load reads the state file. When the file does not exist yet, it returns a
// freshly seeded store instead, the first-run behavior of the legacy
// application.
func (p FilePersister) Load() (*Store, error) {
	f, err := os.Open(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return SeedStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open data file %q: %w", p.Path, err)
	}
	defer f.Close()

	s, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("could not read data file %q: %w", p.Path, err)
	}
	return s, nil
}

// Save writes the full snapshot atomically: a reader never observes a
// half-written blob, even if the process dies mid-save.
func (p FilePersister) Save(s *Store) error {
	dir := filepath.Dir(p.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(p.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.Path); err != nil {
		return fmt.Errorf("could not replace data file %q: %w", p.Path, err)
	}
	return nil
}

// SeedStore returns the small fixed set of example members a fresh
// installation starts with, and empty payment and transaction collections.
func SeedStore() *Store {
	s := NewStore()
	s.members = []Member{
		{ID: "1", Name: "Ahmad bin Zulkifli", ICNumber: "900101-14-5543", MemberNumber: "1", Phone: "012-3456789", JoinDate: date.MustParse("2023-01-15")},
		{ID: "2", Name: "Siti Norhaliza", ICNumber: "920520-10-5002", MemberNumber: "2", Phone: "013-9876543", JoinDate: date.MustParse("2023-05-20")},
		{ID: "3", Name: "Mohd Razif", ICNumber: "880210-08-6677", MemberNumber: "3", Phone: "017-1122334", JoinDate: date.MustParse("2024-02-10")},
	}
	return s
}

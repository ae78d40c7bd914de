// Package credstore keeps the saved session on disk as two files in one
// directory: the raw token and a small JSON metadata record
// ({"persist": bool, "clean_exit": bool}).
//
// The store never decides whether a token is trusted; that is up to the
// caller, which looks at Meta.CleanExit.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/neumodiag/internal/filex"
)

const (
	TokenFileName = ".neumodiag_token"
	MetaFileName  = ".neumodiag_token.meta"

	// FilePerms restricts both files to owner-only read/write.
	FilePerms = 0o600
)

const (
	metaKeyPersist   = "persist"
	metaKeyCleanExit = "clean_exit"
)

// Meta is the decoded metadata record.
type Meta struct {
	Persist   bool `json:"persist"`
	CleanExit bool `json:"clean_exit"`
}

// Store reads and writes the session files under a single directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string       { return s.dir }
func (s *Store) TokenPath() string { return filepath.Join(s.dir, TokenFileName) }
func (s *Store) MetaPath() string  { return filepath.Join(s.dir, MetaFileName) }

// Persist saves token and a fresh metadata record. The token file is written
// first, then the metadata; both atomically. clean_exit is always false in a
// freshly written record.
func (s *Store) Persist(token string, persist bool) error {
	if err := filex.WriteAtomic(s.TokenPath(), []byte(token), FilePerms); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	data, err := json.Marshal(Meta{Persist: persist, CleanExit: false})
	if err != nil {
		return fmt.Errorf("encoding token meta: %w", err)
	}
	if err := filex.WriteAtomic(s.MetaPath(), data, FilePerms); err != nil {
		return fmt.Errorf("writing token meta file: %w", err)
	}
	return nil
}

// LoadToken returns the stored token exactly as written. ok is false when no
// token file exists.
func (s *Store) LoadToken() (token string, ok bool, err error) {
	data, err := os.ReadFile(s.TokenPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading token file: %w", err)
	}
	return string(data), true, nil
}

// LoadMeta returns the stored metadata, or nil when the file is absent.
// A malformed file, or fields of the wrong type, read as false.
func (s *Store) LoadMeta() (*Meta, error) {
	raw, found, err := s.readRawMeta()
	if err != nil || !found {
		return nil, err
	}
	return &Meta{
		Persist:   boolField(raw, metaKeyPersist),
		CleanExit: boolField(raw, metaKeyCleanExit),
	}, nil
}

// MarkCleanExit sets clean_exit in the metadata record, keeping every other
// field as it was. A missing or malformed record is replaced by a new one.
func (s *Store) MarkCleanExit(clean bool) error {
	raw, _, err := s.readRawMeta()
	if err != nil {
		return err
	}
	if raw == nil {
		raw = make(map[string]json.RawMessage, 1)
	}

	v, err := json.Marshal(clean)
	if err != nil {
		return fmt.Errorf("encoding clean_exit: %w", err)
	}
	raw[metaKeyCleanExit] = v

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding token meta: %w", err)
	}
	if err := filex.WriteAtomic(s.MetaPath(), data, FilePerms); err != nil {
		return fmt.Errorf("writing token meta file: %w", err)
	}
	return nil
}

// Clear removes both files. Failures are ignored: once the in-memory session
// has no token, leftover files are harmless.
func (s *Store) Clear() {
	_ = os.Remove(s.TokenPath())
	_ = os.Remove(s.MetaPath())
}

// readRawMeta returns the metadata as a key map. found is false when the
// file does not exist. Undecodable content yields an empty map.
func (s *Store) readRawMeta() (raw map[string]json.RawMessage, found bool, err error) {
	data, err := os.ReadFile(s.MetaPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading token meta file: %w", err)
	}

	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return map[string]json.RawMessage{}, true, nil
	}
	return raw, true, nil
}

func boolField(raw map[string]json.RawMessage, key string) bool {
	v, ok := raw[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false
	}
	return b
}

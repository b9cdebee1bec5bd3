package journalfs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

const defaultJournalDir = ".pngcoder/journal"

// JSONStore persists one JSON record per mutation, plus an optional JSONL
// index for cheap scanning.
type JSONStore struct {
	rootDir    string
	journalDir string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <journal>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDFunc overrides record ID generation (tests).
func WithIDFunc(f func() string) Option {
	return func(s *JSONStore) { s.newID = f }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Journal.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultJournalDir
	}

	s := &JSONStore{
		rootDir:    root,
		journalDir: dir,
		writeIndex: false,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.MutationJournal = (*JSONStore)(nil)

func (s *JSONStore) Record(m domain.Mutation) (string, error) {
	dir := filepath.Join(s.rootDir, s.journalDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "journalfs.mkdir",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	ts := m.At
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := m
	toSave.At = ts

	id := s.newID()
	filename := fmt.Sprintf("%s_%s_%s.json", ts.Format("20060102T150405Z"), m.Op, shortID(id))
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "journalfs.marshal",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "journalfs.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "journalfs.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, m domain.Mutation) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Target    string    `json:"target"`
		Op        string    `json:"op"`
		ChunkType string    `json:"chunk_type"`
		At        time.Time `json:"at"`
	}

	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Target:    m.File,
		Op:        string(m.Op),
		ChunkType: m.ChunkType,
		At:        m.At,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

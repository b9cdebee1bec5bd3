package imagefs

import (
	"errors"
	"os"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

// Store reads and writes PNG files on the local filesystem. The whole file is
// loaded before parsing, and serialization happens fully in memory before any
// write, so a failed operation never leaves a half-written image behind.
type Store struct {
	backupEnabled bool
}

type Option func(*Store)

// WithBackup keeps a .bak copy of the original before overwriting it.
func WithBackup(enabled bool) Option {
	return func(s *Store) { s.backupEnabled = enabled }
}

func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ImageStore = (*Store)(nil)

func (s *Store) LoadImage(path string) (domain.Png, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Png{}, &domain.OpError{
			Op:   "imagefs.load",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	img, err := domain.ParsePng(b)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return domain.Png{}, err
	}
	return img, nil
}

func (s *Store) SaveImage(path string, img domain.Png) error {
	b := img.Bytes()

	if s.backupEnabled {
		if err := s.backup(path); err != nil {
			return err
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "imagefs.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "imagefs.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (s *Store) backup(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Saving to a fresh path: nothing to back up.
			return nil
		}
		return &domain.OpError{
			Op:   "imagefs.backup",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	bak := path + ".bak"
	if err := os.WriteFile(bak, src, 0o644); err != nil {
		return &domain.OpError{
			Op:   "imagefs.backup",
			Kind: domain.KindIO,
			Path: bak,
			Err:  err,
		}
	}
	return nil
}

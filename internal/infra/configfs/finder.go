package configfs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

// Finder locates a pngcoder workspace root by searching for pngcoder.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "pngcoder.yaml"
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfs.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfs.findroot",
			Kind: domain.KindIO,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "configfs.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

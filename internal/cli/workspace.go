package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/infra/configfs"
	"github.com/ignaskar/pngcoder/internal/infra/imagefs"
	"github.com/ignaskar/pngcoder/internal/infra/journalfs"
	"github.com/ignaskar/pngcoder/internal/ports"
)

type imageCtx struct {
	root string
	cfg  domain.Config

	images  ports.ImageStore
	journal ports.MutationJournal
}

// loadImageCtx wires the stores for a target PNG path. The workspace root is
// located by walking upward from the file's directory; when no pngcoder.yaml
// exists the defaults apply and journaling stays off.
func loadImageCtx(path string) (*imageCtx, error) {
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	finder := configfs.NewFinder()
	root, err := finder.FindRoot(abs)
	if err != nil {
		// Not inside a workspace: operate with defaults from the file's dir.
		root = abs
	}

	cfg, err := configfs.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	images := imagefs.New(imagefs.WithBackup(cfg.Backup.Enabled))

	var journal ports.MutationJournal
	if cfg.Journal.Enabled {
		journal = journalfs.NewJSONStore(root, cfg, journalfs.WithIndex(true))
	}

	return &imageCtx{
		root:    root,
		cfg:     cfg,
		images:  images,
		journal: journal,
	}, nil
}

package ports

import "github.com/ignaskar/pngcoder/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

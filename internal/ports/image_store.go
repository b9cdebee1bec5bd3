package ports

import "github.com/ignaskar/pngcoder/internal/domain"

// ImageStore loads and persists PNG images from a source (e.g., filesystem).
type ImageStore interface {
	LoadImage(path string) (domain.Png, error)
	SaveImage(path string, img domain.Png) error
}

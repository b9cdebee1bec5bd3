package usecase

import (
	"context"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

// Print loads a PNG for read-only inspection of its chunk sequence.
// Rendering is a CLI concern; the use case only yields the parsed image.
type Print struct {
	images ports.ImageStore
}

func NewPrint(is ports.ImageStore) *Print {
	return &Print{images: is}
}

func (uc *Print) Execute(ctx context.Context, path string) (domain.Png, error) {
	if err := ctx.Err(); err != nil {
		return domain.Png{}, err
	}
	return uc.images.LoadImage(path)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

// Decode extracts the text payload of the first chunk with the given type.
// Read-only: the file is never mutated.
type Decode struct {
	images ports.ImageStore
}

func NewDecode(is ports.ImageStore) *Decode {
	return &Decode{images: is}
}

func (uc *Decode) Execute(ctx context.Context, path, typeStr string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	typ, err := domain.ParseChunkType(typeStr)
	if err != nil {
		return "", err
	}

	img, err := uc.images.LoadImage(path)
	if err != nil {
		return "", err
	}

	chunk, ok := img.ChunkByType(typ)
	if !ok {
		return "", &domain.OpError{
			Op:   "decode",
			Kind: domain.KindChunkNotFound,
			Path: path,
			Err:  fmt.Errorf("no %s chunk: %w", typ, domain.ErrChunkNotFound),
		}
	}

	return chunk.DataAsString()
}

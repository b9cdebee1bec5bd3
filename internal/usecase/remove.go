package usecase

import (
	"context"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

// Remove deletes the first chunk of the given type and writes the file back.
// When no chunk matches, the file is left untouched.
type Remove struct {
	images  ports.ImageStore
	journal ports.MutationJournal
}

// NewRemove builds the use case. journal may be nil when journaling is disabled.
func NewRemove(is ports.ImageStore, j ports.MutationJournal) *Remove {
	return &Remove{images: is, journal: j}
}

// Execute removes the first matching chunk from the image at path and
// persists the result in place. It returns the removed chunk and, when
// journaling is enabled, the journal record ID.
func (uc *Remove) Execute(ctx context.Context, path, typeStr string) (domain.Chunk, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Chunk{}, "", err
	}

	typ, err := domain.ParseChunkType(typeStr)
	if err != nil {
		return domain.Chunk{}, "", err
	}

	img, err := uc.images.LoadImage(path)
	if err != nil {
		return domain.Chunk{}, "", err
	}

	chunk, err := img.RemoveFirstChunk(typ)
	if err != nil {
		return domain.Chunk{}, "", err
	}

	if err := uc.images.SaveImage(path, img); err != nil {
		return domain.Chunk{}, "", err
	}

	if uc.journal == nil {
		return chunk, "", nil
	}
	id, err := uc.journal.Record(domain.Mutation{
		Op:        domain.OpRemove,
		File:      path,
		ChunkType: typ.String(),
		Length:    chunk.Length(),
		CRC:       chunk.CRC(),
	})
	if err != nil {
		return chunk, "", err
	}
	return chunk, id, nil
}

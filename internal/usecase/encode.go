package usecase

import (
	"context"

	"github.com/ignaskar/pngcoder/internal/domain"
	"github.com/ignaskar/pngcoder/internal/ports"
)

// Encode hides a text payload in a PNG file as a new chunk, inserted before
// IEND so the file stays decodable.
type Encode struct {
	images  ports.ImageStore
	journal ports.MutationJournal
}

// NewEncode builds the use case. journal may be nil when journaling is disabled.
func NewEncode(is ports.ImageStore, j ports.MutationJournal) *Encode {
	return &Encode{images: is, journal: j}
}

// Execute appends a chunk of the given type carrying message to the image at
// path. The result goes to outputPath, or back to path when outputPath is
// empty. The user-supplied type string is validated before the file is
// touched. Returns the journal record ID when journaling is enabled.
func (uc *Encode) Execute(ctx context.Context, path, typeStr, message, outputPath string) (string, error) {
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

	chunk, err := domain.NewChunk(typ, []byte(message))
	if err != nil {
		return "", err
	}

	img.AppendChunk(chunk)

	out := outputPath
	if out == "" {
		out = path
	}
	if err := uc.images.SaveImage(out, img); err != nil {
		return "", err
	}

	if uc.journal == nil {
		return "", nil
	}
	return uc.journal.Record(domain.Mutation{
		Op:        domain.OpEncode,
		File:      path,
		Output:    out,
		ChunkType: typ.String(),
		Length:    chunk.Length(),
		CRC:       chunk.CRC(),
	})
}

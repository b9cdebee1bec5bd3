package domain

import (
	"bytes"
	"fmt"
)

// Signature is the fixed 8-byte header every PNG file starts with.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// SignatureLength is the size of the PNG signature in bytes.
const SignatureLength = 8

var iendType = ChunkType{'I', 'E', 'N', 'D'}

// Png is a whole PNG file: the signature plus an ordered chunk sequence.
// Order is meaningful (PNG requires IHDR first and IEND last); pngcoder
// preserves whatever order the file already has and only inserts before IEND.
type Png struct {
	chunks []Chunk
}

// NewPng returns an empty image: the signature with no chunks.
func NewPng() Png { return Png{} }

// PngFromChunks builds an image from an explicit chunk sequence.
func PngFromChunks(chunks []Chunk) Png {
	cs := make([]Chunk, len(chunks))
	copy(cs, chunks)
	return Png{chunks: cs}
}

// ParsePng parses a full file buffer. The signature must match exactly, then
// chunks are peeled off until the buffer is exhausted. Any chunk parse
// failure rejects the whole file; there is no partial or recovered state.
func ParsePng(b []byte) (Png, error) {
	if len(b) < SignatureLength || !bytes.Equal(b[:SignatureLength], Signature[:]) {
		return Png{}, &OpError{
			Op:   "png.parse",
			Kind: KindInvalidSignature,
			Err:  fmt.Errorf("missing PNG signature: %w", ErrCorruptImage),
		}
	}

	var chunks []Chunk
	rest := b[SignatureLength:]
	for len(rest) > 0 {
		c, err := ParseChunk(rest)
		if err != nil {
			return Png{}, err
		}
		chunks = append(chunks, c)
		rest = rest[c.Size():]
	}
	return Png{chunks: chunks}, nil
}

// Bytes serializes the image: signature followed by each chunk's on-disk
// record in list order. It round-trips with ParsePng.
func (p Png) Bytes() []byte {
	size := SignatureLength
	for _, c := range p.chunks {
		size += c.Size()
	}

	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = append(out, c.Bytes()...)
	}
	return out
}

// Header returns the 8-byte signature.
func (p Png) Header() [8]byte { return Signature }

// Chunks returns the chunk sequence in file order. Read-only.
func (p Png) Chunks() []Chunk { return p.chunks }

// AppendChunk adds a chunk, keeping IEND terminal: when an IEND chunk is
// present the new chunk is inserted immediately before the first one,
// otherwise it goes at the end.
func (p *Png) AppendChunk(c Chunk) {
	for i, existing := range p.chunks {
		if existing.Type() == iendType {
			p.chunks = append(p.chunks[:i], append([]Chunk{c}, p.chunks[i:]...)...)
			return
		}
	}
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk whose type matches
// exactly. The remaining chunks keep their order.
func (p *Png) RemoveFirstChunk(typ ChunkType) (Chunk, error) {
	for i, c := range p.chunks {
		if c.Type() == typ {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, &OpError{
		Op:   "png.remove",
		Kind: KindChunkNotFound,
		Err:  fmt.Errorf("no %s chunk: %w", typ, ErrChunkNotFound),
	}
}

// ChunkByType returns the first chunk whose type matches, without mutation.
func (p Png) ChunkByType(typ ChunkType) (Chunk, bool) {
	for _, c := range p.chunks {
		if c.Type() == typ {
			return c, true
		}
	}
	return Chunk{}, false
}

// Equal reports whether two images serialize identically.
func (p Png) Equal(other Png) bool {
	if len(p.chunks) != len(other.chunks) {
		return false
	}
	return bytes.Equal(p.Bytes(), other.Bytes())
}

package domain

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

// MaxChunkLength is the largest data length the PNG spec allows (2^31-1).
const MaxChunkLength = 1<<31 - 1

// chunkOverhead is the fixed footprint of the length, type, and CRC fields.
const chunkOverhead = 12

// Chunk is one PNG chunk record: a type, an opaque payload, and the CRC-32
// computed over type bytes followed by data bytes. The on-disk length and CRC
// fields are derived from the payload at construction, so a Chunk can never
// go out of sync with itself.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk from a type and payload, computing the CRC. It
// fails when the payload cannot be represented in the on-disk u32 length
// field rather than silently truncating.
func NewChunk(typ ChunkType, data []byte) (Chunk, error) {
	if len(data) > MaxChunkLength {
		return Chunk{}, &OpError{
			Op:   "chunk.new",
			Kind: KindChunkTooLarge,
			Err:  fmt.Errorf("payload is %d bytes, max %d", len(data), MaxChunkLength),
		}
	}

	d := make([]byte, len(data))
	copy(d, data)
	return Chunk{typ: typ, data: d, crc: checksum(typ, d)}, nil
}

// ParseChunk reads one chunk record from the front of b: length (BE u32),
// type (4 bytes), data, CRC (BE u32). Trailing bytes are permitted so callers
// can peel chunks off a larger buffer. Any 4 raw bytes are accepted as the
// type; strict letter validation applies only to user-supplied type strings.
func ParseChunk(b []byte) (Chunk, error) {
	if len(b) < chunkOverhead {
		return Chunk{}, &OpError{
			Op:   "chunk.parse",
			Kind: KindTruncated,
			Err:  fmt.Errorf("buffer holds %d bytes, a chunk needs at least %d", len(b), chunkOverhead),
		}
	}

	length := binary.BigEndian.Uint32(b[0:4])
	if uint64(len(b)) < chunkOverhead+uint64(length) {
		return Chunk{}, &OpError{
			Op:   "chunk.parse",
			Kind: KindTruncated,
			Err:  fmt.Errorf("chunk claims %d data bytes but only %d remain", length, len(b)-chunkOverhead),
		}
	}

	typ := ChunkTypeFromBytes([4]byte{b[4], b[5], b[6], b[7]})
	n := int(length)
	data := make([]byte, n)
	copy(data, b[8:8+n])
	stored := binary.BigEndian.Uint32(b[8+n : chunkOverhead+n])

	if computed := checksum(typ, data); computed != stored {
		return Chunk{}, &OpError{
			Op:   "chunk.parse",
			Kind: KindCrcMismatch,
			Err:  fmt.Errorf("chunk %s: stored crc %d, computed %d", typ, stored, computed),
		}
	}

	return Chunk{typ: typ, data: data, crc: stored}, nil
}

func (c Chunk) Type() ChunkType { return c.typ }

// Data returns the raw payload. Callers must not modify it.
func (c Chunk) Data() []byte { return c.data }

// Length is the data byte count, always equal to len(Data()).
func (c Chunk) Length() uint32 { return uint32(len(c.data)) }

func (c Chunk) CRC() uint32 { return c.crc }

// DataAsString interprets the payload as UTF-8 text.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", &OpError{
			Op:   "chunk.text",
			Kind: KindNotText,
			Err:  fmt.Errorf("chunk %s payload is not valid UTF-8", c.typ),
		}
	}
	return string(c.data), nil
}

// Size is the full on-disk footprint of the record.
func (c Chunk) Size() int { return chunkOverhead + len(c.data) }

// Bytes emits the exact on-disk representation:
// length (BE u32) ++ type ++ data ++ crc (BE u32).
// It round-trips with ParseChunk.
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, c.Size())
	out = binary.BigEndian.AppendUint32(out, c.Length())
	out = append(out, c.typ[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.crc)
	return out
}

// checksum is the PNG CRC: CRC-32 with the IEEE polynomial over the type
// bytes followed by the data bytes. The length field is excluded.
func checksum(typ ChunkType, data []byte) uint32 {
	crc := crc32.ChecksumIEEE(typ[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

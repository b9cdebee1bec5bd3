package domain

import "fmt"

// ChunkType is the 4-byte type code of a PNG chunk. The case of each byte
// encodes one property bit (bit 0x20): byte 0 distinguishes critical from
// ancillary, byte 1 public from private, byte 2 is reserved and must be
// uppercase, byte 3 marks safe-to-copy.
type ChunkType [4]byte

// ChunkTypeFromBytes stores the bytes verbatim. Validity is a queryable
// property, not a constructor precondition: real files may carry type codes
// outside the ASCII-letter range and parsing must not reject them.
func ChunkTypeFromBytes(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkType builds a ChunkType from a user-supplied string. Unlike
// ChunkTypeFromBytes it is strict: the string must be exactly 4 ASCII
// letters, so bad command-line arguments are rejected before they ever reach
// a file.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &OpError{
			Op:   "chunktype.parse",
			Kind: KindTypeLength,
			Err:  fmt.Errorf("chunk type %q is %d bytes, expected 4", s, len(s)),
		}
	}

	var ct ChunkType
	for i := 0; i < 4; i++ {
		b := s[i]
		if !isLetter(b) {
			return ChunkType{}, &OpError{
				Op:   "chunktype.parse",
				Kind: KindTypeChars,
				Err:  fmt.Errorf("chunk type %q contains non-letter byte %q", s, b),
			}
		}
		ct[i] = b
	}
	return ct, nil
}

func (ct ChunkType) Bytes() [4]byte { return ct }

func (ct ChunkType) String() string { return string(ct[:]) }

// IsValid reports whether all four bytes are ASCII letters and the reserved
// bit is clear.
func (ct ChunkType) IsValid() bool {
	for _, b := range ct {
		if !isLetter(b) {
			return false
		}
	}
	return ct.IsReservedBitValid()
}

// IsCritical reports whether the chunk is required for decoding the image
// (uppercase first byte).
func (ct ChunkType) IsCritical() bool { return isUpper(ct[0]) }

// IsPublic reports whether the type belongs to the public registry
// (uppercase second byte).
func (ct ChunkType) IsPublic() bool { return isUpper(ct[1]) }

// IsReservedBitValid reports whether the reserved bit is clear, as the PNG
// spec requires of all conforming chunk types.
func (ct ChunkType) IsReservedBitValid() bool { return isUpper(ct[2]) }

// IsSafeToCopy reports whether editors that do not recognize the chunk may
// carry it over unchanged (lowercase fourth byte).
func (ct ChunkType) IsSafeToCopy() bool { return isLower(ct[3]) }

func isLetter(b byte) bool { return isUpper(b) || isLower(b) }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

package domain

import "time"

// MutationOp names a file-mutating operation for the journal.
type MutationOp string

const (
	OpEncode MutationOp = "encode"
	OpRemove MutationOp = "remove"
)

// Mutation is the journal record of one successful file mutation.
type Mutation struct {
	Op        MutationOp `json:"op"`
	File      string     `json:"file"`
	Output    string     `json:"output,omitempty"`
	ChunkType string     `json:"chunk_type"`
	Length    uint32     `json:"length"`
	CRC       uint32     `json:"crc"`
	At        time.Time  `json:"at"`
}

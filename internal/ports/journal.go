package ports

import "github.com/ignaskar/pngcoder/internal/domain"

// MutationJournal persists mutation records for auditability.
type MutationJournal interface {
	Record(m domain.Mutation) (id string, err error)
}

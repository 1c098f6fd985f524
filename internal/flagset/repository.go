package flagset

import (
	"context"
)

// DefaultLimit is the page size used when no limit is requested
const DefaultLimit = 10

// Repository defines the flag set repository API.
// Repositories store raw values only; validating them against their kind is up to the caller.
type Repository interface {
	// GetByKind retrieves multiple flag sets of a kind ordered by their subject.
	// If limit is 0, DefaultLimit is used.
	GetByKind(ctx context.Context, kind string, offset, limit uint64) ([]*FlagSet, uint64, error)

	// GetBySubject retrieves the flag set of a subject; nil if none is stored
	GetBySubject(ctx context.Context, kind, subject string) (*FlagSet, error)

	// Put creates or replaces the flag set of a subject
	Put(ctx context.Context, kind, subject string, value uint64) (*FlagSet, error)

	// Delete deletes the flag set of a subject
	Delete(ctx context.Context, kind, subject string) error
}

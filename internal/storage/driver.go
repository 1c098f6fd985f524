package storage

import (
	"context"

	"github.com/skybi/bitty/internal/flagset"
)

// Driver represents a storage driver
type Driver interface {
	// Initialize initializes the storage driver (i.e. opens a database connection)
	Initialize(ctx context.Context) error

	// FlagSets provides a flag set repository implementation
	FlagSets() flagset.Repository

	// Close closes the storage driver (i.e. closes a database connection)
	Close()
}

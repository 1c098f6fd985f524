package cache

import (
	"context"
	"time"

	"github.com/skybi/bitty/internal/flagset"
	"github.com/skybi/bitty/internal/hashmap"
	"github.com/skybi/bitty/internal/storage"
)

const cleanupInterval = 10 * time.Second

// Driver represents a storage driver implementation that wraps another one in order to implement in-memory caching
type Driver struct {
	underlying storage.Driver
	lifetime   time.Duration
	flagSets   *FlagSetRepository
}

var _ storage.Driver = (*Driver)(nil)

// New returns a new caching storage driver whose entries live for the given duration
func New(underlying storage.Driver, lifetime time.Duration) *Driver {
	return &Driver{
		underlying: underlying,
		lifetime:   lifetime,
	}
}

// Initialize initializes the underlying driver and the caching repositories
func (driver *Driver) Initialize(ctx context.Context) error {
	if err := driver.underlying.Initialize(ctx); err != nil {
		return err
	}

	flagSetCache := hashmap.NewExpiring[string, *flagset.FlagSet](driver.lifetime)
	flagSetCache.ScheduleCleanupTask(cleanupInterval)
	driver.flagSets = &FlagSetRepository{
		repo:  driver.underlying.FlagSets(),
		cache: flagSetCache,
	}
	return nil
}

// FlagSets provides the caching flag set repository implementation
func (driver *Driver) FlagSets() flagset.Repository {
	return driver.flagSets
}

// Close stops the caches and closes the underlying driver
func (driver *Driver) Close() {
	if driver.flagSets != nil {
		driver.flagSets.cache.StopCleanupTask()
		driver.flagSets = nil
	}
	driver.underlying.Close()
}

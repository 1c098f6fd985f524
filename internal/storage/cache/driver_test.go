package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skybi/bitty/internal/flagset"
	"github.com/skybi/bitty/internal/hashmap"
	"github.com/skybi/bitty/internal/storage/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepository struct {
	flagset.Repository
	lookups int
	failPut bool
}

func (repo *countingRepository) GetBySubject(ctx context.Context, kind, subject string) (*flagset.FlagSet, error) {
	repo.lookups++
	return repo.Repository.GetBySubject(ctx, kind, subject)
}

func (repo *countingRepository) Put(ctx context.Context, kind, subject string, value uint64) (*flagset.FlagSet, error) {
	if repo.failPut {
		return nil, errors.New("write failed")
	}
	return repo.Repository.Put(ctx, kind, subject, value)
}

func newTestRepository(t *testing.T) (*FlagSetRepository, *countingRepository) {
	t.Helper()
	underlying := inmem.New()
	require.NoError(t, underlying.Initialize(context.Background()))
	t.Cleanup(underlying.Close)

	counting := &countingRepository{Repository: underlying.FlagSets()}
	return &FlagSetRepository{
		repo:  counting,
		cache: hashmap.NewExpiring[string, *flagset.FlagSet](time.Minute),
	}, counting
}

func TestCachedLookups(t *testing.T) {
	ctx := context.Background()
	repo, counting := newTestRepository(t)

	_, err := repo.Put(ctx, "warning", "car-1", 3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		obj, err := repo.GetBySubject(ctx, "warning", "car-1")
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.Equal(t, uint64(3), obj.Value)
	}
	assert.Equal(t, 0, counting.lookups)

	// Misses are not cached
	for i := 0; i < 2; i++ {
		obj, err := repo.GetBySubject(ctx, "warning", "car-2")
		require.NoError(t, err)
		assert.Nil(t, obj)
	}
	assert.Equal(t, 2, counting.lookups)
}

func TestCacheInvalidation(t *testing.T) {
	ctx := context.Background()
	repo, counting := newTestRepository(t)

	_, err := repo.Put(ctx, "warning", "car-1", 3)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "warning", "car-1"))

	obj, err := repo.GetBySubject(ctx, "warning", "car-1")
	require.NoError(t, err)
	assert.Nil(t, obj)
	assert.Equal(t, 1, counting.lookups)

	_, err = repo.Put(ctx, "warning", "car-1", 1)
	require.NoError(t, err)
	counting.failPut = true
	_, err = repo.Put(ctx, "warning", "car-1", 2)
	require.Error(t, err)

	obj, err = repo.GetBySubject(ctx, "warning", "car-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), obj.Value)
	assert.Equal(t, 2, counting.lookups)
}

func TestCachedObjectsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	created, err := repo.Put(ctx, "colour", "alice", 5)
	require.NoError(t, err)
	created.Value = 0

	obj, err := repo.GetBySubject(ctx, "colour", "alice")
	require.NoError(t, err)
	obj.Value = 1

	obj, err = repo.GetBySubject(ctx, "colour", "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), obj.Value)
}

func TestDriver(t *testing.T) {
	driver := New(inmem.New(), time.Minute)
	require.NoError(t, driver.Initialize(context.Background()))
	defer driver.Close()

	_, err := driver.FlagSets().Put(context.Background(), "colour", "alice", 1)
	require.NoError(t, err)
	obj, err := driver.FlagSets().GetBySubject(context.Background(), "colour", "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), obj.Value)
}

package cache

import (
	"context"

	"github.com/skybi/bitty/internal/flagset"
	"github.com/skybi/bitty/internal/hashmap"
)

// FlagSetRepository implements the flagset.Repository interface in order to implement caching
type FlagSetRepository struct {
	repo  flagset.Repository
	cache *hashmap.ExpiringMap[string, *flagset.FlagSet]
}

var _ flagset.Repository = (*FlagSetRepository)(nil)

// GetByKind retrieves multiple flag sets of a kind ordered by their subject
func (repo *FlagSetRepository) GetByKind(ctx context.Context, kind string, offset, limit uint64) ([]*flagset.FlagSet, uint64, error) {
	sets, n, err := repo.repo.GetByKind(ctx, kind, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for _, obj := range sets {
		repo.store(obj)
	}
	return sets, n, nil
}

// GetBySubject retrieves the flag set of a subject
func (repo *FlagSetRepository) GetBySubject(ctx context.Context, kind, subject string) (*flagset.FlagSet, error) {
	if cached, ok := repo.cache.Lookup(flagset.CacheKey(kind, subject)); ok {
		cpy := *cached
		return &cpy, nil
	}
	obj, err := repo.repo.GetBySubject(ctx, kind, subject)
	if err != nil {
		return nil, err
	}
	if obj != nil {
		repo.store(obj)
	}
	return obj, nil
}

// Put creates or replaces the flag set of a subject
func (repo *FlagSetRepository) Put(ctx context.Context, kind, subject string, value uint64) (*flagset.FlagSet, error) {
	obj, err := repo.repo.Put(ctx, kind, subject, value)
	if err != nil {
		// The underlying state is unknown now
		repo.cache.Unset(flagset.CacheKey(kind, subject))
		return nil, err
	}
	repo.store(obj)
	return obj, nil
}

// Delete deletes the flag set of a subject
func (repo *FlagSetRepository) Delete(ctx context.Context, kind, subject string) error {
	repo.cache.Unset(flagset.CacheKey(kind, subject))
	return repo.repo.Delete(ctx, kind, subject)
}

func (repo *FlagSetRepository) store(obj *flagset.FlagSet) {
	cpy := *obj
	repo.cache.Set(flagset.CacheKey(obj.Kind, obj.Subject), &cpy)
}

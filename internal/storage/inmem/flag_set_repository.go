package inmem

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/skybi/bitty/internal/flagset"
)

// FlagSetRepository implements the flagset.Repository interface using an in-memory database
type FlagSetRepository struct {
	db *memdb.MemDB
}

var _ flagset.Repository = (*FlagSetRepository)(nil)

// GetByKind retrieves multiple flag sets of a kind ordered by their subject
func (repo *FlagSetRepository) GetByKind(_ context.Context, kind string, offset, limit uint64) ([]*flagset.FlagSet, uint64, error) {
	if limit == 0 {
		limit = flagset.DefaultLimit
	}

	txn := repo.db.Txn(false)
	it, err := txn.Get(tableFlagSets, "id_prefix", kind, "")
	if err != nil {
		return nil, 0, err
	}

	sets := []*flagset.FlagSet{}
	var n uint64
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if n >= offset && uint64(len(sets)) < limit {
			cpy := *obj.(*flagset.FlagSet)
			sets = append(sets, &cpy)
		}
		n++
	}
	return sets, n, nil
}

// GetBySubject retrieves the flag set of a subject
func (repo *FlagSetRepository) GetBySubject(_ context.Context, kind, subject string) (*flagset.FlagSet, error) {
	txn := repo.db.Txn(false)
	obj, err := txn.First(tableFlagSets, "id", kind, subject)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	cpy := *obj.(*flagset.FlagSet)
	return &cpy, nil
}

// Put creates or replaces the flag set of a subject
func (repo *FlagSetRepository) Put(_ context.Context, kind, subject string, value uint64) (*flagset.FlagSet, error) {
	txn := repo.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableFlagSets, "id", kind, subject)
	if err != nil {
		return nil, err
	}
	obj := &flagset.FlagSet{
		ID:        uuid.New(),
		Kind:      kind,
		Subject:   subject,
		Value:     value,
		UpdatedAt: time.Now().Unix(),
	}
	if existing != nil {
		obj.ID = existing.(*flagset.FlagSet).ID
	}
	if err := txn.Insert(tableFlagSets, obj); err != nil {
		return nil, err
	}
	txn.Commit()

	cpy := *obj
	return &cpy, nil
}

// Delete deletes the flag set of a subject
func (repo *FlagSetRepository) Delete(_ context.Context, kind, subject string) error {
	txn := repo.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll(tableFlagSets, "id", kind, subject); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

package inmem

import (
	"context"

	"github.com/hashicorp/go-memdb"
	"github.com/skybi/bitty/internal/flagset"
	"github.com/skybi/bitty/internal/storage"
)

const tableFlagSets = "flag_sets"

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableFlagSets: {
			Name: tableFlagSets,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:   "id",
					Unique: true,
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Kind"},
							&memdb.StringFieldIndex{Field: "Subject"},
						},
					},
				},
			},
		},
	},
}

// Driver represents the in-memory storage driver built using hashicorp/go-memdb.
// All data is lost when the process exits.
type Driver struct {
	db       *memdb.MemDB
	flagSets *FlagSetRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty in-memory storage driver
func New() *Driver {
	return &Driver{}
}

// Initialize creates the in-memory database
func (driver *Driver) Initialize(_ context.Context) error {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return err
	}
	driver.db = db
	driver.flagSets = &FlagSetRepository{db: db}
	return nil
}

// FlagSets provides the in-memory flag set repository implementation
func (driver *Driver) FlagSets() flagset.Repository {
	return driver.flagSets
}

// Close discards the in-memory database
func (driver *Driver) Close() {
	driver.flagSets = nil
	driver.db = nil
}

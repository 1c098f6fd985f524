package postgres

import (
	"context"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/skybi/bitty/internal/flagset"
	"github.com/skybi/bitty/internal/storage"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Driver represents the PostgreSQL storage driver implementation
type Driver struct {
	dsn      string
	db       *pgxpool.Pool
	flagSets *FlagSetRepository
}

var _ storage.Driver = (*Driver)(nil)

// New creates a new empty PostgreSQL storage driver.
// Use Initialize to open the database connection and initialize the repository implementations.
func New(dsn string) *Driver {
	return &Driver{
		dsn: dsn,
	}
}

// Initialize migrates the database, opens the connection pool and initializes the repository implementations
func (driver *Driver) Initialize(ctx context.Context) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, driver.dsn)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	pool, err := pgxpool.Connect(ctx, driver.dsn)
	if err != nil {
		return err
	}
	driver.db = pool
	driver.flagSets = &FlagSetRepository{db: pool}
	return nil
}

// FlagSets provides the PostgreSQL flag set repository implementation
func (driver *Driver) FlagSets() flagset.Repository {
	return driver.flagSets
}

// Close discards the repository implementations and closes the database connection
func (driver *Driver) Close() {
	driver.flagSets = nil
	if driver.db != nil {
		driver.db.Close()
		driver.db = nil
	}
}

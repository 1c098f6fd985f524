package postgres

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/skybi/bitty/internal/flagset"
)

// ErrValueOutOfRange is returned when a value does not fit into the signed BIGINT column
var ErrValueOutOfRange = errors.New("flag set values above 2^63-1 cannot be stored")

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// FlagSetRepository implements the flagset.Repository interface using PostgreSQL
type FlagSetRepository struct {
	db *pgxpool.Pool
}

var _ flagset.Repository = (*FlagSetRepository)(nil)

// GetByKind retrieves multiple flag sets of a kind ordered by their subject
func (repo *FlagSetRepository) GetByKind(ctx context.Context, kind string, offset, limit uint64) ([]*flagset.FlagSet, uint64, error) {
	if limit == 0 {
		limit = flagset.DefaultLimit
	}
	query := psql.Select("flag_set_id", "kind", "subject", "value", "updated_at").
		From("flag_sets").
		Where(squirrel.Eq{"kind": kind}).
		OrderBy("subject ASC").
		Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	sql, vals, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var n uint64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM flag_sets WHERE kind = $1", kind).Scan(&n); err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return []*flagset.FlagSet{}, 0, nil
	}

	rows, err := repo.db.Query(ctx, sql, vals...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []*flagset.FlagSet{}, n, nil
		}
		return nil, 0, err
	}
	defer rows.Close()

	sets := []*flagset.FlagSet{}
	for rows.Next() {
		obj, err := repo.rowToFlagSet(rows)
		if err != nil {
			return nil, 0, err
		}
		sets = append(sets, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return sets, n, nil
}

// GetBySubject retrieves the flag set of a subject
func (repo *FlagSetRepository) GetBySubject(ctx context.Context, kind, subject string) (*flagset.FlagSet, error) {
	row := repo.db.QueryRow(
		ctx,
		"SELECT flag_set_id, kind, subject, value, updated_at FROM flag_sets WHERE kind = $1 AND subject = $2",
		kind,
		subject,
	)
	obj, err := repo.rowToFlagSet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Put creates or replaces the flag set of a subject
func (repo *FlagSetRepository) Put(ctx context.Context, kind, subject string, value uint64) (*flagset.FlagSet, error) {
	if value > math.MaxInt64 {
		return nil, ErrValueOutOfRange
	}

	sql, vals, err := psql.Insert("flag_sets").
		Columns("flag_set_id", "kind", "subject", "value", "updated_at").
		Values(uuid.New(), kind, subject, int64(value), time.Now().Unix()).
		Suffix("ON CONFLICT (kind, subject) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING flag_set_id, kind, subject, value, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return repo.rowToFlagSet(repo.db.QueryRow(ctx, sql, vals...))
}

// Delete deletes the flag set of a subject
func (repo *FlagSetRepository) Delete(ctx context.Context, kind, subject string) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM flag_sets WHERE kind = $1 AND subject = $2", kind, subject)
	return err
}

func (repo *FlagSetRepository) rowToFlagSet(row pgx.Row) (*flagset.FlagSet, error) {
	obj := new(flagset.FlagSet)
	var value int64
	if err := row.Scan(&obj.ID, &obj.Kind, &obj.Subject, &value, &obj.UpdatedAt); err != nil {
		return nil, err
	}
	obj.Value = uint64(value)
	return obj, nil
}

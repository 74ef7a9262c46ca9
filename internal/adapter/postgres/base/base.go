// Package base provides a generic squirrel/scany repository used by the
// catalog tables. Every table has a BIGINT identity "id" column that may be
// generated by the database or supplied by an external source.
package base

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns the PostgreSQL statement builder.
func Builder() squirrel.StatementBuilderType { return psql }

// Config describes the table behind a Base repository.
type Config struct {
	// Entity names the record in error messages ("group", "option").
	Entity string
	// Table is the table name, quoted if it is a reserved word.
	Table string
	// Columns lists every selected column; "id" must be first.
	Columns []string
	// Search lists the columns matched by ListFilter.Search (ILIKE).
	Search []string
	// Filters lists the columns ListFilter.Filters may restrict on.
	Filters []string
	// Sorts lists the columns ListFilter.SortBy may name.
	Sorts []string
	// Order is the default ORDER BY.
	Order []string
}

// Base is a generic repository over a single table mapped to T via db tags.
type Base[T any] struct {
	db  postgres.Querier
	cfg Config
}

// New creates a Base repository. It panics on a malformed Config.
func New[T any](db postgres.Querier, cfg Config) *Base[T] {
	if cfg.Table == "" || len(cfg.Columns) == 0 || cfg.Columns[0] != "id" {
		panic(fmt.Sprintf("base: invalid config for %q", cfg.Table))
	}
	if cfg.Entity == "" {
		cfg.Entity = strings.Trim(cfg.Table, `"`)
	}
	if len(cfg.Order) == 0 {
		cfg.Order = []string{"id"}
	}
	return &Base[T]{db: db, cfg: cfg}
}

// Q returns the transaction from ctx or the pool.
func (b *Base[T]) Q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, b.db)
}

// Entity returns the entity name used in error messages.
func (b *Base[T]) Entity() string { return b.cfg.Entity }

// Table returns the configured table name.
func (b *Base[T]) Table() string { return b.cfg.Table }

// SelectBuilder selects all configured columns from the table.
func (b *Base[T]) SelectBuilder() squirrel.SelectBuilder {
	return psql.Select(b.cfg.Columns...).From(b.cfg.Table)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the row with the given id or domain.ErrNotFound.
func (b *Base[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return b.GetOne(ctx, id, b.SelectBuilder().Where(squirrel.Eq{"id": id}))
}

// GetOne runs a single-row query. id is only used in error messages.
func (b *Base[T]) GetOne(ctx context.Context, id int64, query squirrel.SelectBuilder) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", b.cfg.Entity, err)
	}

	var row T
	if err := pgxscan.Get(ctx, b.Q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, b.cfg.Entity, id)
	}
	return &row, nil
}

// Select runs a multi-row query. Returns an empty slice (not nil) when nothing matches.
func (b *Base[T]) Select(ctx context.Context, query squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", b.cfg.Entity, err)
	}

	rows := []T{}
	if err := pgxscan.Select(ctx, b.Q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, b.cfg.Entity, 0)
	}
	return rows, nil
}

// GetByIDs returns the rows with the given ids in default order.
func (b *Base[T]) GetByIDs(ctx context.Context, ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	return b.Select(ctx, b.SelectBuilder().
		Where("id = ANY(?)", ids).
		OrderBy(b.cfg.Order...))
}

// All returns every row in default order.
func (b *Base[T]) All(ctx context.Context) ([]T, error) {
	return b.Select(ctx, b.SelectBuilder().OrderBy(b.cfg.Order...))
}

// Exists reports whether a row with the given id exists.
func (b *Base[T]) Exists(ctx context.Context, id int64) (bool, error) {
	missing, err := b.MissingIDs(ctx, []int64{id})
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// MissingIDs returns the subset of ids that have no row, in input order.
func (b *Base[T]) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := psql.Select("id").From(b.cfg.Table).Where("id = ANY(?)", ids).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", b.cfg.Entity, err)
	}

	var found []int64
	if err := pgxscan.Select(ctx, b.Q(ctx), &found, sql, args...); err != nil {
		return nil, postgres.MapError(err, b.cfg.Entity, 0)
	}

	var missing []int64
	for _, id := range ids {
		if !slices.Contains(found, id) && !slices.Contains(missing, id) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// List applies search, filters, ordering and paging, and returns the page
// together with the total number of matching rows.
func (b *Base[T]) List(ctx context.Context, f domain.ListFilter) ([]T, int, error) {
	f = f.Normalized()

	where, err := b.where(f)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From(b.cfg.Table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build %s count: %w", b.cfg.Entity, err)
	}

	var total int
	if err := b.Q(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, b.cfg.Entity, 0)
	}

	query := b.SelectBuilder().
		Where(where).
		OrderBy(b.orderBy(f)...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	items, err := b.Select(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (b *Base[T]) where(f domain.ListFilter) (squirrel.And, error) {
	where := squirrel.And{}

	if s := strings.TrimSpace(f.Search); s != "" && len(b.cfg.Search) > 0 {
		pattern := "%" + escapeLike(s) + "%"
		or := squirrel.Or{}
		for _, col := range b.cfg.Search {
			or = append(or, squirrel.ILike{col: pattern})
		}
		where = append(where, or)
	}

	keys := make([]string, 0, len(f.Filters))
	for k := range f.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, col := range keys {
		if !slices.Contains(b.cfg.Filters, col) {
			return nil, domain.NewValidationError("filter", fmt.Sprintf("unknown filter %q", col))
		}
		where = append(where, squirrel.Eq{col: f.Filters[col]})
	}
	return where, nil
}

func (b *Base[T]) orderBy(f domain.ListFilter) []string {
	if f.SortBy == "" || !slices.Contains(b.cfg.Sorts, f.SortBy) {
		return b.cfg.Order
	}
	dir := " ASC"
	if f.Desc {
		dir = " DESC"
	}
	return []string{f.SortBy + dir, "id"}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Insert creates a row with a generated key and returns it.
func (b *Base[T]) Insert(ctx context.Context, values map[string]any) (*T, error) {
	query := psql.Insert(b.cfg.Table).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(b.cfg.Columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", b.cfg.Entity, err)
	}

	var row T
	if err := pgxscan.Get(ctx, b.Q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, b.cfg.Entity, 0)
	}
	return &row, nil
}

// Upsert creates the row with the given external id or overwrites the given
// columns of the existing row. It reports whether the row was created.
// After creating, the identity sequence is moved past id so that generated
// keys never collide with externally supplied ones.
func (b *Base[T]) Upsert(ctx context.Context, id int64, values map[string]any) (bool, error) {
	if id <= 0 {
		return false, domain.NewValidationError("id", "must be a positive id")
	}

	cols := make([]string, 0, len(values))
	for col := range values {
		if col != "id" {
			cols = append(cols, col)
		}
	}
	sort.Strings(cols)

	set := make([]string, len(cols))
	for i, col := range cols {
		set[i] = col + " = EXCLUDED." + col
	}

	row := make(map[string]any, len(values)+1)
	for k, v := range values {
		row[k] = v
	}
	row["id"] = id

	conflict := "ON CONFLICT (id) DO NOTHING"
	if len(set) > 0 {
		conflict = "ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ")
	}

	sql, args, err := psql.Insert(b.cfg.Table).
		SetMap(row).
		Suffix(conflict + " RETURNING (xmax = 0) AS inserted").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s upsert: %w", b.cfg.Entity, err)
	}

	var created bool
	if err := b.Q(ctx).QueryRow(ctx, sql, args...).Scan(&created); err != nil {
		return false, postgres.MapError(err, b.cfg.Entity, id)
	}

	if created {
		if err := b.advanceSequence(ctx, id); err != nil {
			return false, err
		}
	}
	return created, nil
}

const advanceSequenceSQL = `
SELECT setval(pg_get_serial_sequence($1, 'id'),
              GREATEST(nextval(pg_get_serial_sequence($1, 'id')), $2::bigint))`

func (b *Base[T]) advanceSequence(ctx context.Context, id int64) error {
	if _, err := b.Q(ctx).Exec(ctx, advanceSequenceSQL, b.cfg.Table, id); err != nil {
		return fmt.Errorf("advance %s id sequence: %w", b.cfg.Entity, err)
	}
	return nil
}

// Update overwrites the given columns of an existing row and returns it.
func (b *Base[T]) Update(ctx context.Context, id int64, values map[string]any) (*T, error) {
	delete(values, "id")
	if len(values) == 0 {
		return b.GetByID(ctx, id)
	}

	sql, args, err := psql.Update(b.cfg.Table).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(b.cfg.Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s update: %w", b.cfg.Entity, err)
	}

	var row T
	if err := pgxscan.Get(ctx, b.Q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, b.cfg.Entity, id)
	}
	return &row, nil
}

// Delete removes the row. Returns domain.ErrNotFound if it does not exist and
// domain.ErrConflict if another row still references it.
func (b *Base[T]) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete(b.cfg.Table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", b.cfg.Entity, err)
	}

	tag, err := b.Q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapDeleteError(err, b.cfg.Entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", b.cfg.Entity, id, domain.ErrNotFound)
	}
	return nil
}

package base

import (
	"context"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Repo adds entity-level writes on top of Base. values maps an entity to its
// column values, without "id".
type Repo[T any, P interface {
	*T
	domain.Entity
}] struct {
	*Base[T]
	values func(P) map[string]any
}

// NewRepo creates a Repo for the table described by cfg.
func NewRepo[T any, P interface {
	*T
	domain.Entity
}](db postgres.Querier, cfg Config, values func(P) map[string]any) *Repo[T, P] {
	return &Repo[T, P]{Base: New[T](db, cfg), values: values}
}

// Create inserts v with a generated key and returns the stored row.
func (r *Repo[T, P]) Create(ctx context.Context, v P) (*T, error) {
	return r.Base.Insert(ctx, r.values(v))
}

// Upsert stores v under its own key and reports whether the row was created.
func (r *Repo[T, P]) Upsert(ctx context.Context, v P) (bool, error) {
	return r.Base.Upsert(ctx, v.Key(), r.values(v))
}

// Update overwrites the row with v's key and returns the stored row.
func (r *Repo[T, P]) Update(ctx context.Context, v P) (*T, error) {
	return r.Base.Update(ctx, v.Key(), r.values(v))
}

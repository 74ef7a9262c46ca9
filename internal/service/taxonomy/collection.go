package taxonomy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Collection is the single validated entry point for one reference entity.
// Every write validates the entity before it reaches the store.
type Collection[T any, P interface {
	*T
	domain.Entity
}] struct {
	name   string
	store  store[T, P]
	checks []func(context.Context, P) error
	log    *slog.Logger
}

func newCollection[T any, P interface {
	*T
	domain.Entity
}](name string, s store[T, P], log *slog.Logger, checks ...func(context.Context, P) error) *Collection[T, P] {
	return &Collection[T, P]{name: name, store: s, checks: checks, log: log}
}

// Name returns the entity name used in logs.
func (c *Collection[T, P]) Name() string { return c.name }

// Get returns one entity by id.
func (c *Collection[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	v, err := c.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.name, err)
	}
	return v, nil
}

// List returns one page of entities matching f.
func (c *Collection[T, P]) List(ctx context.Context, f domain.ListFilter) (domain.Page[T], error) {
	items, total, err := c.store.List(ctx, f)
	if err != nil {
		return domain.Page[T]{}, fmt.Errorf("list %s: %w", c.name, err)
	}
	return domain.Page[T]{Items: items, Total: total}, nil
}

// Missing returns the ids among ids that do not exist.
func (c *Collection[T, P]) Missing(ctx context.Context, ids []int64) ([]int64, error) {
	missing, err := c.store.MissingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", c.name, err)
	}
	return missing, nil
}

// Exists reports whether the entity with id exists.
func (c *Collection[T, P]) Exists(ctx context.Context, id int64) (bool, error) {
	missing, err := c.Missing(ctx, []int64{id})
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// Create stores v under a generated key.
func (c *Collection[T, P]) Create(ctx context.Context, v P) (*T, error) {
	if err := c.validate(ctx, v); err != nil {
		return nil, err
	}

	created, err := c.store.Create(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", c.name, err)
	}

	c.log.InfoContext(ctx, c.name+" created", slog.Int64("id", P(created).Key()))
	return created, nil
}

// Upsert stores v under its own key, creating or overwriting the row.
// It reports whether the row was created.
func (c *Collection[T, P]) Upsert(ctx context.Context, v P) (bool, error) {
	if v.Key() <= 0 {
		return false, domain.NewValidationError("id", "required")
	}
	if err := c.validate(ctx, v); err != nil {
		return false, err
	}

	created, err := c.store.Upsert(ctx, v)
	if err != nil {
		return false, fmt.Errorf("upsert %s %d: %w", c.name, v.Key(), err)
	}

	c.log.DebugContext(ctx, c.name+" upserted",
		slog.Int64("id", v.Key()),
		slog.Bool("created", created),
	)
	return created, nil
}

// Update overwrites the existing entity with v's key.
func (c *Collection[T, P]) Update(ctx context.Context, v P) (*T, error) {
	if v.Key() <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := c.validate(ctx, v); err != nil {
		return nil, err
	}

	updated, err := c.store.Update(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", c.name, v.Key(), err)
	}

	c.log.InfoContext(ctx, c.name+" updated", slog.Int64("id", v.Key()))
	return updated, nil
}

// Delete removes the entity. Entities still referenced by measures fail
// with domain.ErrConflict.
func (c *Collection[T, P]) Delete(ctx context.Context, id int64) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", c.name, id, err)
	}

	c.log.InfoContext(ctx, c.name+" deleted", slog.Int64("id", id))
	return nil
}

func (c *Collection[T, P]) validate(ctx context.Context, v P) error {
	if err := v.Validate(); err != nil {
		return err
	}
	for _, check := range c.checks {
		if err := check(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

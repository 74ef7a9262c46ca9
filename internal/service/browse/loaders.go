package browse

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// loaders batches the label lookups of a single view. Created per call,
// so nothing is cached across requests.
type loaders struct {
	options       *dataloader.Loader[int64, *domain.Option]
	advantages    *dataloader.Loader[int64, *domain.Advantage]
	disadvantages *dataloader.Loader[int64, *domain.Disadvantage]
	impactDetails *dataloader.Loader[int64, *domain.ImpactDetail]
	measures      *dataloader.Loader[int64, *domain.Measure]
	references    *dataloader.Loader[int64, *domain.Reference]
	contacts      *dataloader.Loader[int64, *domain.ContactPerson]
}

func (s *Service) newLoaders() *loaders {
	return &loaders{
		options:       newLoader(byIDBatchFn(s.repos.Options, func(o *domain.Option) int64 { return o.ID })),
		advantages:    newLoader(byIDBatchFn(s.repos.Advantages, func(a *domain.Advantage) int64 { return a.ID })),
		disadvantages: newLoader(byIDBatchFn(s.repos.Disadvantages, func(d *domain.Disadvantage) int64 { return d.ID })),
		impactDetails: newLoader(byIDBatchFn(s.repos.ImpactDetails, func(d *domain.ImpactDetail) int64 { return d.ID })),
		measures:      newLoader(byIDBatchFn[domain.Measure](s.repos.Measures, func(m *domain.Measure) int64 { return m.ID })),
		references:    newLoader(byIDBatchFn(s.repos.References, func(r *domain.Reference) int64 { return r.ID })),
		contacts:      newLoader(byIDBatchFn(s.repos.Contacts, func(c *domain.ContactPerson) int64 { return c.ID })),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters and
// no cache beyond the loader's own lifetime.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// byIDBatchFn resolves keys through repo.GetByIDs. Missing rows resolve to nil.
func byIDBatchFn[T any](repo byIDs[T], key func(*T) int64) dataloader.BatchFunc[int64, *T] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*T] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		found := make(map[int64]*T, len(rows))
		for i := range rows {
			found[key(&rows[i])] = &rows[i]
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[*T]{Data: found[k]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// loadAll resolves ids in order and drops ids without a row.
func loadAll[T any](ctx context.Context, l *dataloader.Loader[int64, *T], ids []int64) func() ([]*T, error) {
	thunk := l.LoadMany(ctx, ids)
	return func() ([]*T, error) {
		rows, errs := thunk()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		out := make([]*T, 0, len(rows))
		for _, row := range rows {
			if row != nil {
				out = append(out, row)
			}
		}
		return out, nil
	}
}

// loadOne resolves an optional id. A nil id or a missing row yields nil.
func loadOne[T any](ctx context.Context, l *dataloader.Loader[int64, *T], id *int64) func() (*T, error) {
	if id == nil {
		return func() (*T, error) { return nil, nil }
	}
	return l.Load(ctx, *id)
}

package measure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Get returns the measure with its relation ids, examples and images.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	m, err := s.measures.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get measure: %w", err)
	}

	rels, err := s.measures.Relations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get relations: %w", err)
	}
	m.Relations = rels

	examples, err := s.examples.ListByMeasure(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get examples: %w", err)
	}

	images, err := s.images.ListByMeasure(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get images: %w", err)
	}

	return &Detail{Measure: *m, Examples: examples, Images: images}, nil
}

// List returns one page of measures without relations.
func (s *Service) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Measure], error) {
	items, total, err := s.measures.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Measure]{}, fmt.Errorf("list measures: %w", err)
	}
	return domain.Page[domain.Measure]{Items: items, Total: total}, nil
}

// Missing returns the ids among ids that have no measure.
func (s *Service) Missing(ctx context.Context, ids []int64) ([]int64, error) {
	missing, err := s.measures.MissingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lookup measures: %w", err)
	}
	return missing, nil
}

// Create stores m under a generated key. Relations set on m are stored in
// the same transaction.
func (s *Service) Create(ctx context.Context, m *domain.Measure) (*domain.Measure, error) {
	if err := s.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := s.checkRelations(ctx, 0, m.Relations); err != nil {
		return nil, err
	}

	var created *domain.Measure
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.measures.Create(txCtx, m)
		if err != nil {
			return fmt.Errorf("create measure: %w", err)
		}
		return s.replaceRelations(txCtx, created.ID, m.Relations)
	})
	if err != nil {
		return nil, err
	}
	created.Relations = m.Relations

	s.log.InfoContext(ctx, "measure created",
		slog.Int64("measure_id", created.ID),
		slog.String("code", created.Code),
	)
	return created, nil
}

// Upsert stores m under its own key, creating or overwriting the row, and
// reports whether it was created. Relations present in m.Relations replace
// the stored sets; absent relations are left untouched.
func (s *Service) Upsert(ctx context.Context, m *domain.Measure) (bool, error) {
	if m.ID <= 0 {
		return false, domain.NewValidationError("id", "required")
	}
	if err := s.Check(ctx, m); err != nil {
		return false, err
	}

	var created bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.measures.Upsert(txCtx, m)
		if err != nil {
			return fmt.Errorf("upsert measure %d: %w", m.ID, err)
		}
		return s.replaceRelations(txCtx, m.ID, m.Relations)
	})
	if err != nil {
		return false, err
	}

	s.log.DebugContext(ctx, "measure upserted",
		slog.Int64("measure_id", m.ID),
		slog.Bool("created", created),
	)
	return created, nil
}

// Update overwrites the existing measure with m's key. Relations behave as in Upsert.
func (s *Service) Update(ctx context.Context, m *domain.Measure) (*domain.Measure, error) {
	if m.ID <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := s.Check(ctx, m); err != nil {
		return nil, err
	}

	var updated *domain.Measure
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.measures.Update(txCtx, m)
		if err != nil {
			return fmt.Errorf("update measure %d: %w", m.ID, err)
		}
		return s.replaceRelations(txCtx, m.ID, m.Relations)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "measure updated", slog.Int64("measure_id", m.ID))
	return updated, nil
}

// Delete removes the measure. Examples, images and relation rows go with it
// in the database; stored image blobs are removed afterwards, best-effort.
func (s *Service) Delete(ctx context.Context, id int64) error {
	images, err := s.images.ListByMeasure(ctx, id)
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}

	if err := s.measures.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete measure %d: %w", id, err)
	}

	for _, img := range images {
		s.deleteBlob(ctx, img.Image)
	}

	s.log.InfoContext(ctx, "measure deleted",
		slog.Int64("measure_id", id),
		slog.Int("images", len(images)),
	)
	return nil
}

func (s *Service) deleteBlob(ctx context.Context, key string) {
	if _, err := s.blobs.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "delete image blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

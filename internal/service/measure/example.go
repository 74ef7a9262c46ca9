package measure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// GetExample returns one example.
func (s *Service) GetExample(ctx context.Context, id int64) (*domain.Example, error) {
	e, err := s.examples.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get example: %w", err)
	}
	return e, nil
}

// ListExamples returns one page of examples; filter by "measure_id" or "location".
func (s *Service) ListExamples(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Example], error) {
	items, total, err := s.examples.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Example]{}, fmt.Errorf("list examples: %w", err)
	}
	return domain.Page[domain.Example]{Items: items, Total: total}, nil
}

// CreateExample stores e under a generated key.
func (s *Service) CreateExample(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	if err := s.validateExample(ctx, e); err != nil {
		return nil, err
	}

	created, err := s.examples.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create example: %w", err)
	}

	s.log.InfoContext(ctx, "example created",
		slog.Int64("example_id", created.ID),
		slog.Int64("measure_id", created.MeasureID),
	)
	return created, nil
}

// UpsertExample stores e under its own key and reports whether it was created.
func (s *Service) UpsertExample(ctx context.Context, e *domain.Example) (bool, error) {
	if e.ID <= 0 {
		return false, domain.NewValidationError("id", "required")
	}
	if err := s.validateExample(ctx, e); err != nil {
		return false, err
	}

	created, err := s.examples.Upsert(ctx, e)
	if err != nil {
		return false, fmt.Errorf("upsert example %d: %w", e.ID, err)
	}
	return created, nil
}

// UpdateExample overwrites the existing example with e's key.
func (s *Service) UpdateExample(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	if e.ID <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := s.validateExample(ctx, e); err != nil {
		return nil, err
	}

	updated, err := s.examples.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("update example %d: %w", e.ID, err)
	}

	s.log.InfoContext(ctx, "example updated", slog.Int64("example_id", e.ID))
	return updated, nil
}

// DeleteExample removes one example.
func (s *Service) DeleteExample(ctx context.Context, id int64) error {
	if err := s.examples.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete example %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "example deleted", slog.Int64("example_id", id))
	return nil
}

func (s *Service) validateExample(ctx context.Context, e *domain.Example) error {
	if err := e.Validate(); err != nil {
		return err
	}

	missing, err := s.measures.MissingIDs(ctx, []int64{e.MeasureID})
	if err != nil {
		return fmt.Errorf("check measure: %w", err)
	}
	if len(missing) > 0 {
		return domain.NewValidationError("measure_id", "unknown measure "+joinIDs(missing))
	}
	return nil
}

// Package browse builds the localized read models of the public catalog.
// The locale is always passed explicitly.
package browse

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

type groupRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	All(ctx context.Context) ([]domain.Group, error)
}

type measureRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Measure, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Measure, error)
	All(ctx context.Context) ([]domain.Measure, error)
	ListByGroup(ctx context.Context, groupID int64) ([]domain.Measure, error)
	CountByGroup(ctx context.Context) (map[int64]int, error)
	Relations(ctx context.Context, measureID int64) (map[domain.Relation][]int64, error)
}

type exampleRepo interface {
	ListByMeasure(ctx context.Context, measureID int64) ([]domain.Example, error)
}

type imageRepo interface {
	ListByMeasure(ctx context.Context, measureID int64) ([]domain.MeasureImage, error)
}

// byIDs fetches reference rows in bulk; used by the per-call loaders.
type byIDs[T any] interface {
	GetByIDs(ctx context.Context, ids []int64) ([]T, error)
}

// Repos holds every repository the read model needs.
type Repos struct {
	Groups        groupRepo
	Measures      measureRepo
	Examples      exampleRepo
	Images        imageRepo
	Options       byIDs[domain.Option]
	Advantages    byIDs[domain.Advantage]
	Disadvantages byIDs[domain.Disadvantage]
	ImpactDetails byIDs[domain.ImpactDetail]
	References    byIDs[domain.Reference]
	Contacts      byIDs[domain.ContactPerson]
}

// Service provides the public catalog views.
type Service struct {
	repos Repos
	log   *slog.Logger
}

// NewService creates a new browse service.
func NewService(log *slog.Logger, repos Repos) *Service {
	return &Service{
		repos: repos,
		log:   log.With("service", "browse"),
	}
}

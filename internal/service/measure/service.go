// Package measure manages the Measure aggregate: the measure row, its
// many-to-many sets, its examples and its images.
package measure

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

type measureRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Measure, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Measure, int, error)
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
	Create(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	Upsert(ctx context.Context, m *domain.Measure) (bool, error)
	Update(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	Delete(ctx context.Context, id int64) error

	Relations(ctx context.Context, measureID int64) (map[domain.Relation][]int64, error)
	ReplaceRelation(ctx context.Context, measureID int64, rel domain.Relation, ids []int64) error
	MissingRelationTargets(ctx context.Context, rel domain.Relation, ids []int64) ([]int64, error)
}

type optionRepo interface {
	Categories(ctx context.Context, ids []int64) (map[int64]domain.OptionCategory, error)
}

// existence reports which of ids have no row; used for groups and impact details.
type existence interface {
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

type exampleRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Example, error)
	List(ctx context.Context, f domain.ListFilter) ([]domain.Example, int, error)
	ListByMeasure(ctx context.Context, measureID int64) ([]domain.Example, error)
	Create(ctx context.Context, e *domain.Example) (*domain.Example, error)
	Upsert(ctx context.Context, e *domain.Example) (bool, error)
	Update(ctx context.Context, e *domain.Example) (*domain.Example, error)
	Delete(ctx context.Context, id int64) error
}

type imageRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.MeasureImage, error)
	ListByMeasure(ctx context.Context, measureID int64) ([]domain.MeasureImage, error)
	Create(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error)
	Update(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error)
	Delete(ctx context.Context, id int64) error
}

type blobStore interface {
	Put(ctx context.Context, key string, r io.Reader, opts blob.PutOptions) (blob.Info, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos groups the repositories the service depends on.
type Repos struct {
	Measures      measureRepo
	Options       optionRepo
	Groups        existence
	ImpactDetails existence
	Examples      exampleRepo
	Images        imageRepo
}

// Service provides measure management operations.
type Service struct {
	measures      measureRepo
	options       optionRepo
	groups        existence
	impactDetails existence
	examples      exampleRepo
	images        imageRepo
	blobs         blobStore
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new measure service.
func NewService(log *slog.Logger, repos Repos, blobs blobStore, tx txManager) *Service {
	return &Service{
		measures:      repos.Measures,
		options:       repos.Options,
		groups:        repos.Groups,
		impactDetails: repos.ImpactDetails,
		examples:      repos.Examples,
		images:        repos.Images,
		blobs:         blobs,
		tx:            tx,
		log:           log.With("service", "measure"),
	}
}

// Detail is a measure together with its relations, examples and images.
type Detail struct {
	domain.Measure
	Examples []domain.Example      `json:"examples"`
	Images   []domain.MeasureImage `json:"images"`
}

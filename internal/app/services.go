package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/contact"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/example"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/group"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/image"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/impact"
	measurerepo "github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/measure"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/option"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/procon"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/reference"
	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/importer"
	"github.com/heartmarshall/adaptation-catalog/internal/service/browse"
	"github.com/heartmarshall/adaptation-catalog/internal/service/measure"
	"github.com/heartmarshall/adaptation-catalog/internal/service/taxonomy"
)

// Services holds the catalog services shared by the server and the import CLI.
type Services struct {
	Taxonomy *taxonomy.Service
	Measures *measure.Service
	Browse   *browse.Service
}

// NewServices builds the repositories on pool and the services on top of them.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, blobs blob.Store) *Services {
	txm := postgres.NewTxManager(pool)

	groupRepo := group.New(pool)
	advantageRepo := procon.NewAdvantageRepo(pool)
	disadvantageRepo := procon.NewDisadvantageRepo(pool)
	optionNameRepo := option.NewNameRepo(pool)
	optionRepo := option.New(pool)
	impactCategoryRepo := impact.NewCategoryRepo(pool)
	impactDetailRepo := impact.NewDetailRepo(pool)
	referenceRepo := reference.New(pool)
	contactRepo := contact.New(pool)
	measureRepo := measurerepo.New(pool)
	exampleRepo := example.New(pool)
	imageRepo := image.New(pool)

	return &Services{
		Taxonomy: taxonomy.NewService(logger, taxonomy.Stores{
			Groups:           groupRepo,
			Advantages:       advantageRepo,
			Disadvantages:    disadvantageRepo,
			OptionNames:      optionNameRepo,
			Options:          optionRepo,
			ImpactCategories: impactCategoryRepo,
			ImpactDetails:    impactDetailRepo,
			References:       referenceRepo,
			Contacts:         contactRepo,
		}),
		Measures: measure.NewService(logger, measure.Repos{
			Measures:      measureRepo,
			Options:       optionRepo,
			Groups:        groupRepo,
			ImpactDetails: impactDetailRepo,
			Examples:      exampleRepo,
			Images:        imageRepo,
		}, blobs, txm),
		Browse: browse.NewService(logger, browse.Repos{
			Groups:        groupRepo,
			Measures:      measureRepo,
			Examples:      exampleRepo,
			Images:        imageRepo,
			Options:       optionRepo,
			Advantages:    advantageRepo,
			Disadvantages: disadvantageRepo,
			ImpactDetails: impactDetailRepo,
			References:    referenceRepo,
			Contacts:      contactRepo,
		}),
	}
}

// Importers returns every spreadsheet importer, writing through s.
func (s *Services) Importers() []importer.Importer {
	t := s.Taxonomy
	return importer.Importers(importer.Catalog{
		Groups:           t.Groups,
		Advantages:       t.Advantages,
		Disadvantages:    t.Disadvantages,
		OptionNames:      t.OptionNames,
		Options:          t.Options,
		ImpactCategories: t.ImpactCategories,
		ImpactDetails:    t.ImpactDetails,
		References:       t.References,
		Contacts:         t.Contacts,
		Measures:         s.Measures,
	})
}

// Package taxonomy manages the reference entities measures point at: groups,
// advantages, disadvantages, option categories and options, impact
// categories and details, references and contact persons.
package taxonomy

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// store is the persistence surface a Collection needs. Every taxonomy
// repository satisfies it through base.Repo.
type store[T any, P interface {
	*T
	domain.Entity
}] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, f domain.ListFilter) ([]T, int, error)
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
	Create(ctx context.Context, v P) (*T, error)
	Upsert(ctx context.Context, v P) (bool, error)
	Update(ctx context.Context, v P) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type (
	groupStore          = store[domain.Group, *domain.Group]
	advantageStore      = store[domain.Advantage, *domain.Advantage]
	disadvantageStore   = store[domain.Disadvantage, *domain.Disadvantage]
	optionNameStore     = store[domain.OptionName, *domain.OptionName]
	optionStore         = store[domain.Option, *domain.Option]
	impactCategoryStore = store[domain.ImpactCategory, *domain.ImpactCategory]
	impactDetailStore   = store[domain.ImpactDetail, *domain.ImpactDetail]
	referenceStore      = store[domain.Reference, *domain.Reference]
	contactStore        = store[domain.ContactPerson, *domain.ContactPerson]
)

// Stores holds the repositories backing each collection.
type Stores struct {
	Groups           groupStore
	Advantages       advantageStore
	Disadvantages    disadvantageStore
	OptionNames      optionNameStore
	Options          optionStore
	ImpactCategories impactCategoryStore
	ImpactDetails    impactDetailStore
	References       referenceStore
	Contacts         contactStore
}

type (
	Groups           = Collection[domain.Group, *domain.Group]
	Advantages       = Collection[domain.Advantage, *domain.Advantage]
	Disadvantages    = Collection[domain.Disadvantage, *domain.Disadvantage]
	OptionNames      = Collection[domain.OptionName, *domain.OptionName]
	Options          = Collection[domain.Option, *domain.Option]
	ImpactCategories = Collection[domain.ImpactCategory, *domain.ImpactCategory]
	ImpactDetails    = Collection[domain.ImpactDetail, *domain.ImpactDetail]
	References       = Collection[domain.Reference, *domain.Reference]
	Contacts         = Collection[domain.ContactPerson, *domain.ContactPerson]
)

// Service exposes one Collection per reference entity.
type Service struct {
	Groups           *Groups
	Advantages       *Advantages
	Disadvantages    *Disadvantages
	OptionNames      *OptionNames
	Options          *Options
	ImpactCategories *ImpactCategories
	ImpactDetails    *ImpactDetails
	References       *References
	Contacts         *Contacts
}

// NewService creates a new taxonomy service.
func NewService(log *slog.Logger, stores Stores) *Service {
	log = log.With("service", "taxonomy")

	return &Service{
		Groups:        newCollection("group", stores.Groups, log),
		Advantages:    newCollection("advantage", stores.Advantages, log),
		Disadvantages: newCollection("disadvantage", stores.Disadvantages, log),
		OptionNames:   newCollection("option_name", stores.OptionNames, log),
		Options: newCollection("option", stores.Options, log,
			parentCheck("option_name_id", stores.OptionNames, func(o *domain.Option) int64 { return o.OptionNameID })),
		ImpactCategories: newCollection("impact_category", stores.ImpactCategories, log),
		ImpactDetails: newCollection("impact_detail", stores.ImpactDetails, log,
			parentCheck("impact_category_id", stores.ImpactCategories, func(d *domain.ImpactDetail) int64 { return d.ImpactCategoryID })),
		References: newCollection("reference", stores.References, log),
		Contacts:   newCollection("contact_person", stores.Contacts, log),
	}
}

// existence is the part of a store parentCheck needs.
type existence interface {
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// parentCheck rejects a write whose parent row does not exist.
func parentCheck[P any](field string, parents existence, parentID func(P) int64) func(context.Context, P) error {
	return func(ctx context.Context, v P) error {
		id := parentID(v)
		missing, err := parents.MissingIDs(ctx, []int64{id})
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return domain.NewValidationError(field, "unknown id")
		}
		return nil
	}
}

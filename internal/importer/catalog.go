package importer

import (
	"context"
	"fmt"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/service/measure"
)

// collection is the part of a taxonomy collection the importers use.
type collection[T any, P interface {
	*T
	domain.Entity
}] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Missing(ctx context.Context, ids []int64) ([]int64, error)
	Upsert(ctx context.Context, v P) (bool, error)
}

type measureService interface {
	Get(ctx context.Context, id int64) (*measure.Detail, error)
	Missing(ctx context.Context, ids []int64) ([]int64, error)
	Upsert(ctx context.Context, m *domain.Measure) (bool, error)
	Update(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	ReplaceRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error
	Check(ctx context.Context, m *domain.Measure) error
	CheckRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error
	UpsertExample(ctx context.Context, e *domain.Example) (bool, error)
}

// missingFinder reports which ids have no row.
type missingFinder interface {
	Missing(ctx context.Context, ids []int64) ([]int64, error)
}

// Catalog is the set of services the importers write through.
type Catalog struct {
	Groups           collection[domain.Group, *domain.Group]
	Advantages       collection[domain.Advantage, *domain.Advantage]
	Disadvantages    collection[domain.Disadvantage, *domain.Disadvantage]
	OptionNames      collection[domain.OptionName, *domain.OptionName]
	Options          collection[domain.Option, *domain.Option]
	ImpactCategories collection[domain.ImpactCategory, *domain.ImpactCategory]
	ImpactDetails    collection[domain.ImpactDetail, *domain.ImpactDetail]
	References       collection[domain.Reference, *domain.Reference]
	Contacts         collection[domain.ContactPerson, *domain.ContactPerson]
	Measures         measureService
}

// Importers returns every importer backed by c.
func Importers(c Catalog) []Importer {
	return []Importer{
		groupsImporter(c),
		advantagesImporter(c),
		disadvantagesImporter(c),
		optionNamesImporter(c),
		optionsImporter(c),
		impactCategoriesImporter(c),
		impactDetailsImporter(c),
		referencesImporter(c),
		contactsImporter(c),
		measuresImporter(c),
		measureTextsImporter(c),
		measureOptionsImporter(c),
		measureRelationsImporter(c),
		examplesImporter(c),
	}
}

// rowImporter splits a row import into a read-only parse step, which also
// resolves references, and a write step skipped in dry runs. A dry run
// calls check instead of write; without check, values that validate
// themselves are validated.
type rowImporter[T any] struct {
	name    string
	columns []string
	parse   func(ctx context.Context, row Row) (T, error)
	check   func(ctx context.Context, v T) error
	write   func(ctx context.Context, v T) (Outcome, error)
}

func (i *rowImporter[T]) Name() string      { return i.name }
func (i *rowImporter[T]) Columns() []string { return i.columns }

func (i *rowImporter[T]) Import(ctx context.Context, row Row, dryRun bool) (Outcome, error) {
	v, err := i.parse(ctx, row)
	if err != nil {
		return OutcomeSkipped, err
	}
	if dryRun {
		if err := i.dryCheck(ctx, v); err != nil {
			return OutcomeSkipped, err
		}
		return OutcomeChecked, nil
	}
	return i.write(ctx, v)
}

func (i *rowImporter[T]) dryCheck(ctx context.Context, v T) error {
	if i.check != nil {
		return i.check(ctx, v)
	}
	if val, ok := any(v).(domain.Validatable); ok {
		return val.Validate()
	}
	return nil
}

// upsertInto writes v through c and maps the created flag to an outcome.
func upsertInto[T any, P interface {
	*T
	domain.Entity
}](c collection[T, P]) func(context.Context, P) (Outcome, error) {
	return func(ctx context.Context, v P) (Outcome, error) {
		created, err := c.Upsert(ctx, v)
		if err != nil {
			return OutcomeSkipped, err
		}
		return outcomeOf(created), nil
	}
}

func outcomeOf(created bool) Outcome {
	if created {
		return OutcomeCreated
	}
	return OutcomeUpdated
}

// resolve fails when any of ids has no row in f, naming the missing ids.
func resolve(ctx context.Context, what string, f missingFinder, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := f.Missing(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", what, err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s %s not found", what, joinIDs(missing))
	}
	return nil
}

// optIDs collects the set values among ids.
func optIDs(ids ...*int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			out = append(out, *id)
		}
	}
	return out
}

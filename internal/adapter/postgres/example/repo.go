// Package example implements the Example repository using PostgreSQL.
package example

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var config = base.Config{
	Entity:  "example",
	Table:   "examples",
	Columns: []string{"id", "measure_id", "example_name", "description_cs", "description_en", "web", "location"},
	Search:  []string{"example_name", "description_cs", "description_en", "web"},
	Filters: []string{"measure_id", "location"},
	Sorts:   []string{"id", "measure_id", "example_name", "location"},
	Order:   []string{"measure_id", "id"},
}

// Repo provides example persistence.
type Repo struct {
	*base.Repo[domain.Example, *domain.Example]
}

// New creates a new example repository.
func New(db postgres.Querier) *Repo {
	return &Repo{Repo: base.NewRepo[domain.Example, *domain.Example](db, config, values)}
}

func values(e *domain.Example) map[string]any {
	return map[string]any{
		"measure_id":     e.MeasureID,
		"example_name":   e.Name,
		"description_cs": e.DescriptionCS,
		"description_en": e.DescriptionEN,
		"web":            e.Web,
		"location":       int16(e.Location),
	}
}

// ListByMeasure returns the examples of one measure in id order.
func (r *Repo) ListByMeasure(ctx context.Context, measureID int64) ([]domain.Example, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{"measure_id": measureID}).
		OrderBy("id"))
}

// Package impact implements the ImpactCategory and ImpactDetail repositories.
package impact

import (
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var categoryConfig = base.Config{
	Entity:  "impact category",
	Table:   "impact_categories",
	Columns: []string{"id", "name_cs", "name_en"},
	Search:  []string{"name_cs", "name_en"},
	Sorts:   []string{"id", "name_cs", "name_en"},
	Order:   []string{"id"},
}

var detailConfig = base.Config{
	Entity:  "impact detail",
	Table:   "impact_details",
	Columns: []string{"id", "impact_category_id", "detail_cs", "detail_en"},
	Search:  []string{"detail_cs", "detail_en"},
	Filters: []string{"impact_category_id"},
	Sorts:   []string{"id", "impact_category_id", "detail_cs", "detail_en"},
	Order:   []string{"impact_category_id", "id"},
}

// CategoryRepo provides impact category persistence.
type CategoryRepo struct {
	*base.Repo[domain.ImpactCategory, *domain.ImpactCategory]
}

// NewCategoryRepo creates a new impact category repository.
func NewCategoryRepo(db postgres.Querier) *CategoryRepo {
	return &CategoryRepo{
		Repo: base.NewRepo[domain.ImpactCategory, *domain.ImpactCategory](db, categoryConfig,
			func(c *domain.ImpactCategory) map[string]any {
				return map[string]any{"name_cs": c.NameCS, "name_en": c.NameEN}
			}),
	}
}

// DetailRepo provides impact detail persistence.
type DetailRepo struct {
	*base.Repo[domain.ImpactDetail, *domain.ImpactDetail]
}

// NewDetailRepo creates a new impact detail repository.
func NewDetailRepo(db postgres.Querier) *DetailRepo {
	return &DetailRepo{
		Repo: base.NewRepo[domain.ImpactDetail, *domain.ImpactDetail](db, detailConfig,
			func(d *domain.ImpactDetail) map[string]any {
				return map[string]any{
					"impact_category_id": d.ImpactCategoryID,
					"detail_cs":          d.DetailCS,
					"detail_en":          d.DetailEN,
				}
			}),
	}
}


// Package procon implements the Advantage and Disadvantage repositories.
// Both tables share the same bilingual description shape.
package procon

import (
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

func config(entity, table string) base.Config {
	return base.Config{
		Entity:  entity,
		Table:   table,
		Columns: []string{"id", "description_cs", "description_en"},
		Search:  []string{"description_cs", "description_en"},
		Sorts:   []string{"id", "description_cs", "description_en"},
		Order:   []string{"id"},
	}
}

// AdvantageRepo provides advantage persistence.
type AdvantageRepo struct {
	*base.Repo[domain.Advantage, *domain.Advantage]
}

// NewAdvantageRepo creates a new advantage repository.
func NewAdvantageRepo(db postgres.Querier) *AdvantageRepo {
	return &AdvantageRepo{
		Repo: base.NewRepo[domain.Advantage, *domain.Advantage](db, config("advantage", "advantages"),
			func(a *domain.Advantage) map[string]any {
				return map[string]any{"description_cs": a.DescriptionCS, "description_en": a.DescriptionEN}
			}),
	}
}

// DisadvantageRepo provides disadvantage persistence.
type DisadvantageRepo struct {
	*base.Repo[domain.Disadvantage, *domain.Disadvantage]
}

// NewDisadvantageRepo creates a new disadvantage repository.
func NewDisadvantageRepo(db postgres.Querier) *DisadvantageRepo {
	return &DisadvantageRepo{
		Repo: base.NewRepo[domain.Disadvantage, *domain.Disadvantage](db, config("disadvantage", "disadvantages"),
			func(d *domain.Disadvantage) map[string]any {
				return map[string]any{"description_cs": d.DescriptionCS, "description_en": d.DescriptionEN}
			}),
	}
}

// Package reference implements the Reference repository.
package reference

import (
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var config = base.Config{
	Entity:  "reference",
	Table:   `"references"`,
	Columns: []string{"id", "citation", "url"},
	Search:  []string{"citation", "url"},
	Sorts:   []string{"id", "citation"},
	Order:   []string{"citation", "id"},
}

// Repo provides reference persistence.
type Repo struct {
	*base.Repo[domain.Reference, *domain.Reference]
}

// New creates a new reference repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Repo: base.NewRepo[domain.Reference, *domain.Reference](db, config,
			func(r *domain.Reference) map[string]any {
				return map[string]any{"citation": r.Citation, "url": r.URL}
			}),
	}
}

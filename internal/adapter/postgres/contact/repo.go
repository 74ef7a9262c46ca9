// Package contact implements the ContactPerson repository.
package contact

import (
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var config = base.Config{
	Entity:  "contact person",
	Table:   "contact_persons",
	Columns: []string{"id", "name", "organization", "email", "phone"},
	Search:  []string{"name", "organization", "email"},
	Sorts:   []string{"id", "name", "organization"},
	Order:   []string{"name", "id"},
}

// Repo provides contact person persistence.
type Repo struct {
	*base.Repo[domain.ContactPerson, *domain.ContactPerson]
}

// New creates a new contact person repository.
func New(db postgres.Querier) *Repo {
	return &Repo{
		Repo: base.NewRepo[domain.ContactPerson, *domain.ContactPerson](db, config,
			func(c *domain.ContactPerson) map[string]any {
				return map[string]any{
					"name":         c.Name,
					"organization": c.Organization,
					"email":        c.Email,
					"phone":        c.Phone,
				}
			}),
	}
}

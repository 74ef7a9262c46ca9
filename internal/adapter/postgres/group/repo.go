// Package group implements the Group repository using PostgreSQL.
package group

import (
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var config = base.Config{
	Entity:  "group",
	Table:   "groups",
	Columns: []string{"id", "name_cs", "name_en"},
	Search:  []string{"name_cs", "name_en"},
	Sorts:   []string{"id", "name_cs", "name_en"},
	Order:   []string{"id"},
}

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	*base.Repo[domain.Group, *domain.Group]
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{Repo: base.NewRepo[domain.Group, *domain.Group](db, config, values)}
}

func values(g *domain.Group) map[string]any {
	return map[string]any{
		"name_cs": g.NameCS,
		"name_en": g.NameEN,
	}
}

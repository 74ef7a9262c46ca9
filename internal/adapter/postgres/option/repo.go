// Package option implements the OptionName and Option repositories.
package option

import (
	"context"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var nameConfig = base.Config{
	Entity:  "option name",
	Table:   "option_names",
	Columns: []string{"id", "name_cs", "name_en"},
	Search:  []string{"name_cs", "name_en"},
	Sorts:   []string{"id", "name_cs", "name_en"},
	Order:   []string{"id"},
}

var optionConfig = base.Config{
	Entity: "option",
	Table:  "options",
	Columns: []string{
		"id", "option_name_id", "value_cs", "value_en", "sort_order",
		"description_cs", "description_en",
	},
	Search:  []string{"value_cs", "value_en", "description_cs", "description_en"},
	Filters: []string{"option_name_id"},
	Sorts:   []string{"id", "option_name_id", "value_cs", "value_en", "sort_order"},
	Order:   []string{"option_name_id", "sort_order", "value_cs", "id"},
}

// NameRepo provides option name (category) persistence.
type NameRepo struct {
	*base.Repo[domain.OptionName, *domain.OptionName]
}

// NewNameRepo creates a new option name repository.
func NewNameRepo(db postgres.Querier) *NameRepo {
	return &NameRepo{
		Repo: base.NewRepo[domain.OptionName, *domain.OptionName](db, nameConfig,
			func(o *domain.OptionName) map[string]any {
				return map[string]any{"name_cs": o.NameCS, "name_en": o.NameEN}
			}),
	}
}

// Repo provides option persistence.
type Repo struct {
	*base.Repo[domain.Option, *domain.Option]
}

// New creates a new option repository.
func New(db postgres.Querier) *Repo {
	return &Repo{Repo: base.NewRepo[domain.Option, *domain.Option](db, optionConfig, values)}
}

func values(o *domain.Option) map[string]any {
	return map[string]any{
		"option_name_id": o.OptionNameID,
		"value_cs":       o.ValueCS,
		"value_en":       o.ValueEN,
		"sort_order":     o.SortOrder,
		"description_cs": o.DescriptionCS,
		"description_en": o.DescriptionEN,
	}
}

// Categories returns the category of each existing option among ids.
// Options that do not exist are absent from the result.
func (r *Repo) Categories(ctx context.Context, ids []int64) (map[int64]domain.OptionCategory, error) {
	opts, err := r.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]domain.OptionCategory, len(opts))
	for _, o := range opts {
		result[o.ID] = o.Category()
	}
	return result, nil
}

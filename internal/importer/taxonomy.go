package importer

import (
	"context"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Importer names.
const (
	NameGroups           = "groups"
	NameAdvantages       = "advantages"
	NameDisadvantages    = "disadvantages"
	NameOptionNames      = "option-names"
	NameOptions          = "options"
	NameImpactCategories = "impact-categories"
	NameImpactDetails    = "impact-details"
	NameReferences       = "references"
	NameContacts         = "contacts"
	NameMeasures         = "measures"
	NameMeasureTexts     = "measure-texts"
	NameMeasureOptions   = "measure-options"
	NameMeasureRelations = "measure-relations"
	NameExamples         = "examples"
)

// textPair reads a required cs/en pair.
func textPair(row Row, csCol, enCol string) (cs, en string, err error) {
	if cs, err = row.Text(csCol); err != nil {
		return "", "", err
	}
	if en, err = row.Text(enCol); err != nil {
		return "", "", err
	}
	return cs, en, nil
}

func groupsImporter(c Catalog) Importer {
	return &rowImporter[*domain.Group]{
		name:    NameGroups,
		columns: []string{"id", "cs", "en"},
		parse: func(ctx context.Context, row Row) (*domain.Group, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "cs", "en")
			if err != nil {
				return nil, err
			}
			return &domain.Group{ID: id, NameCS: cs, NameEN: en}, nil
		},
		write: upsertInto(c.Groups),
	}
}

func advantagesImporter(c Catalog) Importer {
	return &rowImporter[*domain.Advantage]{
		name:    NameAdvantages,
		columns: []string{"id", "description", "translate"},
		parse: func(ctx context.Context, row Row) (*domain.Advantage, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "description", "translate")
			if err != nil {
				return nil, err
			}
			return &domain.Advantage{ID: id, DescriptionCS: cs, DescriptionEN: en}, nil
		},
		write: upsertInto(c.Advantages),
	}
}

func disadvantagesImporter(c Catalog) Importer {
	return &rowImporter[*domain.Disadvantage]{
		name:    NameDisadvantages,
		columns: []string{"id", "description", "translate"},
		parse: func(ctx context.Context, row Row) (*domain.Disadvantage, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "description", "translate")
			if err != nil {
				return nil, err
			}
			return &domain.Disadvantage{ID: id, DescriptionCS: cs, DescriptionEN: en}, nil
		},
		write: upsertInto(c.Disadvantages),
	}
}

func optionNamesImporter(c Catalog) Importer {
	return &rowImporter[*domain.OptionName]{
		name:    NameOptionNames,
		columns: []string{"id", "cs", "en"},
		parse: func(ctx context.Context, row Row) (*domain.OptionName, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "cs", "en")
			if err != nil {
				return nil, err
			}
			return &domain.OptionName{ID: id, NameCS: cs, NameEN: en}, nil
		},
		write: upsertInto(c.OptionNames),
	}
}

func optionsImporter(c Catalog) Importer {
	return &rowImporter[*domain.Option]{
		name:    NameOptions,
		columns: []string{"id", "choice_name_id", "choice", "choice_trans"},
		parse: func(ctx context.Context, row Row) (*domain.Option, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			nameID, err := row.ID("choice_name_id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "choice", "choice_trans")
			if err != nil {
				return nil, err
			}
			order, err := row.OptInt("order")
			if err != nil {
				return nil, err
			}
			if err := resolve(ctx, "option name", c.OptionNames, nameID); err != nil {
				return nil, err
			}

			o := &domain.Option{
				ID:            id,
				OptionNameID:  nameID,
				ValueCS:       cs,
				ValueEN:       en,
				DescriptionCS: row.OptText("description"),
				DescriptionEN: row.OptText("description_trans"),
			}
			if order != nil {
				o.SortOrder = int(*order)
			}
			return o, nil
		},
		write: upsertInto(c.Options),
	}
}

func impactCategoriesImporter(c Catalog) Importer {
	return &rowImporter[*domain.ImpactCategory]{
		name:    NameImpactCategories,
		columns: []string{"tag_id", "tag_name", "tag_trans"},
		parse: func(ctx context.Context, row Row) (*domain.ImpactCategory, error) {
			id, err := row.ID("tag_id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "tag_name", "tag_trans")
			if err != nil {
				return nil, err
			}
			return &domain.ImpactCategory{ID: id, NameCS: cs, NameEN: en}, nil
		},
		write: upsertInto(c.ImpactCategories),
	}
}

func impactDetailsImporter(c Catalog) Importer {
	return &rowImporter[*domain.ImpactDetail]{
		name:    NameImpactDetails,
		columns: []string{"id", "tag_id", "tag_detail", "detail_trans"},
		parse: func(ctx context.Context, row Row) (*domain.ImpactDetail, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			categoryID, err := row.ID("tag_id")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "tag_detail", "detail_trans")
			if err != nil {
				return nil, err
			}
			if err := resolve(ctx, "impact category", c.ImpactCategories, categoryID); err != nil {
				return nil, err
			}
			return &domain.ImpactDetail{ID: id, ImpactCategoryID: categoryID, DetailCS: cs, DetailEN: en}, nil
		},
		write: upsertInto(c.ImpactDetails),
	}
}

func referencesImporter(c Catalog) Importer {
	return &rowImporter[*domain.Reference]{
		name:    NameReferences,
		columns: []string{"id", "citation"},
		parse: func(ctx context.Context, row Row) (*domain.Reference, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			citation, err := row.Text("citation")
			if err != nil {
				return nil, err
			}
			return &domain.Reference{ID: id, Citation: citation, URL: row.OptText("url")}, nil
		},
		write: upsertInto(c.References),
	}
}

func contactsImporter(c Catalog) Importer {
	return &rowImporter[*domain.ContactPerson]{
		name:    NameContacts,
		columns: []string{"id", "name"},
		parse: func(ctx context.Context, row Row) (*domain.ContactPerson, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			name, err := row.Text("name")
			if err != nil {
				return nil, err
			}
			return &domain.ContactPerson{
				ID:           id,
				Name:         name,
				Organization: row.OptText("organization"),
				Email:        row.OptText("email"),
				Phone:        row.OptText("phone"),
			}, nil
		},
		write: upsertInto(c.Contacts),
	}
}

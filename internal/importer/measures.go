package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// measurePatch sets the mapped fields of one measure row on top of the
// stored measure, or on a fresh one.
type measurePatch struct {
	id    int64
	apply func(m *domain.Measure)
}

// current returns the stored measure without its relations, so a later
// Update leaves the member sets alone.
func current(ctx context.Context, svc measureService, id int64) (*domain.Measure, error) {
	d, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m := d.Measure
	m.Relations = nil
	return &m, nil
}

// setText overwrites *dst unless the cell is blank.
func setText(row Row, col string, dst **string) {
	if v := row.OptText(col); v != nil {
		*dst = v
	}
}

func measuresImporter(c Catalog) Importer {
	prices := []string{"price_czk_min", "price_czk_max", "price_eu_min", "price_eu_max"}

	return &rowImporter[measurePatch]{
		name: NameMeasures,
		columns: []string{
			"id", "group_id", "measure_name_cs", "measure_name_en", "code",
			"description_cs", "description_en",
		},
		parse: func(ctx context.Context, row Row) (measurePatch, error) {
			id, err := row.ID("id")
			if err != nil {
				return measurePatch{}, err
			}
			groupID, err := row.ID("group_id")
			if err != nil {
				return measurePatch{}, err
			}
			nameCS, nameEN, err := textPair(row, "measure_name_cs", "measure_name_en")
			if err != nil {
				return measurePatch{}, err
			}
			code, err := row.Text("code")
			if err != nil {
				return measurePatch{}, err
			}
			descCS, descEN, err := textPair(row, "description_cs", "description_en")
			if err != nil {
				return measurePatch{}, err
			}

			amounts := make([]*int64, len(prices))
			for i, col := range prices {
				if amounts[i], err = row.OptInt(col); err != nil {
					return measurePatch{}, err
				}
			}

			if err := resolve(ctx, "group", c.Groups, groupID); err != nil {
				return measurePatch{}, err
			}

			return measurePatch{id: id, apply: func(m *domain.Measure) {
				m.GroupID = groupID
				m.NameCS, m.NameEN = nameCS, nameEN
				m.Code = code
				m.DescriptionCS, m.DescriptionEN = descCS, descEN
				for i, dst := range []**int64{&m.PriceCZKMin, &m.PriceCZKMax, &m.PriceEURMin, &m.PriceEURMax} {
					if amounts[i] != nil {
						*dst = amounts[i]
					}
				}
			}}, nil
		},
		check: func(ctx context.Context, p measurePatch) error {
			m, _, err := patchedOrNew(ctx, c.Measures, p)
			if err != nil {
				return err
			}
			return c.Measures.Check(ctx, m)
		},
		write: func(ctx context.Context, p measurePatch) (Outcome, error) {
			m, exists, err := patchedOrNew(ctx, c.Measures, p)
			if err != nil {
				return OutcomeSkipped, err
			}
			if !exists {
				created, err := c.Measures.Upsert(ctx, m)
				if err != nil {
					return OutcomeSkipped, err
				}
				return outcomeOf(created), nil
			}
			if _, err := c.Measures.Update(ctx, m); err != nil {
				return OutcomeSkipped, err
			}
			return OutcomeUpdated, nil
		},
	}
}

// patchedOrNew applies p to the stored measure, or to a fresh one when
// none exists, and reports whether the measure exists.
func patchedOrNew(ctx context.Context, svc measureService, p measurePatch) (*domain.Measure, bool, error) {
	m, err := current(ctx, svc, p.id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m = &domain.Measure{ID: p.id}
		p.apply(m)
		return m, false, nil
	case err != nil:
		return nil, false, err
	}
	p.apply(m)
	return m, true, nil
}

// patched applies p to an existing measure. Update-only importers never
// create measures.
func patched(ctx context.Context, svc measureService, p measurePatch) (*domain.Measure, error) {
	m, err := current(ctx, svc, p.id)
	if err != nil {
		return nil, err
	}
	p.apply(m)
	return m, nil
}

func checkMeasure(svc measureService) func(context.Context, measurePatch) error {
	return func(ctx context.Context, p measurePatch) error {
		m, err := patched(ctx, svc, p)
		if err != nil {
			return err
		}
		return svc.Check(ctx, m)
	}
}

func updateMeasure(svc measureService) func(context.Context, measurePatch) (Outcome, error) {
	return func(ctx context.Context, p measurePatch) (Outcome, error) {
		m, err := patched(ctx, svc, p)
		if err != nil {
			return OutcomeSkipped, err
		}
		if _, err := svc.Update(ctx, m); err != nil {
			return OutcomeSkipped, err
		}
		return OutcomeUpdated, nil
	}
}

func measureTextsImporter(c Catalog) Importer {
	texts := []struct {
		col string
		dst func(m *domain.Measure) **string
	}{
		{"conditions_for_implementation_cs", func(m *domain.Measure) **string { return &m.ConditionsCS }},
		{"conditions_for_implementation_en", func(m *domain.Measure) **string { return &m.ConditionsEN }},
		{"abstract_cs", func(m *domain.Measure) **string { return &m.AbstractCS }},
		{"abstract_en", func(m *domain.Measure) **string { return &m.AbstractEN }},
		{"history_cs", func(m *domain.Measure) **string { return &m.HistoryCS }},
		{"history_en", func(m *domain.Measure) **string { return &m.HistoryEN }},
		{"comment_cs", func(m *domain.Measure) **string { return &m.CommentCS }},
		{"comment_en", func(m *domain.Measure) **string { return &m.CommentEN }},
		{"impact_desc_cs", func(m *domain.Measure) **string { return &m.ImpactDescCS }},
		{"impact_desc_en", func(m *domain.Measure) **string { return &m.ImpactDescEN }},
		{"env_desc", func(m *domain.Measure) **string { return &m.EnvDesc }},
		{"other_conflict", func(m *domain.Measure) **string { return &m.OtherConflict }},
	}

	return &rowImporter[measurePatch]{
		name: NameMeasureTexts,
		columns: []string{
			"id",
			"conditions_for_implementation_cs", "conditions_for_implementation_en",
			"abstract_cs", "abstract_en",
		},
		parse: func(ctx context.Context, row Row) (measurePatch, error) {
			id, err := row.ID("id")
			if err != nil {
				return measurePatch{}, err
			}
			if err := resolve(ctx, "measure", c.Measures, id); err != nil {
				return measurePatch{}, err
			}
			return measurePatch{id: id, apply: func(m *domain.Measure) {
				for _, t := range texts {
					setText(row, t.col, t.dst(m))
				}
			}}, nil
		},
		check: checkMeasure(c.Measures),
		write: updateMeasure(c.Measures),
	}
}

func measureOptionsImporter(c Catalog) Importer {
	refs := []struct {
		col string
		dst func(m *domain.Measure) **int64
	}{
		{"env", func(m *domain.Measure) **int64 { return &m.EnvID }},
		{"potential", func(m *domain.Measure) **int64 { return &m.PotentialID }},
		{"size", func(m *domain.Measure) **int64 { return &m.SizeID }},
		{"difficulty_of_implementation", func(m *domain.Measure) **int64 { return &m.DifficultyID }},
		{"quantification", func(m *domain.Measure) **int64 { return &m.QuantificationID }},
		{"time_horizon", func(m *domain.Measure) **int64 { return &m.TimeHorizonID }},
		{"unit", func(m *domain.Measure) **int64 { return &m.UnitID }},
	}

	columns := []string{"id"}
	for _, r := range refs {
		columns = append(columns, r.col)
	}
	columns = append(columns, "impact_details")

	return &rowImporter[measurePatch]{
		name:    NameMeasureOptions,
		columns: columns,
		parse: func(ctx context.Context, row Row) (measurePatch, error) {
			id, err := row.ID("id")
			if err != nil {
				return measurePatch{}, err
			}

			values := make([]*int64, len(refs))
			for i, r := range refs {
				if values[i], err = row.OptID(r.col); err != nil {
					return measurePatch{}, err
				}
			}
			impact, err := row.OptID("impact_details")
			if err != nil {
				return measurePatch{}, err
			}

			if err := resolve(ctx, "measure", c.Measures, id); err != nil {
				return measurePatch{}, err
			}
			if err := resolve(ctx, "option", c.Options, optIDs(values...)...); err != nil {
				return measurePatch{}, err
			}
			if err := resolve(ctx, "impact detail", c.ImpactDetails, optIDs(impact)...); err != nil {
				return measurePatch{}, err
			}

			return measurePatch{id: id, apply: func(m *domain.Measure) {
				for i, r := range refs {
					if values[i] != nil {
						*r.dst(m) = values[i]
					}
				}
				if impact != nil {
					m.ImpactDetailID = impact
				}
			}}, nil
		},
		check: checkMeasure(c.Measures),
		write: updateMeasure(c.Measures),
	}
}

type relationsRow struct {
	id   int64
	rels map[domain.Relation][]int64
}

func measureRelationsImporter(c Catalog) Importer {
	required := []domain.Relation{
		domain.RelationAdvantages,
		domain.RelationDisadvantages,
		domain.RelationEnvSecondary,
		domain.RelationInterconnection,
		domain.RelationConflict,
		domain.RelationOtherImpacts,
		domain.RelationSDG,
	}
	columns := []string{"id"}
	for _, rel := range required {
		columns = append(columns, string(rel))
	}

	return &rowImporter[relationsRow]{
		name:    NameMeasureRelations,
		columns: columns,
		parse: func(ctx context.Context, row Row) (relationsRow, error) {
			id, err := row.ID("id")
			if err != nil {
				return relationsRow{}, err
			}

			rels := make(map[domain.Relation][]int64)
			for _, rel := range domain.AllRelations {
				ids, ok, err := row.IDs(string(rel))
				if err != nil {
					return relationsRow{}, err
				}
				if ok {
					rels[rel] = ids
				}
			}

			if err := resolve(ctx, "measure", c.Measures, id); err != nil {
				return relationsRow{}, err
			}
			return relationsRow{id: id, rels: rels}, nil
		},
		check: func(ctx context.Context, r relationsRow) error {
			if err := c.Measures.CheckRelations(ctx, r.id, r.rels); err != nil {
				return fmt.Errorf("measure %d: %w", r.id, err)
			}
			return nil
		},
		write: func(ctx context.Context, r relationsRow) (Outcome, error) {
			if err := c.Measures.ReplaceRelations(ctx, r.id, r.rels); err != nil {
				return OutcomeSkipped, fmt.Errorf("measure %d: %w", r.id, err)
			}
			return OutcomeUpdated, nil
		},
	}
}

func examplesImporter(c Catalog) Importer {
	return &rowImporter[*domain.Example]{
		name:    NameExamples,
		columns: []string{"id", "measure", "example_name", "description", "trans", "web", "location"},
		parse: func(ctx context.Context, row Row) (*domain.Example, error) {
			id, err := row.ID("id")
			if err != nil {
				return nil, err
			}
			measureID, err := row.ID("measure")
			if err != nil {
				return nil, err
			}
			name, err := row.Text("example_name")
			if err != nil {
				return nil, err
			}
			cs, en, err := textPair(row, "description", "trans")
			if err != nil {
				return nil, err
			}
			web, err := row.Text("web")
			if err != nil {
				return nil, err
			}
			loc, err := row.Text("location")
			if err != nil {
				return nil, err
			}
			location, err := domain.ParseLocation(loc)
			if err != nil {
				return nil, err
			}

			if err := resolve(ctx, "measure", c.Measures, measureID); err != nil {
				return nil, err
			}

			return &domain.Example{
				ID:            id,
				MeasureID:     measureID,
				Name:          name,
				DescriptionCS: cs,
				DescriptionEN: en,
				Web:           web,
				Location:      location,
			}, nil
		},
		write: func(ctx context.Context, e *domain.Example) (Outcome, error) {
			created, err := c.Measures.UpsertExample(ctx, e)
			if err != nil {
				return OutcomeSkipped, err
			}
			return outcomeOf(created), nil
		},
	}
}

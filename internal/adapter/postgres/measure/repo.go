// Package measure implements the Measure repository together with the
// many-to-many sets a measure owns.
package measure

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var columns = []string{
	"id", "group_id", "name_cs", "name_en", "code",
	"abstract_cs", "abstract_en", "description_cs", "description_en",
	"env_id", "env_desc", "potential_id", "size_id", "difficulty_id",
	"quantification_id", "time_horizon_id", "unit_id",
	"conditions_cs", "conditions_en", "other_conflict",
	"impact_detail_id", "impact_desc_cs", "impact_desc_en",
	"price_czk_min", "price_czk_max", "price_eu_min", "price_eu_max",
	"comment_cs", "comment_en", "title_image", "history_cs", "history_en",
}

var config = base.Config{
	Entity:  "measure",
	Table:   "measures",
	Columns: columns,
	Search:  []string{"name_cs", "name_en", "code"},
	Filters: []string{
		"group_id", "env_id", "potential_id", "size_id", "difficulty_id",
		"quantification_id", "time_horizon_id", "unit_id", "impact_detail_id",
	},
	Sorts: []string{"id", "group_id", "code", "name_cs", "name_en"},
	Order: []string{"group_id", "code", "id"},
}

// relationTable describes the join table behind a measure relation.
type relationTable struct {
	table  string // join table
	column string // column referencing the member
	target string // member table
}

var relationTables = map[domain.Relation]relationTable{
	domain.RelationAdvantages:      {"measure_advantages", "advantage_id", "advantages"},
	domain.RelationDisadvantages:   {"measure_disadvantages", "disadvantage_id", "disadvantages"},
	domain.RelationEnvSecondary:    {"measure_env_secondary", "option_id", "options"},
	domain.RelationInterconnection: {"measure_interconnections", "related_id", "measures"},
	domain.RelationConflict:        {"measure_conflicts", "option_id", "options"},
	domain.RelationOtherImpacts:    {"measure_other_impacts", "impact_detail_id", "impact_details"},
	domain.RelationSDG:             {"measure_sdgs", "option_id", "options"},
	domain.RelationReferences:      {"measure_references", "reference_id", `"references"`},
	domain.RelationContactPersons:  {"measure_contact_persons", "contact_person_id", "contact_persons"},
}

// relationsSQL reads every relation of one measure in a single round trip.
var relationsSQL = func() string {
	parts := make([]string, 0, len(domain.AllRelations))
	for _, rel := range domain.AllRelations {
		rt := relationTables[rel]
		parts = append(parts, fmt.Sprintf(
			"SELECT '%s' AS relation, %s AS target_id FROM %s WHERE measure_id = $1",
			rel, rt.column, rt.table))
	}
	return strings.Join(parts, "\nUNION ALL\n") + "\nORDER BY relation, target_id"
}()

// Repo provides measure persistence.
type Repo struct {
	*base.Repo[domain.Measure, *domain.Measure]
}

// New creates a new measure repository.
func New(db postgres.Querier) *Repo {
	return &Repo{Repo: base.NewRepo[domain.Measure, *domain.Measure](db, config, values)}
}

func values(m *domain.Measure) map[string]any {
	return map[string]any{
		"group_id":          m.GroupID,
		"name_cs":           m.NameCS,
		"name_en":           m.NameEN,
		"code":              m.Code,
		"abstract_cs":       m.AbstractCS,
		"abstract_en":       m.AbstractEN,
		"description_cs":    m.DescriptionCS,
		"description_en":    m.DescriptionEN,
		"env_id":            m.EnvID,
		"env_desc":          m.EnvDesc,
		"potential_id":      m.PotentialID,
		"size_id":           m.SizeID,
		"difficulty_id":     m.DifficultyID,
		"quantification_id": m.QuantificationID,
		"time_horizon_id":   m.TimeHorizonID,
		"unit_id":           m.UnitID,
		"conditions_cs":     m.ConditionsCS,
		"conditions_en":     m.ConditionsEN,
		"other_conflict":    m.OtherConflict,
		"impact_detail_id":  m.ImpactDetailID,
		"impact_desc_cs":    m.ImpactDescCS,
		"impact_desc_en":    m.ImpactDescEN,
		"price_czk_min":     m.PriceCZKMin,
		"price_czk_max":     m.PriceCZKMax,
		"price_eu_min":      m.PriceEURMin,
		"price_eu_max":      m.PriceEURMax,
		"comment_cs":        m.CommentCS,
		"comment_en":        m.CommentEN,
		"title_image":       m.TitleImage,
		"history_cs":        m.HistoryCS,
		"history_en":        m.HistoryEN,
	}
}

// ListByGroup returns the measures of one group ordered by code.
func (r *Repo) ListByGroup(ctx context.Context, groupID int64) ([]domain.Measure, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("code", "id"))
}

// CountByGroup returns the number of measures per group id.
func (r *Repo) CountByGroup(ctx context.Context) (map[int64]int, error) {
	sql, args, err := base.Builder().
		Select("group_id", "COUNT(*) AS n").
		From("measures").
		GroupBy("group_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build measure count: %w", err)
	}

	var rows []struct {
		GroupID int64 `db:"group_id"`
		N       int   `db:"n"`
	}
	if err := pgxscan.Select(ctx, r.Q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "measure", 0)
	}

	result := make(map[int64]int, len(rows))
	for _, row := range rows {
		result[row.GroupID] = row.N
	}
	return result, nil
}

// Relations returns the member ids of every relation of the measure.
// Relations without members are absent from the map.
func (r *Repo) Relations(ctx context.Context, measureID int64) (map[domain.Relation][]int64, error) {
	var rows []struct {
		Relation string `db:"relation"`
		TargetID int64  `db:"target_id"`
	}
	if err := pgxscan.Select(ctx, r.Q(ctx), &rows, relationsSQL, measureID); err != nil {
		return nil, postgres.MapError(err, "measure relation", measureID)
	}

	result := make(map[domain.Relation][]int64)
	for _, row := range rows {
		rel := domain.Relation(row.Relation)
		result[rel] = append(result[rel], row.TargetID)
	}
	return result, nil
}

// ReplaceRelation makes ids the exact member set of the relation.
// Duplicate ids are stored once. Must run inside a transaction together with
// any other relation writes of the same measure.
func (r *Repo) ReplaceRelation(ctx context.Context, measureID int64, rel domain.Relation, ids []int64) error {
	rt, ok := relationTables[rel]
	if !ok {
		return domain.NewValidationError("relation", fmt.Sprintf("unknown relation %q", rel))
	}

	q := r.Q(ctx)

	sql, args, err := base.Builder().
		Delete(rt.table).
		Where(squirrel.Eq{"measure_id": measureID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", rel, err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "measure relation", measureID)
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}

	insert := base.Builder().Insert(rt.table).Columns("measure_id", rt.column)
	for _, id := range ids {
		insert = insert.Values(measureID, id)
	}

	sql, args, err = insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", rel, err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, string(rel), measureID)
	}
	return nil
}

// MissingRelationTargets returns the ids that do not exist in the member table
// of the relation, in input order.
func (r *Repo) MissingRelationTargets(ctx context.Context, rel domain.Relation, ids []int64) ([]int64, error) {
	rt, ok := relationTables[rel]
	if !ok {
		return nil, domain.NewValidationError("relation", fmt.Sprintf("unknown relation %q", rel))
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := base.Builder().
		Select("id").
		From(rt.target).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s lookup: %w", rel, err)
	}

	var found []int64
	if err := pgxscan.Select(ctx, r.Q(ctx), &found, sql, args...); err != nil {
		return nil, postgres.MapError(err, string(rel), 0)
	}

	var missing []int64
	for _, id := range ids {
		if !slices.Contains(found, id) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func dedupe(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

package measure

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Check reports what Upsert or Update would reject m for without writing
// anything.
func (s *Service) Check(ctx context.Context, m *domain.Measure) error {
	if err := s.validate(ctx, m); err != nil {
		return err
	}
	return s.checkRelations(ctx, m.ID, m.Relations)
}

// validate runs entity validation and then resolves every single-valued
// reference of m. All problems are reported together.
func (s *Service) validate(ctx context.Context, m *domain.Measure) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var errs []domain.FieldError

	missing, err := s.groups.MissingIDs(ctx, []int64{m.GroupID})
	if err != nil {
		return fmt.Errorf("check group: %w", err)
	}
	if len(missing) > 0 {
		errs = append(errs, domain.FieldError{Field: "group_id", Message: "unknown group " + joinIDs(missing)})
	}

	if m.ImpactDetailID != nil {
		missing, err := s.impactDetails.MissingIDs(ctx, []int64{*m.ImpactDetailID})
		if err != nil {
			return fmt.Errorf("check impact detail: %w", err)
		}
		if len(missing) > 0 {
			errs = append(errs, domain.FieldError{Field: "impact_detail_id", Message: "unknown impact detail " + joinIDs(missing)})
		}
	}

	optErrs, err := s.checkOptionRefs(ctx, m.OptionRefs())
	if err != nil {
		return err
	}
	errs = append(errs, optErrs...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// checkOptionRefs verifies that every referenced option exists and belongs
// to the category its field expects.
func (s *Service) checkOptionRefs(ctx context.Context, refs []domain.OptionRef) ([]domain.FieldError, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}

	cats, err := s.options.Categories(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check options: %w", err)
	}

	var errs []domain.FieldError
	for _, ref := range refs {
		cat, ok := cats[ref.ID]
		switch {
		case !ok:
			errs = append(errs, domain.FieldError{Field: ref.Field, Message: fmt.Sprintf("unknown option %d", ref.ID)})
		case cat != ref.Category:
			errs = append(errs, domain.FieldError{
				Field:   ref.Field,
				Message: fmt.Sprintf("option %d is a %s option, want %s", ref.ID, cat, ref.Category),
			})
		}
	}
	return errs, nil
}

// checkRelations verifies every member id of rels. Members of option-valued
// relations must also belong to the relation's category.
func (s *Service) checkRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error {
	var errs []domain.FieldError

	for _, rel := range sortedRelations(rels) {
		ids := rels[rel]
		if !rel.IsValid() {
			errs = append(errs, domain.FieldError{Field: "relation", Message: fmt.Sprintf("unknown relation %q", rel)})
			continue
		}
		if rel == domain.RelationInterconnection && slices.Contains(ids, measureID) {
			errs = append(errs, domain.FieldError{Field: rel.String(), Message: "a measure cannot be linked to itself"})
		}
		if len(ids) == 0 {
			continue
		}

		missing, err := s.measures.MissingRelationTargets(ctx, rel, ids)
		if err != nil {
			return fmt.Errorf("check %s: %w", rel, err)
		}
		if len(missing) > 0 {
			errs = append(errs, domain.FieldError{Field: rel.String(), Message: "unknown ids " + joinIDs(missing)})
			continue
		}

		want, ok := rel.OptionCategory()
		if !ok {
			continue
		}
		cats, err := s.options.Categories(ctx, ids)
		if err != nil {
			return fmt.Errorf("check %s options: %w", rel, err)
		}
		var wrong []int64
		for _, id := range ids {
			if cats[id] != want && !slices.Contains(wrong, id) {
				wrong = append(wrong, id)
			}
		}
		if len(wrong) > 0 {
			errs = append(errs, domain.FieldError{
				Field:   rel.String(),
				Message: fmt.Sprintf("options %s are not %s options", joinIDs(wrong), want),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func sortedRelations(rels map[domain.Relation][]int64) []domain.Relation {
	out := make([]domain.Relation, 0, len(rels))
	for _, rel := range domain.AllRelations {
		if _, ok := rels[rel]; ok {
			out = append(out, rel)
		}
	}
	for rel := range rels {
		if !rel.IsValid() {
			out = append(out, rel)
		}
	}
	return out
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

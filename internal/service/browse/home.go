package browse

import (
	"context"
	"fmt"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Home returns every group with its measures, in the given locale.
func (s *Service) Home(ctx context.Context, locale domain.Locale) (*HomeView, error) {
	groups, err := s.groupsWithMeasures(ctx, locale)
	if err != nil {
		return nil, err
	}
	return &HomeView{Locale: locale, Groups: groups}, nil
}

// Group returns one group with its measures, plus every group for navigation.
func (s *Service) Group(ctx context.Context, id int64, locale domain.Locale) (*GroupView, error) {
	g, err := s.repos.Groups.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	measures, err := s.repos.Measures.ListByGroup(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list measures: %w", err)
	}

	all, err := s.repos.Groups.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	counts, err := s.repos.Measures.CountByGroup(ctx)
	if err != nil {
		return nil, fmt.Errorf("count measures: %w", err)
	}

	nav := make([]GroupSummary, len(all))
	for i := range all {
		nav[i] = GroupSummary{ID: all[i].ID, Name: all[i].Label(locale), Count: counts[all[i].ID]}
	}

	summary := GroupSummary{
		ID:       g.ID,
		Name:     g.Label(locale),
		Count:    len(measures),
		Measures: make([]MeasureSummary, len(measures)),
	}
	for i := range measures {
		summary.Measures[i] = summarize(&measures[i], locale)
	}

	return &GroupView{Locale: locale, Group: summary, Groups: nav}, nil
}

func (s *Service) groupsWithMeasures(ctx context.Context, locale domain.Locale) ([]GroupSummary, error) {
	groups, err := s.repos.Groups.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	measures, err := s.repos.Measures.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list measures: %w", err)
	}

	byGroup := make(map[int64][]MeasureSummary, len(groups))
	for i := range measures {
		m := &measures[i]
		byGroup[m.GroupID] = append(byGroup[m.GroupID], summarize(m, locale))
	}

	out := make([]GroupSummary, len(groups))
	for i := range groups {
		out[i] = GroupSummary{
			ID:       groups[i].ID,
			Name:     groups[i].Label(locale),
			Count:    len(byGroup[groups[i].ID]),
			Measures: byGroup[groups[i].ID],
		}
	}
	return out, nil
}

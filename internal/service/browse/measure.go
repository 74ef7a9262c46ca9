package browse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// Measure returns the full detail of one measure in the given locale.
// Option labels and relation members are fetched through per-call loaders,
// one query per referenced table.
func (s *Service) Measure(ctx context.Context, id int64, locale domain.Locale) (*MeasureView, error) {
	m, err := s.repos.Measures.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get measure: %w", err)
	}

	g, err := s.repos.Groups.GetByID(ctx, m.GroupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}

	rels, err := s.repos.Measures.Relations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get relations: %w", err)
	}

	examples, err := s.repos.Examples.ListByMeasure(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get examples: %w", err)
	}

	images, err := s.repos.Images.ListByMeasure(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get images: %w", err)
	}

	v := &MeasureView{
		Locale:        locale,
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Label(locale),
		Group:         GroupSummary{ID: g.ID, Name: g.Label(locale)},
		Abstract:      domain.LocalizeOpt(locale, m.AbstractCS, m.AbstractEN),
		Description:   domain.Localize(locale, m.DescriptionCS, m.DescriptionEN),
		TitleImage:    deref(m.TitleImage),
		EnvDesc:       deref(m.EnvDesc),
		Conditions:    domain.LocalizeOpt(locale, m.ConditionsCS, m.ConditionsEN),
		OtherConflict: deref(m.OtherConflict),
		ImpactDesc:    domain.LocalizeOpt(locale, m.ImpactDescCS, m.ImpactDescEN),
		PriceCZK:      PriceRange{Min: m.PriceCZKMin, Max: m.PriceCZKMax},
		PriceEUR:      PriceRange{Min: m.PriceEURMin, Max: m.PriceEURMax},
		Comment:       domain.LocalizeOpt(locale, m.CommentCS, m.CommentEN),
		History:       domain.LocalizeOpt(locale, m.HistoryCS, m.HistoryEN),
	}

	if err := s.resolveReferences(ctx, v, m, rels, locale); err != nil {
		return nil, err
	}

	for i := range examples {
		e := &examples[i]
		v.Examples = append(v.Examples, ExampleView{
			Name:        e.Name,
			Description: e.Describe(locale),
			Web:         e.Web,
			Location:    e.Location.Label(locale),
		})
	}
	for i := range images {
		img := &images[i]
		v.Images = append(v.Images, ImageView{
			Key:        img.Image,
			Caption:    img.Caption(locale),
			Author:     deref(img.Author),
			License:    deref(img.License),
			LicenseURL: deref(img.LicenseURL),
		})
	}

	s.log.DebugContext(ctx, "measure view built",
		slog.Int64("measure_id", id),
		slog.String("locale", locale.String()),
	)
	return v, nil
}

// resolveReferences schedules every lookup first and then waits, so each
// loader sends a single batch.
func (s *Service) resolveReferences(
	ctx context.Context,
	v *MeasureView,
	m *domain.Measure,
	rels map[domain.Relation][]int64,
	locale domain.Locale,
) error {
	l := s.newLoaders()

	env := loadOne(ctx, l.options, m.EnvID)
	potential := loadOne(ctx, l.options, m.PotentialID)
	size := loadOne(ctx, l.options, m.SizeID)
	difficulty := loadOne(ctx, l.options, m.DifficultyID)
	quantification := loadOne(ctx, l.options, m.QuantificationID)
	horizon := loadOne(ctx, l.options, m.TimeHorizonID)
	unit := loadOne(ctx, l.options, m.UnitID)
	envSecondary := loadAll(ctx, l.options, rels[domain.RelationEnvSecondary])
	conflict := loadAll(ctx, l.options, rels[domain.RelationConflict])
	sdg := loadAll(ctx, l.options, rels[domain.RelationSDG])

	impact := loadOne(ctx, l.impactDetails, m.ImpactDetailID)
	otherImpacts := loadAll(ctx, l.impactDetails, rels[domain.RelationOtherImpacts])
	advantages := loadAll(ctx, l.advantages, rels[domain.RelationAdvantages])
	disadvantages := loadAll(ctx, l.disadvantages, rels[domain.RelationDisadvantages])
	linked := loadAll(ctx, l.measures, rels[domain.RelationInterconnection])
	references := loadAll(ctx, l.references, rels[domain.RelationReferences])
	contacts := loadAll(ctx, l.contacts, rels[domain.RelationContactPersons])

	single := []struct {
		load func() (*domain.Option, error)
		dst  **Labeled
	}{
		{env, &v.Environment},
		{potential, &v.Potential},
		{size, &v.Size},
		{difficulty, &v.Difficulty},
		{quantification, &v.Quantification},
		{horizon, &v.TimeHorizon},
		{unit, &v.Unit},
	}
	for _, f := range single {
		o, err := f.load()
		if err != nil {
			return fmt.Errorf("load option: %w", err)
		}
		*f.dst = labeled(o, locale)
	}

	multi := []struct {
		load func() ([]*domain.Option, error)
		dst  *[]Labeled
	}{
		{envSecondary, &v.EnvSecondary},
		{conflict, &v.Conflict},
		{sdg, &v.SDG},
	}
	for _, f := range multi {
		opts, err := f.load()
		if err != nil {
			return fmt.Errorf("load options: %w", err)
		}
		for _, o := range opts {
			*f.dst = append(*f.dst, *labeled(o, locale))
		}
	}

	detail, err := impact()
	if err != nil {
		return fmt.Errorf("load impact detail: %w", err)
	}
	if detail != nil {
		v.ImpactDetail = detail.Label(locale)
	}

	others, err := otherImpacts()
	if err != nil {
		return fmt.Errorf("load impact details: %w", err)
	}
	for _, d := range others {
		v.OtherImpacts = append(v.OtherImpacts, d.Label(locale))
	}

	advs, err := advantages()
	if err != nil {
		return fmt.Errorf("load advantages: %w", err)
	}
	for _, a := range advs {
		v.Advantages = append(v.Advantages, a.Label(locale))
	}

	disadvs, err := disadvantages()
	if err != nil {
		return fmt.Errorf("load disadvantages: %w", err)
	}
	for _, d := range disadvs {
		v.Disadvantages = append(v.Disadvantages, d.Label(locale))
	}

	measures, err := linked()
	if err != nil {
		return fmt.Errorf("load linked measures: %w", err)
	}
	for _, lm := range measures {
		v.Interconnection = append(v.Interconnection, Link{ID: lm.ID, Code: lm.Code, Name: lm.Label(locale)})
	}

	refs, err := references()
	if err != nil {
		return fmt.Errorf("load references: %w", err)
	}
	for _, r := range refs {
		v.References = append(v.References, ReferenceView{Citation: r.Citation, URL: deref(r.URL)})
	}

	people, err := contacts()
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	for _, c := range people {
		v.Contacts = append(v.Contacts, ContactView{
			Name:         c.Name,
			Organization: deref(c.Organization),
			Email:        deref(c.Email),
			Phone:        deref(c.Phone),
		})
	}

	return nil
}

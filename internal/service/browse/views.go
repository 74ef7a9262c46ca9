package browse

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// GroupSummary is a group with the measures it contains. Navigation
// entries carry only Count.
type GroupSummary struct {
	ID       int64
	Name     string
	Count    int
	Measures []MeasureSummary
}

// MeasureSummary is a measure as shown in listings.
type MeasureSummary struct {
	ID         int64
	GroupID    int64
	Code       string
	Name       string
	Abstract   string
	TitleImage string
}

// HomeView is the landing page: every group with its measures.
type HomeView struct {
	Locale domain.Locale
	Groups []GroupSummary
}

// GroupView is one group plus the list of all groups for navigation.
type GroupView struct {
	Locale domain.Locale
	Group  GroupSummary
	Groups []GroupSummary
}

// Labeled is an option value with its optional description.
type Labeled struct {
	ID          int64
	Label       string
	Description string
}

// Link points at another measure.
type Link struct {
	ID   int64
	Code string
	Name string
}

// ReferenceView is a cited source.
type ReferenceView struct {
	Citation string
	URL      string
}

// ContactView is a contact person.
type ContactView struct {
	Name         string
	Organization string
	Email        string
	Phone        string
}

// ExampleView is a realization of the measure.
type ExampleView struct {
	Name        string
	Description string
	Web         string
	Location    string
}

// ImageView is an attached image; Key is the blob store key.
type ImageView struct {
	Key        string
	Caption    string
	Author     string
	License    string
	LicenseURL string
}

// PriceRange is an optional min/max price.
type PriceRange struct {
	Min *int64
	Max *int64
}

// IsZero reports whether neither bound is set.
func (p PriceRange) IsZero() bool { return p.Min == nil && p.Max == nil }

// Format renders the range with the given currency in the given locale.
func (p PriceRange) Format(locale domain.Locale, currency string) string {
	switch {
	case p.Min != nil && p.Max != nil && *p.Min == *p.Max:
		return formatAmount(*p.Min) + " " + currency
	case p.Min != nil && p.Max != nil:
		return formatAmount(*p.Min) + " - " + formatAmount(*p.Max) + " " + currency
	case p.Min != nil:
		return domain.Localize(locale, "od ", "from ") + formatAmount(*p.Min) + " " + currency
	case p.Max != nil:
		return domain.Localize(locale, "do ", "up to ") + formatAmount(*p.Max) + " " + currency
	}
	return ""
}

// formatAmount groups digits by thousands with a space.
func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// MeasureView is the full localized detail of a measure.
type MeasureView struct {
	Locale domain.Locale

	ID          int64
	Code        string
	Name        string
	Group       GroupSummary
	Abstract    string
	Description string
	TitleImage  string

	Environment    *Labeled
	EnvDesc        string
	Potential      *Labeled
	Size           *Labeled
	Difficulty     *Labeled
	Quantification *Labeled
	TimeHorizon    *Labeled
	Unit           *Labeled

	Conditions    string
	OtherConflict string
	ImpactDetail  string
	ImpactDesc    string
	PriceCZK      PriceRange
	PriceEUR      PriceRange
	Comment       string
	History       string

	Advantages      []string
	Disadvantages   []string
	EnvSecondary    []Labeled
	Interconnection []Link
	Conflict        []Labeled
	OtherImpacts    []string
	SDG             []Labeled
	References      []ReferenceView
	Contacts        []ContactView
	Examples        []ExampleView
	Images          []ImageView
}

func summarize(m *domain.Measure, locale domain.Locale) MeasureSummary {
	return MeasureSummary{
		ID:         m.ID,
		GroupID:    m.GroupID,
		Code:       m.Code,
		Name:       m.Label(locale),
		Abstract:   domain.LocalizeOpt(locale, m.AbstractCS, m.AbstractEN),
		TitleImage: deref(m.TitleImage),
	}
}

func labeled(o *domain.Option, locale domain.Locale) *Labeled {
	if o == nil {
		return nil
	}
	return &Labeled{ID: o.ID, Label: o.Label(locale), Description: o.Describe(locale)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

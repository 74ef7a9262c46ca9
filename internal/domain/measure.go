package domain

const maxCode = 20

// Measure is a climate-adaptation measure, the central record of the catalog.
type Measure struct {
	ID      int64  `db:"id"       json:"id"`
	GroupID int64  `db:"group_id" json:"group_id"`
	NameCS  string `db:"name_cs"  json:"name_cs"`
	NameEN  string `db:"name_en"  json:"name_en"`
	Code    string `db:"code"     json:"code"`

	AbstractCS    *string `db:"abstract_cs"    json:"abstract_cs,omitempty"`
	AbstractEN    *string `db:"abstract_en"    json:"abstract_en,omitempty"`
	DescriptionCS string  `db:"description_cs" json:"description_cs"`
	DescriptionEN string  `db:"description_en" json:"description_en"`

	EnvID            *int64  `db:"env_id"             json:"env_id,omitempty"`
	EnvDesc          *string `db:"env_desc"           json:"env_desc,omitempty"`
	PotentialID      *int64  `db:"potential_id"       json:"potential_id,omitempty"`
	SizeID           *int64  `db:"size_id"            json:"size_id,omitempty"`
	DifficultyID     *int64  `db:"difficulty_id"      json:"difficulty_id,omitempty"`
	QuantificationID *int64  `db:"quantification_id"  json:"quantification_id,omitempty"`
	TimeHorizonID    *int64  `db:"time_horizon_id"    json:"time_horizon_id,omitempty"`
	UnitID           *int64  `db:"unit_id"            json:"unit_id,omitempty"`
	ConditionsCS     *string `db:"conditions_cs"      json:"conditions_cs,omitempty"`
	ConditionsEN     *string `db:"conditions_en"      json:"conditions_en,omitempty"`
	OtherConflict    *string `db:"other_conflict"     json:"other_conflict,omitempty"`
	ImpactDetailID   *int64  `db:"impact_detail_id"   json:"impact_detail_id,omitempty"`
	ImpactDescCS     *string `db:"impact_desc_cs"     json:"impact_desc_cs,omitempty"`
	ImpactDescEN     *string `db:"impact_desc_en"     json:"impact_desc_en,omitempty"`

	PriceCZKMin *int64 `db:"price_czk_min" json:"price_czk_min,omitempty"`
	PriceCZKMax *int64 `db:"price_czk_max" json:"price_czk_max,omitempty"`
	PriceEURMin *int64 `db:"price_eu_min"  json:"price_eu_min,omitempty"`
	PriceEURMax *int64 `db:"price_eu_max"  json:"price_eu_max,omitempty"`

	CommentCS  *string `db:"comment_cs"  json:"comment_cs,omitempty"`
	CommentEN  *string `db:"comment_en"  json:"comment_en,omitempty"`
	TitleImage *string `db:"title_image" json:"title_image,omitempty"`
	HistoryCS  *string `db:"history_cs"  json:"history_cs,omitempty"`
	HistoryEN  *string `db:"history_en"  json:"history_en,omitempty"`

	// Relations holds member ids per many-to-many set. Only populated by aggregate reads.
	Relations map[Relation][]int64 `db:"-" json:"relations,omitempty"`
}

func (m *Measure) Key() int64      { return m.ID }
func (m *Measure) SetKey(id int64) { m.ID = id }

func (m *Measure) Label(locale Locale) string { return Localize(locale, m.NameCS, m.NameEN) }

// Validate requires distinct cs/en names as well as descriptions, the same
// rule every other bilingual pair follows.
func (m *Measure) Validate() error {
	var fe fieldErrors
	fe.ref("group_id", m.GroupID)
	fe.text("name_cs", m.NameCS, maxLabel)
	fe.text("name_en", m.NameEN, maxLabel)
	fe.distinct("name", m.NameCS, m.NameEN)
	fe.text("code", m.Code, maxCode)
	fe.text("description_cs", m.DescriptionCS, 0)
	fe.text("description_en", m.DescriptionEN, 0)
	fe.distinct("description", m.DescriptionCS, m.DescriptionEN)
	for _, ref := range m.OptionRefs() {
		fe.optRef(ref.Field, &ref.ID)
	}
	fe.optRef("impact_detail_id", m.ImpactDetailID)
	fe.priceRange("price_czk", m.PriceCZKMin, m.PriceCZKMax)
	fe.priceRange("price_eu", m.PriceEURMin, m.PriceEURMax)
	fe.optText("title_image", m.TitleImage, maxLabel)
	return fe.err()
}

// OptionRef is a single-valued option reference of a measure together with
// the category the referenced option must belong to.
type OptionRef struct {
	Field    string
	Category OptionCategory
	ID       int64
}

// OptionRefs returns the option references that are set on the measure.
func (m *Measure) OptionRefs() []OptionRef {
	all := []struct {
		field    string
		category OptionCategory
		id       *int64
	}{
		{"env_id", CategoryEnvironment, m.EnvID},
		{"potential_id", CategoryPotential, m.PotentialID},
		{"size_id", CategorySize, m.SizeID},
		{"difficulty_id", CategoryDifficulty, m.DifficultyID},
		{"quantification_id", CategoryQuantification, m.QuantificationID},
		{"time_horizon_id", CategoryTimeHorizon, m.TimeHorizonID},
		{"unit_id", CategoryUnit, m.UnitID},
	}

	refs := make([]OptionRef, 0, len(all))
	for _, r := range all {
		if r.id != nil {
			refs = append(refs, OptionRef{Field: r.field, Category: r.category, ID: *r.id})
		}
	}
	return refs
}

// MeasureImage is an image attached to a measure. Image holds the blob store key.
type MeasureImage struct {
	ID         int64   `db:"id"          json:"id"`
	MeasureID  int64   `db:"measure_id"  json:"measure_id"`
	Image      string  `db:"image"       json:"image"`
	CaptionCS  *string `db:"caption_cs"  json:"caption_cs,omitempty"`
	CaptionEN  *string `db:"caption_en"  json:"caption_en,omitempty"`
	Author     *string `db:"author"      json:"author,omitempty"`
	License    *string `db:"license"     json:"license,omitempty"`
	LicenseURL *string `db:"license_url" json:"license_url,omitempty"`
}

func (i *MeasureImage) Key() int64      { return i.ID }
func (i *MeasureImage) SetKey(id int64) { i.ID = id }

func (i *MeasureImage) Caption(locale Locale) string {
	return LocalizeOpt(locale, i.CaptionCS, i.CaptionEN)
}

func (i *MeasureImage) Validate() error {
	var fe fieldErrors
	fe.ref("measure_id", i.MeasureID)
	fe.text("image", i.Image, maxLabel)
	fe.optText("caption_cs", i.CaptionCS, maxLabel)
	fe.optText("caption_en", i.CaptionEN, maxLabel)
	fe.optText("author", i.Author, maxLabel)
	fe.optText("license", i.License, maxLabel)
	fe.optWebURL("license_url", i.LicenseURL)
	return fe.err()
}

// Example is a real-world realization of a measure.
type Example struct {
	ID            int64    `db:"id"             json:"id"`
	MeasureID     int64    `db:"measure_id"     json:"measure_id"`
	Name          string   `db:"example_name"   json:"example_name"`
	DescriptionCS string   `db:"description_cs" json:"description_cs"`
	DescriptionEN string   `db:"description_en" json:"description_en"`
	Web           string   `db:"web"            json:"web"`
	Location      Location `db:"location"       json:"location"`
}

func (e *Example) Key() int64      { return e.ID }
func (e *Example) SetKey(id int64) { e.ID = id }

func (e *Example) Describe(locale Locale) string {
	return Localize(locale, e.DescriptionCS, e.DescriptionEN)
}

func (e *Example) Validate() error {
	var fe fieldErrors
	fe.ref("measure_id", e.MeasureID)
	fe.text("example_name", e.Name, maxLabel)
	fe.text("description_cs", e.DescriptionCS, 0)
	fe.text("description_en", e.DescriptionEN, 0)
	fe.distinct("description", e.DescriptionCS, e.DescriptionEN)
	fe.webURL("web", e.Web)
	if !e.Location.IsValid() {
		fe.add("location", "must be one of 1 (domestic), 2 (abroad), 3 (within program)")
	}
	return fe.err()
}

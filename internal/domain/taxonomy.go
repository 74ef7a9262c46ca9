package domain

// Entity is a persisted catalog record addressed by an integer key.
// Keys are either generated by the store or supplied by an external source.
type Entity interface {
	Validatable
	Key() int64
	SetKey(id int64)
}

const (
	maxGroupName  = 60
	maxLabel      = 255
	maxLongText   = 2000
	maxCitation   = 1000
	maxPersonName = 200
)

// Group is a top-level thematic grouping of measures.
type Group struct {
	ID     int64  `db:"id"      json:"id"`
	NameCS string `db:"name_cs" json:"name_cs"`
	NameEN string `db:"name_en" json:"name_en"`
}

func (g *Group) Key() int64      { return g.ID }
func (g *Group) SetKey(id int64) { g.ID = id }

// Label returns the group name in the given locale.
func (g *Group) Label(locale Locale) string { return Localize(locale, g.NameCS, g.NameEN) }

func (g *Group) Validate() error {
	var fe fieldErrors
	fe.text("name_cs", g.NameCS, maxGroupName)
	fe.text("name_en", g.NameEN, maxGroupName)
	fe.distinct("name", g.NameCS, g.NameEN)
	return fe.err()
}

// Advantage is a reusable positive attribute attached to measures.
type Advantage struct {
	ID            int64  `db:"id"             json:"id"`
	DescriptionCS string `db:"description_cs" json:"description_cs"`
	DescriptionEN string `db:"description_en" json:"description_en"`
}

func (a *Advantage) Key() int64      { return a.ID }
func (a *Advantage) SetKey(id int64) { a.ID = id }

func (a *Advantage) Label(locale Locale) string {
	return Localize(locale, a.DescriptionCS, a.DescriptionEN)
}

func (a *Advantage) Validate() error {
	return validateDescriptionPair(a.DescriptionCS, a.DescriptionEN)
}

// Disadvantage is a reusable negative attribute attached to measures.
type Disadvantage struct {
	ID            int64  `db:"id"             json:"id"`
	DescriptionCS string `db:"description_cs" json:"description_cs"`
	DescriptionEN string `db:"description_en" json:"description_en"`
}

func (d *Disadvantage) Key() int64      { return d.ID }
func (d *Disadvantage) SetKey(id int64) { d.ID = id }

func (d *Disadvantage) Label(locale Locale) string {
	return Localize(locale, d.DescriptionCS, d.DescriptionEN)
}

func (d *Disadvantage) Validate() error {
	return validateDescriptionPair(d.DescriptionCS, d.DescriptionEN)
}

func validateDescriptionPair(cs, en string) error {
	var fe fieldErrors
	fe.text("description_cs", cs, maxLongText)
	fe.text("description_en", en, maxLongText)
	fe.distinct("description", cs, en)
	return fe.err()
}

// OptionName is a category of options (environment, size, SDG, ...).
type OptionName struct {
	ID     int64  `db:"id"      json:"id"`
	NameCS string `db:"name_cs" json:"name_cs"`
	NameEN string `db:"name_en" json:"name_en"`
}

func (o *OptionName) Key() int64      { return o.ID }
func (o *OptionName) SetKey(id int64) { o.ID = id }

func (o *OptionName) Label(locale Locale) string { return Localize(locale, o.NameCS, o.NameEN) }

// Category returns the well-known category this option name stands for.
func (o *OptionName) Category() OptionCategory { return OptionCategory(o.ID) }

func (o *OptionName) Validate() error {
	var fe fieldErrors
	fe.text("name_cs", o.NameCS, maxLabel)
	fe.text("name_en", o.NameEN, maxLabel)
	fe.distinct("name", o.NameCS, o.NameEN)
	return fe.err()
}

// Option is a selectable value within an OptionName category.
type Option struct {
	ID            int64   `db:"id"             json:"id"`
	OptionNameID  int64   `db:"option_name_id" json:"option_name_id"`
	ValueCS       string  `db:"value_cs"       json:"value_cs"`
	ValueEN       string  `db:"value_en"       json:"value_en"`
	SortOrder     int     `db:"sort_order"     json:"sort_order"`
	DescriptionCS *string `db:"description_cs" json:"description_cs,omitempty"`
	DescriptionEN *string `db:"description_en" json:"description_en,omitempty"`
}

func (o *Option) Key() int64      { return o.ID }
func (o *Option) SetKey(id int64) { o.ID = id }

func (o *Option) Label(locale Locale) string { return Localize(locale, o.ValueCS, o.ValueEN) }

// Describe returns the optional description in the given locale.
func (o *Option) Describe(locale Locale) string {
	return LocalizeOpt(locale, o.DescriptionCS, o.DescriptionEN)
}

// Category returns the category the option belongs to.
func (o *Option) Category() OptionCategory { return OptionCategory(o.OptionNameID) }

func (o *Option) Validate() error {
	var fe fieldErrors
	fe.ref("option_name_id", o.OptionNameID)
	fe.text("value_cs", o.ValueCS, maxLabel)
	fe.text("value_en", o.ValueEN, maxLabel)
	fe.distinct("value", o.ValueCS, o.ValueEN)
	if o.SortOrder < 0 {
		fe.add("sort_order", "must be >= 0")
	}
	fe.optText("description_cs", o.DescriptionCS, maxLongText)
	fe.optText("description_en", o.DescriptionEN, maxLongText)
	return fe.err()
}

// ImpactCategory groups impact details.
type ImpactCategory struct {
	ID     int64  `db:"id"      json:"id"`
	NameCS string `db:"name_cs" json:"name_cs"`
	NameEN string `db:"name_en" json:"name_en"`
}

func (c *ImpactCategory) Key() int64      { return c.ID }
func (c *ImpactCategory) SetKey(id int64) { c.ID = id }

func (c *ImpactCategory) Label(locale Locale) string { return Localize(locale, c.NameCS, c.NameEN) }

func (c *ImpactCategory) Validate() error {
	var fe fieldErrors
	fe.text("name_cs", c.NameCS, maxLabel)
	fe.text("name_en", c.NameEN, maxLabel)
	fe.distinct("name", c.NameCS, c.NameEN)
	return fe.err()
}

// ImpactDetail is a specific impact within an ImpactCategory.
type ImpactDetail struct {
	ID               int64  `db:"id"                 json:"id"`
	ImpactCategoryID int64  `db:"impact_category_id" json:"impact_category_id"`
	DetailCS         string `db:"detail_cs"          json:"detail_cs"`
	DetailEN         string `db:"detail_en"          json:"detail_en"`
}

func (d *ImpactDetail) Key() int64      { return d.ID }
func (d *ImpactDetail) SetKey(id int64) { d.ID = id }

func (d *ImpactDetail) Label(locale Locale) string { return Localize(locale, d.DetailCS, d.DetailEN) }

func (d *ImpactDetail) Validate() error {
	var fe fieldErrors
	fe.ref("impact_category_id", d.ImpactCategoryID)
	fe.text("detail_cs", d.DetailCS, maxLongText)
	fe.text("detail_en", d.DetailEN, maxLongText)
	fe.distinct("detail", d.DetailCS, d.DetailEN)
	return fe.err()
}

// Reference is a literature or web source cited by measures.
type Reference struct {
	ID       int64   `db:"id"       json:"id"`
	Citation string  `db:"citation" json:"citation"`
	URL      *string `db:"url"      json:"url,omitempty"`
}

func (r *Reference) Key() int64      { return r.ID }
func (r *Reference) SetKey(id int64) { r.ID = id }

func (r *Reference) Validate() error {
	var fe fieldErrors
	fe.text("citation", r.Citation, maxCitation)
	fe.optWebURL("url", r.URL)
	return fe.err()
}

// ContactPerson is someone who can be contacted about a measure.
type ContactPerson struct {
	ID           int64   `db:"id"           json:"id"`
	Name         string  `db:"name"         json:"name"`
	Organization *string `db:"organization" json:"organization,omitempty"`
	Email        *string `db:"email"        json:"email,omitempty"`
	Phone        *string `db:"phone"        json:"phone,omitempty"`
}

func (c *ContactPerson) Key() int64      { return c.ID }
func (c *ContactPerson) SetKey(id int64) { c.ID = id }

func (c *ContactPerson) Validate() error {
	var fe fieldErrors
	fe.text("name", c.Name, maxPersonName)
	fe.optText("organization", c.Organization, maxLabel)
	fe.optEmail("email", c.Email)
	fe.optText("phone", c.Phone, 50)
	return fe.err()
}

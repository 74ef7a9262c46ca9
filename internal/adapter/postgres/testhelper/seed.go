package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Unique returns prefix followed by a short random suffix.
func Unique(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// ReserveID takes the next identity value of table so a test can use it as an
// externally supplied id without colliding with rows created by parallel tests.
func ReserveID(t *testing.T, pool *pgxpool.Pool, table string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`SELECT nextval(pg_get_serial_sequence($1, 'id'))`, table,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: ReserveID %s: %v", table, err)
	}
	return id
}

// SeedGroup creates a group with unique names.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	suffix := uniqueSuffix()
	g := domain.Group{NameCS: "Skupina " + suffix, NameEN: "Group " + suffix}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO groups (name_cs, name_en) VALUES ($1, $2) RETURNING id`,
		g.NameCS, g.NameEN,
	).Scan(&g.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}
	return g
}

// SeedOption creates an option in the given category.
func SeedOption(t *testing.T, pool *pgxpool.Pool, category domain.OptionCategory) domain.Option {
	t.Helper()

	suffix := uniqueSuffix()
	o := domain.Option{
		OptionNameID: int64(category),
		ValueCS:      "Hodnota " + suffix,
		ValueEN:      "Value " + suffix,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO options (option_name_id, value_cs, value_en, sort_order)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		o.OptionNameID, o.ValueCS, o.ValueEN, o.SortOrder,
	).Scan(&o.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedOption: %v", err)
	}
	return o
}

// SeedImpactDetail creates an impact category with one detail.
func SeedImpactDetail(t *testing.T, pool *pgxpool.Pool) domain.ImpactDetail {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	var categoryID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO impact_categories (name_cs, name_en) VALUES ($1, $2) RETURNING id`,
		"Dopad "+suffix, "Impact "+suffix,
	).Scan(&categoryID)
	if err != nil {
		t.Fatalf("testhelper: SeedImpactDetail category: %v", err)
	}

	d := domain.ImpactDetail{
		ImpactCategoryID: categoryID,
		DetailCS:         "Detail dopadu " + suffix,
		DetailEN:         "Impact detail " + suffix,
	}
	err = pool.QueryRow(ctx,
		`INSERT INTO impact_details (impact_category_id, detail_cs, detail_en) VALUES ($1, $2, $3) RETURNING id`,
		d.ImpactCategoryID, d.DetailCS, d.DetailEN,
	).Scan(&d.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedImpactDetail detail: %v", err)
	}
	return d
}

// SeedAdvantage creates an advantage.
func SeedAdvantage(t *testing.T, pool *pgxpool.Pool) domain.Advantage {
	t.Helper()

	suffix := uniqueSuffix()
	a := domain.Advantage{DescriptionCS: "Výhoda " + suffix, DescriptionEN: "Advantage " + suffix}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO advantages (description_cs, description_en) VALUES ($1, $2) RETURNING id`,
		a.DescriptionCS, a.DescriptionEN,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAdvantage: %v", err)
	}
	return a
}

// SeedReference creates a reference without a URL.
func SeedReference(t *testing.T, pool *pgxpool.Pool) domain.Reference {
	t.Helper()

	r := domain.Reference{Citation: "Novák, J. (2020). " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO "references" (citation) VALUES ($1) RETURNING id`, r.Citation,
	).Scan(&r.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedReference: %v", err)
	}
	return r
}

// SeedMeasure creates a measure in the given group with only required fields set.
func SeedMeasure(t *testing.T, pool *pgxpool.Pool, groupID int64) domain.Measure {
	t.Helper()

	suffix := uniqueSuffix()
	m := domain.Measure{
		GroupID:       groupID,
		NameCS:        "Opatření " + suffix,
		NameEN:        "Measure " + suffix,
		Code:          "T" + suffix,
		DescriptionCS: "Popis " + suffix,
		DescriptionEN: "Description " + suffix,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO measures (group_id, name_cs, name_en, code, description_cs, description_en)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		m.GroupID, m.NameCS, m.NameEN, m.Code, m.DescriptionCS, m.DescriptionEN,
	).Scan(&m.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedMeasure: %v", err)
	}
	return m
}

// SeedExample creates a domestic example of the given measure.
func SeedExample(t *testing.T, pool *pgxpool.Pool, measureID int64) domain.Example {
	t.Helper()

	suffix := uniqueSuffix()
	e := domain.Example{
		MeasureID:     measureID,
		Name:          "Příklad " + suffix,
		DescriptionCS: "Popis příkladu " + suffix,
		DescriptionEN: "Example description " + suffix,
		Web:           "https://example.org/" + suffix,
		Location:      domain.LocationDomestic,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO examples (measure_id, example_name, description_cs, description_en, web, location)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.MeasureID, e.Name, e.DescriptionCS, e.DescriptionEN, e.Web, int16(e.Location),
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedExample: %v", err)
	}
	return e
}

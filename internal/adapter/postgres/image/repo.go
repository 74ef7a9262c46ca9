// Package image implements the MeasureImage repository using PostgreSQL.
// Only blob store keys live here; the bytes are kept by internal/blob.
package image

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres/base"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var config = base.Config{
	Entity: "image",
	Table:  "measure_images",
	Columns: []string{
		"id", "measure_id", "image", "caption_cs", "caption_en",
		"author", "license", "license_url",
	},
	Search:  []string{"image", "caption_cs", "caption_en", "author"},
	Filters: []string{"measure_id"},
	Sorts:   []string{"id", "measure_id"},
	Order:   []string{"measure_id", "id"},
}

// Repo provides measure image persistence.
type Repo struct {
	*base.Repo[domain.MeasureImage, *domain.MeasureImage]
}

// New creates a new image repository.
func New(db postgres.Querier) *Repo {
	return &Repo{Repo: base.NewRepo[domain.MeasureImage, *domain.MeasureImage](db, config, values)}
}

func values(i *domain.MeasureImage) map[string]any {
	return map[string]any{
		"measure_id":  i.MeasureID,
		"image":       i.Image,
		"caption_cs":  i.CaptionCS,
		"caption_en":  i.CaptionEN,
		"author":      i.Author,
		"license":     i.License,
		"license_url": i.LicenseURL,
	}
}

// ListByMeasure returns the images of one measure in upload order.
func (r *Repo) ListByMeasure(ctx context.Context, measureID int64) ([]domain.MeasureImage, error) {
	return r.Select(ctx, r.SelectBuilder().
		Where(squirrel.Eq{"measure_id": measureID}).
		OrderBy("id"))
}

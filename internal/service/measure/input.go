package measure

import (
	"io"
	"path"
	"slices"
	"strings"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

// AddImageInput holds an uploaded image and its metadata.
type AddImageInput struct {
	MeasureID   int64
	Filename    string
	ContentType string
	Body        io.Reader

	CaptionCS  string
	CaptionEN  string
	Author     string
	License    string
	LicenseURL string
}

// Validate checks the upload itself; image metadata is validated by the entity.
func (i AddImageInput) Validate() error {
	var errs []domain.FieldError

	if i.MeasureID <= 0 {
		errs = append(errs, domain.FieldError{Field: "measure_id", Message: "required"})
	}
	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if !slices.Contains(imageExtensions, i.ext()) {
		errs = append(errs, domain.FieldError{
			Field:   "file",
			Message: "must be one of " + strings.Join(imageExtensions, ", "),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AddImageInput) ext() string {
	return strings.ToLower(path.Ext(i.Filename))
}

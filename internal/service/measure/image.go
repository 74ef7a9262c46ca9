package measure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// AddImage stores the uploaded file in the blob store and records it
// against the measure. The blob is removed again if the row cannot be written.
func (s *Service) AddImage(ctx context.Context, input AddImageInput) (*domain.MeasureImage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("measures/%d/%s%s", input.MeasureID, uuid.NewString(), input.ext())
	img := &domain.MeasureImage{
		MeasureID:  input.MeasureID,
		Image:      key,
		CaptionCS:  domain.OptString(input.CaptionCS),
		CaptionEN:  domain.OptString(input.CaptionEN),
		Author:     domain.OptString(input.Author),
		License:    domain.OptString(input.License),
		LicenseURL: domain.OptString(input.LicenseURL),
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	missing, err := s.measures.MissingIDs(ctx, []int64{input.MeasureID})
	if err != nil {
		return nil, fmt.Errorf("check measure: %w", err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("measure %d: %w", input.MeasureID, domain.ErrNotFound)
	}

	contentType := input.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = blob.ContentTypeOf(key)
	}

	info, err := s.blobs.Put(ctx, key, input.Body, blob.PutOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	created, err := s.images.Create(ctx, img)
	if err != nil {
		s.deleteBlob(ctx, key)
		return nil, fmt.Errorf("create image: %w", err)
	}

	s.log.InfoContext(ctx, "image added",
		slog.Int64("measure_id", input.MeasureID),
		slog.Int64("image_id", created.ID),
		slog.String("key", key),
		slog.Int64("size", info.Size),
	)
	return created, nil
}

// UpdateImage overwrites the metadata of an image. The stored blob and its
// measure cannot change.
func (s *Service) UpdateImage(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error) {
	current, err := s.images.GetByID(ctx, img.ID)
	if err != nil {
		return nil, fmt.Errorf("get image: %w", err)
	}

	img.MeasureID = current.MeasureID
	img.Image = current.Image
	if err := img.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.images.Update(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("update image %d: %w", img.ID, err)
	}
	return updated, nil
}

// DeleteImage removes an image row and its blob. A measure that used the
// image as its title image loses it.
func (s *Service) DeleteImage(ctx context.Context, imageID int64) error {
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return fmt.Errorf("get image: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.measures.GetByID(txCtx, img.MeasureID)
		if err != nil {
			return fmt.Errorf("get measure: %w", err)
		}
		if m.TitleImage != nil && *m.TitleImage == img.Image {
			m.TitleImage = nil
			if _, err := s.measures.Update(txCtx, m); err != nil {
				return fmt.Errorf("clear title image: %w", err)
			}
		}
		if err := s.images.Delete(txCtx, imageID); err != nil {
			return fmt.Errorf("delete image %d: %w", imageID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.deleteBlob(ctx, img.Image)

	s.log.InfoContext(ctx, "image deleted",
		slog.Int64("measure_id", img.MeasureID),
		slog.Int64("image_id", imageID),
	)
	return nil
}

// SetTitleImage makes one of the measure's images its title image.
// A nil imageID clears the title image.
func (s *Service) SetTitleImage(ctx context.Context, measureID int64, imageID *int64) (*domain.Measure, error) {
	m, err := s.measures.GetByID(ctx, measureID)
	if err != nil {
		return nil, fmt.Errorf("get measure: %w", err)
	}

	m.TitleImage = nil
	if imageID != nil {
		img, err := s.images.GetByID(ctx, *imageID)
		if err != nil {
			return nil, fmt.Errorf("get image: %w", err)
		}
		if img.MeasureID != measureID {
			return nil, domain.NewValidationError("image_id", "image belongs to another measure")
		}
		m.TitleImage = &img.Image
	}

	updated, err := s.measures.Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("set title image: %w", err)
	}
	return updated, nil
}

package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/service/measure"
)

const adminPrefix = "/admin/api"

var measureFilters = []string{
	"group_id", "env_id", "potential_id", "size_id", "difficulty_id",
	"quantification_id", "time_horizon_id", "unit_id", "impact_detail_id",
}

type measureService interface {
	List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Measure], error)
	Get(ctx context.Context, id int64) (*measure.Detail, error)
	Create(ctx context.Context, m *domain.Measure) (*domain.Measure, error)
	Upsert(ctx context.Context, m *domain.Measure) (bool, error)
	Delete(ctx context.Context, id int64) error
	ReplaceRelations(ctx context.Context, measureID int64, rels map[domain.Relation][]int64) error

	AddImage(ctx context.Context, input measure.AddImageInput) (*domain.MeasureImage, error)
	UpdateImage(ctx context.Context, img *domain.MeasureImage) (*domain.MeasureImage, error)
	DeleteImage(ctx context.Context, imageID int64) error
	SetTitleImage(ctx context.Context, measureID int64, imageID *int64) (*domain.Measure, error)

	GetExample(ctx context.Context, id int64) (*domain.Example, error)
	ListExamples(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Example], error)
	CreateExample(ctx context.Context, e *domain.Example) (*domain.Example, error)
	UpsertExample(ctx context.Context, e *domain.Example) (bool, error)
	DeleteExample(ctx context.Context, id int64) error
}

// MeasureHandler serves the measure aggregate: measures, their relation
// sets, images and examples.
type MeasureHandler struct {
	svc            measureService
	examples       *CollectionHandler[domain.Example, *domain.Example]
	maxUploadBytes int64
	log            *slog.Logger
}

// NewMeasureHandler creates a MeasureHandler. Image uploads larger than
// maxUploadBytes are rejected.
func NewMeasureHandler(svc measureService, maxUploadBytes int64, logger *slog.Logger) *MeasureHandler {
	return &MeasureHandler{
		svc:            svc,
		examples:       NewCollectionHandler[domain.Example]("examples", exampleCollection{svc}, logger, "measure_id", "location"),
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "measures"),
	}
}

// Register adds the measure, image and example routes to mux.
func (h *MeasureHandler) Register(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	base := adminPrefix + "/measures"
	mux.Handle("GET "+base, mw(http.HandlerFunc(h.List)))
	mux.Handle("POST "+base, mw(http.HandlerFunc(h.Create)))
	mux.Handle("GET "+base+"/{id}", mw(http.HandlerFunc(h.Get)))
	mux.Handle("PUT "+base+"/{id}", mw(http.HandlerFunc(h.Put)))
	mux.Handle("DELETE "+base+"/{id}", mw(http.HandlerFunc(h.Delete)))
	mux.Handle("PUT "+base+"/{id}/relations/{relation}", mw(http.HandlerFunc(h.ReplaceRelation)))
	mux.Handle("POST "+base+"/{id}/images", mw(http.HandlerFunc(h.UploadImage)))
	mux.Handle("PUT "+base+"/{id}/title-image", mw(http.HandlerFunc(h.SetTitleImage)))

	mux.Handle("PUT "+adminPrefix+"/images/{id}", mw(http.HandlerFunc(h.UpdateImage)))
	mux.Handle("DELETE "+adminPrefix+"/images/{id}", mw(http.HandlerFunc(h.DeleteImage)))

	h.examples.Register(mux, mw)
}

// List handles GET /admin/api/measures.
func (h *MeasureHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r, measureFilters...)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.List(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if page.Items == nil {
		page.Items = []domain.Measure{}
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /admin/api/measures/{id}.
func (h *MeasureHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeDetail(w, r, id, http.StatusOK)
}

// Create handles POST /admin/api/measures. Relations in the body are stored
// together with the measure.
func (h *MeasureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m domain.Measure
	if err := decodeJSON(w, r, &m); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	m.ID = 0

	created, err := h.svc.Create(r.Context(), &m)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeDetail(w, r, created.ID, http.StatusCreated)
}

// Put handles PUT /admin/api/measures/{id}. Relation sets absent from the
// body are left untouched.
func (h *MeasureHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var m domain.Measure
	if err := decodeJSON(w, r, &m); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	m.ID = id

	created, err := h.svc.Upsert(r.Context(), &m)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeDetail(w, r, id, status)
}

// Delete handles DELETE /admin/api/measures/{id}.
func (h *MeasureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type relationRequest struct {
	IDs []int64 `json:"ids"`
}

// ReplaceRelation handles PUT /admin/api/measures/{id}/relations/{relation}.
// The set is replaced by the given ids; an empty list clears it.
func (h *MeasureHandler) ReplaceRelation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rel := domain.Relation(r.PathValue("relation"))
	if !rel.IsValid() {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown relation %q", rel))
		return
	}

	var req relationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.IDs == nil {
		req.IDs = []int64{}
	}

	if err := h.svc.ReplaceRelations(r.Context(), id, map[domain.Relation][]int64{rel: req.IDs}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.writeDetail(w, r, id, http.StatusOK)
}

// UploadImage handles POST /admin/api/measures/{id}/images, a multipart form
// with the image in "file" and optional caption_cs, caption_en, author,
// license and license_url fields.
func (h *MeasureHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		handleError(w, r, h.log, uploadError(err))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()
	if err := limitFile(header, h.maxUploadBytes); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	img, err := h.svc.AddImage(r.Context(), measure.AddImageInput{
		MeasureID:   id,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
		CaptionCS:   r.FormValue("caption_cs"),
		CaptionEN:   r.FormValue("caption_en"),
		Author:      r.FormValue("author"),
		License:     r.FormValue("license"),
		LicenseURL:  r.FormValue("license_url"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// UpdateImage handles PUT /admin/api/images/{id}; only metadata changes.
func (h *MeasureHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var img domain.MeasureImage
	if err := decodeJSON(w, r, &img); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	img.ID = id

	updated, err := h.svc.UpdateImage(r.Context(), &img)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteImage handles DELETE /admin/api/images/{id}.
func (h *MeasureHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteImage(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type titleImageRequest struct {
	ImageID *int64 `json:"image_id"`
}

// SetTitleImage handles PUT /admin/api/measures/{id}/title-image.
// A null image_id clears the title image.
func (h *MeasureHandler) SetTitleImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req titleImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.SetTitleImage(r.Context(), id, req.ImageID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MeasureHandler) writeDetail(w http.ResponseWriter, r *http.Request, id int64, status int) {
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if d.Examples == nil {
		d.Examples = []domain.Example{}
	}
	if d.Images == nil {
		d.Images = []domain.MeasureImage{}
	}
	writeJSON(w, status, d)
}

// exampleCollection exposes the example operations of the measure service
// as a crud collection.
type exampleCollection struct {
	svc measureService
}

func (c exampleCollection) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Example], error) {
	return c.svc.ListExamples(ctx, f)
}

func (c exampleCollection) Get(ctx context.Context, id int64) (*domain.Example, error) {
	return c.svc.GetExample(ctx, id)
}

func (c exampleCollection) Create(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	return c.svc.CreateExample(ctx, e)
}

func (c exampleCollection) Upsert(ctx context.Context, e *domain.Example) (bool, error) {
	return c.svc.UpsertExample(ctx, e)
}

func (c exampleCollection) Delete(ctx context.Context, id int64) error {
	return c.svc.DeleteExample(ctx, id)
}

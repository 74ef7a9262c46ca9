package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

// crud is the service surface behind one admin collection.
type crud[T any, P interface {
	*T
	domain.Entity
}] interface {
	List(ctx context.Context, f domain.ListFilter) (domain.Page[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, v P) (*T, error)
	Upsert(ctx context.Context, v P) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// CollectionHandler serves list, create, read, create-or-update and delete
// for one entity under a common path prefix.
type CollectionHandler[T any, P interface {
	*T
	domain.Entity
}] struct {
	name    string
	svc     crud[T, P]
	filters []string
	log     *slog.Logger
}

// NewCollectionHandler creates a handler for the collection served at
// /admin/api/<name>. filters names the query parameters accepted as
// foreign key filters on listings.
func NewCollectionHandler[T any, P interface {
	*T
	domain.Entity
}](name string, svc crud[T, P], logger *slog.Logger, filters ...string) *CollectionHandler[T, P] {
	return &CollectionHandler[T, P]{
		name:    name,
		svc:     svc,
		filters: filters,
		log:     logger.With("handler", name),
	}
}

// Register adds the collection routes to mux, each wrapped with mw.
func (h *CollectionHandler[T, P]) Register(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	base := adminPrefix + "/" + h.name
	mux.Handle("GET "+base, mw(http.HandlerFunc(h.List)))
	mux.Handle("POST "+base, mw(http.HandlerFunc(h.Create)))
	mux.Handle("GET "+base+"/{id}", mw(http.HandlerFunc(h.Get)))
	mux.Handle("PUT "+base+"/{id}", mw(http.HandlerFunc(h.Put)))
	mux.Handle("DELETE "+base+"/{id}", mw(http.HandlerFunc(h.Delete)))
}

// List handles GET /admin/api/<name>.
func (h *CollectionHandler[T, P]) List(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r, h.filters...)
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
		page.Items = []T{}
	}
	writeJSON(w, http.StatusOK, page)
}

// Get handles GET /admin/api/<name>/{id}.
func (h *CollectionHandler[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Create handles POST /admin/api/<name>. The key is always generated.
func (h *CollectionHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	v := P(new(T))
	if err := decodeJSON(w, r, v); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	v.SetKey(0)

	created, err := h.svc.Create(r.Context(), v)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Put handles PUT /admin/api/<name>/{id}: the row at id is created or
// overwritten. The path id wins over any id in the body.
func (h *CollectionHandler[T, P]) Put(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v := P(new(T))
	if err := decodeJSON(w, r, v); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	v.SetKey(id)

	created, err := h.svc.Upsert(r.Context(), v)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stored, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, stored)
}

// Delete handles DELETE /admin/api/<name>/{id}.
func (h *CollectionHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
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

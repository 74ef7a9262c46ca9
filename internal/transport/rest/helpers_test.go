package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passThrough(next http.Handler) http.Handler { return next }

// serve registers r on a fresh mux and runs one request through it.
func serve(t *testing.T, r Registrar, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	r.Register(mux, passThrough)

	var src io.Reader
	if body != "" {
		src = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, src)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// groupStore is an in-memory crud collection of groups.
type groupStore struct {
	mu     sync.Mutex
	rows   map[int64]domain.Group
	nextID int64
}

func newGroupStore(groups ...domain.Group) *groupStore {
	s := &groupStore{rows: make(map[int64]domain.Group), nextID: 100}
	for _, g := range groups {
		s.rows[g.ID] = g
	}
	return s
}

func (s *groupStore) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Group], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []domain.Group
	for _, g := range s.rows {
		if f.Search == "" || strings.Contains(strings.ToLower(g.NameEN), strings.ToLower(f.Search)) {
			items = append(items, g)
		}
	}
	return domain.Page[domain.Group]{Items: items, Total: len(items)}, nil
}

func (s *groupStore) Get(ctx context.Context, id int64) (*domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}
	return &g, nil
}

func (s *groupStore) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	g.ID = s.nextID
	s.rows[g.ID] = *g
	return g, nil
}

func (s *groupStore) Upsert(ctx context.Context, g *domain.Group) (bool, error) {
	if err := g.Validate(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.rows[g.ID]
	s.rows[g.ID] = *g
	return !exists, nil
}

func (s *groupStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("group %d: %w", id, domain.ErrNotFound)
	}
	if id == 1 {
		return fmt.Errorf("group %d is referenced by measures: %w", id, domain.ErrConflict)
	}
	delete(s.rows, id)
	return nil
}

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
)

const maxJSONBody = 1 << 20

// errBadRequest marks malformed input that never reached a service.
var errBadRequest = errors.New("bad request")

// decodeJSON reads a single JSON object into v. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must hold a single object", errBadRequest)
	}
	return nil
}

// pathID parses a positive integer path value.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, name, raw)
	}
	return id, nil
}

// listFilter builds a domain.ListFilter from the query string. Only the
// named foreign key filters are read; other parameters are ignored.
func listFilter(r *http.Request, filters ...string) (domain.ListFilter, error) {
	q := r.URL.Query()
	f := domain.ListFilter{
		Search: q.Get("q"),
		SortBy: q.Get("sort"),
	}

	var err error
	if f.Desc, err = queryBool(q.Get("desc")); err != nil {
		return f, fmt.Errorf("%w: desc: %v", errBadRequest, err)
	}
	if f.Limit, err = queryInt(q.Get("limit")); err != nil {
		return f, fmt.Errorf("%w: limit: %v", errBadRequest, err)
	}
	if f.Offset, err = queryInt(q.Get("offset")); err != nil {
		return f, fmt.Errorf("%w: offset: %v", errBadRequest, err)
	}

	for _, name := range filters {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, fmt.Errorf("%w: %s: not an integer", errBadRequest, name)
		}
		if f.Filters == nil {
			f.Filters = make(map[string]int64, len(filters))
		}
		f.Filters[name] = id
	}
	return f.Normalized(), nil
}

func queryInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func queryBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// Package web serves the public, read-only catalog site.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/config"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/service/browse"
)

//go:embed templates/*.html
var templateFS embed.FS

const localeCookieMaxAge = 365 * 24 * time.Hour

type browseService interface {
	Home(ctx context.Context, locale domain.Locale) (*browse.HomeView, error)
	Group(ctx context.Context, id int64, locale domain.Locale) (*browse.GroupView, error)
	Measure(ctx context.Context, id int64, locale domain.Locale) (*browse.MeasureView, error)
}

type blobReader interface {
	Get(ctx context.Context, key string) (blob.Info, io.ReadCloser, error)
}

// Handler renders the public pages.
type Handler struct {
	browse browseService
	blobs  blobReader
	pages  map[string]*template.Template
	neg    negotiator
	cfg    config.WebConfig
	log    *slog.Logger
}

// NewHandler parses the page templates and creates a Handler.
func NewHandler(svc browseService, blobs blobReader, cfg config.WebConfig, logger *slog.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	fallback, ok := parseSupported(cfg.DefaultLocale)
	if !ok {
		fallback = domain.LocaleEN
	}
	return &Handler{
		browse: svc,
		blobs:  blobs,
		pages:  pages,
		neg:    negotiator{fallback: fallback},
		cfg:    cfg,
		log:    logger.With("handler", "web"),
	}, nil
}

// Register adds the public routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /group/{id}/", h.Group)
	mux.HandleFunc("GET /measure/{id}/", h.Measure)
	mux.HandleFunc("POST /i18n/setlang/", h.SetLanguage)
	mux.HandleFunc("GET /media/{key...}", h.Media)
}

var funcs = template.FuncMap{
	"t":     translate,
	"media": mediaURL,
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"home", "group", "measure", "error"} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// page is the data every template receives.
type page struct {
	Locale domain.Locale
	Switch domain.Locale
	Path   string
	Title  string
	Data   any
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	locale := h.neg.locale(r)
	view, err := h.browse.Home(r.Context(), locale)
	if err != nil {
		h.fail(w, r, locale, err)
		return
	}
	h.render(w, r, http.StatusOK, "home", page{Locale: locale, Data: view})
}

// Group handles GET /group/{id}/.
func (h *Handler) Group(w http.ResponseWriter, r *http.Request) {
	locale := h.neg.locale(r)
	id, ok := pathID(r)
	if !ok {
		h.fail(w, r, locale, domain.ErrNotFound)
		return
	}

	view, err := h.browse.Group(r.Context(), id, locale)
	if err != nil {
		h.fail(w, r, locale, err)
		return
	}
	h.render(w, r, http.StatusOK, "group", page{Locale: locale, Title: view.Group.Name, Data: view})
}

// Measure handles GET /measure/{id}/.
func (h *Handler) Measure(w http.ResponseWriter, r *http.Request) {
	locale := h.neg.locale(r)
	id, ok := pathID(r)
	if !ok {
		h.fail(w, r, locale, domain.ErrNotFound)
		return
	}

	view, err := h.browse.Measure(r.Context(), id, locale)
	if err != nil {
		h.fail(w, r, locale, err)
		return
	}
	h.render(w, r, http.StatusOK, "measure", page{Locale: locale, Title: view.Name, Data: view})
}

// SetLanguage handles POST /i18n/setlang/. It stores the language from the
// form in the locale cookie and redirects to next, which must be a local path.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	next := safeNext(r.Host, r.PostForm.Get("next"), r.Referer())

	if locale, ok := parseSupported(r.PostForm.Get("language")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     LocaleCookie,
			Value:    locale.String(),
			Path:     "/",
			MaxAge:   int(localeCookieMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   h.cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	http.Redirect(w, r, next, http.StatusFound)
}

// Media handles GET /media/{key...} by streaming the blob.
func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	key, err := blob.CleanKey(r.PathValue("key"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	info, body, err := h.blobs.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.ErrorContext(r.Context(), "read blob", slog.String("key", key), slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = blob.ContentTypeOf(key)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	if !info.LastModified.IsZero() {
		w.Header().Set("Last-Modified", info.LastModified.UTC().Format(http.TimeFormat))
	}

	if _, err := io.Copy(w, body); err != nil {
		h.log.WarnContext(r.Context(), "stream blob", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	p.Switch = other(p.Locale)
	p.Path = r.URL.RequestURI()

	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", p); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("page", name), slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", p.Locale.String())
	w.Header().Add("Vary", "Cookie, Accept-Language")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, locale domain.Locale, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.render(w, r, http.StatusNotFound, "error", page{Locale: locale, Title: "404", Data: "error.notfound"})
		return
	}
	h.log.ErrorContext(r.Context(), "build page", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	h.render(w, r, http.StatusInternalServerError, "error", page{Locale: locale, Title: "500", Data: "error.internal"})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// safeNext returns the first candidate that points back into this site, as
// a path. Absolute URLs are accepted only for host. It falls back to "/".
func safeNext(host string, candidates ...string) string {
	for _, c := range candidates {
		if c == "" || strings.HasPrefix(c, "//") || strings.Contains(c, "\\") {
			continue
		}
		u, err := url.Parse(c)
		if err != nil || !strings.HasPrefix(u.Path, "/") {
			continue
		}
		if u.Scheme != "" || u.Host != "" {
			if u.Host != host || (u.Scheme != "http" && u.Scheme != "https") {
				continue
			}
		}
		return u.RequestURI()
	}
	return "/"
}

// mediaURL returns the public URL of a blob key.
func mediaURL(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/media/" + strings.Join(parts, "/")
}

package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/importer"
	"github.com/heartmarshall/adaptation-catalog/pkg/ctxutil"
)

type importRunner interface {
	Names() []string
	Columns(name string) ([]string, error)
	RunReader(ctx context.Context, name, filename string, src io.Reader, opts importer.Options) (*importer.Report, error)
}

// ImportHandler runs spreadsheet importers on uploaded files.
type ImportHandler struct {
	runner       importRunner
	maxFileBytes int64
	log          *slog.Logger
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(runner importRunner, maxFileBytes int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{runner: runner, maxFileBytes: maxFileBytes, log: logger.With("handler", "imports")}
}

// Register adds the import routes to mux.
func (h *ImportHandler) Register(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	mux.Handle("GET "+adminPrefix+"/imports", mw(http.HandlerFunc(h.List)))
	mux.Handle("POST "+adminPrefix+"/imports/{importer}", mw(http.HandlerFunc(h.Run)))
}

type importerInfo struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// List handles GET /admin/api/imports.
func (h *ImportHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.runner.Names()
	out := make([]importerInfo, 0, len(names))
	for _, name := range names {
		cols, err := h.runner.Columns(name)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		out = append(out, importerInfo{Name: name, Columns: cols})
	}
	writeJSON(w, http.StatusOK, out)
}

// Run handles POST /admin/api/imports/{importer}. The spreadsheet is sent as
// the multipart field "file"; ?dry_run=true checks every row without writing.
func (h *ImportHandler) Run(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("importer")

	dryRun, err := queryBool(r.URL.Query().Get("dry_run"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("dry_run", "must be a boolean"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes+multipartOverhead)
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

	admin, _ := ctxutil.AdminFromCtx(r.Context())
	h.log.InfoContext(r.Context(), "import requested",
		slog.String("importer", name),
		slog.String("file", header.Filename),
		slog.String("admin", admin),
		slog.Bool("dry_run", dryRun),
	)

	// A started import runs to completion even if the client goes away.
	report, err := h.runner.RunReader(context.WithoutCancel(r.Context()), name, header.Filename, file, importer.Options{DryRun: dryRun})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/service/taxonomy"
)

// Registrar adds its routes to a mux, wrapping each handler with mw.
type Registrar interface {
	Register(mux *http.ServeMux, mw func(http.Handler) http.Handler)
}

// TaxonomyHandlers returns one collection handler per taxonomy entity.
func TaxonomyHandlers(svc *taxonomy.Service, logger *slog.Logger) []Registrar {
	return []Registrar{
		NewCollectionHandler[domain.Group]("groups", svc.Groups, logger),
		NewCollectionHandler[domain.Advantage]("advantages", svc.Advantages, logger),
		NewCollectionHandler[domain.Disadvantage]("disadvantages", svc.Disadvantages, logger),
		NewCollectionHandler[domain.OptionName]("option-names", svc.OptionNames, logger),
		NewCollectionHandler[domain.Option]("options", svc.Options, logger, "option_name_id"),
		NewCollectionHandler[domain.ImpactCategory]("impact-categories", svc.ImpactCategories, logger),
		NewCollectionHandler[domain.ImpactDetail]("impact-details", svc.ImpactDetails, logger, "impact_category_id"),
		NewCollectionHandler[domain.Reference]("references", svc.References, logger),
		NewCollectionHandler[domain.ContactPerson]("contacts", svc.Contacts, logger),
	}
}

// Admin is the admin JSON API.
type Admin struct {
	Auth     *AuthHandler
	Handlers []Registrar
}

// Register mounts the admin API on mux. Every route except login goes
// through protect; login goes through throttle.
func (a Admin) Register(mux *http.ServeMux, protect, throttle func(http.Handler) http.Handler) {
	mux.Handle("POST "+adminPrefix+"/login", throttle(http.HandlerFunc(a.Auth.Login)))
	for _, h := range a.Handlers {
		h.Register(mux, protect)
	}
}

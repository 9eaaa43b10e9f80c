package http

import (
	"net/http"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/logging"
	internalrender "github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// PublicAPI serves the public page fragments. Each page is exposed under its
// code for the primary language and under the /en prefix for the secondary
// language; the root page is served at the bare home path of each language.
type PublicAPI struct {
	service pages.Service
	engine  *internalrender.PublicEngine
	urls    *urls.Builder
	logger  interfaces.Logger
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// WithPublicLogger injects the request logger.
func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(service pages.Service, engine *internalrender.PublicEngine, urlBuilder *urls.Builder, opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		service: service,
		engine:  engine,
		urls:    urlBuilder,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return errNilMux
	}

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		api.handlePage(w, r, domain.LanguageUA, pages.RootCode)
	})
	mux.HandleFunc("GET /en", func(w http.ResponseWriter, r *http.Request) {
		api.handlePage(w, r, domain.LanguageEN, pages.RootCode)
	})
	mux.HandleFunc("GET /en/{code}", func(w http.ResponseWriter, r *http.Request) {
		api.handlePage(w, r, domain.LanguageEN, r.PathValue("code"))
	})
	mux.HandleFunc("GET /{code}", func(w http.ResponseWriter, r *http.Request) {
		api.handlePage(w, r, domain.LanguageUA, r.PathValue("code"))
	})

	return nil
}

// handlePage normalizes the requested code, performs the canonical redirect
// when the code resolves to an alias target, and renders the fragments.
func (api *PublicAPI) handlePage(w http.ResponseWriter, r *http.Request, lang domain.Language, code string) {
	if code == "" {
		code = pages.RootCode
	}

	if normalized, err := slug.Normalize(code); err == nil && normalized != code {
		api.redirect(w, r, lang, normalized)
		return
	}

	canonical, err := api.service.ResolveCanonicalCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	if canonical != code {
		api.redirect(w, r, lang, canonical)
		return
	}

	out, err := api.engine.Render(r.Context(), lang, canonical)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (api *PublicAPI) redirect(w http.ResponseWriter, r *http.Request, lang domain.Language, code string) {
	target, err := api.urls.PagePath(lang, code)
	if err != nil {
		writeError(w, err)
		return
	}
	api.logger.Debug("http.public.redirect", "from", r.URL.Path, "to", target)
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

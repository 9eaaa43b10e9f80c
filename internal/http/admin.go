package http

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	pagescmd "github.com/goliatone/go-pagetree/internal/commands/pages"
	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/logging"
	internalrender "github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// AdminAPI serves the administrative listing, forms, and mutating endpoints.
// Mutations follow post-redirect-get: each successful save, update, or delete
// redirects back to the parent listing carrying the matching result flag.
type AdminAPI struct {
	basePath string
	service  pages.Service
	engine   *internalrender.AdminEngine
	urls     *urls.Builder
	saver    *pagescmd.SavePageHandler
	updater  *pagescmd.UpdatePageHandler
	deleter  *pagescmd.DeletePageHandler
	logger   interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// WithAdminBasePath overrides the admin base path (defaults to "/admin/pages").
func WithAdminBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = "/" + strings.Trim(trimmed, "/")
		}
	}
}

// WithAdminLogger injects the request logger.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(
	service pages.Service,
	engine *internalrender.AdminEngine,
	urlBuilder *urls.Builder,
	saver *pagescmd.SavePageHandler,
	updater *pagescmd.UpdatePageHandler,
	deleter *pagescmd.DeletePageHandler,
	opts ...AdminOption,
) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/pages",
		service:  service,
		engine:   engine,
		urls:     urlBuilder,
		saver:    saver,
		updater:  updater,
		deleter:  deleter,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register attaches the admin endpoints to the provided mux for both
// language prefixes.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return errNilMux
	}

	api.register(mux, "", domain.LanguageUA)
	api.register(mux, domain.LanguageEN.PathPrefix(), domain.LanguageEN)
	return nil
}

func (api *AdminAPI) register(mux *http.ServeMux, prefix string, lang domain.Language) {
	base := prefix + api.basePath

	mux.HandleFunc("GET "+base, func(w http.ResponseWriter, r *http.Request) {
		api.handleIndex(w, r, lang)
	})
	mux.HandleFunc("GET "+base+"/create", func(w http.ResponseWriter, r *http.Request) {
		api.handleCreateForm(w, r, lang)
	})
	mux.HandleFunc("POST "+base, func(w http.ResponseWriter, r *http.Request) {
		api.handleSave(w, r, lang)
	})
	mux.HandleFunc("GET "+base+"/{code}", func(w http.ResponseWriter, r *http.Request) {
		api.handleShow(w, r)
	})
	mux.HandleFunc("POST "+base+"/{code}", func(w http.ResponseWriter, r *http.Request) {
		api.handleMutate(w, r, lang)
	})
	mux.HandleFunc("GET "+base+"/{code}/edit", func(w http.ResponseWriter, r *http.Request) {
		api.handleEditForm(w, r, lang)
	})
}

func (api *AdminAPI) handleIndex(w http.ResponseWriter, r *http.Request, lang domain.Language) {
	parentCode := strings.TrimSpace(r.URL.Query().Get("parentCode"))
	messageType := domain.MessageTypeFromFlags(
		queryFlag(r, string(domain.MessageSaved)),
		queryFlag(r, string(domain.MessageUpdated)),
		queryFlag(r, string(domain.MessageDeleted)),
	)

	panel, err := api.engine.RenderIndex(r.Context(), lang, parentCode, messageType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

func (api *AdminAPI) handleCreateForm(w http.ResponseWriter, r *http.Request, lang domain.Language) {
	parentCode := strings.TrimSpace(r.URL.Query().Get("parentCode"))
	panel, err := api.engine.RenderForm(lang, nil, parentCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

func (api *AdminAPI) handleEditForm(w http.ResponseWriter, r *http.Request, lang domain.Language) {
	page, err := api.service.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		writeError(w, err)
		return
	}
	panel, err := api.engine.RenderForm(lang, page, "")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, panel)
}

func (api *AdminAPI) handleShow(w http.ResponseWriter, r *http.Request) {
	page, err := api.service.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (api *AdminAPI) handleSave(w http.ResponseWriter, r *http.Request, lang domain.Language) {
	msg, err := parseSaveCommand(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := api.saver.Execute(r.Context(), msg); err != nil {
		writeError(w, err)
		return
	}

	api.redirectFlagged(w, r, lang, msg.ParentCode, domain.MessageSaved)
}

// handleMutate dispatches the _method override carried by HTML forms: delete
// removes the record, anything else performs the whole-record update.
func (api *AdminAPI) handleMutate(w http.ResponseWriter, r *http.Request, lang domain.Language) {
	code := r.PathValue("code")

	page, err := api.service.GetByCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	parentCode := ""
	if page.ParentCode != nil {
		parentCode = *page.ParentCode
	}

	if formOverride(r) == "delete" {
		if err := api.deleter.Execute(r.Context(), pagescmd.DeletePageCommand{Code: code}); err != nil {
			writeError(w, err)
			return
		}
		api.redirectFlagged(w, r, lang, parentCode, domain.MessageDeleted)
		return
	}

	msg, err := parseSaveCommand(r)
	if err != nil {
		writeError(w, err)
		return
	}
	msg.Code = code

	if err := api.updater.Execute(r.Context(), pagescmd.UpdatePageCommand{SavePageCommand: msg}); err != nil {
		writeError(w, err)
		return
	}

	api.redirectFlagged(w, r, lang, msg.ParentCode, domain.MessageUpdated)
}

func (api *AdminAPI) redirectFlagged(w http.ResponseWriter, r *http.Request, lang domain.Language, parentCode string, messageType domain.MessageType) {
	target, err := api.urls.AdminIndexFlagged(lang, parentCode, messageType)
	if err != nil {
		writeError(w, err)
		return
	}
	api.logger.Debug("http.admin.redirect", "to", target, "message", string(messageType))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func parseSaveCommand(r *http.Request) (pagescmd.SavePageCommand, error) {
	if err := r.ParseForm(); err != nil {
		return pagescmd.SavePageCommand{}, err
	}

	orderNum, err := formOptionalInt(r, "order_num")
	if err != nil {
		return pagescmd.SavePageCommand{}, validation.Errors{
			"order_num": validation.NewError("pagetree.pages.form.order_num_invalid", "order_num must be an integer"),
		}
	}

	return pagescmd.SavePageCommand{
		Code:          strings.TrimSpace(r.FormValue("code")),
		CaptionUA:     strings.TrimSpace(r.FormValue("caption_ua")),
		CaptionEN:     strings.TrimSpace(r.FormValue("caption_en")),
		IntroUA:       r.FormValue("intro_ua"),
		IntroEN:       r.FormValue("intro_en"),
		ContentUA:     r.FormValue("content_ua"),
		ContentEN:     r.FormValue("content_en"),
		ImageURL:      strings.TrimSpace(r.FormValue("image_url")),
		ParentCode:    strings.TrimSpace(r.FormValue("parent_code")),
		AliasOf:       strings.TrimSpace(r.FormValue("alias_of")),
		OrderNum:      orderNum,
		OrderType:     formOptionalOrderType(r, "order_type"),
		ContainerType: formOptionalContainerType(r, "container_type"),
	}, nil
}

package urls

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/pages"
)

const (
	publicGroup    = "public"
	enGroup        = "en"
	routePage      = "page"
	routeAdmin     = "admin_index"
	routeAdminNew  = "admin_create"
	routeAdminShow = "admin_show"
	routeAdminEdit = "admin_edit"
)

const parentCodeParam = "parentCode"

// Builder produces the public and admin link targets used by the render
// engines. Routes are registered once per language group so the secondary
// language picks up its path prefix without the engines knowing about it.
type Builder struct {
	manager *urlkit.RouteManager
	admin   string
}

// NewBuilder constructs a Builder with the default admin base path.
func NewBuilder() *Builder {
	return NewBuilderWithAdminPath("/admin/pages")
}

// NewBuilderWithAdminPath constructs a Builder whose admin routes live under
// the supplied base path.
func NewBuilderWithAdminPath(adminPath string) *Builder {
	adminPath = strings.TrimSuffix(strings.TrimSpace(adminPath), "/")
	if adminPath == "" {
		adminPath = "/admin/pages"
	}

	paths := map[string]string{
		routePage:      "/:code",
		routeAdmin:     adminPath,
		routeAdminNew:  adminPath + "/create",
		routeAdminShow: adminPath + "/:code",
		routeAdminEdit: adminPath + "/:code/edit",
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:  publicGroup,
				Paths: paths,
				Groups: []urlkit.GroupConfig{
					{
						Name:  enGroup,
						Path:  domain.LanguageEN.PathPrefix(),
						Paths: paths,
					},
				},
			},
		},
	})

	return &Builder{manager: manager, admin: adminPath}
}

// PagePath returns the public path for a page code under the given language.
// The root page is always simplified to the language home path so the
// internal root code never appears as a URL segment.
func (b *Builder) PagePath(lang domain.Language, code string) (string, error) {
	if strings.TrimSpace(code) == "" || code == pages.RootCode {
		return lang.HomePath(), nil
	}
	return b.build(lang, routePage, map[string]any{"code": code}, nil)
}

// AdminIndex returns the admin listing path, scoped to parentCode when given.
func (b *Builder) AdminIndex(lang domain.Language, parentCode string) (string, error) {
	var query map[string]string
	if strings.TrimSpace(parentCode) != "" {
		query = map[string]string{parentCodeParam: parentCode}
	}
	return b.build(lang, routeAdmin, nil, query)
}

// AdminIndexFlagged returns the admin listing path carrying a mutation result
// flag (saved/updated/deleted) used by post-redirect-get controllers.
func (b *Builder) AdminIndexFlagged(lang domain.Language, parentCode string, message domain.MessageType) (string, error) {
	query := map[string]string{}
	if strings.TrimSpace(parentCode) != "" {
		query[parentCodeParam] = parentCode
	}
	if message != domain.MessageNone {
		query[string(message)] = "true"
	}
	return b.build(lang, routeAdmin, nil, query)
}

// AdminCreate returns the create-form path for the given parent code.
func (b *Builder) AdminCreate(lang domain.Language, parentCode string) (string, error) {
	var query map[string]string
	if strings.TrimSpace(parentCode) != "" {
		query = map[string]string{parentCodeParam: parentCode}
	}
	return b.build(lang, routeAdminNew, nil, query)
}

// AdminShow returns the admin detail path for a page code. Delete forms post
// to the same target with a method override.
func (b *Builder) AdminShow(lang domain.Language, code string) (string, error) {
	return b.build(lang, routeAdminShow, map[string]any{"code": code}, nil)
}

// AdminEdit returns the edit-form path for a page code.
func (b *Builder) AdminEdit(lang domain.Language, code string) (string, error) {
	return b.build(lang, routeAdminEdit, map[string]any{"code": code}, nil)
}

func (b *Builder) build(lang domain.Language, route string, params map[string]any, query map[string]string) (url string, err error) {
	if b == nil || b.manager == nil {
		return "", fmt.Errorf("urls: route manager not configured")
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("urls: route %q for language %q: %v", route, lang, rec)
		}
	}()

	group := b.manager.Group(publicGroup)
	if lang == domain.LanguageEN {
		group = group.Group(enGroup)
	}

	builder := group.Builder(route)
	for key, value := range params {
		builder = builder.WithParam(key, value)
	}
	for key, value := range query {
		builder = builder.WithQuery(key, value)
	}
	return builder.Build()
}

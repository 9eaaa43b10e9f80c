package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/i18n"
	"github.com/goliatone/go-pagetree/internal/logging"
	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
	"github.com/goliatone/go-pagetree/render"
)

// PublicEngine composes the localized public fragments for a single page.
// It is stateless per call: every render reads the current store snapshot
// through the page service and holds nothing between requests.
type PublicEngine struct {
	service pages.Service
	urls    *urls.Builder
	logger  interfaces.Logger
}

// PublicOption mutates the public engine configuration.
type PublicOption func(*PublicEngine)

// WithPublicLogger injects the engine logger.
func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(e *PublicEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewPublicEngine constructs the public render engine.
func NewPublicEngine(service pages.Service, urlBuilder *urls.Builder, opts ...PublicOption) *PublicEngine {
	engine := &PublicEngine{
		service: service,
		urls:    urlBuilder,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Render builds the public fragment set for the page. Alias resolution is the
// caller's concern; a code that still points at an alias renders the alias
// record itself. Missing pages surface as *pages.PageNotFoundError.
func (e *PublicEngine) Render(ctx context.Context, lang domain.Language, code string) (*render.RenderedPage, error) {
	page, err := e.service.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	subheader, err := e.buildSubheader(ctx, lang, page)
	if err != nil {
		return nil, err
	}

	content, err := e.buildContent(ctx, lang, page)
	if err != nil {
		return nil, err
	}

	out := &render.RenderedPage{
		Meta:      buildMeta(lang, page).String(),
		Header:    buildHeader(lang).String(),
		Subheader: subheader.String(),
		Title:     page.Caption(lang),
		ImageURL:  page.ImageURL,
		Content:   content.String(),
		Footer:    buildFooter(lang).String(),
	}

	e.logger.Debug("render.public", "code", page.Code, "lang", string(lang))
	return out, nil
}

func buildMeta(lang domain.Language, page *pages.Page) Fragment {
	return Join(
		Tag("title", nil, Text(page.Caption(lang))),
		Void("meta", []Attr{
			A("name", "description"),
			A("content", page.Intro(lang)),
		}),
	)
}

func buildHeader(lang domain.Language) Fragment {
	return Tag("div", []Attr{A("class", "header")},
		Text(i18n.Text(i18n.KeyHeader, lang)),
	)
}

// buildSubheader renders the back link to the parent page. Pages without a
// parent render an empty subheader. A parent code that points at the root is
// simplified to the language home path so the root code never leaks into a
// URL.
func (e *PublicEngine) buildSubheader(ctx context.Context, lang domain.Language, page *pages.Page) (Fragment, error) {
	if page.ParentCode == nil {
		return Fragment(""), nil
	}

	parent, err := e.service.GetByCode(ctx, *page.ParentCode)
	if err != nil {
		if pages.IsNotFound(err) {
			// Orphaned by a parent delete; render as if top-level.
			e.logger.Warn("render.orphan", "code", page.Code, "parent", *page.ParentCode)
			return Fragment(""), nil
		}
		return Fragment(""), err
	}

	href, err := e.urls.PagePath(lang, parent.Code)
	if err != nil {
		return Fragment(""), err
	}

	return Tag("div", []Attr{A("class", "subheader")},
		Anchor(href, "back-link", parent.Caption(lang)),
	), nil
}

// buildContent concatenates the page body with the children container. The
// container is gated solely by container_type: a nil container type renders
// no wrapper regardless of child count, and a set container type renders an
// empty wrapper when no children exist.
func (e *PublicEngine) buildContent(ctx context.Context, lang domain.Language, page *pages.Page) (Fragment, error) {
	body := Raw(page.Content(lang))
	if page.ContainerType == nil {
		return body, nil
	}

	children, err := e.service.Children(ctx, page.Code)
	if err != nil {
		return Fragment(""), fmt.Errorf("render children of %q: %w", page.Code, err)
	}
	internalpages.SortSiblings(children, page.EffectiveOrderType())

	cards := make([]Fragment, 0, len(children))
	for _, child := range children {
		card, err := e.buildChildCard(lang, child, *page.ContainerType)
		if err != nil {
			return Fragment(""), err
		}
		cards = append(cards, card)
	}

	container := Tag("div", []Attr{A("class", "children")}, cards...)
	return Join(body, container), nil
}

func (e *PublicEngine) buildChildCard(lang domain.Language, child *pages.Page, containerType domain.ContainerType) (Fragment, error) {
	href, err := e.urls.PagePath(lang, child.Code)
	if err != nil {
		return Fragment(""), err
	}

	cardClass := "card"
	openText := i18n.Text(i18n.KeyOpen, lang)
	if containerType != domain.ContainerGrid {
		cardClass = "card card-list"
		openText = i18n.OpenShortened
	}

	return Tag("div", []Attr{A("class", cardClass)},
		Void("img", []Attr{A("src", child.ImageURL), A("alt", child.Caption(lang))}),
		Tag("h3", nil, Text(child.Caption(lang))),
		Tag("p", nil, Text(child.Intro(lang))),
		Anchor(href, "open-link", openText),
	), nil
}

func buildFooter(lang domain.Language) Fragment {
	return Tag("div", []Attr{A("class", "footer")},
		Tag("p", nil, Text(i18n.Text(i18n.KeyFooterSign, lang))),
		Tag("p", nil, Text(i18n.Text(i18n.KeyFooterCopyright, lang))),
	)
}

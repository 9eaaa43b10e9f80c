package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/i18n"
	"github.com/goliatone/go-pagetree/internal/logging"
	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
	"github.com/goliatone/go-pagetree/render"
)

// previewWidth is the truncation width applied to every text cell in the
// admin table.
const previewWidth = 9

const timestampLayout = "2006-01-02 15:04"

// AdminEngine composes the administrative listing for a subtree: status
// banner, back button, section header, child table with action controls, and
// the create button.
type AdminEngine struct {
	service pages.Service
	urls    *urls.Builder
	logger  interfaces.Logger
}

// AdminOption mutates the admin engine configuration.
type AdminOption func(*AdminEngine)

// WithAdminLogger injects the engine logger.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(e *AdminEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewAdminEngine constructs the admin render engine.
func NewAdminEngine(service pages.Service, urlBuilder *urls.Builder, opts ...AdminOption) *AdminEngine {
	engine := &AdminEngine{
		service: service,
		urls:    urlBuilder,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// RenderIndex builds the admin listing for the children of parentCode. An
// empty parentCode lists the children of the root page. messageType selects
// the banner reported for the mutating operation that preceded the redirect.
func (e *AdminEngine) RenderIndex(ctx context.Context, lang domain.Language, parentCode string, messageType domain.MessageType) (*render.AdminPanel, error) {
	resolved := parentCode
	if resolved == "" {
		resolved = pages.RootCode
	}

	parent, err := e.service.GetByCode(ctx, resolved)
	if err != nil {
		return nil, err
	}

	children, err := e.service.Children(ctx, parent.Code)
	if err != nil {
		return nil, err
	}
	internalpages.SortSiblings(children, parent.EffectiveOrderType())

	backButton, err := e.buildBackButton(lang, parentCode, parent)
	if err != nil {
		return nil, err
	}

	table, err := e.buildTable(ctx, lang, children)
	if err != nil {
		return nil, err
	}

	createHref, err := e.urls.AdminCreate(lang, parentCode)
	if err != nil {
		return nil, err
	}

	content := Join(
		buildBanner(lang, messageType),
		backButton,
		buildSectionHeader(lang, parentCode),
		table,
		Anchor(createHref, "btn btn-primary", i18n.Text(i18n.KeyCreateButton, lang)),
	)

	e.logger.Debug("render.admin", "parent", parent.Code, "lang", string(lang), "children", len(children))

	return &render.AdminPanel{
		Header:  buildHeader(lang).String(),
		Content: content.String(),
		Footer:  buildFooter(lang).String(),
	}, nil
}

// buildBanner renders the status block. Deletion renders as a danger alert;
// the other operations as success alerts. No message renders nothing.
func buildBanner(lang domain.Language, messageType domain.MessageType) Fragment {
	var key i18n.Key
	class := "alert alert-success"
	switch messageType {
	case domain.MessageSaved:
		key = i18n.KeyPageSaved
	case domain.MessageUpdated:
		key = i18n.KeyPageUpdated
	case domain.MessageDeleted:
		key = i18n.KeyPageDeleted
		class = "alert alert-danger"
	default:
		return Fragment("")
	}
	return Tag("div", []Attr{A("class", class)}, Text(i18n.Text(key, lang)))
}

// buildBackButton links to the grandparent's listing. The top-level listing
// (no parent code) renders no back button.
func (e *AdminEngine) buildBackButton(lang domain.Language, parentCode string, parent *pages.Page) (Fragment, error) {
	if parentCode == "" {
		return Fragment(""), nil
	}

	grandparent := ""
	if parent.ParentCode != nil {
		grandparent = *parent.ParentCode
	}
	href, err := e.urls.AdminIndex(lang, grandparent)
	if err != nil {
		return Fragment(""), err
	}
	return Tag("div", []Attr{A("class", "back-button")},
		Anchor(href, "btn btn-back", "←"),
	), nil
}

func buildSectionHeader(lang domain.Language, parentCode string) Fragment {
	text := i18n.Text(i18n.KeyAdminRootHeader, lang)
	if parentCode != "" {
		text = fmt.Sprintf(i18n.Text(i18n.KeyAdminHeader, lang), parentCode)
	}
	return Tag("h2", nil, Text(text))
}

var tableColumns = []i18n.Key{
	"", // expand toggle
	i18n.KeyColID,
	i18n.KeyColCaptionEN,
	i18n.KeyColCaptionUA,
	i18n.KeyColCode,
	i18n.KeyColContainerType,
	i18n.KeyColContentEN,
	i18n.KeyColContentUA,
	i18n.KeyColCreationDate,
	i18n.KeyColImageURL,
	i18n.KeyColIntroEN,
	i18n.KeyColIntroUA,
	i18n.KeyColOrderNum,
	i18n.KeyColOrderType,
	i18n.KeyColUpdateDate,
	i18n.KeyColAliasOf,
	i18n.KeyColParentCode,
	"", // show
	"", // update
	"", // delete
}

func (e *AdminEngine) buildTable(ctx context.Context, lang domain.Language, children []*pages.Page) (Fragment, error) {
	headerCells := make([]Fragment, 0, len(tableColumns))
	for _, column := range tableColumns {
		label := ""
		if column != "" {
			label = i18n.Text(column, lang)
		}
		headerCells = append(headerCells, Tag("th", nil, Text(label)))
	}

	rows := make([]Fragment, 0, len(children)+1)
	rows = append(rows, Tag("tr", nil, headerCells...))

	for _, child := range children {
		row, err := e.buildRow(ctx, lang, child)
		if err != nil {
			return Fragment(""), err
		}
		rows = append(rows, row)
	}

	return Tag("table", []Attr{A("class", "table pages-table")}, rows...), nil
}

func (e *AdminEngine) buildRow(ctx context.Context, lang domain.Language, child *pages.Page) (Fragment, error) {
	expand, err := e.buildExpandCell(ctx, lang, child)
	if err != nil {
		return Fragment(""), err
	}

	actions, err := e.buildActionCells(lang, child)
	if err != nil {
		return Fragment(""), err
	}

	cells := []Fragment{
		expand,
		cell(ellipsize(child.ID.String(), previewWidth)),
		cell(ellipsize(child.CaptionEN, previewWidth)),
		cell(ellipsize(child.CaptionUA, previewWidth)),
		cell(ellipsize(child.Code, previewWidth)),
		cell(optionalContainer(child.ContainerType)),
		cell(presenceMarker(child.ContentEN)),
		cell(presenceMarker(child.ContentUA)),
		cell(child.CreatedAt.Format(timestampLayout)),
		cell(ellipsize(child.ImageURL, previewWidth)),
		cell(ellipsize(child.IntroEN, previewWidth)),
		cell(ellipsize(child.IntroUA, previewWidth)),
		cell(optionalInt(child.OrderNum)),
		cell(optionalOrder(child.OrderType)),
		cell(child.UpdatedAt.Format(timestampLayout)),
		cell(ellipsize(optionalString(child.AliasOf), previewWidth)),
		cell(ellipsize(optionalString(child.ParentCode), previewWidth)),
	}
	cells = append(cells, actions...)

	return Tag("tr", nil, cells...), nil
}

// buildExpandCell links into the child's own listing, but only when the
// child has children of its own.
func (e *AdminEngine) buildExpandCell(ctx context.Context, lang domain.Language, child *pages.Page) (Fragment, error) {
	grandchildren, err := e.service.Children(ctx, child.Code)
	if err != nil {
		return Fragment(""), err
	}
	if len(grandchildren) == 0 {
		return Tag("td", nil), nil
	}

	href, err := e.urls.AdminIndex(lang, child.Code)
	if err != nil {
		return Fragment(""), err
	}
	return Tag("td", nil, Anchor(href, "expand-link", "+")), nil
}

func (e *AdminEngine) buildActionCells(lang domain.Language, child *pages.Page) ([]Fragment, error) {
	showHref, err := e.urls.AdminShow(lang, child.Code)
	if err != nil {
		return nil, err
	}
	editHref, err := e.urls.AdminEdit(lang, child.Code)
	if err != nil {
		return nil, err
	}

	deleteForm := Tag("form",
		[]Attr{A("method", "post"), A("action", showHref)},
		Void("input", []Attr{A("type", "hidden"), A("name", "_method"), A("value", "delete")}),
		Tag("button",
			[]Attr{A("type", "submit"), A("class", "btn btn-danger")},
			Text(i18n.Text(i18n.KeyDeleteButton, lang)),
		),
	)

	return []Fragment{
		Tag("td", nil, Anchor(showHref, "btn btn-info", i18n.Text(i18n.KeyShowButton, lang))),
		Tag("td", nil, Anchor(editHref, "btn btn-warning", i18n.Text(i18n.KeyUpdateButton, lang))),
		Tag("td", nil, deleteForm),
	}, nil
}

func cell(value string) Fragment {
	return Tag("td", nil, Text(value))
}

// presenceMarker renders "+" when the localized content field carries text.
func presenceMarker(content string) string {
	if content == "" {
		return ""
	}
	return "+"
}

func optionalString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func optionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func optionalOrder(value *domain.OrderType) string {
	if value == nil {
		return ""
	}
	return string(*value)
}

func optionalContainer(value *domain.ContainerType) string {
	if value == nil {
		return ""
	}
	return string(*value)
}

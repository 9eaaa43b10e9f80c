package render

import (
	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/i18n"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/render"
)

// RenderForm builds the create/edit form panel. A nil page renders a blank
// create form pre-filled with parentCode; a non-nil page renders the edit
// form for that record with an update method override.
func (e *AdminEngine) RenderForm(lang domain.Language, page *pages.Page, parentCode string) (*render.AdminPanel, error) {
	action, err := e.urls.AdminIndex(lang, "")
	if err != nil {
		return nil, err
	}

	isEdit := page != nil
	if isEdit {
		action, err = e.urls.AdminShow(lang, page.Code)
		if err != nil {
			return nil, err
		}
	}
	if page == nil {
		page = &pages.Page{}
		if parentCode != "" {
			page.ParentCode = &parentCode
		}
	}

	fields := []Fragment{
		formInput("code", page.Code, isEdit),
		formInput("caption_ua", page.CaptionUA, false),
		formInput("caption_en", page.CaptionEN, false),
		formTextarea("intro_ua", page.IntroUA),
		formTextarea("intro_en", page.IntroEN),
		formTextarea("content_ua", page.ContentUA),
		formTextarea("content_en", page.ContentEN),
		formInput("image_url", page.ImageURL, false),
		formInput("parent_code", optionalString(page.ParentCode), false),
		formInput("alias_of", optionalString(page.AliasOf), false),
		formInput("order_num", optionalInt(page.OrderNum), false),
		formSelect("order_type", optionalOrder(page.OrderType),
			string(domain.OrderByCreationDate),
			string(domain.OrderByUpdateDate),
			string(domain.OrderDefault),
		),
		formSelect("container_type", optionalContainer(page.ContainerType),
			string(domain.ContainerGrid),
			string(domain.ContainerList),
		),
	}

	if isEdit {
		fields = append([]Fragment{
			Void("input", []Attr{A("type", "hidden"), A("name", "_method"), A("value", "put")}),
		}, fields...)
	}

	submitKey := i18n.KeyCreateButton
	if isEdit {
		submitKey = i18n.KeyUpdateButton
	}
	fields = append(fields, Tag("button",
		[]Attr{A("type", "submit"), A("class", "btn btn-primary")},
		Text(i18n.Text(submitKey, lang)),
	))

	form := Tag("form",
		[]Attr{A("method", "post"), A("action", action), A("class", "page-form")},
		fields...,
	)

	return &render.AdminPanel{
		Header:  buildHeader(lang).String(),
		Content: form.String(),
		Footer:  buildFooter(lang).String(),
	}, nil
}

func formInput(name, value string, readonly bool) Fragment {
	attrs := []Attr{
		A("type", "text"),
		A("name", name),
		A("value", value),
	}
	if readonly {
		attrs = append(attrs, A("readonly", "readonly"))
	}
	return formGroup(name, Void("input", attrs))
}

func formTextarea(name, value string) Fragment {
	return formGroup(name, Tag("textarea", []Attr{A("name", name)}, Text(value)))
}

func formSelect(name, selected string, options ...string) Fragment {
	items := make([]Fragment, 0, len(options)+1)
	items = append(items, Tag("option", []Attr{A("value", "")}))
	for _, option := range options {
		attrs := []Attr{A("value", option)}
		if option == selected {
			attrs = append(attrs, A("selected", "selected"))
		}
		items = append(items, Tag("option", attrs, Text(option)))
	}
	return formGroup(name, Tag("select", []Attr{A("name", name)}, items...))
}

func formGroup(name string, control Fragment) Fragment {
	return Tag("div", []Attr{A("class", "form-group")},
		Tag("label", []Attr{A("for", name)}, Text(name)),
		control,
	)
}

package i18n

import "github.com/goliatone/go-pagetree/internal/domain"

// Key identifies a static UI string. Every key has a value for both
// supported languages; Text is total over this set.
type Key string

const (
	KeyHeader           Key = "header"
	KeyFooterSign       Key = "footer_sign"
	KeyFooterCopyright  Key = "footer_copyright"
	KeyOpen             Key = "open"
	KeyPageSaved        Key = "page_saved"
	KeyPageUpdated      Key = "page_updated"
	KeyPageDeleted      Key = "page_deleted"
	KeyCreateButton     Key = "create_button"
	KeyShowButton       Key = "show_button"
	KeyUpdateButton     Key = "update_button"
	KeyDeleteButton     Key = "delete_button"
	KeyAdminHeader      Key = "admin_header"
	KeyAdminRootHeader  Key = "admin_root_header"
	KeyColID            Key = "col_id"
	KeyColCaptionEN     Key = "col_caption_en"
	KeyColCaptionUA     Key = "col_caption_ua"
	KeyColCode          Key = "col_code"
	KeyColContainerType Key = "col_container_type"
	KeyColContentEN     Key = "col_content_en"
	KeyColContentUA     Key = "col_content_ua"
	KeyColCreationDate  Key = "col_creation_date"
	KeyColImageURL      Key = "col_image_url"
	KeyColIntroEN       Key = "col_intro_en"
	KeyColIntroUA       Key = "col_intro_ua"
	KeyColOrderNum      Key = "col_order_num"
	KeyColOrderType     Key = "col_order_type"
	KeyColUpdateDate    Key = "col_update_date"
	KeyColAliasOf       Key = "col_alias_of"
	KeyColParentCode    Key = "col_parent_code"
)

// OpenShortened is the link glyph used by non-grid children containers. It is
// language independent.
const OpenShortened = "›"

type entry struct {
	ua string
	en string
}

var catalog = map[Key]entry{
	KeyHeader:           {ua: "Система керування сторінками", en: "Page management system"},
	KeyFooterSign:       {ua: "Підтримується командою розробки сайту", en: "Maintained by the site development team"},
	KeyFooterCopyright:  {ua: "(c) Всі права захищено.", en: "(c) All rights reserved."},
	KeyOpen:             {ua: "Перейти →", en: "Open →"},
	KeyPageSaved:        {ua: "Сторінку успішно створено", en: "Page created successfully"},
	KeyPageUpdated:      {ua: "Сторінку успішно оновлено", en: "Page updated successfully"},
	KeyPageDeleted:      {ua: "Сторінку успішно видалено", en: "Page deleted successfully"},
	KeyCreateButton:     {ua: "Створити сторінку", en: "Create page"},
	KeyShowButton:       {ua: "Переглянути", en: "Show"},
	KeyUpdateButton:     {ua: "Редагувати", en: "Edit"},
	KeyDeleteButton:     {ua: "Видалити", en: "Delete"},
	KeyAdminHeader:      {ua: "Сторінки розділу %s", en: "Pages under %s"},
	KeyAdminRootHeader:  {ua: "Доступні кореневі сторінки", en: "Root pages available"},
	KeyColID:            {ua: "Ідентифікатор", en: "ID"},
	KeyColCaptionEN:     {ua: "Заголовок (EN)", en: "Caption (EN)"},
	KeyColCaptionUA:     {ua: "Заголовок (UA)", en: "Caption (UA)"},
	KeyColCode:          {ua: "Код", en: "Code"},
	KeyColContainerType: {ua: "Тип контейнера", en: "Container type"},
	KeyColContentEN:     {ua: "Вміст (EN)", en: "Content (EN)"},
	KeyColContentUA:     {ua: "Вміст (UA)", en: "Content (UA)"},
	KeyColCreationDate:  {ua: "Дата створення", en: "Creation date"},
	KeyColImageURL:      {ua: "Зображення", en: "Image URL"},
	KeyColIntroEN:       {ua: "Опис (EN)", en: "Intro (EN)"},
	KeyColIntroUA:       {ua: "Опис (UA)", en: "Intro (UA)"},
	KeyColOrderNum:      {ua: "Порядковий номер", en: "Order num"},
	KeyColOrderType:     {ua: "Тип сортування", en: "Order type"},
	KeyColUpdateDate:    {ua: "Дата оновлення", en: "Update date"},
	KeyColAliasOf:       {ua: "Псевдонім для", en: "Alias of"},
	KeyColParentCode:    {ua: "Батьківський код", en: "Parent code"},
}

// Text returns the localized string for the key. The catalog is a pure
// lookup table with no mutable state; the language is an explicit parameter
// on every call. Unknown keys return the empty string.
func Text(key Key, lang domain.Language) string {
	e, ok := catalog[key]
	if !ok {
		return ""
	}
	if lang == domain.LanguageEN {
		return e.en
	}
	return e.ua
}

// Keys returns every key defined in the catalog. Exposed for completeness
// checks in tests.
func Keys() []Key {
	out := make([]Key, 0, len(catalog))
	for key := range catalog {
		out = append(out, key)
	}
	return out
}

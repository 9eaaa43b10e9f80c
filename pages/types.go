package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagetree/internal/domain"
)

// Page is a node in the content tree: the unit of storage and rendering.
// The code is the natural key; parent and alias relationships are stored as
// plain code references and resolved through the repository at read time.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID        uuid.UUID `bun:",pk,type:uuid"        json:"id"`
	Code      string    `bun:"code,notnull,unique"  json:"code"`
	CaptionUA string    `bun:"caption_ua,notnull"   json:"caption_ua"`
	CaptionEN string    `bun:"caption_en,notnull"   json:"caption_en"`
	IntroUA   string    `bun:"intro_ua,notnull"     json:"intro_ua"`
	IntroEN   string    `bun:"intro_en,notnull"     json:"intro_en"`
	ContentUA string    `bun:"content_ua,notnull"   json:"content_ua"`
	ContentEN string    `bun:"content_en,notnull"   json:"content_en"`
	ImageURL  string    `bun:"image_url,notnull"    json:"image_url"`

	// ParentCode is nil only for the distinguished root page.
	ParentCode *string `bun:"parent_code" json:"parent_code,omitempty"`
	// AliasOf marks redirect pages; the target must not itself be an alias.
	AliasOf *string `bun:"alias_of" json:"alias_of,omitempty"`

	OrderNum      *int                  `bun:"order_num"      json:"order_num,omitempty"`
	OrderType     *domain.OrderType     `bun:"order_type"     json:"order_type,omitempty"`
	ContainerType *domain.ContainerType `bun:"container_type" json:"container_type,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Caption returns the localized caption for the requested language.
func (p *Page) Caption(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return p.CaptionEN
	}
	return p.CaptionUA
}

// Intro returns the localized intro for the requested language.
func (p *Page) Intro(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return p.IntroEN
	}
	return p.IntroUA
}

// Content returns the localized body fragment for the requested language.
func (p *Page) Content(lang domain.Language) string {
	if lang == domain.LanguageEN {
		return p.ContentEN
	}
	return p.ContentUA
}

// IsRoot reports whether this is the distinguished root page.
func (p *Page) IsRoot() bool {
	return p.Code == RootCode
}

// EffectiveOrderType returns the order type applied to this page's children
// container, defaulting to order_num ordering when unset.
func (p *Page) EffectiveOrderType() domain.OrderType {
	if p.OrderType == nil {
		return domain.OrderDefault
	}
	return *p.OrderType
}

// RootCode is the code of the distinguished root page. It has no parent and
// is served at the language home path rather than under its literal code.
const RootCode = "root"

// SavePageInput captures the payload required to create or replace a page.
// Parent and alias references are raw codes; the service resolves them to
// canonical records and rejects dangling or chained references.
type SavePageInput struct {
	Code          string
	CaptionUA     string
	CaptionEN     string
	IntroUA       string
	IntroEN       string
	ContentUA     string
	ContentEN     string
	ImageURL      string
	ParentCode    string
	AliasOf       string
	OrderNum      *int
	OrderType     *domain.OrderType
	ContainerType *domain.ContainerType
}

// DeletePageRequest captures the information required to delete a page.
type DeletePageRequest struct {
	Code string
}

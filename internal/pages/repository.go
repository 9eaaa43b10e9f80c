package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagetree/pages"
)

// PageRepository is the persistence contract the page service consumes.
// Children are a derived relationship: ListChildren queries by parent_code
// and never reads stored child collections.
type PageRepository interface {
	GetByCode(ctx context.Context, code string) (*pages.Page, error)
	ListChildren(ctx context.Context, parentCode string) ([]*pages.Page, error)
	List(ctx context.Context) ([]*pages.Page, error)
	Create(ctx context.Context, record *pages.Page) (*pages.Page, error)
	Update(ctx context.Context, record *pages.Page) (*pages.Page, error)
	Delete(ctx context.Context, code string) error
}

// NewPageRepository builds the generic bun-backed repository for pages.
func NewPageRepository(db *bun.DB) repository.Repository[*pages.Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*pages.Page]{
		NewRecord: func() *pages.Page { return &pages.Page{} },
		GetID: func(p *pages.Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *pages.Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(p *pages.Page) string {
			return p.Code
		},
	})
}

package pages

import "context"

// Service describes page tree management capabilities.
//
// Update is a whole-record replace: the stored row is loaded by code, every
// mutable field is overwritten from the input, and updated_at is refreshed.
// Concurrent updates to disjoint fields are therefore not merge-safe; the
// last writer wins.
type Service interface {
	// Save creates a new page from the input.
	Save(ctx context.Context, input SavePageInput) (*Page, error)
	// Update replaces the stored record identified by input.Code.
	Update(ctx context.Context, input SavePageInput) (*Page, error)
	// Delete removes the page. Children keep their parent_code and are
	// orphaned; cascading is a store policy, not a service concern.
	Delete(ctx context.Context, req DeletePageRequest) error

	// GetByCode returns the page or a *PageNotFoundError.
	GetByCode(ctx context.Context, code string) (*Page, error)
	// Children returns the direct children of the given code, unordered.
	Children(ctx context.Context, parentCode string) ([]*Page, error)

	// ResolveCanonicalCode follows at most one level of alias indirection and
	// returns the canonical code for the request. Callers must redirect when
	// the result differs from the requested code.
	ResolveCanonicalCode(ctx context.Context, code string) (string, error)
}

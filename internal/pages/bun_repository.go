package pages

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagetree/pages"
)

// BunPageRepository stores pages through the go-repository-bun generic layer.
type BunPageRepository struct {
	db   *bun.DB
	repo repository.Repository[*pages.Page]
}

// NewBunPageRepository constructs a PageRepository backed by bun.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return NewBunPageRepositoryWithCache(db, nil, nil)
}

// NewBunPageRepositoryWithCache constructs a PageRepository backed by bun with
// optional read-through caching.
func NewBunPageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunPageRepository {
	base := NewPageRepository(db)
	return &BunPageRepository{
		db:   db,
		repo: wrapWithCache(base, cacheService, keySerializer),
	}
}

func (r *BunPageRepository) GetByCode(ctx context.Context, code string) (*pages.Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.code = ?", code)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, code)
	}
	if len(records) == 0 {
		return nil, &pages.PageNotFoundError{Code: code}
	}
	return records[0], nil
}

func (r *BunPageRepository) ListChildren(ctx context.Context, parentCode string) ([]*pages.Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.parent_code = ?", parentCode)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, parentCode)
	}
	return records, nil
}

func (r *BunPageRepository) List(ctx context.Context) ([]*pages.Page, error) {
	records, _, err := r.repo.List(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return records, nil
}

func (r *BunPageRepository) Create(ctx context.Context, record *pages.Page) (*pages.Page, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.Code)
	}
	return created, nil
}

// Update persists a whole-record replace. Every mutable column is written so
// the stored row always matches the incoming record exactly.
func (r *BunPageRepository) Update(ctx context.Context, record *pages.Page) (*pages.Page, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"code",
			"caption_ua",
			"caption_en",
			"intro_ua",
			"intro_en",
			"content_ua",
			"content_en",
			"image_url",
			"parent_code",
			"alias_of",
			"order_num",
			"order_type",
			"container_type",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, record.Code)
	}
	return updated, nil
}

// Delete removes the page row. Children keep their parent_code; orphan
// cleanup is left to the caller's store policy.
func (r *BunPageRepository) Delete(ctx context.Context, code string) error {
	if r.db == nil {
		return fmt.Errorf("page repository: database not configured")
	}

	result, err := r.db.NewDelete().
		Model((*pages.Page)(nil)).
		Where("?TableAlias.code = ?", code).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("page delete rows affected: %w", err)
	}
	if affected == 0 {
		return &pages.PageNotFoundError{Code: code}
	}
	return nil
}

func mapRepositoryError(err error, code string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &pages.PageNotFoundError{Code: code}
	}

	return fmt.Errorf("page repository error: %w", err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}

package pages

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/identity"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

type service struct {
	repo   PageRepository
	logger interfaces.Logger
	clock  func() time.Time
}

// ServiceOption mutates the service configuration.
type ServiceOption func(*service)

// WithLogger injects the logger used by the service. Defaults to no-op.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source, primarily for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs the page service on top of the supplied repository.
func NewService(repo PageRepository, opts ...ServiceOption) pages.Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		clock:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Save(ctx context.Context, input SaveInput) (*pages.Page, error) {
	input = normalizeInput(input)
	if input.Code == "" && input.CaptionEN != "" {
		derived, err := slug.Normalize(input.CaptionEN)
		if err == nil {
			input.Code = derived
		}
	}

	if err := s.validateInput(ctx, input, false); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByCode(ctx, input.Code); err == nil {
		return nil, pages.ErrCodeExists
	} else if !pages.IsNotFound(err) {
		return nil, err
	}

	now := s.clock()
	record := recordFromInput(input)
	record.ID = identity.PageUUID(input.Code)
	record.CreatedAt = now
	record.UpdatedAt = now

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pages.save", "code", created.Code)
	return created, nil
}

// Update performs a whole-record replace: the stored row identified by
// input.Code is loaded, every mutable field is overwritten from the input,
// and updated_at is refreshed. Identity and creation metadata survive.
func (s *service) Update(ctx context.Context, input SaveInput) (*pages.Page, error) {
	input = normalizeInput(input)

	existing, err := s.repo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(ctx, input, true); err != nil {
		return nil, err
	}

	record := recordFromInput(input)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.clock()

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pages.update", "code", updated.Code)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, req pages.DeletePageRequest) error {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return pages.ErrCodeRequired
	}
	if code == pages.RootCode {
		return pages.ErrRootDeleteForbidden
	}

	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}

	s.logger.Info("pages.delete", "code", code)
	return nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*pages.Page, error) {
	return s.repo.GetByCode(ctx, strings.TrimSpace(code))
}

func (s *service) Children(ctx context.Context, parentCode string) ([]*pages.Page, error) {
	return s.repo.ListChildren(ctx, strings.TrimSpace(parentCode))
}

// ResolveCanonicalCode follows at most one level of alias indirection. A
// chained alias means the store was mutated outside the service; it is
// reported as not-found so callers produce a clean 404 instead of a loop.
func (s *service) ResolveCanonicalCode(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	page, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if page.AliasOf == nil {
		return page.Code, nil
	}

	target, err := s.repo.GetByCode(ctx, *page.AliasOf)
	if err != nil {
		if pages.IsNotFound(err) {
			return "", &pages.PageNotFoundError{Code: code}
		}
		return "", err
	}
	if target.AliasOf != nil {
		s.logger.Warn("pages.alias_chain", "code", code, "target", target.Code)
		return "", &pages.PageNotFoundError{Code: code}
	}
	return target.Code, nil
}

// SaveInput aliases the public input type for package-local signatures.
type SaveInput = pages.SavePageInput

func normalizeInput(input SaveInput) SaveInput {
	input.Code = strings.TrimSpace(input.Code)
	input.ParentCode = strings.TrimSpace(input.ParentCode)
	input.AliasOf = strings.TrimSpace(input.AliasOf)
	input.CaptionUA = strings.TrimSpace(input.CaptionUA)
	input.CaptionEN = strings.TrimSpace(input.CaptionEN)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	return input
}

func recordFromInput(input SaveInput) *pages.Page {
	record := &pages.Page{
		Code:          input.Code,
		CaptionUA:     input.CaptionUA,
		CaptionEN:     input.CaptionEN,
		IntroUA:       input.IntroUA,
		IntroEN:       input.IntroEN,
		ContentUA:     input.ContentUA,
		ContentEN:     input.ContentEN,
		ImageURL:      input.ImageURL,
		OrderNum:      input.OrderNum,
		OrderType:     input.OrderType,
		ContainerType: input.ContainerType,
	}
	if input.ParentCode != "" {
		parent := input.ParentCode
		record.ParentCode = &parent
	}
	if input.AliasOf != "" {
		alias := input.AliasOf
		record.AliasOf = &alias
	}
	return record
}

func (s *service) validateInput(ctx context.Context, input SaveInput, isUpdate bool) error {
	errs := validation.Errors{}

	if input.Code == "" {
		errs["code"] = pages.ErrCodeRequired
	} else if !slug.IsValid(input.Code) {
		errs["code"] = pages.ErrCodeInvalid
	}
	if input.CaptionUA == "" || input.CaptionEN == "" {
		errs["caption"] = pages.ErrCaptionRequired
	}
	if input.OrderType != nil && !input.OrderType.Valid() {
		errs["order_type"] = pages.ErrOrderTypeInvalid
	}
	if input.ContainerType != nil && !input.ContainerType.Valid() {
		errs["container_type"] = pages.ErrContainerInvalid
	}
	if len(errs) > 0 {
		return errs
	}

	if input.Code == pages.RootCode {
		if input.ParentCode != "" {
			return pages.ErrRootParentForbidden
		}
	} else {
		if input.ParentCode == "" {
			return pages.ErrParentRequired
		}
		if input.ParentCode == input.Code {
			return pages.ErrParentCycle
		}
		parent, err := s.repo.GetByCode(ctx, input.ParentCode)
		if err != nil {
			if pages.IsNotFound(err) {
				return pages.ErrParentNotFound
			}
			return err
		}
		if parent.EffectiveOrderType() == domain.OrderDefault && input.OrderNum == nil {
			return pages.ErrOrderNumRequired
		}
	}

	if input.AliasOf != "" {
		if input.AliasOf == input.Code {
			return pages.ErrAliasSelf
		}
		target, err := s.repo.GetByCode(ctx, input.AliasOf)
		if err != nil {
			if pages.IsNotFound(err) {
				return pages.ErrAliasTargetNotFound
			}
			return err
		}
		if target.AliasOf != nil {
			return &pages.AliasChainError{Code: input.Code, Target: target.Code}
		}
	}

	_ = isUpdate
	return nil
}

package pagescmd

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	"github.com/goliatone/go-pagetree/pages"
)

func newHandlerFixture(t *testing.T) (pages.Service, *internalpages.MemoryPageRepository) {
	t.Helper()
	repo := internalpages.NewMemoryPageRepository()
	service := internalpages.NewService(repo)
	if _, err := service.Save(context.Background(), pages.SavePageInput{
		Code:      pages.RootCode,
		CaptionUA: "Головна",
		CaptionEN: "Home",
	}); err != nil {
		t.Fatalf("seed root: %v", err)
	}
	return service, repo
}

func validationField(t *testing.T, err error, field string) {
	t.Helper()
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := errs[field]; !ok {
		t.Fatalf("expected error on field %q, got %v", field, errs)
	}
}

func intPtr(v int) *int { return &v }

func TestSaveCommandValidateRequiresCaptions(t *testing.T) {
	err := SavePageCommand{Code: "about"}.Validate()
	validationField(t, err, "caption_ua")
	validationField(t, err, "caption_en")
}

func TestSaveCommandValidateAcceptsMinimalMessage(t *testing.T) {
	err := SavePageCommand{
		Code:      "about",
		CaptionUA: "Про нас",
		CaptionEN: "About",
	}.Validate()
	if err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestUpdateCommandValidateRequiresCode(t *testing.T) {
	err := UpdatePageCommand{SavePageCommand: SavePageCommand{
		CaptionUA: "Про нас",
		CaptionEN: "About",
	}}.Validate()
	validationField(t, err, "code")
}

func TestDeleteCommandValidateRejectsRoot(t *testing.T) {
	validationField(t, DeletePageCommand{}.Validate(), "code")
	validationField(t, DeletePageCommand{Code: pages.RootCode}.Validate(), "code")
	if err := (DeletePageCommand{Code: "about"}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestSaveHandlerCreatesPage(t *testing.T) {
	service, repo := newHandlerFixture(t)
	handler := NewSavePageHandler(service, nil)

	err := handler.Execute(context.Background(), SavePageCommand{
		Code:       "about",
		CaptionUA:  "Про нас",
		CaptionEN:  "About",
		ParentCode: pages.RootCode,
		OrderNum:   intPtr(1),
	})
	if err != nil {
		t.Fatalf("execute save: %v", err)
	}

	stored, err := repo.GetByCode(context.Background(), "about")
	if err != nil {
		t.Fatalf("expected stored page, got %v", err)
	}
	if stored.CaptionEN != "About" {
		t.Fatalf("unexpected caption %q", stored.CaptionEN)
	}
}

func TestSaveHandlerRejectsInvalidMessageBeforeDispatch(t *testing.T) {
	service, repo := newHandlerFixture(t)
	handler := NewSavePageHandler(service, nil)

	err := handler.Execute(context.Background(), SavePageCommand{Code: "about"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if _, lookupErr := repo.GetByCode(context.Background(), "about"); lookupErr == nil {
		t.Fatalf("expected no page to be created")
	}
}

func TestSaveHandlerSurfacesServiceErrors(t *testing.T) {
	service, _ := newHandlerFixture(t)
	handler := NewSavePageHandler(service, nil)

	msg := SavePageCommand{
		Code:       "about",
		CaptionUA:  "Про нас",
		CaptionEN:  "About",
		ParentCode: pages.RootCode,
		OrderNum:   intPtr(1),
	}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := handler.Execute(context.Background(), msg); !errors.Is(err, pages.ErrCodeExists) {
		t.Fatalf("expected duplicate code error, got %v", err)
	}
}

func TestUpdateHandlerReplacesRecord(t *testing.T) {
	service, repo := newHandlerFixture(t)
	saver := NewSavePageHandler(service, nil)
	updater := NewUpdatePageHandler(service, nil)

	if err := saver.Execute(context.Background(), SavePageCommand{
		Code:       "about",
		CaptionUA:  "Про нас",
		CaptionEN:  "About",
		IntroEN:    "original intro",
		ParentCode: pages.RootCode,
		OrderNum:   intPtr(1),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := updater.Execute(context.Background(), UpdatePageCommand{SavePageCommand: SavePageCommand{
		Code:       "about",
		CaptionUA:  "Про компанію",
		CaptionEN:  "About us",
		ParentCode: pages.RootCode,
		OrderNum:   intPtr(2),
	}}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, err := repo.GetByCode(context.Background(), "about")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if stored.CaptionEN != "About us" {
		t.Fatalf("unexpected caption %q", stored.CaptionEN)
	}
	if stored.IntroEN != "" {
		t.Fatalf("expected omitted intro to clear, got %q", stored.IntroEN)
	}
}

func TestDeleteHandlerRemovesPage(t *testing.T) {
	service, repo := newHandlerFixture(t)
	saver := NewSavePageHandler(service, nil)
	deleter := NewDeletePageHandler(service, nil)

	if err := saver.Execute(context.Background(), SavePageCommand{
		Code:       "about",
		CaptionUA:  "Про нас",
		CaptionEN:  "About",
		ParentCode: pages.RootCode,
		OrderNum:   intPtr(1),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := deleter.Execute(context.Background(), DeletePageCommand{Code: "about"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByCode(context.Background(), "about"); !pages.IsNotFound(err) {
		t.Fatalf("expected page to be gone, got %v", err)
	}
}

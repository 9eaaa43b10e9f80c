package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-pagetree/internal/commands"
	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

const savePageMessageType = "pagetree.pages.save"

// SavePageCommand requests creation of a new page.
type SavePageCommand struct {
	Code          string                `json:"code"`
	CaptionUA     string                `json:"caption_ua"`
	CaptionEN     string                `json:"caption_en"`
	IntroUA       string                `json:"intro_ua"`
	IntroEN       string                `json:"intro_en"`
	ContentUA     string                `json:"content_ua"`
	ContentEN     string                `json:"content_en"`
	ImageURL      string                `json:"image_url"`
	ParentCode    string                `json:"parent_code"`
	AliasOf       string                `json:"alias_of,omitempty"`
	OrderNum      *int                  `json:"order_num,omitempty"`
	OrderType     *domain.OrderType     `json:"order_type,omitempty"`
	ContainerType *domain.ContainerType `json:"container_type,omitempty"`
}

// Type implements command.Message.
func (SavePageCommand) Type() string { return savePageMessageType }

// Validate ensures the command carries the required fields. Referential
// checks (parent exists, alias target is not an alias) belong to the service.
func (m SavePageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.CaptionUA) == "" {
		errs["caption_ua"] = validation.NewError("pagetree.pages.save.caption_ua_required", "caption_ua is required")
	}
	if strings.TrimSpace(m.CaptionEN) == "" {
		errs["caption_en"] = validation.NewError("pagetree.pages.save.caption_en_required", "caption_en is required")
	}
	if m.OrderType != nil && !m.OrderType.Valid() {
		errs["order_type"] = validation.NewError("pagetree.pages.save.order_type_invalid", "order_type is not a supported value")
	}
	if m.ContainerType != nil && !m.ContainerType.Valid() {
		errs["container_type"] = validation.NewError("pagetree.pages.save.container_type_invalid", "container_type is not a supported value")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (m SavePageCommand) input() pages.SavePageInput {
	return pages.SavePageInput{
		Code:          m.Code,
		CaptionUA:     m.CaptionUA,
		CaptionEN:     m.CaptionEN,
		IntroUA:       m.IntroUA,
		IntroEN:       m.IntroEN,
		ContentUA:     m.ContentUA,
		ContentEN:     m.ContentEN,
		ImageURL:      m.ImageURL,
		ParentCode:    m.ParentCode,
		AliasOf:       m.AliasOf,
		OrderNum:      m.OrderNum,
		OrderType:     m.OrderType,
		ContainerType: m.ContainerType,
	}
}

// SavePageHandler creates pages via the page service.
type SavePageHandler struct {
	inner *commands.Handler[SavePageCommand]
}

// NewSavePageHandler constructs a handler wired to the provided page service.
func NewSavePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SavePageCommand]) *SavePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SavePageCommand) error {
		operationLogger := logging.WithFields(baseLogger, map[string]any{
			"code":   strings.TrimSpace(msg.Code),
			"parent": strings.TrimSpace(msg.ParentCode),
		})
		operationLogger.Debug("pages.command.save.dispatch")

		_, err := service.Save(ctx, msg.input())
		return err
	}

	handlerOpts := []commands.HandlerOption[SavePageCommand]{
		commands.WithLogger[SavePageCommand](baseLogger),
		commands.WithOperation[SavePageCommand]("pages.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SavePageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SavePageCommand].
func (h *SavePageHandler) Execute(ctx context.Context, msg SavePageCommand) error {
	return h.inner.Execute(ctx, msg)
}

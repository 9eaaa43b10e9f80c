package pagescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-pagetree/internal/commands"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

const updatePageMessageType = "pagetree.pages.update"

// UpdatePageCommand requests a whole-record replace of an existing page. The
// stored row identified by Code is overwritten field-by-field from the
// command, so omitted fields clear their stored values.
type UpdatePageCommand struct {
	SavePageCommand
}

// Type implements command.Message.
func (UpdatePageCommand) Type() string { return updatePageMessageType }

// Validate ensures the command identifies the record to replace.
func (m UpdatePageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Code) == "" {
		errs["code"] = validation.NewError("pagetree.pages.update.code_required", "code is required")
	}
	if err := m.SavePageCommand.Validate(); err != nil {
		if nested, ok := err.(validation.Errors); ok {
			for field, fieldErr := range nested {
				errs[field] = fieldErr
			}
		} else {
			return err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePageHandler replaces page records via the page service.
type UpdatePageHandler struct {
	inner *commands.Handler[UpdatePageCommand]
}

// NewUpdatePageHandler constructs a handler wired to the provided page service.
func NewUpdatePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdatePageCommand]) *UpdatePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg UpdatePageCommand) error {
		operationLogger := logging.WithFields(baseLogger, map[string]any{
			"code": strings.TrimSpace(msg.Code),
		})
		operationLogger.Debug("pages.command.update.dispatch")

		_, err := service.Update(ctx, msg.input())
		return err
	}

	handlerOpts := []commands.HandlerOption[UpdatePageCommand]{
		commands.WithLogger[UpdatePageCommand](baseLogger),
		commands.WithOperation[UpdatePageCommand]("pages.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdatePageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdatePageCommand].
func (h *UpdatePageHandler) Execute(ctx context.Context, msg UpdatePageCommand) error {
	return h.inner.Execute(ctx, msg)
}

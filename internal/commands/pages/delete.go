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

const deletePageMessageType = "pagetree.pages.delete"

// DeletePageCommand requests removal of a page by code.
type DeletePageCommand struct {
	Code string `json:"code"`
}

// Type implements command.Message.
func (DeletePageCommand) Type() string { return deletePageMessageType }

// Validate ensures the command identifies the record to delete.
func (m DeletePageCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Code) == "" {
		errs["code"] = validation.NewError("pagetree.pages.delete.code_required", "code is required")
	}
	if strings.TrimSpace(m.Code) == pages.RootCode {
		errs["code"] = validation.NewError("pagetree.pages.delete.root_forbidden", "root page cannot be deleted")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeletePageHandler removes pages via the page service.
type DeletePageHandler struct {
	inner *commands.Handler[DeletePageCommand]
}

// NewDeletePageHandler constructs a handler wired to the provided page service.
func NewDeletePageHandler(service pages.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeletePageCommand]) *DeletePageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg DeletePageCommand) error {
		operationLogger := logging.WithFields(baseLogger, map[string]any{
			"code": strings.TrimSpace(msg.Code),
		})
		operationLogger.Debug("pages.command.delete.dispatch")

		return service.Delete(ctx, pages.DeletePageRequest{Code: strings.TrimSpace(msg.Code)})
	}

	handlerOpts := []commands.HandlerOption[DeletePageCommand]{
		commands.WithLogger[DeletePageCommand](baseLogger),
		commands.WithOperation[DeletePageCommand]("pages.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeletePageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeletePageCommand].
func (h *DeletePageHandler) Execute(ctx context.Context, msg DeletePageCommand) error {
	return h.inner.Execute(ctx, msg)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/pages"
)

var errNilMux = errors.New("http: mux cannot be nil")

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func mapError(err error) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	var notFound *pages.PageNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: notFound.Error(),
		}
	}
	if pages.IsNotFound(err) {
		return http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		}
	}

	if errors.Is(err, pages.ErrCodeExists) {
		return http.StatusConflict, errorResponse{
			Error:   "conflict",
			Message: err.Error(),
		}
	}

	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		fields := make(map[string]string, len(fieldErrors))
		for field, fieldErr := range fieldErrors {
			if fieldErr != nil {
				fields[field] = fieldErr.Error()
			}
		}
		return http.StatusBadRequest, errorResponse{
			Error:  "validation_failed",
			Fields: fields,
		}
	}

	for _, sentinel := range []error{
		pages.ErrCodeRequired,
		pages.ErrCodeInvalid,
		pages.ErrCaptionRequired,
		pages.ErrParentNotFound,
		pages.ErrParentRequired,
		pages.ErrParentCycle,
		pages.ErrRootParentForbidden,
		pages.ErrAliasTargetNotFound,
		pages.ErrAliasChain,
		pages.ErrAliasSelf,
		pages.ErrOrderTypeInvalid,
		pages.ErrOrderNumRequired,
		pages.ErrContainerInvalid,
		pages.ErrRootDeleteForbidden,
	} {
		if errors.Is(err, sentinel) {
			return http.StatusBadRequest, errorResponse{
				Error:   "validation_failed",
				Message: err.Error(),
			}
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

// formOverride extracts the _method form override used by HTML forms that
// cannot issue PUT or DELETE directly.
func formOverride(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.FormValue("_method")))
}

func formOptionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func formOptionalOrderType(r *http.Request, name string) *domain.OrderType {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil
	}
	orderType := domain.OrderType(raw)
	return &orderType
}

func formOptionalContainerType(r *http.Request, name string) *domain.ContainerType {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil
	}
	containerType := domain.ContainerType(raw)
	return &containerType
}

func queryFlag(r *http.Request, name string) bool {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	return strings.EqualFold(value, "true")
}

// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *AppError `json:"error,omitempty"`
	Meta    *PageMeta `json:"meta,omitempty"`
}

type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(w http.ResponseWriter, data any, page, pageSize, total int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Meta: &PageMeta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, envelope{Success: false, Error: appErr})
		return
	}

	writeJSON(
		w,
		http.StatusInternalServerError,
		envelope{Success: false, Error: InternalError()},
	)
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, BadRequestError(message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func Unprocessable(w http.ResponseWriter, message string) {
	JSONError(w, ValidationFailedError(message))
}

func Conflict(w http.ResponseWriter, message string) {
	JSONError(w, ConflictError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	JSONError(w, InternalError())
}

// WriteDomainError maps the integrity-layer sentinels onto the HTTP surface.
func WriteDomainError(w http.ResponseWriter, resource string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		NotFound(w, resource)
	case errors.Is(err, ErrValidation):
		Unprocessable(w, err.Error())
	case errors.Is(err, ErrConflict):
		Conflict(w, err.Error())
	case errors.Is(err, ErrDuplicateKey):
		Conflict(w, err.Error())
	case errors.Is(err, ErrInvalidInput):
		BadRequest(w, err.Error())
	case errors.Is(err, ErrForbidden):
		Forbidden(w, "insufficient permissions")
	default:
		InternalServerError(w, err)
	}
}

func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		msgs = append(msgs, formatFieldError(fieldErr))
	}

	return strings.Join(msgs, "; ")
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "datetime":
		return field + " must be a valid date"
	default:
		return field + " is invalid"
	}
}

// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("referential conflict")
	ErrPersistence  = errors.New("persistence failure")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrTokenInvalid = errors.New("token invalid")
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func BadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "BAD_REQUEST", message)
}

func ValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, "VALIDATION_FAILED", message)
}

func ConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, "REFERENTIAL_CONFLICT", message)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", resource+" not found")
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", message)
}

func TokenExpiredError() *AppError {
	return NewAppError(http.StatusUnauthorized, "TOKEN_EXPIRED", "access token expired")
}

func TokenRevokedError() *AppError {
	return NewAppError(http.StatusUnauthorized, "TOKEN_REVOKED", "access token revoked")
}

func TokenInvalidError() *AppError {
	return NewAppError(http.StatusUnauthorized, "TOKEN_INVALID", "access token invalid")
}

func InternalError() *AppError {
	return NewAppError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
	)
}

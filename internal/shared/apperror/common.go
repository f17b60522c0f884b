package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrValidation = New(
		CodeValidationError,
		"One or more required fields are missing or invalid",
		http.StatusBadRequest,
	)

	ErrStorage = New(
		CodeStorageError,
		"Persistent storage is unavailable; the change was not saved",
		http.StatusServiceUnavailable,
	)
)

// Semantic builds a SEMANTIC_ERROR with a business-rule reason. The
// value was present and well-formed but violates a rule (future hire
// date, non-positive salary, due date before creation).
func Semantic(reason string) *AppError {
	return New(CodeSemanticError, reason, http.StatusUnprocessableEntity)
}

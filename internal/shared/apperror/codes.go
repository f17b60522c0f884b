package apperror

const (
	// Client errors (4xx)
	CodeValidationError = "VALIDATION_ERROR"
	CodeSemanticError   = "SEMANTIC_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeImportError     = "IMPORT_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"

	// Server errors (5xx)
	CodeCorruptData   = "CORRUPT_DATA"
	CodeStorageError  = "STORAGE_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

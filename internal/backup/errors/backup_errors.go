package backuperrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var ErrMalformedImport = apperror.New(
	apperror.CodeImportError,
	"Import file is malformed, no data was changed",
	http.StatusBadRequest,
)

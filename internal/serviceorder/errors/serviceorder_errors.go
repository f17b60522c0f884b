package serviceordererrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrServiceOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Service order not found",
		http.StatusNotFound,
	)
	ErrInvalidCreatedDate = apperror.Semantic(
		"Invalid creation date, expected YYYY-MM-DD",
	)
	ErrInvalidDueDate = apperror.Semantic(
		"Invalid due date, expected YYYY-MM-DD",
	)
	ErrDueBeforeCreated = apperror.Semantic(
		"Due date cannot be before the creation date",
	)
	ErrNegativeEstimatedHours = apperror.Semantic(
		"Estimated hours cannot be negative",
	)
)

package equipmenterrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrEquipmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment not found",
		http.StatusNotFound,
	)
	ErrInvalidPurchaseDate = apperror.Semantic(
		"Invalid purchase date, expected YYYY-MM-DD",
	)
	ErrPurchaseDateInFuture = apperror.Semantic(
		"Purchase date cannot be in the future",
	)
)

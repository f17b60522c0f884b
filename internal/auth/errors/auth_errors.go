package autherrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrUserInactive = apperror.New(
		apperror.CodeUnauthorized,
		"Account is deactivated",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Current password does not match",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)
	ErrPasswordTooShort = apperror.Semantic(
		"Password must have at least 6 characters",
	)
	ErrInvalidRole = apperror.Semantic(
		"Unknown role",
	)
)

package employeeerrors

import (
	"net/http"

	"go-erp/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidSalary = apperror.Semantic(
		"Salary must be a number",
	)
	ErrSalaryNotPositive = apperror.Semantic(
		"Salary must be greater than zero",
	)
	ErrInvalidHireDate = apperror.Semantic(
		"Invalid hire date, expected YYYY-MM-DD",
	)
	ErrHireDateInFuture = apperror.Semantic(
		"Hire date cannot be in the future",
	)
)

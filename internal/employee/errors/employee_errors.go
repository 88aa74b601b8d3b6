package employeeerrors

import (
	"net/http"

	"hr-dashboard/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same work email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidationFailed,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDOB = apperror.New(
		apperror.CodeValidationFailed,
		"Invalid dob format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeValidationFailed,
		"Department does not exist",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeValidationFailed,
		"User does not exist",
		http.StatusBadRequest,
	)
)

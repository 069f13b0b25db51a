package employeeerrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"a valid 10-digit phone number is required",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid joining date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicatePhone = apperror.New(
		apperror.CodeConflict,
		"an employee with this phone number already exists in this organization",
		http.StatusConflict,
	)
	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists in this organization",
		http.StatusConflict,
	)
)

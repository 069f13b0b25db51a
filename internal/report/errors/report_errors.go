package reporterrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrInvalidReportDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be a valid YYYY-MM-DD value",
		http.StatusBadRequest,
	)
	ErrMonthRequiresYear = apperror.New(
		apperror.CodeInvalidInput,
		"month filter requires a year",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a positive number",
		http.StatusBadRequest,
	)
	ErrRangeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a date, a year+month, or a year filter is required",
		http.StatusBadRequest,
	)
)

package holidayerrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidInput,
		"holiday dates must be valid YYYY-MM-DD values",
		http.StatusBadRequest,
	)
	ErrInvalidHolidayRange = apperror.New(
		apperror.CodeInvalidInput,
		"holiday to_date must not precede from_date",
		http.StatusBadRequest,
	)
	ErrHolidayNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"holiday name is required",
		http.StatusBadRequest,
	)
)

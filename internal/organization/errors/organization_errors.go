package organizationerrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"organization not found",
		http.StatusNotFound,
	)
	ErrInvalidTimezone = apperror.New(
		apperror.CodeInvalidInput,
		"timezone must be a valid IANA zone name",
		http.StatusBadRequest,
	)
	ErrInvalidShiftStart = apperror.New(
		apperror.CodeInvalidInput,
		"shift_start must be in HH:MM format",
		http.StatusBadRequest,
	)
	ErrInvalidHalfDayHours = apperror.New(
		apperror.CodeInvalidInput,
		"half_day_hours must be greater than 0",
		http.StatusBadRequest,
	)
	ErrInvalidWeeklyOffDay = apperror.New(
		apperror.CodeInvalidInput,
		"weekly_off_day must be between 0 (Sunday) and 6 (Saturday)",
		http.StatusBadRequest,
	)
)

package attendanceerrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrMissingGeolocation = apperror.New(
		apperror.CodeInvalidInput,
		"latitude, longitude and address are required to punch",
		http.StatusBadRequest,
	)
	ErrPunchTooSoon = apperror.New(
		apperror.CodeInvalidInput,
		"punch out must be at least a minute after punch in",
		http.StatusBadRequest,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"date filters must be valid YYYY-MM-DD values",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
)

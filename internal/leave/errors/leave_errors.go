package leaveerrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveDates = apperror.New(
		apperror.CodeInvalidInput,
		"leave dates must be valid YYYY-MM-DD values with to_date not before from_date",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"an overlapping leave request already exists for this period",
		http.StatusConflict,
	)
	ErrBalanceNotAssigned = apperror.New(
		apperror.CodeInvalidInput,
		"leave balance has not been assigned for this leave type",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance for the requested period",
		http.StatusUnprocessableEntity,
	)
	ErrLeaveAlreadyDecided = apperror.New(
		apperror.CodeConflict,
		"leave request has already been decided",
		http.StatusConflict,
	)
	ErrDuplicateLeaveTypeCode = apperror.New(
		apperror.CodeConflict,
		"a leave type with this code already exists",
		http.StatusConflict,
	)
)

package regularizationerrors

import (
	"net/http"

	"github.com/tech1210/empthics-backend/internal/shared/apperror"
)

var (
	ErrRegularizationDisabled = apperror.New(
		apperror.CodeForbidden,
		"attendance regularization is disabled for this organization",
		http.StatusForbidden,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"regularization request not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be a valid YYYY-MM-DD value",
		http.StatusBadRequest,
	)
	ErrInvalidRequestedTimes = apperror.New(
		apperror.CodeInvalidInput,
		"requested punch times must be valid HH:MM values with punch out after punch in",
		http.StatusBadRequest,
	)
	ErrPendingRequestExists = apperror.New(
		apperror.CodeConflict,
		"a pending regularization request already exists for this date",
		http.StatusConflict,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeConflict,
		"regularization request has already been reviewed",
		http.StatusConflict,
	)
	ErrRemarksRequired = apperror.New(
		apperror.CodeInvalidInput,
		"remarks are required when rejecting a request",
		http.StatusBadRequest,
	)
)

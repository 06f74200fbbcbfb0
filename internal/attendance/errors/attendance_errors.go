package attendanceerrors

import (
	"net/http"

	"kamila-hrm/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPunchType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid punch type, expected in or out",
		http.StatusBadRequest,
	)
	ErrInvalidEventTime = apperror.New(
		apperror.CodeInvalidInput,
		"invalid event time, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"an open punch already exists for this employee",
		http.StatusConflict,
	)
	ErrNoOpenPunch = apperror.New(
		apperror.CodeNotFound,
		"no open punch found for this employee",
		http.StatusNotFound,
	)
)

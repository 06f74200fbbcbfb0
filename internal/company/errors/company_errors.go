package companyerrors

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
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"company not found",
		http.StatusNotFound,
	)
	ErrInvalidLicenseStatus = apperror.New(
		apperror.CodeInvalidInput,
		"license status must be active or suspended",
		http.StatusBadRequest,
	)
)

package stafferrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff record not found",
		http.StatusNotFound,
	)

	ErrStaffAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A staff record with the same email already exists",
		http.StatusConflict,
	)

	ErrStaffLookupFailed = apperror.New(
		apperror.CodeInternalError,
		"Staff lookup failed",
		http.StatusInternalServerError,
	)
)

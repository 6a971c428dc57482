package officeerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrOfficeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Office not found",
		http.StatusNotFound,
	)

	ErrOfficeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An office with this name already exists",
		http.StatusConflict,
	)
)

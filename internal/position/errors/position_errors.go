package positionerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)

	ErrPositionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A position with this name already exists",
		http.StatusConflict,
	)
)

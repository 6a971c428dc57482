package profileerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A user with the same email already exists",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be either admin or user",
		http.StatusBadRequest,
	)
)

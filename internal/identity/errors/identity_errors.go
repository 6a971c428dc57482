package identityerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrIdentityExists = apperror.New(
		apperror.CodeConflict,
		"An account with this email already exists",
		http.StatusConflict,
	)

	ErrIdentityNotFound = apperror.New(
		apperror.CodeNotFound,
		"Account not found",
		http.StatusNotFound,
	)

	ErrTokenInvalid = apperror.New(
		apperror.CodeUnauthorized,
		"Bearer token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrProviderUnavailable = apperror.New(
		apperror.CodeUpstreamFailure,
		"Identity provider request failed",
		http.StatusBadGateway,
	)
)

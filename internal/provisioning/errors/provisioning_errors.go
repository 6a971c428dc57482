package provisioningerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrAdminRequired = apperror.New(
		apperror.CodeForbidden,
		"Only administrators may manage accounts",
		http.StatusForbidden,
	)

	ErrIdentityCreationFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to create the account with the identity provider",
		http.StatusBadGateway,
	)

	ErrProfileCreationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to create the user profile",
		http.StatusInternalServerError,
	)

	ErrStaffCreationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to create the staff record",
		http.StatusInternalServerError,
	)

	ErrInvitationFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to send the invitation message",
		http.StatusBadGateway,
	)

	ErrCannotDeleteAdmin = apperror.New(
		apperror.CodeForbidden,
		"Administrator accounts cannot be deleted",
		http.StatusForbidden,
	)

	ErrIdentityDeletionFailed = apperror.New(
		apperror.CodeUpstreamFailure,
		"Failed to delete the account at the identity provider",
		http.StatusBadGateway,
	)
)

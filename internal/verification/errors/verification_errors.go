package verificationerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrCodeInvalidOrExpired = apperror.New(
		apperror.CodeGone,
		"Verification code is invalid or has expired",
		http.StatusGone,
	)

	ErrCodeIssueFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue a verification code",
		http.StatusInternalServerError,
	)
)

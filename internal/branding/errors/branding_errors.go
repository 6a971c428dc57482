package brandingerrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var ErrBrandingNotConfigured = apperror.New(
	apperror.CodeNotFound,
	"Branding has not been configured",
	http.StatusNotFound,
)

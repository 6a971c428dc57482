package documenterrors

import (
	"net/http"

	"doctrack/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)

	ErrNotYourDocument = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this document",
		http.StatusForbidden,
	)

	ErrNotAssignedApprover = apperror.New(
		apperror.CodeForbidden,
		"Only the assigned approver may change this document's status",
		http.StatusForbidden,
	)

	ErrApproverNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"The chosen approver does not exist",
		http.StatusBadRequest,
	)

	ErrInvalidApprover = apperror.New(
		apperror.CodeInvalidInput,
		"Documents must be submitted to an administrator",
		http.StatusBadRequest,
	)

	ErrDuplicateReference = apperror.New(
		apperror.CodeConflict,
		"A document with this reference number already exists",
		http.StatusConflict,
	)
)

package document

import "time"

type SubmitFileRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	StoragePath string `json:"storage_path" binding:"required"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,gt=0"`
	ContentType string `json:"content_type"`
}

type SubmitDocumentRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	ApproverID  string              `json:"approver_id" binding:"required"`
	Files       []SubmitFileRequest `json:"files" binding:"omitempty,dive"`
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending approved rejected needs_changes"`
	ReviewNote *string `json:"review_note"`
}

type AddFileRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	StoragePath string `json:"storage_path" binding:"required"`
	SizeBytes   int64  `json:"size_bytes" binding:"required,gt=0"`
	ContentType string `json:"content_type"`
}

type FileResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	StoragePath string `json:"storage_path"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type,omitempty"`
}

type DocumentResponse struct {
	ID              string         `json:"id"`
	ReferenceNumber string         `json:"reference_number"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Status          string         `json:"status"`
	SubmitterID     string         `json:"submitter_id"`
	ApproverID      string         `json:"approver_id"`
	ReviewNote      *string        `json:"review_note,omitempty"`
	Files           []FileResponse `json:"files,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

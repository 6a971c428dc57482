package document

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending      = "pending"
	StatusApproved     = "approved"
	StatusRejected     = "rejected"
	StatusNeedsChanges = "needs_changes"
)

// Any status may be set directly by the approver; there is no transition
// table.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusNeedsChanges:
		return true
	}
	return false
}

type Document struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ReferenceNumber string    `gorm:"column:reference_number;type:varchar(30);not null;uniqueIndex:uq_document_reference"`
	Title           string    `gorm:"column:title;type:varchar(255);not null"`
	Description     string    `gorm:"column:description;type:text"`
	Status          string    `gorm:"column:status;type:varchar(20);not null;default:pending"`
	SubmitterID     string    `gorm:"column:submitter_id;type:text;not null;index"`
	ApproverID      string    `gorm:"column:approver_id;type:text;not null;index"`
	ReviewNote      *string   `gorm:"column:review_note;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Files []DocumentFile `gorm:"foreignKey:DocumentID;references:ID"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentFile holds attachment metadata only. Blob storage lives outside
// this service; storage_path points into whatever bucket the frontend
// uploaded to.
type DocumentFile struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentID  uuid.UUID `gorm:"column:document_id;type:uuid;not null;index"`
	FileName    string    `gorm:"column:file_name;type:varchar(255);not null"`
	StoragePath string    `gorm:"column:storage_path;type:text;not null"`
	SizeBytes   int64     `gorm:"column:size_bytes;not null"`
	ContentType string    `gorm:"column:content_type;type:varchar(127)"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (DocumentFile) TableName() string {
	return "document_files"
}

package events

import "time"

const DocumentStatusTopic = "docs.document.status.v1"

type DocumentStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	DocumentID     string    `json:"document_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	SubmitterID    string    `json:"submitter_id"`
	SubmitterEmail string    `json:"submitter_email"`
	ChangedBy      string    `json:"changed_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}

package events

import "time"

const StaffInvitedTopic = "docs.staff.invited.v1"

type StaffInvitedEvent struct {
	EventType  string    `json:"event_type"`
	StaffID    string    `json:"staff_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	InvitedBy  string    `json:"invited_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

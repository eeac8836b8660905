package models

import "time"

const (
	RSVPStatusPending   = "pending"
	RSVPStatusConfirmed = "confirmed"
	RSVPStatusCancelled = "cancelled"
)

// At most one RSVP exists per (event, user) pair; the storage layer
// enforces this with a unique index.
type RSVP struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RSVPPatch carries partial RSVP updates; nil fields are left untouched.
type RSVPPatch struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	Notes  *string `json:"notes"`
}

// RSVPWithUser is the attendee view of an RSVP: the RSVP joined with a
// minimal projection of its owner. The password hash never appears here.
type RSVPWithUser struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	User      UserSummary `json:"user"`
}

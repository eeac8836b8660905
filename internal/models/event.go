package models

import "time"

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event.ParticipantCount is denormalized; it is only ever changed through
// the storage counter primitive, never assigned from application state.
type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	EventType            string     `json:"event_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	Location             string     `json:"location,omitempty"`
	IsOnline             bool       `json:"is_online"`
	MaxParticipants      *int       `json:"max_participants,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	Tags                 []string   `json:"tags"`
	ImageURL             string     `json:"image_url,omitempty"`
	Requirements         []string   `json:"requirements"`
	Status               string     `json:"status"`
	CreatedBy            string     `json:"created_by"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	ParticipantCount     int        `json:"participant_count"`
}

// EventPatch carries partial event updates; nil fields are left untouched.
type EventPatch struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	EventType            *string    `json:"event_type"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	Location             *string    `json:"location"`
	IsOnline             *bool      `json:"is_online"`
	MaxParticipants      *int       `json:"max_participants"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	Tags                 []string   `json:"tags"`
	ImageURL             *string    `json:"image_url"`
	Requirements         []string   `json:"requirements"`
	Status               *string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

package storage

import "errors"

// Sentinel errors shared between the postgres implementation and the
// HTTP handlers. Uniqueness conflicts originate from store-level unique
// indexes, so concurrent first-writers resolve to a single winner.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEventNotFound      = errors.New("event not found")
	ErrRSVPNotFound       = errors.New("rsvp not found")
	ErrRSVPExists         = errors.New("rsvp already exists")
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// EventFilter narrows an event listing. Zero values mean "no filter";
// Limit is capped by the storage layer.
type EventFilter struct {
	Status    string
	EventType string
	Skip      int
	Limit     int
}

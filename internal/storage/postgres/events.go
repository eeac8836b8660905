package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const eventColumns = `id, title, description, event_type, start_date, end_date,
		location, is_online, max_participants, registration_deadline, tags,
		image_url, requirements, status, created_by, created_at, updated_at,
		participant_count`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventType,
		&e.StartDate,
		&e.EndDate,
		&e.Location,
		&e.IsOnline,
		&e.MaxParticipants,
		&e.RegistrationDeadline,
		pq.Array(&e.Tags),
		&e.ImageURL,
		pq.Array(&e.Requirements),
		&e.Status,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ParticipantCount,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Storage) CreateEvent(event models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (id, title, description, event_type, start_date, end_date,
			location, is_online, max_participants, registration_deadline, tags,
			image_url, requirements, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + eventColumns

	created, err := scanEvent(s.DB.QueryRow(query,
		uuid.NewString(),
		event.Title,
		event.Description,
		event.EventType,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.IsOnline,
		event.MaxParticipants,
		event.RegistrationDeadline,
		pq.Array(event.Tags),
		event.ImageURL,
		pq.Array(event.Requirements),
		event.Status,
		event.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (s *Storage) Event(id string) (*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) Events(filter storage.EventFilter) ([]models.Event, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE ($1 = '' OR status = $1)
			AND ($2 = '' OR event_type = $2)
		ORDER BY start_date ASC
		OFFSET $3 LIMIT $4`

	rows, err := s.DB.Query(query, filter.Status, filter.EventType, filter.Skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// UpdateEvent merges only the fields present in the patch; nil patch
// fields leave the stored values untouched.
func (s *Storage) UpdateEvent(id string, patch models.EventPatch) (*models.Event, error) {
	query := `
		UPDATE events SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			event_type = COALESCE($4, event_type),
			start_date = COALESCE($5, start_date),
			end_date = COALESCE($6, end_date),
			location = COALESCE($7, location),
			is_online = COALESCE($8, is_online),
			max_participants = COALESCE($9, max_participants),
			registration_deadline = COALESCE($10, registration_deadline),
			tags = COALESCE($11, tags),
			image_url = COALESCE($12, image_url),
			requirements = COALESCE($13, requirements),
			status = COALESCE($14, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + eventColumns

	var tags, requirements interface{}
	if patch.Tags != nil {
		tags = pq.Array(patch.Tags)
	}
	if patch.Requirements != nil {
		requirements = pq.Array(patch.Requirements)
	}

	event, err := scanEvent(s.DB.QueryRow(query,
		id,
		patch.Title,
		patch.Description,
		patch.EventType,
		patch.StartDate,
		patch.EndDate,
		patch.Location,
		patch.IsOnline,
		patch.MaxParticipants,
		patch.RegistrationDeadline,
		tags,
		patch.ImageURL,
		requirements,
		patch.Status,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// DeleteEvent removes the event and every RSVP referencing it in one
// transaction, so a crash cannot leave orphaned RSVP rows behind.
func (s *Storage) DeleteEvent(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// child rows go first: rsvps.event_id references events(id)
	_, err = tx.Exec(`DELETE FROM rsvps WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event rsvps: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return tx.Commit()
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func adjustParticipantCount(db execer, eventID string, delta int) error {
	query := `
		UPDATE events
		SET participant_count = participant_count + $2
		WHERE id = $1`

	result, err := db.Exec(query, eventID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust participant count: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to adjust participant count: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// ReconcileParticipantCounts recomputes every drifted counter from the
// rsvps table and returns the number of events corrected. The counter is
// treated as a cache; the RSVP rows are the source of truth.
func (s *Storage) ReconcileParticipantCounts() (int64, error) {
	query := `
		UPDATE events e
		SET participant_count = actual.cnt
		FROM (
			SELECT e2.id, COUNT(r.id) AS cnt
			FROM events e2
			LEFT JOIN rsvps r ON r.event_id = e2.id
			GROUP BY e2.id
		) actual
		WHERE actual.id = e.id AND e.participant_count <> actual.cnt`

	result, err := s.DB.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile participant counts: %w", err)
	}

	corrected, _ := result.RowsAffected()

	return corrected, nil
}

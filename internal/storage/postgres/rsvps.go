package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
)

const rsvpColumns = `id, event_id, user_id, status, notes, created_at, updated_at`

func scanRSVP(row interface{ Scan(...interface{}) error }) (*models.RSVP, error) {
	var r models.RSVP
	err := row.Scan(
		&r.ID,
		&r.EventID,
		&r.UserID,
		&r.Status,
		&r.Notes,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// CreateRSVP inserts the RSVP and increments the event counter in one
// transaction. The unique index on (event_id, user_id) is the
// authoritative duplicate guard: under concurrent first-time RSVPs from
// the same user exactly one insert wins.
func (s *Storage) CreateRSVP(eventID, userID, notes string) (*models.RSVP, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return nil, storage.ErrEventNotFound
	}

	query := `
		INSERT INTO rsvps (id, event_id, user_id, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + rsvpColumns

	rsvp, err := scanRSVP(tx.QueryRow(query,
		uuid.NewString(),
		eventID,
		userID,
		models.RSVPStatusPending,
		notes,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrRSVPExists
		}
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	if err = adjustParticipantCount(tx, eventID, 1); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rsvp: %w", err)
	}

	return rsvp, nil
}

// UpdateRSVP applies a partial patch to the caller's own RSVP. An RSVP
// owned by someone else is reported as not found, never as forbidden.
func (s *Storage) UpdateRSVP(id, userID string, patch models.RSVPPatch) (*models.RSVP, error) {
	query := `
		UPDATE rsvps SET
			status = COALESCE($3, status),
			notes = COALESCE($4, notes),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + rsvpColumns

	rsvp, err := scanRSVP(s.DB.QueryRow(query, id, userID, patch.Status, patch.Notes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("failed to update rsvp: %w", err)
	}

	return rsvp, nil
}

// DeleteRSVP removes the caller's own RSVP and decrements the event
// counter in one transaction, so the counter cannot drift if the process
// dies between the two writes.
func (s *Storage) DeleteRSVP(id, userID string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	err = tx.QueryRow(`
		DELETE FROM rsvps
		WHERE id = $1 AND user_id = $2
		RETURNING event_id`, id, userID).Scan(&eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrRSVPNotFound
		}
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}

	if err = adjustParticipantCount(tx, eventID, -1); err != nil {
		return err
	}

	return tx.Commit()
}

// EventRSVPs lists an event's RSVPs joined with a minimal projection of
// each owner. The password hash is never selected.
func (s *Storage) EventRSVPs(eventID string) ([]models.RSVPWithUser, error) {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return nil, storage.ErrEventNotFound
	}

	query := `
		SELECT r.id, r.status, r.notes, r.created_at,
			u.id, u.full_name, u.email, u.avatar_url
		FROM rsvps r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []models.RSVPWithUser
	for rows.Next() {
		var r models.RSVPWithUser
		err = rows.Scan(
			&r.ID,
			&r.Status,
			&r.Notes,
			&r.CreatedAt,
			&r.User.ID,
			&r.User.FullName,
			&r.User.Email,
			&r.User.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rsvps: %w", err)
	}

	return rsvps, nil
}

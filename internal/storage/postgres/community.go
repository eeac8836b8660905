package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SubscribeNewsletter subscribes an email, reactivating a previously
// unsubscribed address instead of rejecting it. Returns true when an
// existing subscription was reactivated.
func (s *Storage) SubscribeNewsletter(email, fullName string, preferences []string) (bool, error) {
	var isActive bool
	err := s.DB.QueryRow(`
		SELECT is_active FROM newsletter_subscribers
		WHERE lower(email) = lower($1)`, email).Scan(&isActive)

	switch {
	case err == nil:
		if isActive {
			return false, storage.ErrAlreadySubscribed
		}

		_, err = s.DB.Exec(`
			UPDATE newsletter_subscribers
			SET is_active = true, subscribed_at = NOW()
			WHERE lower(email) = lower($1)`, email)
		if err != nil {
			return false, fmt.Errorf("failed to reactivate subscription: %w", err)
		}

		return true, nil

	case errors.Is(err, sql.ErrNoRows):
		_, err = s.DB.Exec(`
			INSERT INTO newsletter_subscribers (id, email, full_name, preferences)
			VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), email, fullName, pq.Array(preferences))
		if err != nil {
			if isUniqueViolation(err) {
				return false, storage.ErrAlreadySubscribed
			}
			return false, fmt.Errorf("failed to subscribe: %w", err)
		}

		return false, nil

	default:
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
}

func (s *Storage) UnsubscribeNewsletter(email string) error {
	result, err := s.DB.Exec(`
		UPDATE newsletter_subscribers
		SET is_active = false
		WHERE lower(email) = lower($1)`, email)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrSubscriberNotFound
	}

	return nil
}

func (s *Storage) SaveContactMessage(name, email, subject, message string) (string, error) {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id string
	err := s.DB.QueryRow(query, uuid.NewString(), name, email, subject, message).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save contact message: %w", err)
	}

	return id, nil
}

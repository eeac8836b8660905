package postgres

import (
	"testing"

	"communityHub/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rsvps.event_id carries a foreign key to events, checked at the end of
// each statement. The child rows must be gone before the parent row is
// deleted or the whole transaction fails.
func TestDeleteEventRemovesRSVPsBeforeEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM rsvps WHERE event_id = \$1`).
		WithArgs("event-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("event-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteEvent("event-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEventNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM rsvps WHERE event_id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = s.DeleteEvent("missing")
	require.ErrorIs(t, err, storage.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"database/sql"
	"time"

	"github.com/Sharjeel-22/request-management-system/internal/domain"
	"github.com/Sharjeel-22/request-management-system/pkg/reqman/core"
)

// SessionRepository persists login sessions: the server-side analogue
// of the browser's localStorage token/session flags.
type SessionRepository struct {
	db    *sql.DB
	clock core.Clock
}

func NewSessionRepository(db *sql.DB, clock core.Clock) *SessionRepository {
	return &SessionRepository{db: db, clock: clock}
}

func (r *SessionRepository) Save(s *domain.Session) error {
	query := `
        INSERT INTO sessions (id, user_id, role, email, name, login_time, expiry)
        VALUES (` + placeholder(1) + `,` + placeholder(2) + `,` + placeholder(3) + `,` + placeholder(4) + `,` + placeholder(5) + `,` + placeholder(6) + `,` + placeholder(7) + `)
    `
	_, err := r.db.Exec(query,
		s.ID,
		s.UserID,
		s.Role,
		s.Email,
		s.Name,
		formatDateInDatabase(s.LoginTime),
		formatDateInDatabase(s.Expiry),
	)
	return err
}

// FindLive fetches a session whose expiry is still in the future.
// Returns (nil, nil) when absent or expired.
func (r *SessionRepository) FindLive(id string, now time.Time) (*domain.Session, error) {
	query := `
        SELECT id, user_id, role, email, name, login_time, expiry
        FROM sessions
        WHERE id = ` + placeholder(1) + ` AND ` + dateAfter("expiry", now) + `
        LIMIT 1
    `
	var s domain.Session
	err := r.db.QueryRow(query, id).Scan(
		&s.ID,
		&s.UserID,
		&s.Role,
		&s.Email,
		&s.Name,
		&s.LoginTime,
		&s.Expiry,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session row; logout.
func (r *SessionRepository) Delete(id string) error {
	query := `
        DELETE FROM sessions
        WHERE id = ` + placeholder(1) + `
    `
	_, err := r.db.Exec(query, id)
	return err
}

// DeleteExpired prunes sessions past their expiry.
func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	query := `
        DELETE FROM sessions
        WHERE NOT (` + dateAfter("expiry", now) + `)
    `
	res, err := r.db.Exec(query)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

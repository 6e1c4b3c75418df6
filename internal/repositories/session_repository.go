package repositories

import (
	"database/sql"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// SessionRepository wraps DB access for login sessions. Session ids are
// uuids minted by the auth service; the session_type column starts empty
// and accepts exactly one write.
type SessionRepository struct {
	DB *sql.DB
}

func (r SessionRepository) Create(s models.Session) error {
	_, err := r.DB.Exec(`
		INSERT INTO sessions (id, user_id, session_type, issued_at, expires_at)
		VALUES (?, ?, '', ?, ?)
	`, s.ID, s.UserID, s.IssuedAt, s.ExpiresAt)
	return err
}

func (r SessionRepository) GetByID(id string) (models.Session, error) {
	var (
		s       models.Session
		rawType string
	)
	err := r.DB.QueryRow(`
		SELECT id, user_id, session_type, issued_at, expires_at
		FROM sessions
		WHERE id = ?
	`, id).Scan(&s.ID, &s.UserID, &rawType, &s.IssuedAt, &s.ExpiresAt)
	if err != nil {
		return s, err
	}
	// validate on read instead of trusting the raw column value
	actingRole, ok := domain.ParseActingRole(rawType)
	if !ok {
		actingRole = domain.ActingUnset
	}
	s.SessionType = actingRole
	return s, nil
}

// SetType writes the acting role once. The guarded UPDATE only matches an
// unset session, so a second call leaves the stored value alone; callers
// treat that as a no-op success, not an error.
func (r SessionRepository) SetType(id string, role domain.ActingRole) error {
	_, err := r.DB.Exec(`
		UPDATE sessions
		SET session_type = ?
		WHERE id = ? AND session_type = ''
	`, string(role), id)
	return err
}

// DeleteExpired is a housekeeping sweep for stale sessions.
func (r SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

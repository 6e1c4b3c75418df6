package repositories

import (
	"testing"
	"time"

	"marketplace/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSessionSetTypeGuardedUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE sessions").
		WithArgs("DEALERSHIP", "sid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := SessionRepository{DB: db}
	if err := repo.SetType("sid-1", domain.ActingDealership); err != nil {
		t.Fatalf("set type error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSessionGetByIDSanitizesBadType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, session_type").
		WithArgs("sid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "session_type", "issued_at", "expires_at"}).
			AddRow("sid-1", 5, "GARBAGE", now, now.Add(time.Hour)))

	repo := SessionRepository{DB: db}
	s, err := repo.GetByID("sid-1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if s.SessionType != domain.ActingUnset {
		t.Fatalf("expected unset acting role, got %q", s.SessionType)
	}
}

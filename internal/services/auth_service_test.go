package services

import (
	"testing"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func sessionRows(id string, userID int64, sessionType string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "user_id", "session_type", "issued_at", "expires_at"}).
		AddRow(id, userID, sessionType, now, now.Add(time.Hour))
}

func TestSetSessionTypeFirstWriteWins(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	const sid = "11111111-2222-3333-4444-555555555555"

	// first call binds the session
	mock.ExpectExec("UPDATE sessions").
		WithArgs("CLIENT", sid).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, user_id, session_type").
		WithArgs(sid).
		WillReturnRows(sessionRows(sid, 5, "CLIENT"))

	// second call matches no unset row; stored value is reported back
	mock.ExpectExec("UPDATE sessions").
		WithArgs("DEALERSHIP", sid).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, user_id, session_type").
		WithArgs(sid).
		WillReturnRows(sessionRows(sid, 5, "CLIENT"))

	svc := AuthService{Sessions: repositories.SessionRepository{DB: db}}

	role, err := svc.SetSessionType(sid, "client")
	if err != nil {
		t.Fatalf("first set error: %v", err)
	}
	if role != domain.ActingClient {
		t.Fatalf("expected CLIENT, got %q", role)
	}

	role, err = svc.SetSessionType(sid, "DEALERSHIP")
	if err != nil {
		t.Fatalf("second set error: %v", err)
	}
	if role != domain.ActingClient {
		t.Fatalf("expected stored CLIENT to win, got %q", role)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSetSessionTypeRejectsUnknownRole(t *testing.T) {
	svc := AuthService{}
	if _, err := svc.SetSessionType("sid", "MANAGER"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.SetSessionType("sid", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := AuthService{}
	if _, err := svc.Register("Budi", "budi@example.com", "", "short"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

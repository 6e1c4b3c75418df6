package services

import (
	"testing"

	"marketplace/internal/domain"
	"marketplace/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReviewCreateRejectsBadRating(t *testing.T) {
	svc := ReviewService{}
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(buyerCaller(5), 3, ReviewInput{Rating: rating})
		if !domain.IsValidation(err) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestReviewCreateMissingGarageNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs(int64(5), 4, "solid work", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := ReviewService{Repo: repositories.ReviewRepository{DB: db}}
	_, err = svc.Create(buyerCaller(5), 3, ReviewInput{Rating: 4, Comment: "solid work"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReviewDeleteByNonAuthorNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM reviews").
		WithArgs(int64(11), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := ReviewService{Repo: repositories.ReviewRepository{DB: db}}
	if err := svc.Delete(buyerCaller(99), 11); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReviewDeleteByAdminSkipsOwnership(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM reviews").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	admin := domain.Caller{UserID: 1, Role: domain.RoleAdmin}
	svc := ReviewService{Repo: repositories.ReviewRepository{DB: db}}
	if err := svc.Delete(admin, 11); err != nil {
		t.Fatalf("admin delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

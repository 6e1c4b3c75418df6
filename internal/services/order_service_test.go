package services

import (
	"testing"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func orderRows(id, userID, vehicleID, dealershipID int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "vehicle_id", "status", "created_at",
		"name", "phone", "brand", "model", "price", "dealership_id",
	}).AddRow(id, userID, vehicleID, status, time.Now(), "Budi", "0812", "Toyota", "Avanza", 150000000, dealershipID)
}

func tenantCaller(userID, dealershipID domain.ID) domain.Caller {
	return domain.Caller{
		UserID:       userID,
		Role:         domain.RoleUser,
		ActingRole:   domain.ActingDealership,
		DealershipID: &dealershipID,
	}
}

func buyerCaller(userID domain.ID) domain.Caller {
	return domain.Caller{UserID: userID, Role: domain.RoleUser, ActingRole: domain.ActingClient}
}

func TestOrderCreatePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO purchase_orders").
		WithArgs(int64(5), int64(9)).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery("SELECT o.id").
		WithArgs(int64(42)).
		WillReturnRows(orderRows(42, 5, 9, 3, "pending"))

	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	o, err := svc.Create(buyerCaller(5), OrderInput{VehicleID: 9})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if o.Status != domain.OrderPending {
		t.Fatalf("expected pending, got %s", o.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreateUnavailableVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// insert matches no row: listing gone or flagged unavailable
	mock.ExpectExec("INSERT INTO purchase_orders").
		WithArgs(int64(5), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	_, err = svc.Create(buyerCaller(5), OrderInput{VehicleID: 9})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderBuyerCannotConfirm(t *testing.T) {
	svc := OrderService{}
	_, err := svc.UpdateStatus(buyerCaller(5), 42, "confirmed")
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestOrderUpdateStatusRejectsPendingTarget(t *testing.T) {
	svc := OrderService{}
	_, err := svc.UpdateStatus(buyerCaller(5), 42, "pending")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.UpdateStatus(buyerCaller(5), 42, "shipped")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderSellerConfirm(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE purchase_orders o").
		WithArgs("confirmed", int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT o.id").
		WithArgs(int64(42)).
		WillReturnRows(orderRows(42, 5, 9, 3, "confirmed"))

	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	o, err := svc.UpdateStatus(tenantCaller(7, 3), 42, "confirmed")
	if err != nil {
		t.Fatalf("confirm error: %v", err)
	}
	if o.Status != domain.OrderConfirmed {
		t.Fatalf("expected confirmed, got %s", o.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCancelAfterConfirmNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// guarded update finds no pending row; buyer fallback finds none either
	mock.ExpectExec("UPDATE purchase_orders o").
		WithArgs("cancelled", int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE purchase_orders").
		WithArgs(int64(42), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	_, err = svc.UpdateStatus(tenantCaller(7, 3), 42, "cancelled")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderCancelByNonBuyerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE purchase_orders").
		WithArgs(int64(42), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	_, err = svc.Cancel(buyerCaller(99), 42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderAdminConfirmBypassesOwnership(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE purchase_orders").
		WithArgs("confirmed", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT o.id").
		WithArgs(int64(42)).
		WillReturnRows(orderRows(42, 5, 9, 3, "confirmed"))

	admin := domain.Caller{UserID: 1, Role: domain.RoleAdmin, ActingRole: domain.ActingClient}
	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	o, err := svc.UpdateStatus(admin, 42, "confirmed")
	if err != nil {
		t.Fatalf("admin confirm error: %v", err)
	}
	if o.Status != domain.OrderConfirmed {
		t.Fatalf("expected confirmed, got %s", o.Status)
	}
}

func TestOrderGetHiddenFromStrangers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT o.id").
		WithArgs(int64(42)).
		WillReturnRows(orderRows(42, 5, 9, 3, "pending"))

	svc := OrderService{Repo: repositories.PurchaseOrderRepository{DB: db}}
	_, err = svc.Get(buyerCaller(99), 42)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

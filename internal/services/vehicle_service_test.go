package services

import (
	"testing"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func vehicleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "dealership_id", "name", "brand", "model", "year", "price",
		"description", "available", "created_at",
	})
}

func TestVehicleListMineScopedToTenant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1))
	mock.ExpectQuery("SELECT v.id").
		WithArgs(int64(3), 10, 0).
		WillReturnRows(vehicleRows().
			AddRow(11, 3, "Mobil Jaya", "Toyota", "Avanza", 2022, 150000000, "", true, time.Now()))

	svc := VehicleService{Repo: repositories.VehicleRepository{DB: db}}
	res, err := svc.ListMine(tenantCaller(7, 3), "", 1, 10)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(res.Data) != 1 || res.Data[0].DealershipID != 3 {
		t.Fatalf("unexpected rows: %+v", res.Data)
	}
	if res.Meta.Total != 1 || res.Meta.From != 1 || res.Meta.To != 1 {
		t.Fatalf("unexpected meta: %+v", res.Meta)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleListMineRequiresTenant(t *testing.T) {
	svc := VehicleService{}

	if _, err := svc.ListMine(domain.Caller{}, "", 1, 10); !domain.IsUnauthenticated(err) {
		t.Fatalf("anonymous: expected unauthenticated, got %v", err)
	}
	if _, err := svc.ListMine(buyerCaller(7), "", 1, 10); !domain.IsForbidden(err) {
		t.Fatalf("client session: expected forbidden, got %v", err)
	}

	// acting dealership but setup never completed
	unconfigured := domain.Caller{UserID: 7, Role: domain.RoleUser, ActingRole: domain.ActingDealership}
	if _, err := svc.ListMine(unconfigured, "", 1, 10); !domain.IsForbidden(err) {
		t.Fatalf("unconfigured dealership: expected forbidden, got %v", err)
	}
}

func TestVehicleCreateRequiresTenantEvenForAdmin(t *testing.T) {
	svc := VehicleService{}
	admin := domain.Caller{UserID: 1, Role: domain.RoleAdmin, ActingRole: domain.ActingClient}
	_, err := svc.Create(admin, VehicleInput{Brand: "Toyota", Model: "Avanza", Year: 2022, Price: 150000000})
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestVehicleUpdateUnownedNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// ownership is in the WHERE clause, so an unowned row updates nothing
	mock.ExpectExec("UPDATE vehicles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := VehicleService{Repo: repositories.VehicleRepository{DB: db}}
	in := VehicleInput{Brand: "Toyota", Model: "Avanza", Year: 2022, Price: 150000000}
	_, err = svc.Update(tenantCaller(7, 3), 11, in)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVehicleDeleteUnownedNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM vehicles").
		WithArgs(int64(11), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := VehicleService{Repo: repositories.VehicleRepository{DB: db}}
	if err := svc.Delete(tenantCaller(7, 3), 11); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestVehicleInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   VehicleInput
	}{
		{"blank brand", VehicleInput{Brand: " ", Model: "Avanza", Year: 2022, Price: 1}},
		{"year too old", VehicleInput{Brand: "Toyota", Model: "Avanza", Year: 1850, Price: 1}},
		{"zero price", VehicleInput{Brand: "Toyota", Model: "Avanza", Year: 2022, Price: 0}},
	}
	svc := VehicleService{}
	for _, tc := range cases {
		if _, err := svc.Create(tenantCaller(7, 3), tc.in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

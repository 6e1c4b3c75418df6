package services

import (
	"testing"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

func TestDocsServiceInvoices(t *testing.T) {
	svc := DocsService{}

	order := models.PurchaseOrder{
		ID:           42,
		Status:       domain.OrderConfirmed,
		BuyerName:    "Budi",
		BuyerPhone:   "0812",
		VehicleBrand: "Toyota",
		VehicleModel: "Avanza",
		VehiclePrice: 150000000,
		CreatedAt:    time.Now(),
	}
	pdf, filename, err := svc.OrderInvoice(order)
	if err != nil {
		t.Fatalf("OrderInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("OrderInvoice returned empty data")
	}

	partOrder := models.PartOrder{
		ID:        7,
		Status:    domain.OrderPending,
		BuyerName: "Budi",
		PartName:  "Brake Pad",
		PartBrand: "Brembo",
		PartPrice: 500000,
		Quantity:  2,
		CreatedAt: time.Now(),
	}
	pdf, filename, err = svc.PartOrderInvoice(partOrder)
	if err != nil {
		t.Fatalf("PartOrderInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("PartOrderInvoice returned empty data")
	}
}

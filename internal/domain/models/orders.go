package models

import (
	"time"

	"marketplace/internal/domain"
)

// PurchaseOrder is a buyer's order over a vehicle listing.
type PurchaseOrder struct {
	ID           domain.ID          `json:"id"`
	UserID       domain.ID          `json:"userId"`
	VehicleID    domain.ID          `json:"vehicleId"`
	Status       domain.OrderStatus `json:"status"`
	BuyerName    string             `json:"buyerName,omitempty"`
	BuyerPhone   string             `json:"buyerPhone,omitempty"`
	VehicleBrand string             `json:"vehicleBrand,omitempty"`
	VehicleModel string             `json:"vehicleModel,omitempty"`
	VehiclePrice int64              `json:"vehiclePrice,omitempty"`
	DealershipID domain.ID          `json:"dealershipId,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// PartOrder is a buyer's order over a spare part listing.
type PartOrder struct {
	ID           domain.ID          `json:"id"`
	UserID       domain.ID          `json:"userId"`
	PartID       domain.ID          `json:"partId"`
	Quantity     int                `json:"quantity"`
	Status       domain.OrderStatus `json:"status"`
	BuyerName    string             `json:"buyerName,omitempty"`
	BuyerPhone   string             `json:"buyerPhone,omitempty"`
	PartName     string             `json:"partName,omitempty"`
	PartBrand    string             `json:"partBrand,omitempty"`
	PartPrice    int64              `json:"partPrice,omitempty"`
	DealershipID domain.ID          `json:"dealershipId,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// Review is an immutable garage rating by an authenticated user.
type Review struct {
	ID         domain.ID `json:"id"`
	UserID     domain.ID `json:"userId"`
	GarageID   domain.ID `json:"garageId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"authorName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

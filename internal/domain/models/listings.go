package models

import (
	"time"

	"marketplace/internal/domain"
)

// Vehicle is a dealership-owned car listing.
type Vehicle struct {
	ID             domain.ID `json:"id"`
	DealershipID   domain.ID `json:"dealershipId"`
	DealershipName string    `json:"dealershipName,omitempty"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Price          int64     `json:"price"`
	Description    string    `json:"description,omitempty"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Part is a dealership-owned spare part listing.
type Part struct {
	ID             domain.ID `json:"id"`
	DealershipID   domain.ID `json:"dealershipId"`
	DealershipName string    `json:"dealershipName,omitempty"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Price          int64     `json:"price"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Garage is a dealership-owned service garage listing.
type Garage struct {
	ID             domain.ID `json:"id"`
	DealershipID   domain.ID `json:"dealershipId"`
	DealershipName string    `json:"dealershipName,omitempty"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"createdAt"`
}

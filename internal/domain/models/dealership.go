package models

import (
	"time"

	"marketplace/internal/domain"
)

// Dealership is the tenant that owns listing resources. Ownership is 1:1
// with a user and never transfers after setup.
type Dealership struct {
	ID        domain.ID `json:"id"`
	UserID    domain.ID `json:"userId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

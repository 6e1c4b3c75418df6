package models

import (
	"time"

	"marketplace/internal/domain"
)

// User is the stable identity behind every session.
type User struct {
	ID        domain.ID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Session binds one login to an identity. SessionType starts unset and is
// written at most once per session by the session-type switch.
type Session struct {
	ID          string            `json:"id"`
	UserID      domain.ID         `json:"userId"`
	SessionType domain.ActingRole `json:"sessionType"`
	IssuedAt    time.Time         `json:"issuedAt"`
	ExpiresAt   time.Time         `json:"expiresAt"`
}

// UserUpdate supports PATCH-style profile edits via key presence.
type UserUpdate struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

package domain

// ID is used across domain entities.
type ID int64

// Role is the identity's base flag stored on the users row.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ActingRole is the per-session role picked after login. It stays unset
// until the session-type switch has run.
type ActingRole string

const (
	ActingUnset      ActingRole = ""
	ActingClient     ActingRole = "CLIENT"
	ActingDealership ActingRole = "DEALERSHIP"
)

// ParseActingRole validates a session-type value read from storage or a
// client payload.
func ParseActingRole(s string) (ActingRole, bool) {
	switch ActingRole(s) {
	case ActingUnset, ActingClient, ActingDealership:
		return ActingRole(s), true
	}
	return ActingUnset, false
}

// OrderStatus is the purchase/part order state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus accepts only known statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderConfirmed || s == OrderCancelled
}

// Caller carries the resolved identity for one request. Services take it
// as an explicit argument; nothing reads it from ambient state.
type Caller struct {
	UserID     ID         `json:"userId"`
	SessionID  string     `json:"sessionId"`
	Name       string     `json:"name"`
	Role       Role       `json:"role"`
	ActingRole ActingRole `json:"actingRole"`
	// DealershipID is set when ActingRole is DEALERSHIP and the identity
	// has completed dealership setup; nil means "not yet configured".
	DealershipID *ID `json:"dealershipId,omitempty"`
}

// IsAdmin reports the base admin flag, which overrides acting role on
// read and status paths.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

// Tenant returns the caller's dealership id, or false when the caller is
// not an onboarded dealership.
func (c Caller) Tenant() (ID, bool) {
	if c.ActingRole != ActingDealership || c.DealershipID == nil {
		return 0, false
	}
	return *c.DealershipID, true
}

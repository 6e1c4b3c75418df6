package services

import (
	"database/sql"
	"errors"

	"marketplace/internal/domain"
	"marketplace/internal/pagination"
)

// Default page sizes per resource family. Policy values, tuned for the
// storefront pages each family feeds.
const (
	defaultListingPageSize = 10
	defaultOrderPageSize   = 10
	defaultReviewPageSize  = 5
)

// ListResult pairs one page of rows with its pagination metadata.
type ListResult[T any] struct {
	Data []T             `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// requireTenant enforces the acting-DEALERSHIP + onboarded-tenant rule
// shared by every listing mutation. Admins get no pass here: creating or
// editing a listing always needs a real tenant behind it.
func requireTenant(caller domain.Caller) (domain.ID, error) {
	if caller.UserID == 0 {
		return 0, domain.UnauthenticatedError{}
	}
	if caller.ActingRole != domain.ActingDealership {
		return 0, domain.ForbiddenError{Msg: "dealership role required"}
	}
	if caller.DealershipID == nil {
		return 0, domain.ForbiddenError{Msg: "dealership not configured"}
	}
	return *caller.DealershipID, nil
}

// requireAuthenticated covers buyer-side operations.
func requireAuthenticated(caller domain.Caller) error {
	if caller.UserID == 0 {
		return domain.UnauthenticatedError{}
	}
	return nil
}

// requireAdmin gates the unscoped admin listings on the base role flag.
func requireAdmin(caller domain.Caller) error {
	if caller.UserID == 0 {
		return domain.UnauthenticatedError{}
	}
	if !caller.IsAdmin() {
		return domain.ForbiddenError{Msg: "admin role required"}
	}
	return nil
}

// notFoundOr maps sql.ErrNoRows onto the merged not-found result and
// wraps anything else as internal. Absent and present-but-unowned rows
// report identically on purpose.
func notFoundOr(err error, resource string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource}
	}
	return domain.InternalError{Msg: "storage error", Err: err}
}

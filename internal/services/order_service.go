package services

import (
	"database/sql"
	"errors"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/pagination"
	"marketplace/internal/repositories"

	"go.uber.org/zap"
)

// OrderService is the access policy plus status workflow for vehicle
// purchase orders. Transitions: pending -> confirmed | cancelled, both
// terminal. Authorization failures at role level are FORBIDDEN; failures
// at row level (absent, unowned, already terminal) are the merged
// NOT_FOUND so callers learn nothing about rows that aren't theirs.
type OrderService struct {
	Repo repositories.PurchaseOrderRepository
	Log  *zap.Logger
}

// OrderInput is the create payload.
type OrderInput struct {
	VehicleID domain.ID `json:"carId" binding:"required"`
}

// Create places a pending order. Availability is re-checked by the
// insert itself; an unavailable or vanished listing reports not-found,
// not a validation error.
func (s OrderService) Create(caller domain.Caller, in OrderInput) (models.PurchaseOrder, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.PurchaseOrder{}, err
	}
	if in.VehicleID <= 0 {
		return models.PurchaseOrder{}, domain.ValidationError{Field: "carId", Msg: "must be set"}
	}
	id, err := s.Repo.Create(caller.UserID, in.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PurchaseOrder{}, domain.NotFoundError{Resource: "vehicle", Err: errors.New("unavailable")}
		}
		return models.PurchaseOrder{}, domain.InternalError{Msg: "failed to create order", Err: err}
	}
	if s.Log != nil {
		s.Log.Info("order created",
			zap.Int64("order_id", int64(id)),
			zap.Int64("user_id", int64(caller.UserID)))
	}
	return s.load(id)
}

// ListMine is the buyer's own orders.
func (s OrderService) ListMine(caller domain.Caller, term, status string, page, pageSize int) (ListResult[models.PurchaseOrder], error) {
	if err := requireAuthenticated(caller); err != nil {
		return ListResult[models.PurchaseOrder]{}, err
	}
	cond := repositories.PurchaseOrderSearch(term, repositories.OrderFilters{Status: status})
	cond.And("o.user_id = ?", caller.UserID)
	return s.list(cond, page, pageSize)
}

// ListSeller is the owning tenant's incoming orders.
func (s OrderService) ListSeller(caller domain.Caller, term, status string, page, pageSize int) (ListResult[models.PurchaseOrder], error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return ListResult[models.PurchaseOrder]{}, err
	}
	cond := repositories.PurchaseOrderSearch(term, repositories.OrderFilters{Status: status})
	cond.And("v.dealership_id = ?", tenantID)
	return s.list(cond, page, pageSize)
}

// AdminList is unscoped.
func (s OrderService) AdminList(caller domain.Caller, term, status string, page, pageSize int) (ListResult[models.PurchaseOrder], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.PurchaseOrder]{}, err
	}
	return s.list(repositories.PurchaseOrderSearch(term, repositories.OrderFilters{Status: status}), page, pageSize)
}

// Get is restricted to the buyer, the selling tenant, or an admin.
func (s OrderService) Get(caller domain.Caller, id domain.ID) (models.PurchaseOrder, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.PurchaseOrder{}, err
	}
	o, err := s.load(id)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	if caller.IsAdmin() || o.UserID == caller.UserID {
		return o, nil
	}
	if tenantID, ok := caller.Tenant(); ok && o.DealershipID == tenantID {
		return o, nil
	}
	return models.PurchaseOrder{}, domain.NotFoundError{Resource: "order"}
}

// UpdateStatus moves a pending order to confirmed or cancelled. Admins
// bypass ownership; the selling tenant transitions through the vehicle
// link; buyers may only cancel their own pending order. Every variant is
// one guarded UPDATE so ownership and state are re-checked at write time.
func (s OrderService) UpdateStatus(caller domain.Caller, id domain.ID, rawTarget string) (models.PurchaseOrder, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.PurchaseOrder{}, err
	}
	target, ok := domain.ParseOrderStatus(rawTarget)
	if !ok || target == domain.OrderPending {
		return models.PurchaseOrder{}, domain.ValidationError{Field: "status", Msg: "must be confirmed or cancelled"}
	}

	var err error
	switch {
	case caller.IsAdmin():
		err = s.Repo.SetStatusAdmin(id, target)
	default:
		tenantID, isTenant := caller.Tenant()
		if isTenant {
			err = s.Repo.SetStatusSeller(id, tenantID, target)
			if errors.Is(err, sql.ErrNoRows) && target == domain.OrderCancelled {
				// a dealership user can still cancel an order they placed
				// as a buyer
				err = s.Repo.CancelByBuyer(id, caller.UserID)
			}
		} else if target == domain.OrderCancelled {
			err = s.Repo.CancelByBuyer(id, caller.UserID)
		} else {
			return models.PurchaseOrder{}, domain.ForbiddenError{Msg: "only the selling dealership or an admin may confirm"}
		}
	}
	if err != nil {
		return models.PurchaseOrder{}, notFoundOr(err, "order")
	}

	if s.Log != nil {
		s.Log.Info("order status changed",
			zap.Int64("order_id", int64(id)),
			zap.String("status", string(target)),
			zap.Int64("user_id", int64(caller.UserID)))
	}
	return s.load(id)
}

// Cancel is the buyer-facing cancel shortcut.
func (s OrderService) Cancel(caller domain.Caller, id domain.ID) (models.PurchaseOrder, error) {
	return s.UpdateStatus(caller, id, string(domain.OrderCancelled))
}

func (s OrderService) load(id domain.ID) (models.PurchaseOrder, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return models.PurchaseOrder{}, notFoundOr(err, "order")
	}
	return o, nil
}

func (s OrderService) list(cond repositories.Cond, page, pageSize int) (ListResult[models.PurchaseOrder], error) {
	p := pagination.Normalize(page, pageSize, defaultOrderPageSize)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.PurchaseOrder]{}, domain.InternalError{Msg: "failed to count orders", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.PurchaseOrder]{}, domain.InternalError{Msg: "failed to list orders", Err: err}
	}
	return ListResult[models.PurchaseOrder]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

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

// PartOrderService mirrors OrderService for spare part orders; the
// workflow and merged not-found semantics are identical.
type PartOrderService struct {
	Repo repositories.PartOrderRepository
	Log  *zap.Logger
}

// PartOrderInput is the create payload.
type PartOrderInput struct {
	PartID   domain.ID `json:"partId" binding:"required"`
	Quantity int       `json:"quantity"`
}

func (s PartOrderService) Create(caller domain.Caller, in PartOrderInput) (models.PartOrder, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.PartOrder{}, err
	}
	if in.PartID <= 0 {
		return models.PartOrder{}, domain.ValidationError{Field: "partId", Msg: "must be set"}
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	id, err := s.Repo.Create(caller.UserID, in.PartID, in.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PartOrder{}, domain.NotFoundError{Resource: "part", Err: errors.New("unavailable")}
		}
		return models.PartOrder{}, domain.InternalError{Msg: "failed to create part order", Err: err}
	}
	if s.Log != nil {
		s.Log.Info("part order created",
			zap.Int64("order_id", int64(id)),
			zap.Int64("user_id", int64(caller.UserID)))
	}
	return s.load(id)
}

func (s PartOrderService) ListMine(caller domain.Caller, term, status string, page, pageSize int) (ListResult[models.PartOrder], error) {
	if err := requireAuthenticated(caller); err != nil {
		return ListResult[models.PartOrder]{}, err
	}
	cond := repositories.PartOrderSearch(term, repositories.OrderFilters{Status: status})
	cond.And("o.user_id = ?", caller.UserID)
	return s.list(cond, page, pageSize)
}

func (s PartOrderService) ListSeller(caller domain.Caller, term, status string, page, pageSize int) (ListResult[models.PartOrder], error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return ListResult[models.PartOrder]{}, err
	}
	cond := repositories.PartOrderSearch(term, repositories.OrderFilters{Status: status})
	cond.And("p.dealership_id = ?", tenantID)
	return s.list(cond, page, pageSize)
}

func (s PartOrderService) AdminList(caller domain.Caller, term, status string, page, pageSize int) (ListResult[models.PartOrder], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.PartOrder]{}, err
	}
	return s.list(repositories.PartOrderSearch(term, repositories.OrderFilters{Status: status}), page, pageSize)
}

func (s PartOrderService) Get(caller domain.Caller, id domain.ID) (models.PartOrder, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.PartOrder{}, err
	}
	o, err := s.load(id)
	if err != nil {
		return models.PartOrder{}, err
	}
	if caller.IsAdmin() || o.UserID == caller.UserID {
		return o, nil
	}
	if tenantID, ok := caller.Tenant(); ok && o.DealershipID == tenantID {
		return o, nil
	}
	return models.PartOrder{}, domain.NotFoundError{Resource: "order"}
}

func (s PartOrderService) UpdateStatus(caller domain.Caller, id domain.ID, rawTarget string) (models.PartOrder, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.PartOrder{}, err
	}
	target, ok := domain.ParseOrderStatus(rawTarget)
	if !ok || target == domain.OrderPending {
		return models.PartOrder{}, domain.ValidationError{Field: "status", Msg: "must be confirmed or cancelled"}
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
				err = s.Repo.CancelByBuyer(id, caller.UserID)
			}
		} else if target == domain.OrderCancelled {
			err = s.Repo.CancelByBuyer(id, caller.UserID)
		} else {
			return models.PartOrder{}, domain.ForbiddenError{Msg: "only the selling dealership or an admin may confirm"}
		}
	}
	if err != nil {
		return models.PartOrder{}, notFoundOr(err, "order")
	}

	if s.Log != nil {
		s.Log.Info("part order status changed",
			zap.Int64("order_id", int64(id)),
			zap.String("status", string(target)),
			zap.Int64("user_id", int64(caller.UserID)))
	}
	return s.load(id)
}

func (s PartOrderService) Cancel(caller domain.Caller, id domain.ID) (models.PartOrder, error) {
	return s.UpdateStatus(caller, id, string(domain.OrderCancelled))
}

func (s PartOrderService) load(id domain.ID) (models.PartOrder, error) {
	o, err := s.Repo.GetByID(id)
	if err != nil {
		return models.PartOrder{}, notFoundOr(err, "order")
	}
	return o, nil
}

func (s PartOrderService) list(cond repositories.Cond, page, pageSize int) (ListResult[models.PartOrder], error) {
	p := pagination.Normalize(page, pageSize, defaultOrderPageSize)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.PartOrder]{}, domain.InternalError{Msg: "failed to count part orders", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.PartOrder]{}, domain.InternalError{Msg: "failed to list part orders", Err: err}
	}
	return ListResult[models.PartOrder]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

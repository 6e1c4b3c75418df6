package services

import (
	"strings"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/pagination"
	"marketplace/internal/repositories"
)

// VehicleService is the access policy for vehicle listings.
type VehicleService struct {
	Repo repositories.VehicleRepository
}

// VehicleInput is the create/update payload.
type VehicleInput struct {
	Brand       string `json:"brand" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	Price       int64  `json:"price" binding:"required"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

func (in VehicleInput) validate() error {
	if strings.TrimSpace(in.Brand) == "" || strings.TrimSpace(in.Model) == "" {
		return domain.ValidationError{Msg: "brand and model are required"}
	}
	if in.Year < 1900 || in.Year > time.Now().Year()+1 {
		return domain.ValidationError{Field: "year", Msg: "out of range"}
	}
	if in.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "must be positive"}
	}
	return nil
}

func (in VehicleInput) model() models.Vehicle {
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return models.Vehicle{
		Brand:       strings.TrimSpace(in.Brand),
		Model:       strings.TrimSpace(in.Model),
		Year:        in.Year,
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		Available:   available,
	}
}

// ListPublic is the anonymous storefront listing across every tenant.
// Search term and structured filters are ANDed: the term narrows within
// the filtered set.
func (s VehicleService) ListPublic(term string, f repositories.VehicleFilters, page, pageSize int) (ListResult[models.Vehicle], error) {
	return s.list(repositories.VehicleSearch(term, f), page, pageSize)
}

// ListMine scopes the listing to the caller's own tenant. The ownership
// filter comes from the resolved caller, never from client input.
func (s VehicleService) ListMine(caller domain.Caller, term string, page, pageSize int) (ListResult[models.Vehicle], error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return ListResult[models.Vehicle]{}, err
	}
	cond := repositories.VehicleSearch(term, repositories.VehicleFilters{})
	cond.And("v.dealership_id = ?", tenantID)
	return s.list(cond, page, pageSize)
}

// AdminList is the unscoped admin view.
func (s VehicleService) AdminList(caller domain.Caller, term string, f repositories.VehicleFilters, page, pageSize int) (ListResult[models.Vehicle], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.Vehicle]{}, err
	}
	return s.list(repositories.VehicleSearch(term, f), page, pageSize)
}

// Get is public for listing resources.
func (s VehicleService) Get(id domain.ID) (models.Vehicle, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Vehicle{}, notFoundOr(err, "vehicle")
	}
	return v, nil
}

func (s VehicleService) Create(caller domain.Caller, in VehicleInput) (models.Vehicle, error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return models.Vehicle{}, err
	}
	if err := in.validate(); err != nil {
		return models.Vehicle{}, err
	}
	v := in.model()
	v.DealershipID = tenantID
	id, err := s.Repo.Create(v)
	if err != nil {
		return models.Vehicle{}, domain.InternalError{Msg: "failed to create vehicle", Err: err}
	}
	return s.Get(id)
}

// Update re-verifies ownership inside the mutation itself; a missing row
// and an unowned row are indistinguishable in the result.
func (s VehicleService) Update(caller domain.Caller, id domain.ID, in VehicleInput) (models.Vehicle, error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return models.Vehicle{}, err
	}
	if err := in.validate(); err != nil {
		return models.Vehicle{}, err
	}
	if err := s.Repo.UpdateOwned(id, tenantID, in.model()); err != nil {
		return models.Vehicle{}, notFoundOr(err, "vehicle")
	}
	return s.Get(id)
}

func (s VehicleService) Delete(caller domain.Caller, id domain.ID) error {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteOwned(id, tenantID); err != nil {
		return notFoundOr(err, "vehicle")
	}
	return nil
}

func (s VehicleService) list(cond repositories.Cond, page, pageSize int) (ListResult[models.Vehicle], error) {
	p := pagination.Normalize(page, pageSize, defaultListingPageSize)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.Vehicle]{}, domain.InternalError{Msg: "failed to count vehicles", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.Vehicle]{}, domain.InternalError{Msg: "failed to list vehicles", Err: err}
	}
	return ListResult[models.Vehicle]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

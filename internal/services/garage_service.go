package services

import (
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/pagination"
	"marketplace/internal/repositories"
)

// GarageService is the access policy for service garage listings.
type GarageService struct {
	Repo repositories.GarageRepository
}

// GarageInput is the create/update payload.
type GarageInput struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone"`
	Available *bool  `json:"available"`
}

func (in GarageInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return domain.ValidationError{Msg: "name and address are required"}
	}
	return nil
}

func (in GarageInput) model() models.Garage {
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return models.Garage{
		Name:      strings.TrimSpace(in.Name),
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		Available: available,
	}
}

func (s GarageService) ListPublic(term string, page, pageSize int) (ListResult[models.Garage], error) {
	return s.list(repositories.GarageSearch(term), page, pageSize)
}

func (s GarageService) ListMine(caller domain.Caller, term string, page, pageSize int) (ListResult[models.Garage], error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return ListResult[models.Garage]{}, err
	}
	cond := repositories.GarageSearch(term)
	cond.And("g.dealership_id = ?", tenantID)
	return s.list(cond, page, pageSize)
}

func (s GarageService) AdminList(caller domain.Caller, term string, page, pageSize int) (ListResult[models.Garage], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.Garage]{}, err
	}
	return s.list(repositories.GarageSearch(term), page, pageSize)
}

func (s GarageService) Get(id domain.ID) (models.Garage, error) {
	g, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Garage{}, notFoundOr(err, "garage")
	}
	return g, nil
}

func (s GarageService) Create(caller domain.Caller, in GarageInput) (models.Garage, error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return models.Garage{}, err
	}
	if err := in.validate(); err != nil {
		return models.Garage{}, err
	}
	g := in.model()
	g.DealershipID = tenantID
	id, err := s.Repo.Create(g)
	if err != nil {
		return models.Garage{}, domain.InternalError{Msg: "failed to create garage", Err: err}
	}
	return s.Get(id)
}

func (s GarageService) Update(caller domain.Caller, id domain.ID, in GarageInput) (models.Garage, error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return models.Garage{}, err
	}
	if err := in.validate(); err != nil {
		return models.Garage{}, err
	}
	if err := s.Repo.UpdateOwned(id, tenantID, in.model()); err != nil {
		return models.Garage{}, notFoundOr(err, "garage")
	}
	return s.Get(id)
}

func (s GarageService) Delete(caller domain.Caller, id domain.ID) error {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteOwned(id, tenantID); err != nil {
		return notFoundOr(err, "garage")
	}
	return nil
}

func (s GarageService) list(cond repositories.Cond, page, pageSize int) (ListResult[models.Garage], error) {
	p := pagination.Normalize(page, pageSize, defaultListingPageSize)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.Garage]{}, domain.InternalError{Msg: "failed to count garages", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.Garage]{}, domain.InternalError{Msg: "failed to list garages", Err: err}
	}
	return ListResult[models.Garage]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

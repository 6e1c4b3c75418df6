package services

import (
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/pagination"
	"marketplace/internal/repositories"
)

// PartService is the access policy for spare part listings.
type PartService struct {
	Repo repositories.PartRepository
}

// PartInput is the create/update payload.
type PartInput struct {
	Name      string `json:"name" binding:"required"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Price     int64  `json:"price" binding:"required"`
	Available *bool  `json:"available"`
}

func (in PartInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}
	if in.Price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "must be positive"}
	}
	return nil
}

func (in PartInput) model() models.Part {
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return models.Part{
		Name:      strings.TrimSpace(in.Name),
		Brand:     strings.TrimSpace(in.Brand),
		Model:     strings.TrimSpace(in.Model),
		Price:     in.Price,
		Available: available,
	}
}

func (s PartService) ListPublic(term string, f repositories.PartFilters, page, pageSize int) (ListResult[models.Part], error) {
	return s.list(repositories.PartSearch(term, f), page, pageSize)
}

func (s PartService) ListMine(caller domain.Caller, term string, page, pageSize int) (ListResult[models.Part], error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return ListResult[models.Part]{}, err
	}
	cond := repositories.PartSearch(term, repositories.PartFilters{})
	cond.And("p.dealership_id = ?", tenantID)
	return s.list(cond, page, pageSize)
}

func (s PartService) AdminList(caller domain.Caller, term string, f repositories.PartFilters, page, pageSize int) (ListResult[models.Part], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.Part]{}, err
	}
	return s.list(repositories.PartSearch(term, f), page, pageSize)
}

func (s PartService) Get(id domain.ID) (models.Part, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Part{}, notFoundOr(err, "part")
	}
	return p, nil
}

func (s PartService) Create(caller domain.Caller, in PartInput) (models.Part, error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return models.Part{}, err
	}
	if err := in.validate(); err != nil {
		return models.Part{}, err
	}
	p := in.model()
	p.DealershipID = tenantID
	id, err := s.Repo.Create(p)
	if err != nil {
		return models.Part{}, domain.InternalError{Msg: "failed to create part", Err: err}
	}
	return s.Get(id)
}

func (s PartService) Update(caller domain.Caller, id domain.ID, in PartInput) (models.Part, error) {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return models.Part{}, err
	}
	if err := in.validate(); err != nil {
		return models.Part{}, err
	}
	if err := s.Repo.UpdateOwned(id, tenantID, in.model()); err != nil {
		return models.Part{}, notFoundOr(err, "part")
	}
	return s.Get(id)
}

func (s PartService) Delete(caller domain.Caller, id domain.ID) error {
	tenantID, err := requireTenant(caller)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteOwned(id, tenantID); err != nil {
		return notFoundOr(err, "part")
	}
	return nil
}

func (s PartService) list(cond repositories.Cond, page, pageSize int) (ListResult[models.Part], error) {
	p := pagination.Normalize(page, pageSize, defaultListingPageSize)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.Part]{}, domain.InternalError{Msg: "failed to count parts", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.Part]{}, domain.InternalError{Msg: "failed to list parts", Err: err}
	}
	return ListResult[models.Part]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

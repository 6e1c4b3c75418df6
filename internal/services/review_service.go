package services

import (
	"database/sql"
	"errors"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/pagination"
	"marketplace/internal/repositories"
)

// ReviewService is the access policy for garage reviews. Reviews are
// immutable after creation; deletion is restricted to the author or an
// admin.
type ReviewService struct {
	Repo repositories.ReviewRepository
}

// ReviewInput is the create payload.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ListByGarage is the public review feed for one garage.
func (s ReviewService) ListByGarage(garageID domain.ID, term string, f repositories.ReviewFilters, page, pageSize int) (ListResult[models.Review], error) {
	cond := repositories.ReviewSearch(term, f)
	cond.And("r.garage_id = ?", garageID)
	return s.list(cond, page, pageSize)
}

// AdminList is the unscoped moderation view.
func (s ReviewService) AdminList(caller domain.Caller, term string, f repositories.ReviewFilters, page, pageSize int) (ListResult[models.Review], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.Review]{}, err
	}
	return s.list(repositories.ReviewSearch(term, f), page, pageSize)
}

// Get is restricted to the author or an admin.
func (s ReviewService) Get(caller domain.Caller, id domain.ID) (models.Review, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.Review{}, err
	}
	rv, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Review{}, notFoundOr(err, "review")
	}
	if !caller.IsAdmin() && rv.UserID != caller.UserID {
		return models.Review{}, domain.NotFoundError{Resource: "review"}
	}
	return rv, nil
}

func (s ReviewService) Create(caller domain.Caller, garageID domain.ID, in ReviewInput) (models.Review, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.Review{}, err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Review{}, domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	id, err := s.Repo.Create(models.Review{
		UserID:   caller.UserID,
		GarageID: garageID,
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, domain.NotFoundError{Resource: "garage"}
		}
		return models.Review{}, domain.InternalError{Msg: "failed to create review", Err: err}
	}
	rv, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Review{}, notFoundOr(err, "review")
	}
	return rv, nil
}

// Delete removes the caller's own review, or any review for an admin.
func (s ReviewService) Delete(caller domain.Caller, id domain.ID) error {
	if err := requireAuthenticated(caller); err != nil {
		return err
	}
	var err error
	if caller.IsAdmin() {
		err = s.Repo.Delete(id)
	} else {
		err = s.Repo.DeleteByAuthor(id, caller.UserID)
	}
	if err != nil {
		return notFoundOr(err, "review")
	}
	return nil
}

func (s ReviewService) list(cond repositories.Cond, page, pageSize int) (ListResult[models.Review], error) {
	p := pagination.Normalize(page, pageSize, defaultReviewPageSize)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.Review]{}, domain.InternalError{Msg: "failed to count reviews", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.Review]{}, domain.InternalError{Msg: "failed to list reviews", Err: err}
	}
	return ListResult[models.Review]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

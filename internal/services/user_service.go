package services

import (
	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/pagination"
	"marketplace/internal/repositories"
)

// UserService exposes the admin users listing.
type UserService struct {
	Repo repositories.UserRepository
}

func (s UserService) AdminList(caller domain.Caller, term string, page, pageSize int) (ListResult[models.User], error) {
	if err := requireAdmin(caller); err != nil {
		return ListResult[models.User]{}, err
	}
	p := pagination.Normalize(page, pageSize, defaultListingPageSize)
	cond := repositories.UserSearch(term)
	total, err := s.Repo.Count(cond)
	if err != nil {
		return ListResult[models.User]{}, domain.InternalError{Msg: "failed to count users", Err: err}
	}
	rows, err := s.Repo.List(cond, p.PerPage, p.Offset())
	if err != nil {
		return ListResult[models.User]{}, domain.InternalError{Msg: "failed to list users", Err: err}
	}
	return ListResult[models.User]{Data: rows, Meta: pagination.NewMeta(total, p)}, nil
}

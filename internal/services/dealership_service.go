package services

import (
	"database/sql"
	"errors"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/repositories"

	"github.com/go-sql-driver/mysql"
)

// DealershipService handles tenant setup and lookup. A dealership is
// created lazily, once, by an identity acting as DEALERSHIP; ownership
// never transfers afterwards.
type DealershipService struct {
	Repo repositories.DealershipRepository
}

// Setup creates the caller's dealership. CONFLICT when one already
// exists for this identity.
func (s DealershipService) Setup(caller domain.Caller, name, address, phone string) (models.Dealership, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.Dealership{}, err
	}
	if caller.ActingRole != domain.ActingDealership {
		return models.Dealership{}, domain.ForbiddenError{Msg: "dealership role required"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Dealership{}, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}

	id, err := s.Repo.Create(models.Dealership{
		UserID:  caller.UserID,
		Name:    name,
		Address: strings.TrimSpace(address),
		Phone:   strings.TrimSpace(phone),
	})
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return models.Dealership{}, domain.ConflictError{Resource: "dealership", Msg: "already configured for this account"}
		}
		return models.Dealership{}, domain.InternalError{Msg: "failed to create dealership", Err: err}
	}
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Dealership{}, domain.InternalError{Msg: "failed to load dealership", Err: err}
	}
	return d, nil
}

// Mine returns the caller's dealership, or not-found when setup has not
// completed yet.
func (s DealershipService) Mine(caller domain.Caller) (models.Dealership, error) {
	if err := requireAuthenticated(caller); err != nil {
		return models.Dealership{}, err
	}
	d, err := s.Repo.GetByUserID(caller.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Dealership{}, domain.NotFoundError{Resource: "dealership"}
		}
		return models.Dealership{}, domain.InternalError{Msg: "failed to load dealership", Err: err}
	}
	return d, nil
}

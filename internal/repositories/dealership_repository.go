package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// DealershipRepository wraps DB access for tenants. The user_id column is
// UNIQUE; a second setup attempt for the same identity surfaces as a
// duplicate-key error.
type DealershipRepository struct {
	DB *sql.DB
}

const dealershipSelect = `
	SELECT d.id, d.user_id, d.name, COALESCE(d.address,''), COALESCE(d.phone,''), d.created_at
	FROM dealerships d
`

func (r DealershipRepository) GetByID(id domain.ID) (models.Dealership, error) {
	var d models.Dealership
	err := r.DB.QueryRow(dealershipSelect+` WHERE d.id = ?`, id).Scan(
		&d.ID, &d.UserID, &d.Name, &d.Address, &d.Phone, &d.CreatedAt)
	return d, err
}

// GetByUserID resolves the tenant owned by an identity. sql.ErrNoRows
// means "dealership not yet configured", a recoverable condition.
func (r DealershipRepository) GetByUserID(userID domain.ID) (models.Dealership, error) {
	var d models.Dealership
	err := r.DB.QueryRow(dealershipSelect+` WHERE d.user_id = ?`, userID).Scan(
		&d.ID, &d.UserID, &d.Name, &d.Address, &d.Phone, &d.CreatedAt)
	return d, err
}

func (r DealershipRepository) Create(d models.Dealership) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO dealerships (user_id, name, address, phone, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, d.UserID, d.Name, d.Address, d.Phone)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return domain.ID(id), nil
}

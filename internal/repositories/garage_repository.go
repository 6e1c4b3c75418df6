package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// GarageRepository wraps DB access for service garage listings.
type GarageRepository struct {
	DB *sql.DB
}

const garageSelect = `
	SELECT g.id, g.dealership_id, d.name, g.name, g.address, g.phone,
	       g.available, g.created_at
	FROM garages g
	JOIN dealerships d ON d.id = g.dealership_id
`

func (r GarageRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM garages g`+where, args...).Scan(&total)
	return total, err
}

func (r GarageRepository) List(cond Cond, limit, offset int) ([]models.Garage, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(garageSelect+where+` ORDER BY g.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Garage{}
	for rows.Next() {
		var g models.Garage
		if err := rows.Scan(&g.ID, &g.DealershipID, &g.DealershipName, &g.Name,
			&g.Address, &g.Phone, &g.Available, &g.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r GarageRepository) GetByID(id domain.ID) (models.Garage, error) {
	var g models.Garage
	err := r.DB.QueryRow(garageSelect+` WHERE g.id = ?`, id).Scan(
		&g.ID, &g.DealershipID, &g.DealershipName, &g.Name,
		&g.Address, &g.Phone, &g.Available, &g.CreatedAt)
	return g, err
}

func (r GarageRepository) Create(g models.Garage) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO garages (dealership_id, name, address, phone, available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
	`, g.DealershipID, g.Name, g.Address, g.Phone, g.Available)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return domain.ID(id), nil
}

func (r GarageRepository) UpdateOwned(id, dealershipID domain.ID, g models.Garage) error {
	res, err := r.DB.Exec(`
		UPDATE garages
		SET name = ?, address = ?, phone = ?, available = ?, updated_at = NOW()
		WHERE id = ? AND dealership_id = ?
	`, g.Name, g.Address, g.Phone, g.Available, id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r GarageRepository) DeleteOwned(id, dealershipID domain.ID) error {
	res, err := r.DB.Exec(`DELETE FROM garages WHERE id = ? AND dealership_id = ?`, id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

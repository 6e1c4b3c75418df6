package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// PartRepository wraps DB access for spare part listings.
type PartRepository struct {
	DB *sql.DB
}

const partSelect = `
	SELECT p.id, p.dealership_id, d.name, p.name, p.brand, p.model, p.price,
	       p.available, p.created_at
	FROM parts p
	JOIN dealerships d ON d.id = p.dealership_id
`

func (r PartRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM parts p`+where, args...).Scan(&total)
	return total, err
}

func (r PartRepository) List(cond Cond, limit, offset int) ([]models.Part, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(partSelect+where+` ORDER BY p.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Part{}
	for rows.Next() {
		var p models.Part
		if err := rows.Scan(&p.ID, &p.DealershipID, &p.DealershipName, &p.Name, &p.Brand,
			&p.Model, &p.Price, &p.Available, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r PartRepository) GetByID(id domain.ID) (models.Part, error) {
	var p models.Part
	err := r.DB.QueryRow(partSelect+` WHERE p.id = ?`, id).Scan(
		&p.ID, &p.DealershipID, &p.DealershipName, &p.Name, &p.Brand,
		&p.Model, &p.Price, &p.Available, &p.CreatedAt)
	return p, err
}

func (r PartRepository) Create(p models.Part) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO parts (dealership_id, name, brand, model, price, available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, p.DealershipID, p.Name, p.Brand, p.Model, p.Price, p.Available)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return domain.ID(id), nil
}

func (r PartRepository) UpdateOwned(id, dealershipID domain.ID, p models.Part) error {
	res, err := r.DB.Exec(`
		UPDATE parts
		SET name = ?, brand = ?, model = ?, price = ?, available = ?, updated_at = NOW()
		WHERE id = ? AND dealership_id = ?
	`, p.Name, p.Brand, p.Model, p.Price, p.Available, id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r PartRepository) DeleteOwned(id, dealershipID domain.ID) error {
	res, err := r.DB.Exec(`DELETE FROM parts WHERE id = ? AND dealership_id = ?`, id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

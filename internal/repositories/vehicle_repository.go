package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// VehicleRepository wraps DB access for vehicle listings. Mutations carry
// the owning dealership id in the WHERE clause so ownership is re-checked
// by the same statement that writes.
type VehicleRepository struct {
	DB *sql.DB
}

const vehicleSelect = `
	SELECT v.id, v.dealership_id, d.name, v.brand, v.model, v.year, v.price,
	       COALESCE(v.description,''), v.available, v.created_at
	FROM vehicles v
	JOIN dealerships d ON d.id = v.dealership_id
`

// Count totals rows matching cond. Runs separately from List; a row
// inserted between the two calls can skew meta.total by one, which we
// accept.
func (r VehicleRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM vehicles v`+where, args...).Scan(&total)
	return total, err
}

// List returns one page ordered newest-first.
func (r VehicleRepository) List(cond Cond, limit, offset int) ([]models.Vehicle, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(vehicleSelect+where+` ORDER BY v.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.DealershipID, &v.DealershipName, &v.Brand, &v.Model,
			&v.Year, &v.Price, &v.Description, &v.Available, &v.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r VehicleRepository) GetByID(id domain.ID) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.DB.QueryRow(vehicleSelect+` WHERE v.id = ?`, id).Scan(
		&v.ID, &v.DealershipID, &v.DealershipName, &v.Brand, &v.Model,
		&v.Year, &v.Price, &v.Description, &v.Available, &v.CreatedAt)
	return v, err
}

func (r VehicleRepository) Create(v models.Vehicle) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO vehicles (dealership_id, brand, model, year, price, description, available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, v.DealershipID, v.Brand, v.Model, v.Year, v.Price, v.Description, v.Available)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return domain.ID(id), nil
}

// UpdateOwned rewrites the editable fields iff the row still belongs to
// dealershipID. sql.ErrNoRows covers both missing and unowned rows.
func (r VehicleRepository) UpdateOwned(id, dealershipID domain.ID, v models.Vehicle) error {
	res, err := r.DB.Exec(`
		UPDATE vehicles
		SET brand = ?, model = ?, year = ?, price = ?, description = ?, available = ?, updated_at = NOW()
		WHERE id = ? AND dealership_id = ?
	`, v.Brand, v.Model, v.Year, v.Price, v.Description, v.Available, id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r VehicleRepository) DeleteOwned(id, dealershipID domain.ID) error {
	res, err := r.DB.Exec(`DELETE FROM vehicles WHERE id = ? AND dealership_id = ?`, id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

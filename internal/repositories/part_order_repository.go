package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// PartOrderRepository mirrors PurchaseOrderRepository for spare parts.
type PartOrderRepository struct {
	DB *sql.DB
}

const partOrderSelect = `
	SELECT o.id, o.user_id, o.part_id, o.quantity, o.status, o.created_at,
	       u.name, COALESCE(u.phone,''), p.name, p.brand, p.price, p.dealership_id
	FROM part_orders o
	JOIN users u ON u.id = o.user_id
	JOIN parts p ON p.id = o.part_id
`

func scanPartOrder(row interface{ Scan(...any) error }) (models.PartOrder, error) {
	var o models.PartOrder
	err := row.Scan(&o.ID, &o.UserID, &o.PartID, &o.Quantity, &o.Status, &o.CreatedAt,
		&o.BuyerName, &o.BuyerPhone, &o.PartName, &o.PartBrand,
		&o.PartPrice, &o.DealershipID)
	return o, err
}

func (r PartOrderRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM part_orders o
		JOIN users u ON u.id = o.user_id
		JOIN parts p ON p.id = o.part_id
	`+where, args...).Scan(&total)
	return total, err
}

func (r PartOrderRepository) List(cond Cond, limit, offset int) ([]models.PartOrder, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(partOrderSelect+where+` ORDER BY o.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.PartOrder{}
	for rows.Next() {
		o, err := scanPartOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r PartOrderRepository) GetByID(id domain.ID) (models.PartOrder, error) {
	return scanPartOrder(r.DB.QueryRow(partOrderSelect+` WHERE o.id = ?`, id))
}

func (r PartOrderRepository) Create(userID, partID domain.ID, quantity int) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO part_orders (user_id, part_id, quantity, status, created_at, updated_at)
		SELECT ?, p.id, ?, 'pending', NOW(), NOW()
		FROM parts p
		WHERE p.id = ? AND p.available = 1
	`, userID, quantity, partID)
	if err != nil {
		return 0, err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return 0, sql.ErrNoRows
	}
	id, _ := res.LastInsertId()
	return domain.ID(id), nil
}

func (r PartOrderRepository) SetStatusAdmin(id domain.ID, target domain.OrderStatus) error {
	res, err := r.DB.Exec(`
		UPDATE part_orders
		SET status = ?, updated_at = NOW()
		WHERE id = ? AND status = 'pending'
	`, string(target), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r PartOrderRepository) SetStatusSeller(id, dealershipID domain.ID, target domain.OrderStatus) error {
	res, err := r.DB.Exec(`
		UPDATE part_orders o
		JOIN parts p ON p.id = o.part_id
		SET o.status = ?, o.updated_at = NOW()
		WHERE o.id = ? AND o.status = 'pending' AND p.dealership_id = ?
	`, string(target), id, dealershipID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r PartOrderRepository) CancelByBuyer(id, userID domain.ID) error {
	res, err := r.DB.Exec(`
		UPDATE part_orders
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = ? AND user_id = ? AND status = 'pending'
	`, id, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

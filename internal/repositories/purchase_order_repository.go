package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// PurchaseOrderRepository wraps DB access for vehicle orders. Status
// transitions are single guarded UPDATEs: the WHERE clause carries the
// pending-state check plus whichever ownership predicate applies, so the
// read-check-write is one atomic statement.
type PurchaseOrderRepository struct {
	DB *sql.DB
}

const purchaseOrderSelect = `
	SELECT o.id, o.user_id, o.vehicle_id, o.status, o.created_at,
	       u.name, COALESCE(u.phone,''), v.brand, v.model, v.price, v.dealership_id
	FROM purchase_orders o
	JOIN users u ON u.id = o.user_id
	JOIN vehicles v ON v.id = o.vehicle_id
`

func scanPurchaseOrder(row interface{ Scan(...any) error }) (models.PurchaseOrder, error) {
	var o models.PurchaseOrder
	err := row.Scan(&o.ID, &o.UserID, &o.VehicleID, &o.Status, &o.CreatedAt,
		&o.BuyerName, &o.BuyerPhone, &o.VehicleBrand, &o.VehicleModel,
		&o.VehiclePrice, &o.DealershipID)
	return o, err
}

func (r PurchaseOrderRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM purchase_orders o
		JOIN users u ON u.id = o.user_id
		JOIN vehicles v ON v.id = o.vehicle_id
	`+where, args...).Scan(&total)
	return total, err
}

func (r PurchaseOrderRepository) List(cond Cond, limit, offset int) ([]models.PurchaseOrder, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(purchaseOrderSelect+where+` ORDER BY o.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.PurchaseOrder{}
	for rows.Next() {
		o, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r PurchaseOrderRepository) GetByID(id domain.ID) (models.PurchaseOrder, error) {
	return scanPurchaseOrder(r.DB.QueryRow(purchaseOrderSelect+` WHERE o.id = ?`, id))
}

// Create inserts a pending order iff the vehicle is still available. The
// INSERT..SELECT re-checks availability in the write itself; zero rows
// means the listing vanished or was flagged unavailable since the buyer
// looked at it.
func (r PurchaseOrderRepository) Create(userID, vehicleID domain.ID) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO purchase_orders (user_id, vehicle_id, status, created_at, updated_at)
		SELECT ?, v.id, 'pending', NOW(), NOW()
		FROM vehicles v
		WHERE v.id = ? AND v.available = 1
	`, userID, vehicleID)
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

// SetStatusAdmin transitions any pending order.
func (r PurchaseOrderRepository) SetStatusAdmin(id domain.ID, target domain.OrderStatus) error {
	res, err := r.DB.Exec(`
		UPDATE purchase_orders
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

// SetStatusSeller transitions a pending order owned by the caller's
// dealership through the vehicle link.
func (r PurchaseOrderRepository) SetStatusSeller(id, dealershipID domain.ID, target domain.OrderStatus) error {
	res, err := r.DB.Exec(`
		UPDATE purchase_orders o
		JOIN vehicles v ON v.id = o.vehicle_id
		SET o.status = ?, o.updated_at = NOW()
		WHERE o.id = ? AND o.status = 'pending' AND v.dealership_id = ?
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

// CancelByBuyer lets the buyer cancel their own pending order.
func (r PurchaseOrderRepository) CancelByBuyer(id, userID domain.ID) error {
	res, err := r.DB.Exec(`
		UPDATE purchase_orders
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

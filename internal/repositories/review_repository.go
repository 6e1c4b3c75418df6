package repositories

import (
	"database/sql"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// ReviewRepository wraps DB access for garage reviews. Reviews are
// immutable once written; only create and delete exist.
type ReviewRepository struct {
	DB *sql.DB
}

const reviewSelect = `
	SELECT r.id, r.user_id, r.garage_id, r.rating, r.comment, u.name, r.created_at
	FROM reviews r
	JOIN users u ON u.id = r.user_id
`

func (r ReviewRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM reviews r
		JOIN users u ON u.id = r.user_id
	`+where, args...).Scan(&total)
	return total, err
}

func (r ReviewRepository) List(cond Cond, limit, offset int) ([]models.Review, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(reviewSelect+where+` ORDER BY r.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.GarageID, &rv.Rating,
			&rv.Comment, &rv.AuthorName, &rv.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

func (r ReviewRepository) GetByID(id domain.ID) (models.Review, error) {
	var rv models.Review
	err := r.DB.QueryRow(reviewSelect+` WHERE r.id = ?`, id).Scan(
		&rv.ID, &rv.UserID, &rv.GarageID, &rv.Rating,
		&rv.Comment, &rv.AuthorName, &rv.CreatedAt)
	return rv, err
}

// Create inserts a review iff the garage still exists.
func (r ReviewRepository) Create(rv models.Review) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO reviews (user_id, garage_id, rating, comment, created_at)
		SELECT ?, g.id, ?, ?, NOW()
		FROM garages g
		WHERE g.id = ?
	`, rv.UserID, rv.Rating, rv.Comment, rv.GarageID)
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

// DeleteByAuthor removes a review owned by userID.
func (r ReviewRepository) DeleteByAuthor(id, userID domain.ID) error {
	res, err := r.DB.Exec(`DELETE FROM reviews WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes any review (admin path).
func (r ReviewRepository) Delete(id domain.ID) error {
	res, err := r.DB.Exec(`DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

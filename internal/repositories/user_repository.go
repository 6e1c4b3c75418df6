package repositories

import (
	"database/sql"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
)

// UserRepository wraps DB access for identities.
type UserRepository struct {
	DB *sql.DB
}

const userSelect = `
	SELECT u.id, u.name, u.email, COALESCE(u.phone,''), u.role, u.created_at
	FROM users u
`

func (r UserRepository) GetByID(id domain.ID) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(userSelect+` WHERE u.id = ?`, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.CreatedAt)
	return u, err
}

// GetByEmail also returns the stored bcrypt hash for login verification.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT u.id, u.name, u.email, COALESCE(u.phone,''), u.role, u.password_hash, u.created_at
		FROM users u
		WHERE u.email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &hash, &u.CreatedAt)
	return u, hash, err
}

func (r UserRepository) Create(name, email, phone, passwordHash string) (domain.ID, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (name, email, phone, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'user', NOW(), NOW())
	`, name, email, phone, passwordHash)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return domain.ID(id), nil
}

// UpdateProfile writes only the fields present in upd.
func (r UserRepository) UpdateProfile(id domain.ID, upd models.UserUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

// UserSearch matches name and email for the admin users listing.
func UserSearch(term string) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		c.And(orGroup("u.name LIKE ?", "u.email LIKE ?"), likeArg(term), likeArg(term))
	}
	return c
}

func (r UserRepository) Count(cond Cond) (int, error) {
	where, args := cond.Where()
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users u`+where, args...).Scan(&total)
	return total, err
}

func (r UserRepository) List(cond Cond, limit, offset int) ([]models.User, error) {
	where, args := cond.Where()
	args = append(args, limit, offset)
	rows, err := r.DB.Query(userSelect+where+` ORDER BY u.id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

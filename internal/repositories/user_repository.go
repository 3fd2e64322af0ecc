package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"autorevenda/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Deactivate(id int) error
	DeactivateByEmail(email string) error
	Delete(id int) error
	List(limit, offset int) ([]*models.User, error)

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	ClearRefresh(userID int) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, name, email, phone, password_hash, role_id, active, refresh_token, refresh_expires_at, refresh_revoked, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.RoleID, &u.Active,
		&u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
                INSERT INTO users (name, email, phone, password_hash, role_id, active, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
                RETURNING id
        `
	if err := r.DB.QueryRow(q, user.Name, user.Email, user.Phone, user.PasswordHash,
		user.RoleID, user.Active, user.CreatedAt).Scan(&user.ID); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	u, err := scanUser(r.DB.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email)=LOWER($1)`
	u, err := scanUser(r.DB.QueryRow(q, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *userRepository) Update(user *models.User) error {
	const q = `UPDATE users SET name=$1, email=$2, phone=$3, role_id=$4, active=$5 WHERE id=$6`
	if _, err := r.DB.Exec(q, user.Name, user.Email, user.Phone, user.RoleID, user.Active, user.ID); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) Deactivate(id int) error {
	const q = `UPDATE users SET active=false, refresh_revoked=true WHERE id=$1`
	if _, err := r.DB.Exec(q, id); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

func (r *userRepository) DeactivateByEmail(email string) error {
	const q = `UPDATE users SET active=false, refresh_revoked=true WHERE LOWER(email)=LOWER($1)`
	if _, err := r.DB.Exec(q, email); err != nil {
		return fmt.Errorf("deactivate user by email: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(id int) error {
	const q = `DELETE FROM users WHERE id=$1`
	if _, err := r.DB.Exec(q, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *userRepository) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	const q = `UPDATE users SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=false WHERE id=$3`
	if _, err := r.DB.Exec(q, token, expiresAt, userID); err != nil {
		return fmt.Errorf("update refresh: %w", err)
	}
	return nil
}

func (r *userRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	const q = `
                UPDATE users
                SET refresh_token=$1, refresh_expires_at=$2
                WHERE refresh_token=$3 AND refresh_revoked=false AND refresh_expires_at > NOW()
                RETURNING ` + userColumns
	u, err := scanUser(r.DB.QueryRow(q, newToken, newExpiresAt, oldToken))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("rotate refresh: %w", err)
	}
	return u, nil
}

func (r *userRepository) ClearRefresh(userID int) error {
	const q = `UPDATE users SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=true WHERE id=$1`
	if _, err := r.DB.Exec(q, userID); err != nil {
		return fmt.Errorf("clear refresh: %w", err)
	}
	return nil
}

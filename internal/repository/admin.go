package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/security"
)

const selectAdmin = `
	SELECT
		admin_id, name, surname, email, phone_number, password_hash,
		role, is_active, last_login, created_at
	FROM admins`

// AdminRepo - CRUD for the admins table.
type AdminRepo struct {
	db      *sql.DB
	hasher  *security.Hasher
	timeout time.Duration
}

func NewAdminRepo(db *sql.DB, hasher *security.Hasher, timeout time.Duration) *AdminRepo {
	return &AdminRepo{db: db, hasher: hasher, timeout: timeout}
}

func scanAdmin(row interface {
	Scan(dest ...interface{}) error
}) (*models.AdminInDB, error) {
	var a models.AdminInDB
	var lastLogin sql.NullTime
	err := row.Scan(
		&a.AdminID, &a.Name, &a.Surname, &a.Email, &a.PhoneNumber, &a.PasswordHash,
		&a.Role, &a.IsActive, &lastLogin, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		a.LastLogin = &lastLogin.Time
	}
	return &a, nil
}

// GetAll - every admin row.
func (r *AdminRepo) GetAll(ctx context.Context) ([]models.AdminInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectAdmin)
	if err != nil {
		return nil, fmt.Errorf("query admins: %w", err)
	}
	defer rows.Close()

	var admins []models.AdminInDB
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

// GetByID - the admin or nil when absent.
func (r *AdminRepo) GetByID(ctx context.Context, adminID string) (*models.AdminInDB, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	a, err := scanAdmin(r.db.QueryRowContext(ctx, selectAdmin+" WHERE admin_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query admin by id: %w", err)
	}
	return a, nil
}

// GetByEmail - the admin or nil when absent.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.AdminInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	a, err := scanAdmin(r.db.QueryRowContext(ctx, selectAdmin+" WHERE email = $1", email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query admin by email: %w", err)
	}
	return a, nil
}

// Create - inserts an admin after checking the email is free. Role
// defaults to support_admin when omitted upstream.
func (r *AdminRepo) Create(ctx context.Context, data models.AdminCreate) (*models.AdminInDB, error) {
	existing, err := r.GetByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEntry
	}

	hash, err := r.hasher.Hash(data.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := data.Role
	if role == "" {
		role = models.RoleSupportAdmin
	}
	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id uuid.UUID
	err = r.db.QueryRowContext(execCtx, `
		INSERT INTO admins (name, surname, email, phone_number, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING admin_id`,
		data.Name, data.Surname, data.Email, data.PhoneNumber, hash, role, isActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return r.GetByID(ctx, id.String())
}

// Update - partial update touching only the supplied fields. The
// role-change privilege check lives in the service layer.
func (r *AdminRepo) Update(ctx context.Context, adminID string, data models.AdminUpdate) (*models.AdminInDB, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, ErrNotFound
	}

	b := newUpdateBuilder("admins")
	if data.Name != nil {
		b.Set("name", *data.Name)
	}
	if data.Surname != nil {
		b.Set("surname", *data.Surname)
	}
	if data.Email != nil {
		b.Set("email", *data.Email)
	}
	if data.PhoneNumber != nil {
		b.Set("phone_number", *data.PhoneNumber)
	}
	if data.Password != nil {
		hash, err := r.hasher.Hash(*data.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		b.Set("password_hash", hash)
	}
	if data.Role != nil {
		b.Set("role", *data.Role)
	}
	if data.IsActive != nil {
		b.Set("is_active", *data.IsActive)
	}

	if b.Empty() {
		return r.GetByID(ctx, adminID)
	}

	query, args := b.Query("admin_id", id)

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("update admin: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, adminID)
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *AdminRepo) Delete(ctx context.Context, adminID string) error {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM admins WHERE admin_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate - soft delete, flips is_active only.
func (r *AdminRepo) Deactivate(ctx context.Context, adminID string) error {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "UPDATE admins SET is_active = FALSE WHERE admin_id = $1", id)
	if err != nil {
		return fmt.Errorf("deactivate admin: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLogin - touch last_login after a successful credential check.
func (r *AdminRepo) UpdateLastLogin(ctx context.Context, adminID string) error {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err = r.db.ExecContext(ctx,
		"UPDATE admins SET last_login = $1 WHERE admin_id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update admin last_login: %w", err)
	}
	return nil
}

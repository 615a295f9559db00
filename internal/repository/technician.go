package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/security"
)

const selectTechnician = `
	SELECT
		technician_id, name, surname, email, phone_number, password_hash,
		location_name,
		ST_X(location::geometry) AS longitude,
		ST_Y(location::geometry) AS latitude,
		service_types, average_rating, experience_years,
		is_verified, is_available, is_active, last_login, created_at
	FROM technicians`

// TechnicianRepo - CRUD for the technicians table.
type TechnicianRepo struct {
	db      *sql.DB
	hasher  *security.Hasher
	timeout time.Duration
}

func NewTechnicianRepo(db *sql.DB, hasher *security.Hasher, timeout time.Duration) *TechnicianRepo {
	return &TechnicianRepo{db: db, hasher: hasher, timeout: timeout}
}

func scanTechnician(row interface {
	Scan(dest ...interface{}) error
}) (*models.TechnicianInDB, error) {
	var t models.TechnicianInDB
	var lastLogin sql.NullTime
	err := row.Scan(
		&t.TechnicianID, &t.Name, &t.Surname, &t.Email, &t.PhoneNumber, &t.PasswordHash,
		&t.LocationName, &t.Longitude, &t.Latitude,
		pq.Array(&t.ServiceTypes), &t.AverageRating, &t.ExperienceYears,
		&t.IsVerified, &t.IsAvailable, &t.IsActive, &lastLogin, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t.LastLogin = &lastLogin.Time
	}
	return &t, nil
}

// GetAll - every technician row.
func (r *TechnicianRepo) GetAll(ctx context.Context) ([]models.TechnicianInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectTechnician)
	if err != nil {
		return nil, fmt.Errorf("query technicians: %w", err)
	}
	defer rows.Close()

	var technicians []models.TechnicianInDB
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		technicians = append(technicians, *t)
	}
	return technicians, rows.Err()
}

// GetByID - the technician or nil when absent.
func (r *TechnicianRepo) GetByID(ctx context.Context, technicianID string) (*models.TechnicianInDB, error) {
	id, err := uuid.Parse(technicianID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	t, err := scanTechnician(r.db.QueryRowContext(ctx, selectTechnician+" WHERE technician_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query technician by id: %w", err)
	}
	return t, nil
}

// GetByEmail - the technician or nil when absent.
func (r *TechnicianRepo) GetByEmail(ctx context.Context, email string) (*models.TechnicianInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	t, err := scanTechnician(r.db.QueryRowContext(ctx, selectTechnician+" WHERE email = $1", email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query technician by email: %w", err)
	}
	return t, nil
}

// Create - inserts a technician after checking the email is free.
func (r *TechnicianRepo) Create(ctx context.Context, data models.TechnicianCreate) (*models.TechnicianInDB, error) {
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

	isAvailable := true
	if data.IsAvailable != nil {
		isAvailable = *data.IsAvailable
	}
	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id uuid.UUID
	err = r.db.QueryRowContext(execCtx, `
		INSERT INTO technicians (
			name, surname, email, phone_number, password_hash,
			location_name, location,
			service_types, average_rating, experience_years,
			is_verified, is_available, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6,
			ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography,
			$9, $10, $11, $12, $13, $14)
		RETURNING technician_id`,
		data.Name, data.Surname, data.Email, data.PhoneNumber, hash,
		data.LocationName, data.Longitude, data.Latitude,
		pq.Array(data.ServiceTypes), data.AverageRating, data.ExperienceYears,
		data.IsVerified, isAvailable, isActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert technician: %w", err)
	}
	return r.GetByID(ctx, id.String())
}

// Update - partial update touching only the supplied fields. A lat-only or
// lon-only update merges with the stored point inside the statement.
func (r *TechnicianRepo) Update(ctx context.Context, technicianID string, data models.TechnicianUpdate) (*models.TechnicianInDB, error) {
	id, err := uuid.Parse(technicianID)
	if err != nil {
		return nil, ErrNotFound
	}

	b := newUpdateBuilder("technicians")
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
	if data.LocationName != nil {
		b.Set("location_name", *data.LocationName)
	}
	b.setLocation(data.Latitude, data.Longitude)
	if data.ServiceTypes != nil {
		b.Set("service_types", pq.Array(*data.ServiceTypes))
	}
	if data.AverageRating != nil {
		b.Set("average_rating", *data.AverageRating)
	}
	if data.ExperienceYears != nil {
		b.Set("experience_years", *data.ExperienceYears)
	}
	if data.IsVerified != nil {
		b.Set("is_verified", *data.IsVerified)
	}
	if data.IsAvailable != nil {
		b.Set("is_available", *data.IsAvailable)
	}
	if data.IsActive != nil {
		b.Set("is_active", *data.IsActive)
	}

	// Nothing to change: return the stored row untouched, no SQL executed.
	if b.Empty() {
		return r.GetByID(ctx, technicianID)
	}

	query, args := b.Query("technician_id", id)

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("update technician: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, technicianID)
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *TechnicianRepo) Delete(ctx context.Context, technicianID string) error {
	id, err := uuid.Parse(technicianID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM technicians WHERE technician_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete technician: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate - soft delete, flips is_active only.
func (r *TechnicianRepo) Deactivate(ctx context.Context, technicianID string) error {
	id, err := uuid.Parse(technicianID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "UPDATE technicians SET is_active = FALSE WHERE technician_id = $1", id)
	if err != nil {
		return fmt.Errorf("deactivate technician: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLogin - touch last_login after a successful credential check.
func (r *TechnicianRepo) UpdateLastLogin(ctx context.Context, technicianID string) error {
	id, err := uuid.Parse(technicianID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err = r.db.ExecContext(ctx,
		"UPDATE technicians SET last_login = $1 WHERE technician_id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update technician last_login: %w", err)
	}
	return nil
}

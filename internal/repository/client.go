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

const selectClient = `
	SELECT
		client_id, name, surname, email, phone_number, password_hash,
		location_name,
		ST_X(location::geometry) AS longitude,
		ST_Y(location::geometry) AS latitude,
		is_active, last_login, created_at
	FROM clients`

// ClientRepo - CRUD for the clients table.
type ClientRepo struct {
	db      *sql.DB
	hasher  *security.Hasher
	timeout time.Duration
}

func NewClientRepo(db *sql.DB, hasher *security.Hasher, timeout time.Duration) *ClientRepo {
	return &ClientRepo{db: db, hasher: hasher, timeout: timeout}
}

func scanClient(row interface {
	Scan(dest ...interface{}) error
}) (*models.ClientInDB, error) {
	var c models.ClientInDB
	var lastLogin sql.NullTime
	err := row.Scan(
		&c.ClientID, &c.Name, &c.Surname, &c.Email, &c.PhoneNumber, &c.PasswordHash,
		&c.LocationName, &c.Longitude, &c.Latitude,
		&c.IsActive, &lastLogin, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		c.LastLogin = &lastLogin.Time
	}
	return &c, nil
}

// GetAll - every client row.
func (r *ClientRepo) GetAll(ctx context.Context) ([]models.ClientInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectClient)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var clients []models.ClientInDB
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// GetByID - the client or nil when absent.
func (r *ClientRepo) GetByID(ctx context.Context, clientID string) (*models.ClientInDB, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c, err := scanClient(r.db.QueryRowContext(ctx, selectClient+" WHERE client_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query client by id: %w", err)
	}
	return c, nil
}

// GetByEmail - the client or nil when absent.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*models.ClientInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c, err := scanClient(r.db.QueryRowContext(ctx, selectClient+" WHERE email = $1", email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query client by email: %w", err)
	}
	return c, nil
}

// Create - inserts a client after checking the email is free.
func (r *ClientRepo) Create(ctx context.Context, data models.ClientCreate) (*models.ClientInDB, error) {
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

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id uuid.UUID
	err = r.db.QueryRowContext(execCtx, `
		INSERT INTO clients (
			name, surname, email, phone_number, password_hash,
			location_name, location
		)
		VALUES ($1, $2, $3, $4, $5, $6,
			ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography)
		RETURNING client_id`,
		data.Name, data.Surname, data.Email, data.PhoneNumber, hash,
		data.LocationName, data.Longitude, data.Latitude,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return r.GetByID(ctx, id.String())
}

// Update - partial update touching only the supplied fields.
func (r *ClientRepo) Update(ctx context.Context, clientID string, data models.ClientUpdate) (*models.ClientInDB, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, ErrNotFound
	}

	b := newUpdateBuilder("clients")
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
	if data.IsActive != nil {
		b.Set("is_active", *data.IsActive)
	}

	if b.Empty() {
		return r.GetByID(ctx, clientID)
	}

	query, args := b.Query("client_id", id)

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, clientID)
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *ClientRepo) Delete(ctx context.Context, clientID string) error {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE client_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deactivate - soft delete, flips is_active only.
func (r *ClientRepo) Deactivate(ctx context.Context, clientID string) error {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "UPDATE clients SET is_active = FALSE WHERE client_id = $1", id)
	if err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLogin - touch last_login after a successful credential check.
func (r *ClientRepo) UpdateLastLogin(ctx context.Context, clientID string) error {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err = r.db.ExecContext(ctx,
		"UPDATE clients SET last_login = $1 WHERE client_id = $2",
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update client last_login: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobconnect-backend/models"
)

const selectFavorite = `
	SELECT favorite_id, client_id, technician_id, created_at
	FROM favorite_technicians`

// FavoriteRepo - CRUD for the favorite_technicians table. The pair is
// unique at the schema level.
type FavoriteRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewFavoriteRepo(db *sql.DB, timeout time.Duration) *FavoriteRepo {
	return &FavoriteRepo{db: db, timeout: timeout}
}

func scanFavorite(row interface {
	Scan(dest ...interface{}) error
}) (*models.FavoriteTechnicianInDB, error) {
	var f models.FavoriteTechnicianInDB
	err := row.Scan(&f.FavoriteID, &f.ClientID, &f.TechnicianID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetAll - every favorite pair.
func (r *FavoriteRepo) GetAll(ctx context.Context) ([]models.FavoriteTechnicianInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectFavorite)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteTechnicianInDB
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, *f)
	}
	return favorites, rows.Err()
}

// GetByClientID - a client's favorite technicians.
func (r *FavoriteRepo) GetByClientID(ctx context.Context, clientID string) ([]models.FavoriteTechnicianInDB, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectFavorite+" WHERE client_id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("query favorites by client: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteTechnicianInDB
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, *f)
	}
	return favorites, rows.Err()
}

// Create - inserts the pair; the UNIQUE constraint backs DuplicateEntry.
func (r *FavoriteRepo) Create(ctx context.Context, data models.FavoriteTechnicianCreate) (*models.FavoriteTechnicianInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	f, err := scanFavorite(r.db.QueryRowContext(ctx, `
		INSERT INTO favorite_technicians (client_id, technician_id)
		VALUES ($1, $2)
		RETURNING favorite_id, client_id, technician_id, created_at`,
		data.ClientID, data.TechnicianID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}
	return f, nil
}

// Delete - removes the pair; ErrNotFound when no row matched.
func (r *FavoriteRepo) Delete(ctx context.Context, clientID, technicianID string) error {
	cid, err := uuid.Parse(clientID)
	if err != nil {
		return ErrNotFound
	}
	tid, err := uuid.Parse(technicianID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorite_technicians WHERE client_id = $1 AND technician_id = $2", cid, tid)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobconnect-backend/models"
)

const selectReview = `
	SELECT
		review_id, booking_id, client_id, technician_id,
		rating, comment, created_at
	FROM reviews`

// reviewFilterColumns - closed allow-list for GetAllBy.
var reviewFilterColumns = map[string]string{
	"booking_id":    "booking_id",
	"client_id":     "client_id",
	"technician_id": "technician_id",
}

// ReviewRepo - CRUD for the reviews table.
type ReviewRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewReviewRepo(db *sql.DB, timeout time.Duration) *ReviewRepo {
	return &ReviewRepo{db: db, timeout: timeout}
}

func scanReview(row interface {
	Scan(dest ...interface{}) error
}) (*models.ReviewInDB, error) {
	var rv models.ReviewInDB
	err := row.Scan(
		&rv.ReviewID, &rv.BookingID, &rv.ClientID, &rv.TechnicianID,
		&rv.Rating, &rv.Comment, &rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepo) queryReviews(ctx context.Context, query string, args ...interface{}) ([]models.ReviewInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.ReviewInDB
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}

// GetAll - every review row.
func (r *ReviewRepo) GetAll(ctx context.Context) ([]models.ReviewInDB, error) {
	return r.queryReviews(ctx, selectReview)
}

// GetAllBy - reviews filtered by an allow-listed column. All review filter
// columns are UUID references.
func (r *ReviewRepo) GetAllBy(ctx context.Context, column, value string) ([]models.ReviewInDB, error) {
	col, ok := reviewFilterColumns[column]
	if !ok {
		return nil, ErrColumnNotAllowed
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, nil
	}
	return r.queryReviews(ctx, selectReview+" WHERE "+col+" = $1", id)
}

// GetByID - the review or nil when absent.
func (r *ReviewRepo) GetByID(ctx context.Context, reviewID string) (*models.ReviewInDB, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rv, err := scanReview(r.db.QueryRowContext(ctx, selectReview+" WHERE review_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query review by id: %w", err)
	}
	return rv, nil
}

// Create - inserts a review.
func (r *ReviewRepo) Create(ctx context.Context, data models.ReviewCreate) (*models.ReviewInDB, error) {
	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id uuid.UUID
	err := r.db.QueryRowContext(execCtx, `
		INSERT INTO reviews (booking_id, client_id, technician_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING review_id`,
		data.BookingID, data.ClientID, data.TechnicianID, data.Rating, data.Comment,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return r.GetByID(ctx, id.String())
}

// Update - partial update touching only the supplied fields.
func (r *ReviewRepo) Update(ctx context.Context, reviewID string, data models.ReviewUpdate) (*models.ReviewInDB, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, ErrNotFound
	}

	b := newUpdateBuilder("reviews")
	if data.Rating != nil {
		b.Set("rating", *data.Rating)
	}
	if data.Comment != nil {
		b.Set("comment", *data.Comment)
	}

	if b.Empty() {
		return r.GetByID(ctx, reviewID)
	}

	query, args := b.Query("review_id", id)

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, reviewID)
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *ReviewRepo) Delete(ctx context.Context, reviewID string) error {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE review_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

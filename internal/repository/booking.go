package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobconnect-backend/models"
)

const selectBooking = `
	SELECT
		booking_id, client_id, technician_id, service_type, description,
		price, status, start_date, end_date, created_at
	FROM bookings`

// bookingFilterColumns - closed allow-list for GetAllBy. Caller-supplied
// names resolve to these fixed identifiers; anything else is rejected
// before any SQL is built.
var bookingFilterColumns = map[string]string{
	"client_id":     "client_id",
	"technician_id": "technician_id",
	"service_type":  "service_type",
	"status":        "status",
}

// BookingRepo - CRUD for the bookings table.
type BookingRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewBookingRepo(db *sql.DB, timeout time.Duration) *BookingRepo {
	return &BookingRepo{db: db, timeout: timeout}
}

func scanBooking(row interface {
	Scan(dest ...interface{}) error
}) (*models.BookingInDB, error) {
	var b models.BookingInDB
	var start, end sql.NullTime
	err := row.Scan(
		&b.BookingID, &b.ClientID, &b.TechnicianID, &b.ServiceType, &b.Description,
		&b.Price, &b.Status, &start, &end, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		b.StartDate = &start.Time
	}
	if end.Valid {
		b.EndDate = &end.Time
	}
	return &b, nil
}

func (r *BookingRepo) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.BookingInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingInDB
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// GetAll - every booking row.
func (r *BookingRepo) GetAll(ctx context.Context) ([]models.BookingInDB, error) {
	return r.queryBookings(ctx, selectBooking)
}

// GetAllBy - bookings filtered by an allow-listed column.
func (r *BookingRepo) GetAllBy(ctx context.Context, column, value string) ([]models.BookingInDB, error) {
	col, ok := bookingFilterColumns[column]
	if !ok {
		return nil, ErrColumnNotAllowed
	}

	var arg interface{} = value
	if strings.HasSuffix(col, "_id") {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, nil
		}
		arg = id
	}
	return r.queryBookings(ctx, selectBooking+" WHERE "+col+" = $1", arg)
}

// GetByID - the booking or nil when absent.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*models.BookingInDB, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	b, err := scanBooking(r.db.QueryRowContext(ctx, selectBooking+" WHERE booking_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query booking by id: %w", err)
	}
	return b, nil
}

// Create - inserts a booking; the lifecycle starts at pending.
func (r *BookingRepo) Create(ctx context.Context, data models.BookingCreate) (*models.BookingInDB, error) {
	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id uuid.UUID
	err := r.db.QueryRowContext(execCtx, `
		INSERT INTO bookings (
			client_id, technician_id, service_type, description,
			price, status, start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING booking_id`,
		data.ClientID, data.TechnicianID, data.ServiceType, data.Description,
		data.Price, models.BookingPending, data.StartDate, data.EndDate,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return r.GetByID(ctx, id.String())
}

// Update - partial update touching only the supplied fields. Status
// transition legality is enforced in the service layer.
func (r *BookingRepo) Update(ctx context.Context, bookingID string, data models.BookingUpdate) (*models.BookingInDB, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrNotFound
	}

	b := newUpdateBuilder("bookings")
	if data.Description != nil {
		b.Set("description", *data.Description)
	}
	if data.Price != nil {
		b.Set("price", *data.Price)
	}
	if data.Status != nil {
		b.Set("status", *data.Status)
	}
	if data.StartDate != nil {
		b.Set("start_date", *data.StartDate)
	}
	if data.EndDate != nil {
		b.Set("end_date", *data.EndDate)
	}

	if b.Empty() {
		return r.GetByID(ctx, bookingID)
	}

	query, args := b.Query("booking_id", id)

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, bookingID)
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *BookingRepo) Delete(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE booking_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

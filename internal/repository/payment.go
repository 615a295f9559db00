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

const selectPayment = `
	SELECT
		payment_id, booking_id, client_id, technician_id,
		amount, payment_method, payment_status, transaction_date
	FROM payments`

// paymentFilterColumns - closed allow-list for GetAllBy.
var paymentFilterColumns = map[string]string{
	"booking_id":     "booking_id",
	"client_id":      "client_id",
	"technician_id":  "technician_id",
	"payment_status": "payment_status",
	"payment_method": "payment_method",
}

// PaymentRepo - CRUD for the payments table.
type PaymentRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPaymentRepo(db *sql.DB, timeout time.Duration) *PaymentRepo {
	return &PaymentRepo{db: db, timeout: timeout}
}

func scanPayment(row interface {
	Scan(dest ...interface{}) error
}) (*models.PaymentInDB, error) {
	var p models.PaymentInDB
	err := row.Scan(
		&p.PaymentID, &p.BookingID, &p.ClientID, &p.TechnicianID,
		&p.Amount, &p.PaymentMethod, &p.PaymentStatus, &p.TransactionDate,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) queryPayments(ctx context.Context, query string, args ...interface{}) ([]models.PaymentInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.PaymentInDB
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// GetAll - every payment row.
func (r *PaymentRepo) GetAll(ctx context.Context) ([]models.PaymentInDB, error) {
	return r.queryPayments(ctx, selectPayment)
}

// GetAllBy - payments filtered by an allow-listed column.
func (r *PaymentRepo) GetAllBy(ctx context.Context, column, value string) ([]models.PaymentInDB, error) {
	col, ok := paymentFilterColumns[column]
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
	return r.queryPayments(ctx, selectPayment+" WHERE "+col+" = $1", arg)
}

// GetByID - the payment or nil when absent.
func (r *PaymentRepo) GetByID(ctx context.Context, paymentID string) (*models.PaymentInDB, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p, err := scanPayment(r.db.QueryRowContext(ctx, selectPayment+" WHERE payment_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query payment by id: %w", err)
	}
	return p, nil
}

// Create - inserts a payment; status defaults to pending when omitted.
func (r *PaymentRepo) Create(ctx context.Context, data models.PaymentCreate) (*models.PaymentInDB, error) {
	status := data.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id uuid.UUID
	err := r.db.QueryRowContext(execCtx, `
		INSERT INTO payments (
			booking_id, client_id, technician_id, amount,
			payment_method, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id`,
		data.BookingID, data.ClientID, data.TechnicianID, data.Amount,
		data.PaymentMethod, status,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return r.GetByID(ctx, id.String())
}

// Update - partial update touching only the supplied fields.
func (r *PaymentRepo) Update(ctx context.Context, paymentID string, data models.PaymentUpdate) (*models.PaymentInDB, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, ErrNotFound
	}

	b := newUpdateBuilder("payments")
	if data.Amount != nil {
		b.Set("amount", *data.Amount)
	}
	if data.PaymentMethod != nil {
		b.Set("payment_method", *data.PaymentMethod)
	}
	if data.PaymentStatus != nil {
		b.Set("payment_status", *data.PaymentStatus)
	}

	if b.Empty() {
		return r.GetByID(ctx, paymentID)
	}

	query, args := b.Query("payment_id", id)

	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, paymentID)
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *PaymentRepo) Delete(ctx context.Context, paymentID string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM payments WHERE payment_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

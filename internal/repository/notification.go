package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobconnect-backend/models"
)

const selectNotification = `
	SELECT notification_id, client_id, technician_id, message, is_read, created_at
	FROM notifications`

// notificationTargetColumns - the two recipient columns a listing may
// filter on.
var notificationTargetColumns = map[string]string{
	"client":     "client_id",
	"technician": "technician_id",
}

// NotificationRepo - CRUD for the notifications table.
type NotificationRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewNotificationRepo(db *sql.DB, timeout time.Duration) *NotificationRepo {
	return &NotificationRepo{db: db, timeout: timeout}
}

func scanNotification(row interface {
	Scan(dest ...interface{}) error
}) (*models.NotificationInDB, error) {
	var n models.NotificationInDB
	var clientID, technicianID sql.NullString
	err := row.Scan(
		&n.NotificationID, &clientID, &technicianID, &n.Message, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if clientID.Valid {
		n.ClientID = &clientID.String
	}
	if technicianID.Valid {
		n.TechnicianID = &technicianID.String
	}
	return &n, nil
}

// Create - inserts a notification targeted at a client or a technician.
func (r *NotificationRepo) Create(ctx context.Context, data models.NotificationCreate) (*models.NotificationInDB, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := scanNotification(r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (client_id, technician_id, message)
		VALUES ($1, $2, $3)
		RETURNING notification_id, client_id, technician_id, message, is_read, created_at`,
		data.ClientID, data.TechnicianID, data.Message,
	))
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return n, nil
}

// GetByID - the notification or nil when absent.
func (r *NotificationRepo) GetByID(ctx context.Context, notificationID string) (*models.NotificationInDB, error) {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := scanNotification(r.db.QueryRowContext(ctx, selectNotification+" WHERE notification_id = $1", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query notification by id: %w", err)
	}
	return n, nil
}

// GetAllByUser - notifications for a client or a technician; target names
// resolve through a closed allow-list.
func (r *NotificationRepo) GetAllByUser(ctx context.Context, target, userID string) ([]models.NotificationInDB, error) {
	col, ok := notificationTargetColumns[target]
	if !ok {
		return nil, ErrColumnNotAllowed
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectNotification+" WHERE "+col+" = $1 ORDER BY created_at DESC", id)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.NotificationInDB
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

// MarkRead - flips is_read; ErrNotFound when no row matched.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "UPDATE notifications SET is_read = TRUE WHERE notification_id = $1", id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete - hard delete; ErrNotFound when no row matched.
func (r *NotificationRepo) Delete(ctx context.Context, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE notification_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

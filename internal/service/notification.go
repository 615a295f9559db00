package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
)

// NotificationService - notification delivery records. Every notification
// targets exactly one of a client or a technician.
type NotificationService struct {
	repo *repository.NotificationRepo
}

func NewNotificationService(repo *repository.NotificationRepo) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, data models.NotificationCreate) (*models.NotificationResponse, error) {
	if (data.ClientID == nil) == (data.TechnicianID == nil) {
		return nil, apperror.NewValidation("Exactly one of client_id or technician_id must be set")
	}
	n, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Notification")
	}
	return n, nil
}

func (s *NotificationService) GetByID(ctx context.Context, notificationID string) (*models.NotificationResponse, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperror.NewNotFound("Notification not found")
	}
	return n, nil
}

// GetAllByUser - notifications for one recipient, newest first. Target is
// "client" or "technician".
func (s *NotificationService) GetAllByUser(ctx context.Context, target, userID string) ([]models.NotificationResponse, error) {
	notifications, err := s.repo.GetAllByUser(ctx, target, userID)
	if err != nil {
		return nil, convertRepoErr(err, "Notification")
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	if err := s.repo.MarkRead(ctx, notificationID); err != nil {
		return convertRepoErr(err, "Notification")
	}
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, notificationID string) error {
	if err := s.repo.Delete(ctx, notificationID); err != nil {
		return convertRepoErr(err, "Notification")
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
)

// BookingService - booking CRUD plus lifecycle enforcement. Status moves
// pending -> confirmed -> in_progress -> completed; cancellation is allowed
// from any non-terminal state.
type BookingService struct {
	repo *repository.BookingRepo
}

func NewBookingService(repo *repository.BookingRepo) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) GetAll(ctx context.Context) ([]models.BookingResponse, error) {
	return s.repo.GetAll(ctx)
}

// GetAllBy - bookings filtered by a single column. Unknown columns are a
// client error, not a query.
func (s *BookingService) GetAllBy(ctx context.Context, column, value string) ([]models.BookingResponse, error) {
	bookings, err := s.repo.GetAllBy(ctx, column, value)
	if err != nil {
		return nil, convertRepoErr(err, "Booking")
	}
	return bookings, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NewNotFound("Booking not found")
	}
	return b, nil
}

func (s *BookingService) Create(ctx context.Context, data models.BookingCreate) (*models.BookingResponse, error) {
	b, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Booking")
	}
	return b, nil
}

// Update applies a sparse update. A status change is checked against the
// current state before any SQL runs; illegal transitions are rejected.
func (s *BookingService) Update(ctx context.Context, bookingID string, data models.BookingUpdate) (*models.BookingResponse, error) {
	current, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.NewNotFound("Booking not found")
	}

	if data.Status != nil && !current.Status.CanTransitionTo(*data.Status) {
		return nil, apperror.NewInvalidTransition(fmt.Sprintf(
			"Booking status cannot change from %s to %s", current.Status, *data.Status))
	}

	b, err := s.repo.Update(ctx, bookingID, data)
	if err != nil {
		return nil, convertRepoErr(err, "Booking")
	}
	if b == nil {
		return nil, apperror.NewNotFound("Booking not found")
	}
	return b, nil
}

// Cancel moves the booking to cancelled; terminal bookings stay put.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	status := models.BookingCancelled
	return s.Update(ctx, bookingID, models.BookingUpdate{Status: &status})
}

func (s *BookingService) Delete(ctx context.Context, bookingID string) error {
	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return convertRepoErr(err, "Booking")
	}
	return nil
}

package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
)

// PaymentService - payment CRUD. Payment status is free-form; no
// transition graph is enforced.
type PaymentService struct {
	repo *repository.PaymentRepo
}

func NewPaymentService(repo *repository.PaymentRepo) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) GetAll(ctx context.Context) ([]models.PaymentResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *PaymentService) GetAllBy(ctx context.Context, column, value string) ([]models.PaymentResponse, error) {
	payments, err := s.repo.GetAllBy(ctx, column, value)
	if err != nil {
		return nil, convertRepoErr(err, "Payment")
	}
	return payments, nil
}

func (s *PaymentService) GetByID(ctx context.Context, paymentID string) (*models.PaymentResponse, error) {
	p, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("Payment not found")
	}
	return p, nil
}

func (s *PaymentService) Create(ctx context.Context, data models.PaymentCreate) (*models.PaymentResponse, error) {
	p, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Payment")
	}
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, paymentID string, data models.PaymentUpdate) (*models.PaymentResponse, error) {
	p, err := s.repo.Update(ctx, paymentID, data)
	if err != nil {
		return nil, convertRepoErr(err, "Payment")
	}
	if p == nil {
		return nil, apperror.NewNotFound("Payment not found")
	}
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, paymentID string) error {
	if err := s.repo.Delete(ctx, paymentID); err != nil {
		return convertRepoErr(err, "Payment")
	}
	return nil
}

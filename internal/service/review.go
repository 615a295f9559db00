package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
)

// ReviewService - review CRUD.
type ReviewService struct {
	repo *repository.ReviewRepo
}

func NewReviewService(repo *repository.ReviewRepo) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) GetAll(ctx context.Context) ([]models.ReviewResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *ReviewService) GetAllBy(ctx context.Context, column, value string) ([]models.ReviewResponse, error) {
	reviews, err := s.repo.GetAllBy(ctx, column, value)
	if err != nil {
		return nil, convertRepoErr(err, "Review")
	}
	return reviews, nil
}

func (s *ReviewService) GetByID(ctx context.Context, reviewID string) (*models.ReviewResponse, error) {
	rv, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, apperror.NewNotFound("Review not found")
	}
	return rv, nil
}

func (s *ReviewService) Create(ctx context.Context, data models.ReviewCreate) (*models.ReviewResponse, error) {
	rv, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Review")
	}
	return rv, nil
}

func (s *ReviewService) Update(ctx context.Context, reviewID string, data models.ReviewUpdate) (*models.ReviewResponse, error) {
	rv, err := s.repo.Update(ctx, reviewID, data)
	if err != nil {
		return nil, convertRepoErr(err, "Review")
	}
	if rv == nil {
		return nil, apperror.NewNotFound("Review not found")
	}
	return rv, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return convertRepoErr(err, "Review")
	}
	return nil
}

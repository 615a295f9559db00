package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
)

// FavoriteService - clients' saved technicians. The client/technician pair
// is unique; re-favoriting is a duplicate error.
type FavoriteService struct {
	repo *repository.FavoriteRepo
}

func NewFavoriteService(repo *repository.FavoriteRepo) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func (s *FavoriteService) GetAll(ctx context.Context) ([]models.FavoriteTechnicianResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *FavoriteService) GetByClientID(ctx context.Context, clientID string) ([]models.FavoriteTechnicianResponse, error) {
	return s.repo.GetByClientID(ctx, clientID)
}

func (s *FavoriteService) Create(ctx context.Context, data models.FavoriteTechnicianCreate) (*models.FavoriteTechnicianResponse, error) {
	f, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Favorite")
	}
	return f, nil
}

func (s *FavoriteService) Delete(ctx context.Context, clientID, technicianID string) error {
	if err := s.repo.Delete(ctx, clientID, technicianID); err != nil {
		return convertRepoErr(err, "Favorite")
	}
	return nil
}

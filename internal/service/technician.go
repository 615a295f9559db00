package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/security"
)

// TechnicianService - response shaping and domain rules for technicians.
type TechnicianService struct {
	repo   *repository.TechnicianRepo
	hasher *security.Hasher
}

func NewTechnicianService(repo *repository.TechnicianRepo, hasher *security.Hasher) *TechnicianService {
	return &TechnicianService{repo: repo, hasher: hasher}
}

// toTechnicianResponse strips the password hash from the stored record.
func toTechnicianResponse(t *models.TechnicianInDB) models.TechnicianResponse {
	return models.TechnicianResponse{
		TechnicianID:    t.TechnicianID,
		Name:            t.Name,
		Surname:         t.Surname,
		Email:           t.Email,
		PhoneNumber:     t.PhoneNumber,
		LocationName:    t.LocationName,
		Latitude:        t.Latitude,
		Longitude:       t.Longitude,
		ServiceTypes:    t.ServiceTypes,
		AverageRating:   t.AverageRating,
		ExperienceYears: t.ExperienceYears,
		IsVerified:      t.IsVerified,
		IsAvailable:     t.IsAvailable,
		IsActive:        t.IsActive,
		LastLogin:       t.LastLogin,
		CreatedAt:       t.CreatedAt,
	}
}

func (s *TechnicianService) GetAll(ctx context.Context) ([]models.TechnicianResponse, error) {
	technicians, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]models.TechnicianResponse, 0, len(technicians))
	for i := range technicians {
		responses = append(responses, toTechnicianResponse(&technicians[i]))
	}
	return responses, nil
}

func (s *TechnicianService) GetByID(ctx context.Context, technicianID string) (*models.TechnicianResponse, error) {
	t, err := s.repo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NewNotFound("Technician not found")
	}
	resp := toTechnicianResponse(t)
	return &resp, nil
}

func (s *TechnicianService) GetByEmail(ctx context.Context, email string) (*models.TechnicianResponse, error) {
	t, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NewNotFound("Technician not found")
	}
	resp := toTechnicianResponse(t)
	return &resp, nil
}

func (s *TechnicianService) Create(ctx context.Context, data models.TechnicianCreate) (*models.TechnicianResponse, error) {
	t, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Technician")
	}
	resp := toTechnicianResponse(t)
	return &resp, nil
}

func (s *TechnicianService) Update(ctx context.Context, technicianID string, data models.TechnicianUpdate) (*models.TechnicianResponse, error) {
	t, err := s.repo.Update(ctx, technicianID, data)
	if err != nil {
		return nil, convertRepoErr(err, "Technician")
	}
	if t == nil {
		return nil, apperror.NewNotFound("Technician not found")
	}
	resp := toTechnicianResponse(t)
	return &resp, nil
}

func (s *TechnicianService) Delete(ctx context.Context, technicianID string) error {
	if err := s.repo.Delete(ctx, technicianID); err != nil {
		return convertRepoErr(err, "Technician")
	}
	return nil
}

func (s *TechnicianService) Deactivate(ctx context.Context, technicianID string) error {
	if err := s.repo.Deactivate(ctx, technicianID); err != nil {
		return convertRepoErr(err, "Technician")
	}
	return nil
}

// Authenticate - credential check only; no session or token is issued.
func (s *TechnicianService) Authenticate(ctx context.Context, email, password string) (*models.TechnicianResponse, error) {
	t, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if t == nil || !s.hasher.Verify(password, t.PasswordHash) {
		return nil, apperror.NewInvalidCredentials()
	}
	if !t.IsActive {
		return nil, apperror.NewAccountLocked()
	}
	if err := s.repo.UpdateLastLogin(ctx, t.TechnicianID); err != nil {
		return nil, err
	}
	resp := toTechnicianResponse(t)
	return &resp, nil
}

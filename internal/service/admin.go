package service

import (
	"context"

	"jobconnect-backend/internal/repository"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/security"
)

// AdminService - admin account management with role-based guards.
type AdminService struct {
	repo   *repository.AdminRepo
	hasher *security.Hasher
}

func NewAdminService(repo *repository.AdminRepo, hasher *security.Hasher) *AdminService {
	return &AdminService{repo: repo, hasher: hasher}
}

func toAdminResponse(a *models.AdminInDB) models.AdminResponse {
	return models.AdminResponse{
		AdminID:     a.AdminID,
		Name:        a.Name,
		Surname:     a.Surname,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Role:        a.Role,
		IsActive:    a.IsActive,
		LastLogin:   a.LastLogin,
		CreatedAt:   a.CreatedAt,
	}
}

func (s *AdminService) GetAll(ctx context.Context) ([]models.AdminResponse, error) {
	admins, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]models.AdminResponse, 0, len(admins))
	for i := range admins {
		responses = append(responses, toAdminResponse(&admins[i]))
	}
	return responses, nil
}

func (s *AdminService) GetByID(ctx context.Context, adminID string) (*models.AdminResponse, error) {
	a, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NewNotFound("Admin not found")
	}
	resp := toAdminResponse(a)
	return &resp, nil
}

func (s *AdminService) GetByEmail(ctx context.Context, email string) (*models.AdminResponse, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NewNotFound("Admin not found")
	}
	resp := toAdminResponse(a)
	return &resp, nil
}

func (s *AdminService) Create(ctx context.Context, data models.AdminCreate) (*models.AdminResponse, error) {
	a, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, convertRepoErr(err, "Admin")
	}
	resp := toAdminResponse(a)
	return &resp, nil
}

// Update applies a sparse update. Role changes require the acting admin
// (identified by data.CurrentAdminID) to hold the super_admin role.
func (s *AdminService) Update(ctx context.Context, adminID string, data models.AdminUpdate) (*models.AdminResponse, error) {
	if data.Role != nil {
		actor, err := s.repo.GetByID(ctx, data.CurrentAdminID)
		if err != nil {
			return nil, err
		}
		if actor == nil {
			return nil, apperror.NewNotFound("Acting admin not found")
		}
		if actor.Role != models.RoleSuperAdmin {
			return nil, apperror.NewPermissionDenied("Only super admin can modify admin roles")
		}
	}
	a, err := s.repo.Update(ctx, adminID, data)
	if err != nil {
		return nil, convertRepoErr(err, "Admin")
	}
	if a == nil {
		return nil, apperror.NewNotFound("Admin not found")
	}
	resp := toAdminResponse(a)
	return &resp, nil
}

func (s *AdminService) Delete(ctx context.Context, adminID string) error {
	if err := s.repo.Delete(ctx, adminID); err != nil {
		return convertRepoErr(err, "Admin")
	}
	return nil
}

func (s *AdminService) Deactivate(ctx context.Context, adminID string) error {
	if err := s.repo.Deactivate(ctx, adminID); err != nil {
		return convertRepoErr(err, "Admin")
	}
	return nil
}

// Authenticate - credential check only; no session or token is issued.
func (s *AdminService) Authenticate(ctx context.Context, email, password string) (*models.AdminResponse, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if a == nil || !s.hasher.Verify(password, a.PasswordHash) {
		return nil, apperror.NewInvalidCredentials()
	}
	if !a.IsActive {
		return nil, apperror.NewAccountLocked()
	}
	if err := s.repo.UpdateLastLogin(ctx, a.AdminID); err != nil {
		return nil, err
	}
	resp := toAdminResponse(a)
	return &resp, nil
}
